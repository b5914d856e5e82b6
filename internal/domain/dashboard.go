package domain

// Dashboard is the read-only home view for a signed-in user. Only the
// sections relevant to the user type are populated.
type Dashboard struct {
	UserType            UserType             `json:"user_type"`
	Properties          []Property           `json:"properties,omitempty"`
	PendingRequests     []Booking            `json:"pending_requests,omitempty"`
	Bookings            []Booking            `json:"bookings,omitempty"`
	Payments            []Payment            `json:"payments,omitempty"`
	Workers             []Worker             `json:"workers,omitempty"`
	WorkerBookings      []WorkerBooking      `json:"worker_bookings,omitempty"`
	Clients             []User               `json:"clients,omitempty"`
	MaintenanceRequests []MaintenanceRequest `json:"maintenance_requests,omitempty"`
	UnreadNotifications int32                `json:"unread_notifications"`
}
