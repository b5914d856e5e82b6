package domain

import "time"

type RecipientType string

const (
	RecipientOwner  RecipientType = "OWNER"
	RecipientTenant RecipientType = "TENANT"
	RecipientWorker RecipientType = "WORKER"
	RecipientAdmin  RecipientType = "ADMIN"
)

// Recipient addresses a notification to exactly one user of a given type.
type Recipient struct {
	Type RecipientType `json:"type"`
	ID   int32         `json:"id"`
}

func (r Recipient) Is(userType UserType, userID int32) bool {
	return r.Type == RecipientType(userType) && r.ID == userID
}

type NotificationStatus string

const (
	NotificationStatusPending   NotificationStatus = "PENDING"
	NotificationStatusApproved  NotificationStatus = "APPROVED"
	NotificationStatusRejected  NotificationStatus = "REJECTED"
	NotificationStatusCompleted NotificationStatus = "COMPLETED"
	NotificationStatusInfo      NotificationStatus = "INFO"
)

// Notification types written by the workflow engines.
const (
	NotificationBookingRequest        = "BOOKING_REQUEST"
	NotificationBookingApproved       = "BOOKING_APPROVED"
	NotificationBookingRejected       = "BOOKING_REJECTED"
	NotificationWorkerBookingRequest  = "WORKER_BOOKING_REQUEST"
	NotificationWorkerBookingApproved = "WORKER_BOOKING_APPROVED"
	NotificationWorkerBookingDeclined = "WORKER_BOOKING_DECLINED"
	NotificationWorkerDebooked        = "WORKER_DEBOOKED"
	NotificationWorkerPayment         = "WORKER_PAYMENT"
	NotificationPaymentReminder       = "PAYMENT_REMINDER"
	NotificationPaymentOverdue        = "PAYMENT_OVERDUE"
	NotificationMaintenanceRequest    = "MAINTENANCE_REQUEST"
	NotificationMaintenanceUpdate     = "MAINTENANCE_UPDATE"
	NotificationPropertyVerification  = "PROPERTY_VERIFICATION"
)

type Notification struct {
	ID              int32              `json:"id"`
	Recipient       Recipient          `json:"recipient"`
	Type            string             `json:"type"`
	Title           string             `json:"title"`
	Message         string             `json:"message"`
	Status          NotificationStatus `json:"status"`
	IsRead          bool               `json:"is_read"`
	BookingID       *int32             `json:"booking_id,omitempty"`
	WorkerBookingID *int32             `json:"worker_booking_id,omitempty"`
	Attributes      map[string]string  `json:"attributes,omitempty"`
	CreatedOn       time.Time          `json:"created_on"`
	PublishedOn     *time.Time         `json:"-"`
}
