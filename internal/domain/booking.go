package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "PENDING"
	BookingStatusActive     BookingStatus = "ACTIVE"
	BookingStatusRejected   BookingStatus = "REJECTED"
	BookingStatusTerminated BookingStatus = "TERMINATED"
)

// Final reports whether no further transition is allowed.
func (s BookingStatus) Final() bool {
	return s == BookingStatusActive || s == BookingStatusRejected || s == BookingStatusTerminated
}

type BookingAction string

const (
	BookingActionApprove BookingAction = "approve"
	BookingActionReject  BookingAction = "reject"
)

// Booking is a tenant's request to rent a property.
type Booking struct {
	ID          int32         `json:"id"`
	TenantID    int32         `json:"tenant_id"`
	PropertyID  int32         `json:"property_id"`
	OwnerID     int32         `json:"owner_id"`
	Status      BookingStatus `json:"status"`
	StartDate   time.Time     `json:"start_date"`
	EndDate     time.Time     `json:"end_date"`
	LeaseMonths int           `json:"lease_months"`
	Comments    string        `json:"comments"`
	CreatedOn   time.Time     `json:"created_on"`
	UpdatedOn   time.Time     `json:"updated_on"`
}

// LeaseEnd returns start moved forward by months calendar months.
func LeaseEnd(start time.Time, months int) time.Time {
	return start.AddDate(0, months, 0)
}
