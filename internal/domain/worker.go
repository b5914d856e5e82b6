package domain

import "time"

type RateUnit string

const (
	RateUnitHourly  RateUnit = "HOURLY"
	RateUnitDaily   RateUnit = "DAILY"
	RateUnitMonthly RateUnit = "MONTHLY"
)

func (r RateUnit) Valid() bool {
	return r == RateUnitHourly || r == RateUnitDaily || r == RateUnitMonthly
}

type ServiceStatus string

const (
	ServiceStatusAvailable   ServiceStatus = "AVAILABLE"
	ServiceStatusUnavailable ServiceStatus = "UNAVAILABLE"
)

// Worker is a WORKER user joined with its service profile. IsBooked is
// derived from approved worker bookings.
type Worker struct {
	ID              int32         `json:"id"`
	Name            string        `json:"name"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone"`
	ServiceType     string        `json:"service_type"`
	PriceCents      int32         `json:"price_cents"`
	RateUnit        RateUnit      `json:"rate_unit"`
	ServiceStatus   ServiceStatus `json:"service_status"`
	ExperienceYears int32         `json:"experience_years"`
	Location        string        `json:"location"`
	Description     string        `json:"description"`
	IsBooked        bool          `json:"is_booked"`
}

type WorkerBookingStatus string

const (
	WorkerBookingStatusPending   WorkerBookingStatus = "PENDING"
	WorkerBookingStatusApproved  WorkerBookingStatus = "APPROVED"
	WorkerBookingStatusDeclined  WorkerBookingStatus = "DECLINED"
	WorkerBookingStatusCompleted WorkerBookingStatus = "COMPLETED"
	WorkerBookingStatusDebooked  WorkerBookingStatus = "DEBOOKED"
)

// WorkerBooking is a tenant's engagement of a worker. An APPROVED row is the
// tenant-worker association.
type WorkerBooking struct {
	ID            int32               `json:"id"`
	TenantID      int32               `json:"tenant_id"`
	WorkerID      int32               `json:"worker_id"`
	ServiceType   string              `json:"service_type"`
	Status        WorkerBookingStatus `json:"status"`
	BookingDate   time.Time           `json:"booking_date"`
	TenantName    string              `json:"tenant_name"`
	TenantAddress string              `json:"tenant_address"`
	ResolvedOn    *time.Time          `json:"resolved_on,omitempty"`
	DebookedOn    *time.Time          `json:"debooked_on,omitempty"`
}
