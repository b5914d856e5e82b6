package domain

import "time"

type UserType string

const (
	UserTypeTenant UserType = "TENANT"
	UserTypeOwner  UserType = "OWNER"
	UserTypeWorker UserType = "WORKER"
	UserTypeAdmin  UserType = "ADMIN"
)

func (t UserType) Valid() bool {
	switch t {
	case UserTypeTenant, UserTypeOwner, UserTypeWorker, UserTypeAdmin:
		return true
	}
	return false
}

type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
)

func (s UserStatus) Valid() bool {
	return s == UserStatusActive || s == UserStatusSuspended
}

// User is a tenant, owner, worker or admin account.
type User struct {
	ID           int32      `json:"id"`
	UserType     UserType   `json:"user_type"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Address      string     `json:"address"`
	PasswordHash string     `json:"-"`
	Status       UserStatus `json:"status"`
	CreatedOn    time.Time  `json:"created_on"`
}

// Recipient returns the notification address of the user.
func (u *User) Recipient() Recipient {
	return Recipient{Type: RecipientType(u.UserType), ID: u.ID}
}

// RentalHistory records that a tenant held a property through a booking.
type RentalHistory struct {
	ID         int32     `json:"id"`
	TenantID   int32     `json:"tenant_id"`
	PropertyID int32     `json:"property_id"`
	BookingID  int32     `json:"booking_id"`
	StartedOn  time.Time `json:"started_on"`
}
