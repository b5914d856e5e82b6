package repository

import (
	"context"
	"time"

	"rentease-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Delete(ctx context.Context, id int32) error
	// UpdateProfile writes name, phone and address.
	UpdateProfile(ctx context.Context, user *domain.User) error
	UpdatePassword(ctx context.Context, id int32, hash string) error
	SetStatus(ctx context.Context, id int32, status domain.UserStatus) error
	HasAdmin(ctx context.Context) (bool, error)

	// Rental history replaces the tenant's rentalHistoryIds list.
	AddRentalHistory(ctx context.Context, h *domain.RentalHistory) error
	DeleteRentalHistory(ctx context.Context, id int32) error
	HasRented(ctx context.Context, tenantID, propertyID int32) (bool, error)
}

type WorkerRepository interface {
	CreateProfile(ctx context.Context, worker *domain.Worker) error
	GetByID(ctx context.Context, id int32) (*domain.Worker, error)
	UpdateProfile(ctx context.Context, worker *domain.Worker) error
	SetServiceStatus(ctx context.Context, id int32, status domain.ServiceStatus) error
	ListAvailable(ctx context.Context, serviceType, location string) ([]domain.Worker, error)
}

type PropertyRepository interface {
	Create(ctx context.Context, property *domain.Property) error
	GetByID(ctx context.Context, id int32) (*domain.Property, error)
	Update(ctx context.Context, property *domain.Property) error
	// SetRentalState writes tenant_id, is_rented and status only.
	SetRentalState(ctx context.Context, id int32, state domain.RentalState) error
	Delete(ctx context.Context, id int32) error
	ListByOwner(ctx context.Context, ownerID int32) ([]domain.Property, error)
	ListByTenant(ctx context.Context, tenantID int32) ([]domain.Property, error)
	Search(ctx context.Context, maxPriceCents int32, page, pageSize int32) ([]domain.Property, int32, error)
	CountRentedByOwner(ctx context.Context, ownerID int32) (int32, error)
	SetAverageRating(ctx context.Context, id int32, avg float64) error
	ToggleSaved(ctx context.Context, tenantID, propertyID int32) (bool, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int32) (*domain.Booking, error)
	// UpdateStatus moves a booking from one status to another and returns
	// ConflictError when the booking is no longer in from.
	UpdateStatus(ctx context.Context, id int32, from, to domain.BookingStatus) error
	Delete(ctx context.Context, id int32) error
	ListByTenant(ctx context.Context, tenantID int32) ([]domain.Booking, error)
	ListByOwner(ctx context.Context, ownerID int32, status domain.BookingStatus) ([]domain.Booking, error)
	HasPending(ctx context.Context, tenantID, propertyID int32) (bool, error)
}

type WorkerBookingRepository interface {
	Create(ctx context.Context, booking *domain.WorkerBooking) error
	Delete(ctx context.Context, id int32) error
	// Resolve applies status to the booking owned by workerID when it is
	// PENDING or already in status. It returns the booking and the status it
	// had before the update.
	Resolve(ctx context.Context, id, workerID int32, status domain.WorkerBookingStatus) (*domain.WorkerBooking, domain.WorkerBookingStatus, error)
	SetStatus(ctx context.Context, id int32, status domain.WorkerBookingStatus) error
	ListForPair(ctx context.Context, tenantID, workerID int32, statuses ...domain.WorkerBookingStatus) ([]domain.WorkerBooking, error)
	// Debook marks every APPROVED booking of the pair DEBOOKED and returns
	// the affected ids.
	Debook(ctx context.Context, tenantID, workerID int32, at time.Time) ([]int32, error)
	Restore(ctx context.Context, ids []int32, status domain.WorkerBookingStatus) error
	ListByWorker(ctx context.Context, workerID int32) ([]domain.WorkerBooking, error)
	ListWorkersForTenant(ctx context.Context, tenantID int32) ([]domain.Worker, error)
	ListClientsForWorker(ctx context.Context, workerID int32) ([]domain.User, error)
	ListMonthlyEngagements(ctx context.Context) ([]domain.WorkerBooking, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	GetByID(ctx context.Context, id int32) (*domain.Payment, error)
	UpdateStatus(ctx context.Context, id int32, from, to domain.PaymentStatus) error
	Delete(ctx context.Context, id int32) error
	ListByTenant(ctx context.Context, tenantID int32) ([]domain.Payment, error)
	MarkOverdue(ctx context.Context, before time.Time) ([]domain.Payment, error)
}

type WorkerPaymentRepository interface {
	Create(ctx context.Context, payment *domain.WorkerPayment) error
	GetByID(ctx context.Context, id int32) (*domain.WorkerPayment, error)
	UpdateStatus(ctx context.Context, id int32, from, to domain.PaymentStatus) error
	HasPaidBetween(ctx context.Context, tenantID, workerID int32, start, end time.Time) (bool, error)
	ListByWorker(ctx context.Context, workerID int32) ([]domain.WorkerPayment, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	GetByID(ctx context.Context, id int32) (*domain.Notification, error)
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, recipient domain.Recipient, limit, offset int32) ([]domain.Notification, int32, error)
	CountUnread(ctx context.Context, recipient domain.Recipient) (int32, error)
	MarkAsRead(ctx context.Context, id int32, recipient domain.Recipient) error
	UpdateStatus(ctx context.Context, id int32, from, to domain.NotificationStatus) error
	// ClaimUnpublished runs fn for each unpublished notification inside a
	// transaction and stamps published_on when fn succeeds.
	ClaimUnpublished(ctx context.Context, limit int, fn func(domain.Notification) error) (int, error)
}

type MaintenanceRepository interface {
	Create(ctx context.Context, req *domain.MaintenanceRequest) error
	GetByID(ctx context.Context, id int32) (*domain.MaintenanceRequest, error)
	UpdateStatus(ctx context.Context, id int32, status domain.MaintenanceStatus) error
	ListByOwner(ctx context.Context, ownerID int32) ([]domain.MaintenanceRequest, error)
	ListByTenant(ctx context.Context, tenantID int32) ([]domain.MaintenanceRequest, error)
	CreateComplaint(ctx context.Context, c *domain.Complaint) error
}

type RatingRepository interface {
	Upsert(ctx context.Context, rating *domain.Rating) error
	AverageForProperty(ctx context.Context, propertyID int32) (float64, error)
}
