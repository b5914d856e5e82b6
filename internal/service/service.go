package service

import (
	"context"
	"time"

	"rentease-backend/internal/domain"
	"rentease-backend/internal/security"
)

type AuthService interface {
	Register(ctx context.Context, userType domain.UserType, name, email, phone, address, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error) // user, session token
	Logout(ctx context.Context, claims *security.SessionClaims) error
	ChangePassword(ctx context.Context, userID int32, currentPassword, newPassword string) error
	// EnsureAdmin creates the admin account unless one exists. The bool
	// reports whether a new account was created.
	EnsureAdmin(ctx context.Context, name, email, password string) (*domain.User, bool, error)
}

// SessionIssuer starts and ends server-side sessions.
type SessionIssuer interface {
	Start(ctx context.Context, userID int32, userType, name, email string) (string, error)
	End(ctx context.Context, claims *security.SessionClaims) error
	RevokeUser(ctx context.Context, userID int32) error
}

type PropertyService interface {
	ListProperty(ctx context.Context, ownerID int32, property *domain.Property) error
	GetProperty(ctx context.Context, viewerID, propertyID int32) (*domain.Property, error)
	UpdateProperty(ctx context.Context, ownerID int32, property *domain.Property) (*domain.Property, error)
	DeleteProperty(ctx context.Context, ownerID, propertyID int32) error
	SearchProperties(ctx context.Context, maxPriceCents int32, page, pageSize int32) ([]domain.Property, int32, error)
	ListOwnerProperties(ctx context.Context, ownerID int32) ([]domain.Property, error)
	VerifyProperty(ctx context.Context, adminID, propertyID int32, approve bool) (*domain.Property, error)
}

type BookingService interface {
	GetBookingForm(ctx context.Context, tenantID, propertyID int32) (*domain.Property, error)
	RequestBooking(ctx context.Context, tenantID, propertyID int32, startDate string, leaseMonths int, comments string) (*domain.Booking, error)
	ResolveBookingNotification(ctx context.Context, ownerID, notificationID int32, action domain.BookingAction, reason string) (*domain.Booking, error)
	AdminApproveBooking(ctx context.Context, bookingID int32) (*domain.Booking, *domain.Payment, error)
	AdminRejectBooking(ctx context.Context, bookingID int32, reason string) (*domain.Booking, error)
	ListTenantBookings(ctx context.Context, tenantID int32) ([]domain.Booking, error)
	ListOwnerBookings(ctx context.Context, ownerID int32, status domain.BookingStatus) ([]domain.Booking, error)
}

type WorkerService interface {
	GetWorker(ctx context.Context, workerID int32) (*domain.Worker, error)
	UpdateProfile(ctx context.Context, worker *domain.Worker) (*domain.Worker, error)
	ToggleAvailability(ctx context.Context, workerID int32) (domain.ServiceStatus, error)
	ListAvailable(ctx context.Context, serviceType, location string) ([]domain.Worker, error)
}

type WorkerBookingService interface {
	RequestWorker(ctx context.Context, tenantID, workerID int32, serviceType string) (*domain.WorkerBooking, error)
	ResolveWorkerBooking(ctx context.Context, bookingID, workerID int32, status domain.WorkerBookingStatus) (*domain.WorkerBooking, error)
	DebookWorker(ctx context.Context, tenantID, workerID int32) error
	ListWorkerBookings(ctx context.Context, workerID int32) ([]domain.WorkerBooking, error)
	ListTenantWorkers(ctx context.Context, tenantID int32) ([]domain.Worker, error)
	ListWorkerClients(ctx context.Context, workerID int32) ([]domain.User, error)
}

type NotificationService interface {
	Notify(ctx context.Context, note *domain.Notification) error
	ListForRecipient(ctx context.Context, recipient domain.Recipient, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkRead(ctx context.Context, notificationID int32, recipient domain.Recipient) error
	MarkComplete(ctx context.Context, notificationID int32, actor domain.Recipient) error
	CountUnread(ctx context.Context, recipient domain.Recipient) (int32, error)
	RelayPending(ctx context.Context, batch int) (int, error)
}

type PaymentService interface {
	PayWorker(ctx context.Context, tenantID, workerID, amountCents int32, method string) (*domain.WorkerPayment, error)
	RefundPayment(ctx context.Context, paymentID int32) (*domain.Payment, error)
	RetryWorkerPayment(ctx context.Context, paymentID int32) (*domain.WorkerPayment, error)
	MarkOverdue(ctx context.Context, now time.Time) (int, error)
	SendWorkerPaymentReminders(ctx context.Context, now time.Time) (int, error)
}

type MaintenanceService interface {
	SubmitRequest(ctx context.Context, tenantID, propertyID int32, description string) (*domain.MaintenanceRequest, error)
	UpdateStatus(ctx context.Context, ownerID, requestID int32, status domain.MaintenanceStatus) (*domain.MaintenanceRequest, error)
	SubmitComplaint(ctx context.Context, tenantID, propertyID int32, subject, description string) (*domain.Complaint, error)
	AdminComplete(ctx context.Context, requestID int32) (*domain.MaintenanceRequest, error)
}

type ReviewService interface {
	SubmitReview(ctx context.Context, tenantID, propertyID, score int32, comment string) (*domain.Rating, error)
	ToggleSavedProperty(ctx context.Context, tenantID, propertyID int32) (bool, error) // saved after toggle
}

type AccountService interface {
	DeleteAccount(ctx context.Context, userID int32, userType domain.UserType) error
	UpdateProfile(ctx context.Context, userID int32, name, phone, address string) (*domain.User, error)
}

// AdminService moderates user accounts.
type AdminService interface {
	SetUserStatus(ctx context.Context, userID int32, status domain.UserStatus) (*domain.User, error)
	DeleteUser(ctx context.Context, userID int32) error
}

type DashboardService interface {
	GetDashboard(ctx context.Context, userID int32, userType domain.UserType) (*domain.Dashboard, error)
}

type EmailService interface {
	SendNotificationEmail(ctx context.Context, toEmail, toName, subject, body string) error
}

// EventPublisher delivers committed notifications to the message broker.
type EventPublisher interface {
	PublishNotification(ctx context.Context, note *domain.Notification) error
}
