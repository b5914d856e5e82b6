package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"rentease-backend/internal/domain"
	"rentease-backend/internal/security"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockUserRepo) UpdateProfile(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) UpdatePassword(ctx context.Context, id int32, hash string) error {
	args := m.Called(ctx, id, hash)
	return args.Error(0)
}
func (m *MockUserRepo) SetStatus(ctx context.Context, id int32, status domain.UserStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockUserRepo) HasAdmin(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}
func (m *MockUserRepo) AddRentalHistory(ctx context.Context, h *domain.RentalHistory) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}
func (m *MockUserRepo) DeleteRentalHistory(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockUserRepo) HasRented(ctx context.Context, tenantID, propertyID int32) (bool, error) {
	args := m.Called(ctx, tenantID, propertyID)
	return args.Bool(0), args.Error(1)
}

// MockWorkerRepo
type MockWorkerRepo struct {
	mock.Mock
}

func (m *MockWorkerRepo) CreateProfile(ctx context.Context, worker *domain.Worker) error {
	args := m.Called(ctx, worker)
	return args.Error(0)
}
func (m *MockWorkerRepo) GetByID(ctx context.Context, id int32) (*domain.Worker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Worker), args.Error(1)
}
func (m *MockWorkerRepo) UpdateProfile(ctx context.Context, worker *domain.Worker) error {
	args := m.Called(ctx, worker)
	return args.Error(0)
}
func (m *MockWorkerRepo) SetServiceStatus(ctx context.Context, id int32, status domain.ServiceStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockWorkerRepo) ListAvailable(ctx context.Context, serviceType, location string) ([]domain.Worker, error) {
	args := m.Called(ctx, serviceType, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Worker), args.Error(1)
}

// MockPropertyRepo
type MockPropertyRepo struct {
	mock.Mock
}

func (m *MockPropertyRepo) Create(ctx context.Context, p *domain.Property) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPropertyRepo) GetByID(ctx context.Context, id int32) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}
func (m *MockPropertyRepo) Update(ctx context.Context, p *domain.Property) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPropertyRepo) SetRentalState(ctx context.Context, id int32, st domain.RentalState) error {
	args := m.Called(ctx, id, st)
	return args.Error(0)
}
func (m *MockPropertyRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockPropertyRepo) ListByOwner(ctx context.Context, ownerID int32) ([]domain.Property, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Property), args.Error(1)
}
func (m *MockPropertyRepo) ListByTenant(ctx context.Context, tenantID int32) ([]domain.Property, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Property), args.Error(1)
}
func (m *MockPropertyRepo) Search(ctx context.Context, maxPriceCents int32, page, pageSize int32) ([]domain.Property, int32, error) {
	args := m.Called(ctx, maxPriceCents, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Property), args.Get(1).(int32), args.Error(2)
}
func (m *MockPropertyRepo) CountRentedByOwner(ctx context.Context, ownerID int32) (int32, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockPropertyRepo) SetAverageRating(ctx context.Context, id int32, avg float64) error {
	args := m.Called(ctx, id, avg)
	return args.Error(0)
}
func (m *MockPropertyRepo) ToggleSaved(ctx context.Context, tenantID, propertyID int32) (bool, error) {
	args := m.Called(ctx, tenantID, propertyID)
	return args.Bool(0), args.Error(1)
}

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) UpdateStatus(ctx context.Context, id int32, from, to domain.BookingStatus) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}
func (m *MockBookingRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockBookingRepo) ListByTenant(ctx context.Context, tenantID int32) ([]domain.Booking, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByOwner(ctx context.Context, ownerID int32, status domain.BookingStatus) ([]domain.Booking, error) {
	args := m.Called(ctx, ownerID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) HasPending(ctx context.Context, tenantID, propertyID int32) (bool, error) {
	args := m.Called(ctx, tenantID, propertyID)
	return args.Bool(0), args.Error(1)
}

// MockWorkerBookingRepo
type MockWorkerBookingRepo struct {
	mock.Mock
}

func (m *MockWorkerBookingRepo) Create(ctx context.Context, b *domain.WorkerBooking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockWorkerBookingRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockWorkerBookingRepo) Resolve(ctx context.Context, id, workerID int32, status domain.WorkerBookingStatus) (*domain.WorkerBooking, domain.WorkerBookingStatus, error) {
	args := m.Called(ctx, id, workerID, status)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.WorkerBooking), args.Get(1).(domain.WorkerBookingStatus), args.Error(2)
}
func (m *MockWorkerBookingRepo) SetStatus(ctx context.Context, id int32, status domain.WorkerBookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockWorkerBookingRepo) ListForPair(ctx context.Context, tenantID, workerID int32, statuses ...domain.WorkerBookingStatus) ([]domain.WorkerBooking, error) {
	args := m.Called(ctx, tenantID, workerID, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkerBooking), args.Error(1)
}
func (m *MockWorkerBookingRepo) Debook(ctx context.Context, tenantID, workerID int32, at time.Time) ([]int32, error) {
	args := m.Called(ctx, tenantID, workerID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int32), args.Error(1)
}
func (m *MockWorkerBookingRepo) Restore(ctx context.Context, ids []int32, status domain.WorkerBookingStatus) error {
	args := m.Called(ctx, ids, status)
	return args.Error(0)
}
func (m *MockWorkerBookingRepo) ListByWorker(ctx context.Context, workerID int32) ([]domain.WorkerBooking, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkerBooking), args.Error(1)
}
func (m *MockWorkerBookingRepo) ListWorkersForTenant(ctx context.Context, tenantID int32) ([]domain.Worker, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Worker), args.Error(1)
}
func (m *MockWorkerBookingRepo) ListClientsForWorker(ctx context.Context, workerID int32) ([]domain.User, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockWorkerBookingRepo) ListMonthlyEngagements(ctx context.Context) ([]domain.WorkerBooking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkerBooking), args.Error(1)
}

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPaymentRepo) GetByID(ctx context.Context, id int32) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) UpdateStatus(ctx context.Context, id int32, from, to domain.PaymentStatus) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}
func (m *MockPaymentRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockPaymentRepo) ListByTenant(ctx context.Context, tenantID int32) ([]domain.Payment, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) MarkOverdue(ctx context.Context, before time.Time) ([]domain.Payment, error) {
	args := m.Called(ctx, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

// MockWorkerPaymentRepo
type MockWorkerPaymentRepo struct {
	mock.Mock
}

func (m *MockWorkerPaymentRepo) Create(ctx context.Context, p *domain.WorkerPayment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockWorkerPaymentRepo) GetByID(ctx context.Context, id int32) (*domain.WorkerPayment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkerPayment), args.Error(1)
}
func (m *MockWorkerPaymentRepo) UpdateStatus(ctx context.Context, id int32, from, to domain.PaymentStatus) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}
func (m *MockWorkerPaymentRepo) HasPaidBetween(ctx context.Context, tenantID, workerID int32, start, end time.Time) (bool, error) {
	args := m.Called(ctx, tenantID, workerID, start, end)
	return args.Bool(0), args.Error(1)
}
func (m *MockWorkerPaymentRepo) ListByWorker(ctx context.Context, workerID int32) ([]domain.WorkerPayment, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkerPayment), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
func (m *MockNotificationRepo) GetByID(ctx context.Context, id int32) (*domain.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}
func (m *MockNotificationRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, recipient domain.Recipient, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, recipient, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) CountUnread(ctx context.Context, recipient domain.Recipient) (int32, error) {
	args := m.Called(ctx, recipient)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id int32, recipient domain.Recipient) error {
	args := m.Called(ctx, id, recipient)
	return args.Error(0)
}
func (m *MockNotificationRepo) UpdateStatus(ctx context.Context, id int32, from, to domain.NotificationStatus) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}

// ClaimUnpublished feeds the configured notifications to fn and stops at the
// first failure, like the postgres implementation.
func (m *MockNotificationRepo) ClaimUnpublished(ctx context.Context, limit int, fn func(domain.Notification) error) (int, error) {
	args := m.Called(ctx, limit)
	notes, _ := args.Get(0).([]domain.Notification)
	published := 0
	for _, n := range notes {
		if err := fn(n); err != nil {
			break
		}
		published++
	}
	return published, args.Error(1)
}

// MockMaintenanceRepo
type MockMaintenanceRepo struct {
	mock.Mock
}

func (m *MockMaintenanceRepo) Create(ctx context.Context, req *domain.MaintenanceRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockMaintenanceRepo) GetByID(ctx context.Context, id int32) (*domain.MaintenanceRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MaintenanceRequest), args.Error(1)
}
func (m *MockMaintenanceRepo) UpdateStatus(ctx context.Context, id int32, status domain.MaintenanceStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockMaintenanceRepo) ListByOwner(ctx context.Context, ownerID int32) ([]domain.MaintenanceRequest, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MaintenanceRequest), args.Error(1)
}
func (m *MockMaintenanceRepo) ListByTenant(ctx context.Context, tenantID int32) ([]domain.MaintenanceRequest, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MaintenanceRequest), args.Error(1)
}
func (m *MockMaintenanceRepo) CreateComplaint(ctx context.Context, c *domain.Complaint) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

// MockRatingRepo
type MockRatingRepo struct {
	mock.Mock
}

func (m *MockRatingRepo) Upsert(ctx context.Context, r *domain.Rating) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRatingRepo) AverageForProperty(ctx context.Context, propertyID int32) (float64, error) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).(float64), args.Error(1)
}

// MockNotificationService records every notification it is asked to send.
type MockNotificationService struct {
	mock.Mock
	Sent []*domain.Notification
}

func (m *MockNotificationService) Notify(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	if args.Error(0) == nil {
		m.Sent = append(m.Sent, note)
	}
	return args.Error(0)
}
func (m *MockNotificationService) ListForRecipient(ctx context.Context, recipient domain.Recipient, page, pageSize int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, recipient, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationService) MarkRead(ctx context.Context, notificationID int32, recipient domain.Recipient) error {
	args := m.Called(ctx, notificationID, recipient)
	return args.Error(0)
}
func (m *MockNotificationService) MarkComplete(ctx context.Context, notificationID int32, actor domain.Recipient) error {
	args := m.Called(ctx, notificationID, actor)
	return args.Error(0)
}
func (m *MockNotificationService) CountUnread(ctx context.Context, recipient domain.Recipient) (int32, error) {
	args := m.Called(ctx, recipient)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockNotificationService) RelayPending(ctx context.Context, batch int) (int, error) {
	args := m.Called(ctx, batch)
	return args.Int(0), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendNotificationEmail(ctx context.Context, toEmail, toName, subject, body string) error {
	args := m.Called(ctx, toEmail, toName, subject, body)
	return args.Error(0)
}

// MockEventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishNotification(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

// MockSessionIssuer
type MockSessionIssuer struct {
	mock.Mock
}

func (m *MockSessionIssuer) Start(ctx context.Context, userID int32, userType, name, email string) (string, error) {
	args := m.Called(ctx, userID, userType, name, email)
	return args.String(0), args.Error(1)
}
func (m *MockSessionIssuer) End(ctx context.Context, claims *security.SessionClaims) error {
	args := m.Called(ctx, claims)
	return args.Error(0)
}
func (m *MockSessionIssuer) RevokeUser(ctx context.Context, userID int32) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
