package http

import (
	"context"
	"errors"

	"github.com/stretchr/testify/mock"

	"rentease-backend/internal/domain"
	"rentease-backend/internal/security"
)

// fakeSessions resolves cookie values from a fixed table.
type fakeSessions map[string]*security.SessionClaims

func (f fakeSessions) Resolve(ctx context.Context, token string) (*security.SessionClaims, error) {
	if c, ok := f[token]; ok {
		return c, nil
	}
	return nil, errors.New("invalid token")
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, userType domain.UserType, name, email, phone, address, password string) (*domain.User, error) {
	args := m.Called(ctx, userType, name, email, phone, address, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}
func (m *MockAuthService) Logout(ctx context.Context, claims *security.SessionClaims) error {
	args := m.Called(ctx, claims)
	return args.Error(0)
}
func (m *MockAuthService) ChangePassword(ctx context.Context, userID int32, currentPassword, newPassword string) error {
	args := m.Called(ctx, userID, currentPassword, newPassword)
	return args.Error(0)
}
func (m *MockAuthService) EnsureAdmin(ctx context.Context, name, email, password string) (*domain.User, bool, error) {
	args := m.Called(ctx, name, email, password)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.User), args.Bool(1), args.Error(2)
}

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) GetBookingForm(ctx context.Context, tenantID, propertyID int32) (*domain.Property, error) {
	args := m.Called(ctx, tenantID, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}
func (m *MockBookingService) RequestBooking(ctx context.Context, tenantID, propertyID int32, startDate string, leaseMonths int, comments string) (*domain.Booking, error) {
	args := m.Called(ctx, tenantID, propertyID, startDate, leaseMonths, comments)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) ResolveBookingNotification(ctx context.Context, ownerID, notificationID int32, action domain.BookingAction, reason string) (*domain.Booking, error) {
	args := m.Called(ctx, ownerID, notificationID, action, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) AdminApproveBooking(ctx context.Context, bookingID int32) (*domain.Booking, *domain.Payment, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Booking), args.Get(1).(*domain.Payment), args.Error(2)
}
func (m *MockBookingService) AdminRejectBooking(ctx context.Context, bookingID int32, reason string) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) ListTenantBookings(ctx context.Context, tenantID int32) ([]domain.Booking, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingService) ListOwnerBookings(ctx context.Context, ownerID int32, status domain.BookingStatus) ([]domain.Booking, error) {
	args := m.Called(ctx, ownerID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockWorkerBookingService struct {
	mock.Mock
}

func (m *MockWorkerBookingService) RequestWorker(ctx context.Context, tenantID, workerID int32, serviceType string) (*domain.WorkerBooking, error) {
	args := m.Called(ctx, tenantID, workerID, serviceType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkerBooking), args.Error(1)
}
func (m *MockWorkerBookingService) ResolveWorkerBooking(ctx context.Context, bookingID, workerID int32, status domain.WorkerBookingStatus) (*domain.WorkerBooking, error) {
	args := m.Called(ctx, bookingID, workerID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkerBooking), args.Error(1)
}
func (m *MockWorkerBookingService) DebookWorker(ctx context.Context, tenantID, workerID int32) error {
	args := m.Called(ctx, tenantID, workerID)
	return args.Error(0)
}
func (m *MockWorkerBookingService) ListWorkerBookings(ctx context.Context, workerID int32) ([]domain.WorkerBooking, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkerBooking), args.Error(1)
}
func (m *MockWorkerBookingService) ListTenantWorkers(ctx context.Context, tenantID int32) ([]domain.Worker, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Worker), args.Error(1)
}
func (m *MockWorkerBookingService) ListWorkerClients(ctx context.Context, workerID int32) ([]domain.User, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Notify(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
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

type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) SetUserStatus(ctx context.Context, userID int32, status domain.UserStatus) (*domain.User, error) {
	args := m.Called(ctx, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockAdminService) DeleteUser(ctx context.Context, userID int32) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, userID int32, userType domain.UserType) error {
	args := m.Called(ctx, userID, userType)
	return args.Error(0)
}
func (m *MockAccountService) UpdateProfile(ctx context.Context, userID int32, name, phone, address string) (*domain.User, error) {
	args := m.Called(ctx, userID, name, phone, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockMaintenanceService struct {
	mock.Mock
}

func (m *MockMaintenanceService) SubmitRequest(ctx context.Context, tenantID, propertyID int32, description string) (*domain.MaintenanceRequest, error) {
	args := m.Called(ctx, tenantID, propertyID, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MaintenanceRequest), args.Error(1)
}
func (m *MockMaintenanceService) UpdateStatus(ctx context.Context, ownerID, requestID int32, status domain.MaintenanceStatus) (*domain.MaintenanceRequest, error) {
	args := m.Called(ctx, ownerID, requestID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MaintenanceRequest), args.Error(1)
}
func (m *MockMaintenanceService) SubmitComplaint(ctx context.Context, tenantID, propertyID int32, subject, description string) (*domain.Complaint, error) {
	args := m.Called(ctx, tenantID, propertyID, subject, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Complaint), args.Error(1)
}
func (m *MockMaintenanceService) AdminComplete(ctx context.Context, requestID int32) (*domain.MaintenanceRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MaintenanceRequest), args.Error(1)
}
