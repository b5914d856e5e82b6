package service

import (
	"context"

	"rentease-backend/internal/domain"
	"rentease-backend/internal/repository"
)

type dashboardService struct {
	propertyRepo      repository.PropertyRepository
	bookingRepo       repository.BookingRepository
	paymentRepo       repository.PaymentRepository
	workerBookingRepo repository.WorkerBookingRepository
	maintenanceRepo   repository.MaintenanceRepository
	noteRepo          repository.NotificationRepository
}

func NewDashboardService(
	propertyRepo repository.PropertyRepository,
	bookingRepo repository.BookingRepository,
	paymentRepo repository.PaymentRepository,
	workerBookingRepo repository.WorkerBookingRepository,
	maintenanceRepo repository.MaintenanceRepository,
	noteRepo repository.NotificationRepository,
) DashboardService {
	return &dashboardService{
		propertyRepo:      propertyRepo,
		bookingRepo:       bookingRepo,
		paymentRepo:       paymentRepo,
		workerBookingRepo: workerBookingRepo,
		maintenanceRepo:   maintenanceRepo,
		noteRepo:          noteRepo,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context, userID int32, userType domain.UserType) (*domain.Dashboard, error) {
	d := &domain.Dashboard{UserType: userType}
	var err error

	switch userType {
	case domain.UserTypeOwner:
		if d.Properties, err = s.propertyRepo.ListByOwner(ctx, userID); err != nil {
			return nil, err
		}
		if d.PendingRequests, err = s.bookingRepo.ListByOwner(ctx, userID, domain.BookingStatusPending); err != nil {
			return nil, err
		}
		if d.MaintenanceRequests, err = s.maintenanceRepo.ListByOwner(ctx, userID); err != nil {
			return nil, err
		}
	case domain.UserTypeTenant:
		if d.Bookings, err = s.bookingRepo.ListByTenant(ctx, userID); err != nil {
			return nil, err
		}
		if d.Properties, err = s.propertyRepo.ListByTenant(ctx, userID); err != nil {
			return nil, err
		}
		if d.Payments, err = s.paymentRepo.ListByTenant(ctx, userID); err != nil {
			return nil, err
		}
		if d.Workers, err = s.workerBookingRepo.ListWorkersForTenant(ctx, userID); err != nil {
			return nil, err
		}
		if d.MaintenanceRequests, err = s.maintenanceRepo.ListByTenant(ctx, userID); err != nil {
			return nil, err
		}
	case domain.UserTypeWorker:
		if d.WorkerBookings, err = s.workerBookingRepo.ListByWorker(ctx, userID); err != nil {
			return nil, err
		}
		if d.Clients, err = s.workerBookingRepo.ListClientsForWorker(ctx, userID); err != nil {
			return nil, err
		}
	case domain.UserTypeAdmin:
	default:
		return nil, domain.NewValidationError("unknown user type %q", userType)
	}

	recipient := domain.Recipient{Type: domain.RecipientType(userType), ID: userID}
	if d.UnreadNotifications, err = s.noteRepo.CountUnread(ctx, recipient); err != nil {
		return nil, err
	}
	return d, nil
}
