package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rentease-backend/internal/domain"
	"rentease-backend/internal/logger"
	"rentease-backend/internal/repository"
	"rentease-backend/internal/utils"
)

type workerBookingService struct {
	bookingRepo repository.WorkerBookingRepository
	workerRepo  repository.WorkerRepository
	userRepo    repository.UserRepository
	paymentRepo repository.WorkerPaymentRepository
	notifier    NotificationService
	now         func() time.Time
}

func NewWorkerBookingService(
	bookingRepo repository.WorkerBookingRepository,
	workerRepo repository.WorkerRepository,
	userRepo repository.UserRepository,
	paymentRepo repository.WorkerPaymentRepository,
	notifier NotificationService,
) WorkerBookingService {
	return &workerBookingService{
		bookingRepo: bookingRepo,
		workerRepo:  workerRepo,
		userRepo:    userRepo,
		paymentRepo: paymentRepo,
		notifier:    notifier,
		now:         time.Now,
	}
}

func (s *workerBookingService) RequestWorker(ctx context.Context, tenantID, workerID int32, serviceType string) (*domain.WorkerBooking, error) {
	logger.EnterMethod("workerBookingService.RequestWorker", "tenantID", tenantID, "workerID", workerID, "serviceType", serviceType)

	serviceType = strings.TrimSpace(serviceType)
	if serviceType == "" {
		return nil, domain.NewValidationError("service type is required")
	}

	worker, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		return nil, err
	}
	if worker.ServiceStatus != domain.ServiceStatusAvailable {
		return nil, domain.NewConflictError("worker is not available")
	}
	tenant, err := s.userRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	open, err := s.bookingRepo.ListForPair(ctx, tenantID, workerID, domain.WorkerBookingStatusApproved, domain.WorkerBookingStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing bookings: %w", err)
	}
	if len(open) > 0 {
		if open[0].Status == domain.WorkerBookingStatusApproved {
			return nil, domain.NewConflictError("worker is already booked by you")
		}
		return nil, domain.NewConflictError("you already have a pending request for this worker")
	}

	booking := &domain.WorkerBooking{
		TenantID:      tenantID,
		WorkerID:      workerID,
		ServiceType:   serviceType,
		Status:        domain.WorkerBookingStatusPending,
		BookingDate:   s.now().UTC(),
		TenantName:    tenant.Name,
		TenantAddress: tenant.Address,
	}

	err = newSaga("request-worker").
		step("create worker booking",
			func(ctx context.Context) error { return s.bookingRepo.Create(ctx, booking) },
			func(ctx context.Context) error { return s.bookingRepo.Delete(ctx, booking.ID) }).
		step("notify worker",
			func(ctx context.Context) error {
				return s.notifier.Notify(ctx, &domain.Notification{
					Recipient:       domain.Recipient{Type: domain.RecipientWorker, ID: worker.ID},
					Type:            domain.NotificationWorkerBookingRequest,
					Title:           "New Service Request",
					Message:         fmt.Sprintf("%s requested your %s service", tenant.Name, serviceType),
					Status:          domain.NotificationStatusPending,
					WorkerBookingID: &booking.ID,
					Attributes:      map[string]string{"tenant_address": tenant.Address},
				})
			}, nil).
		run(ctx)
	if err != nil {
		logger.ExitMethodWithError("workerBookingService.RequestWorker", err, "tenantID", tenantID, "workerID", workerID)
		return nil, err
	}

	logger.ExitMethod("workerBookingService.RequestWorker", "workerBookingID", booking.ID)
	return booking, nil
}

func (s *workerBookingService) ResolveWorkerBooking(ctx context.Context, bookingID, workerID int32, status domain.WorkerBookingStatus) (*domain.WorkerBooking, error) {
	logger.EnterMethod("workerBookingService.ResolveWorkerBooking", "workerBookingID", bookingID, "workerID", workerID, "status", status)

	if status != domain.WorkerBookingStatusApproved && status != domain.WorkerBookingStatusDeclined {
		return nil, domain.NewValidationError("invalid status %q", status)
	}

	booking, previous, err := s.bookingRepo.Resolve(ctx, bookingID, workerID, status)
	if err != nil {
		logger.ExitMethodWithError("workerBookingService.ResolveWorkerBooking", err, "workerBookingID", bookingID)
		return nil, err
	}
	if previous == status {
		logger.ExitMethod("workerBookingService.ResolveWorkerBooking", "workerBookingID", bookingID, "unchanged", true)
		return booking, nil
	}

	note := &domain.Notification{
		Recipient:       domain.Recipient{Type: domain.RecipientTenant, ID: booking.TenantID},
		Status:          domain.NotificationStatusInfo,
		WorkerBookingID: &booking.ID,
	}
	if status == domain.WorkerBookingStatusApproved {
		note.Type = domain.NotificationWorkerBookingApproved
		note.Title = "Service Request Approved"
		note.Message = fmt.Sprintf("Your %s request has been approved", booking.ServiceType)
	} else {
		note.Type = domain.NotificationWorkerBookingDeclined
		note.Title = "Service Request Declined"
		note.Message = fmt.Sprintf("Your %s request has been declined", booking.ServiceType)
	}

	if err := s.notifier.Notify(ctx, note); err != nil {
		if rerr := s.bookingRepo.SetStatus(context.WithoutCancel(ctx), booking.ID, previous); rerr != nil {
			logger.ErrorWithStack("Failed to restore worker booking status", rerr, "workerBookingID", booking.ID, "status", previous)
		}
		logger.ExitMethodWithError("workerBookingService.ResolveWorkerBooking", err, "workerBookingID", bookingID)
		return nil, err
	}

	logger.ExitMethod("workerBookingService.ResolveWorkerBooking", "workerBookingID", bookingID, "status", status)
	return booking, nil
}

func (s *workerBookingService) DebookWorker(ctx context.Context, tenantID, workerID int32) error {
	logger.EnterMethod("workerBookingService.DebookWorker", "tenantID", tenantID, "workerID", workerID)

	approved, err := s.bookingRepo.ListForPair(ctx, tenantID, workerID, domain.WorkerBookingStatusApproved)
	if err != nil {
		return err
	}
	if len(approved) == 0 {
		return domain.NewNotFoundError("worker is not booked by you")
	}
	worker, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		return err
	}

	now := s.now().UTC()
	if worker.RateUnit == domain.RateUnitMonthly {
		// approved is oldest first, so the first booking anchors the cycle.
		start, end := utils.BillingCycle(approved[0].BookingDate, now)
		paid, err := s.paymentRepo.HasPaidBetween(ctx, tenantID, workerID, start, end)
		if err != nil {
			return fmt.Errorf("failed to check worker payments: %w", err)
		}
		if !paid {
			err := domain.NewPaymentPendingError("payment for the current billing cycle (%s to %s) is pending",
				start.Format("2006-01-02"), end.Format("2006-01-02"))
			logger.ExitMethodWithError("workerBookingService.DebookWorker", err, "tenantID", tenantID, "workerID", workerID)
			return err
		}
	}

	var debooked []int32
	err = newSaga("debook-worker").
		step("debook",
			func(ctx context.Context) error {
				ids, err := s.bookingRepo.Debook(ctx, tenantID, workerID, now)
				debooked = ids
				return err
			},
			func(ctx context.Context) error {
				return s.bookingRepo.Restore(ctx, debooked, domain.WorkerBookingStatusApproved)
			}).
		step("notify worker",
			func(ctx context.Context) error {
				return s.notifier.Notify(ctx, &domain.Notification{
					Recipient: domain.Recipient{Type: domain.RecipientWorker, ID: workerID},
					Type:      domain.NotificationWorkerDebooked,
					Title:     "Service Ended",
					Message:   fmt.Sprintf("%s has ended your %s service", approved[0].TenantName, approved[0].ServiceType),
					Status:    domain.NotificationStatusInfo,
				})
			}, nil).
		run(ctx)
	if err != nil {
		logger.ExitMethodWithError("workerBookingService.DebookWorker", err, "tenantID", tenantID, "workerID", workerID)
		return err
	}

	logger.ExitMethod("workerBookingService.DebookWorker", "tenantID", tenantID, "workerID", workerID, "debooked", len(debooked))
	return nil
}

func (s *workerBookingService) ListWorkerBookings(ctx context.Context, workerID int32) ([]domain.WorkerBooking, error) {
	return s.bookingRepo.ListByWorker(ctx, workerID)
}

func (s *workerBookingService) ListTenantWorkers(ctx context.Context, tenantID int32) ([]domain.Worker, error) {
	return s.bookingRepo.ListWorkersForTenant(ctx, tenantID)
}

func (s *workerBookingService) ListWorkerClients(ctx context.Context, workerID int32) ([]domain.User, error) {
	return s.bookingRepo.ListClientsForWorker(ctx, workerID)
}
