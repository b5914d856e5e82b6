package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"rentease-backend/internal/domain"
	"rentease-backend/internal/logger"
	"rentease-backend/internal/repository"
	"rentease-backend/internal/utils"
)

type paymentService struct {
	paymentRepo       repository.PaymentRepository
	workerPaymentRepo repository.WorkerPaymentRepository
	workerBookingRepo repository.WorkerBookingRepository
	notifier          NotificationService
	now               func() time.Time
}

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	workerPaymentRepo repository.WorkerPaymentRepository,
	workerBookingRepo repository.WorkerBookingRepository,
	notifier NotificationService,
) PaymentService {
	return &paymentService{
		paymentRepo:       paymentRepo,
		workerPaymentRepo: workerPaymentRepo,
		workerBookingRepo: workerBookingRepo,
		notifier:          notifier,
		now:               time.Now,
	}
}

func (s *paymentService) PayWorker(ctx context.Context, tenantID, workerID, amountCents int32, method string) (*domain.WorkerPayment, error) {
	logger.EnterMethod("paymentService.PayWorker", "tenantID", tenantID, "workerID", workerID, "amountCents", amountCents)

	if amountCents <= 0 {
		return nil, domain.NewValidationError("amount must be greater than zero")
	}
	method = strings.TrimSpace(method)
	if method == "" {
		return nil, domain.NewValidationError("payment method is required")
	}

	approved, err := s.workerBookingRepo.ListForPair(ctx, tenantID, workerID, domain.WorkerBookingStatusApproved)
	if err != nil {
		return nil, err
	}
	if len(approved) == 0 {
		return nil, domain.NewNotFoundError("worker is not booked by you")
	}

	payment := &domain.WorkerPayment{
		TenantID:      tenantID,
		WorkerID:      workerID,
		AmountCents:   amountCents,
		PaymentDate:   s.now().UTC(),
		PaymentMethod: method,
		Status:        domain.PaymentStatusPaid,
		TransactionID: uuid.NewString(),
	}
	if err := s.workerPaymentRepo.Create(ctx, payment); err != nil {
		logger.ExitMethodWithError("paymentService.PayWorker", err, "tenantID", tenantID, "workerID", workerID)
		return nil, err
	}

	err = s.notifier.Notify(ctx, &domain.Notification{
		Recipient: domain.Recipient{Type: domain.RecipientWorker, ID: workerID},
		Type:      domain.NotificationWorkerPayment,
		Title:     "Payment Received",
		Message:   fmt.Sprintf("%s paid %s for %s", approved[0].TenantName, formatCents(amountCents), approved[0].ServiceType),
		Status:    domain.NotificationStatusInfo,
		Attributes: map[string]string{
			"transaction_id": payment.TransactionID,
		},
	})
	if err != nil {
		logger.Warn("Failed to notify worker of payment", "workerPaymentID", payment.ID, "error", err)
	}

	logger.ExitMethod("paymentService.PayWorker", "workerPaymentID", payment.ID, "transactionID", payment.TransactionID)
	return payment, nil
}

func (s *paymentService) RefundPayment(ctx context.Context, paymentID int32) (*domain.Payment, error) {
	p, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if p.Status != domain.PaymentStatusPaid {
		return nil, domain.NewConflictError("only paid payments can be refunded")
	}
	if err := s.paymentRepo.UpdateStatus(ctx, paymentID, domain.PaymentStatusPaid, domain.PaymentStatusRefunded); err != nil {
		return nil, err
	}
	p.Status = domain.PaymentStatusRefunded
	logger.Info("Payment refunded", "paymentID", paymentID)
	return p, nil
}

func (s *paymentService) RetryWorkerPayment(ctx context.Context, paymentID int32) (*domain.WorkerPayment, error) {
	p, err := s.workerPaymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if p.Status != domain.PaymentStatusFailed {
		return nil, domain.NewConflictError("only failed payments can be retried")
	}
	if err := s.workerPaymentRepo.UpdateStatus(ctx, paymentID, domain.PaymentStatusFailed, domain.PaymentStatusPending); err != nil {
		return nil, err
	}
	p.Status = domain.PaymentStatusPending
	return p, nil
}

// MarkOverdue flips rent payments past their due date to OVERDUE and tells
// the tenants.
func (s *paymentService) MarkOverdue(ctx context.Context, now time.Time) (int, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	overdue, err := s.paymentRepo.MarkOverdue(ctx, today)
	if err != nil {
		return 0, fmt.Errorf("failed to mark overdue payments: %w", err)
	}
	for _, p := range overdue {
		err := s.notifier.Notify(ctx, &domain.Notification{
			Recipient: domain.Recipient{Type: domain.RecipientTenant, ID: p.TenantID},
			Type:      domain.NotificationPaymentOverdue,
			Title:     "Payment Overdue",
			Message:   fmt.Sprintf("Your payment of %s due %s is overdue", formatCents(p.AmountCents), p.DueDate.Format("2006-01-02")),
			Status:    domain.NotificationStatusInfo,
			BookingID: p.BookingID,
		})
		if err != nil {
			logger.Error("Failed to notify tenant of overdue payment", "paymentID", p.ID, "error", err)
		}
	}
	return len(overdue), nil
}

// SendWorkerPaymentReminders reminds tenants of monthly workers that have no
// payment recorded in the current billing cycle.
func (s *paymentService) SendWorkerPaymentReminders(ctx context.Context, now time.Time) (int, error) {
	engagements, err := s.workerBookingRepo.ListMonthlyEngagements(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list monthly engagements: %w", err)
	}

	sent := 0
	for _, e := range engagements {
		start, end := utils.BillingCycle(e.BookingDate, now)
		paid, err := s.workerPaymentRepo.HasPaidBetween(ctx, e.TenantID, e.WorkerID, start, end)
		if err != nil {
			logger.Error("Failed to check worker payment", "tenantID", e.TenantID, "workerID", e.WorkerID, "error", err)
			continue
		}
		if paid {
			continue
		}
		err = s.notifier.Notify(ctx, &domain.Notification{
			Recipient:       domain.Recipient{Type: domain.RecipientTenant, ID: e.TenantID},
			Type:            domain.NotificationPaymentReminder,
			Title:           "Payment Reminder",
			Message:         fmt.Sprintf("Your %s payment for the cycle ending %s is due", e.ServiceType, end.Format("2006-01-02")),
			Status:          domain.NotificationStatusInfo,
			WorkerBookingID: &e.ID,
			Attributes:      map[string]string{"worker_id": fmt.Sprintf("%d", e.WorkerID)},
		})
		if err != nil {
			logger.Error("Failed to send payment reminder", "tenantID", e.TenantID, "workerID", e.WorkerID, "error", err)
			continue
		}
		sent++
	}
	return sent, nil
}

func formatCents(cents int32) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
