package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rentease-backend/internal/domain"
	"rentease-backend/internal/service"
)

func TestPaymentService_PayWorker(t *testing.T) {
	ctx := context.Background()
	approved := []domain.WorkerBookingStatus{domain.WorkerBookingStatusApproved}

	t.Run("Success", func(t *testing.T) {
		workerPayments := new(MockWorkerPaymentRepo)
		workerBookings := new(MockWorkerBookingRepo)
		notifier := new(MockNotificationService)
		svc := service.NewPaymentService(new(MockPaymentRepo), workerPayments, workerBookings, notifier)

		workerBookings.On("ListForPair", ctx, int32(1), int32(5), approved).
			Return([]domain.WorkerBooking{{ID: 9, TenantName: "Tom", ServiceType: "plumbing"}}, nil)
		workerPayments.On("Create", ctx, mock.AnythingOfType("*domain.WorkerPayment")).Return(nil)
		notifier.On("Notify", ctx, mock.Anything).Return(nil)

		p, err := svc.PayWorker(ctx, 1, 5, 12550, "card")
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusPaid, p.Status)
		assert.NotEmpty(t, p.TransactionID)
		require.Len(t, notifier.Sent, 1)
		assert.Equal(t, "Tom paid $125.50 for plumbing", notifier.Sent[0].Message)
		assert.Equal(t, domain.RecipientWorker, notifier.Sent[0].Recipient.Type)
	})

	t.Run("Not booked", func(t *testing.T) {
		workerPayments := new(MockWorkerPaymentRepo)
		workerBookings := new(MockWorkerBookingRepo)
		svc := service.NewPaymentService(new(MockPaymentRepo), workerPayments, workerBookings, new(MockNotificationService))
		workerBookings.On("ListForPair", ctx, int32(1), int32(5), approved).Return([]domain.WorkerBooking{}, nil)

		_, err := svc.PayWorker(ctx, 1, 5, 100, "card")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		workerPayments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Validation", func(t *testing.T) {
		svc := service.NewPaymentService(new(MockPaymentRepo), new(MockWorkerPaymentRepo), new(MockWorkerBookingRepo), new(MockNotificationService))

		_, err := svc.PayWorker(ctx, 1, 5, 0, "card")
		assert.ErrorIs(t, err, domain.ErrValidation)
		_, err = svc.PayWorker(ctx, 1, 5, 100, " ")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestPaymentService_AdminActions(t *testing.T) {
	ctx := context.Background()

	t.Run("Refund paid payment", func(t *testing.T) {
		payments := new(MockPaymentRepo)
		svc := service.NewPaymentService(payments, new(MockWorkerPaymentRepo), new(MockWorkerBookingRepo), new(MockNotificationService))
		payments.On("GetByID", ctx, int32(4)).Return(&domain.Payment{ID: 4, Status: domain.PaymentStatusPaid}, nil)
		payments.On("UpdateStatus", ctx, int32(4), domain.PaymentStatusPaid, domain.PaymentStatusRefunded).Return(nil)

		p, err := svc.RefundPayment(ctx, 4)
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusRefunded, p.Status)
	})

	t.Run("Refund pending payment", func(t *testing.T) {
		payments := new(MockPaymentRepo)
		svc := service.NewPaymentService(payments, new(MockWorkerPaymentRepo), new(MockWorkerBookingRepo), new(MockNotificationService))
		payments.On("GetByID", ctx, int32(4)).Return(&domain.Payment{ID: 4, Status: domain.PaymentStatusPending}, nil)

		_, err := svc.RefundPayment(ctx, 4)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("Retry failed worker payment", func(t *testing.T) {
		workerPayments := new(MockWorkerPaymentRepo)
		svc := service.NewPaymentService(new(MockPaymentRepo), workerPayments, new(MockWorkerBookingRepo), new(MockNotificationService))
		workerPayments.On("GetByID", ctx, int32(6)).Return(&domain.WorkerPayment{ID: 6, Status: domain.PaymentStatusFailed}, nil)
		workerPayments.On("UpdateStatus", ctx, int32(6), domain.PaymentStatusFailed, domain.PaymentStatusPending).Return(nil)

		p, err := svc.RetryWorkerPayment(ctx, 6)
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusPending, p.Status)
	})

	t.Run("Retry paid worker payment", func(t *testing.T) {
		workerPayments := new(MockWorkerPaymentRepo)
		svc := service.NewPaymentService(new(MockPaymentRepo), workerPayments, new(MockWorkerBookingRepo), new(MockNotificationService))
		workerPayments.On("GetByID", ctx, int32(6)).Return(&domain.WorkerPayment{ID: 6, Status: domain.PaymentStatusPaid}, nil)

		_, err := svc.RetryWorkerPayment(ctx, 6)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestPaymentService_Jobs(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	t.Run("MarkOverdue notifies tenants", func(t *testing.T) {
		payments := new(MockPaymentRepo)
		notifier := new(MockNotificationService)
		svc := service.NewPaymentService(payments, new(MockWorkerPaymentRepo), new(MockWorkerBookingRepo), notifier)

		today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
		payments.On("MarkOverdue", ctx, today).Return([]domain.Payment{
			{ID: 1, TenantID: 2, AmountCents: 150000, DueDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		}, nil)
		notifier.On("Notify", ctx, mock.Anything).Return(nil)

		n, err := svc.MarkOverdue(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		require.Len(t, notifier.Sent, 1)
		assert.Equal(t, domain.NotificationPaymentOverdue, notifier.Sent[0].Type)
		assert.Equal(t, "Your payment of $1500.00 due 2025-06-01 is overdue", notifier.Sent[0].Message)
	})

	t.Run("Reminders skip paid cycles", func(t *testing.T) {
		workerPayments := new(MockWorkerPaymentRepo)
		workerBookings := new(MockWorkerBookingRepo)
		notifier := new(MockNotificationService)
		svc := service.NewPaymentService(new(MockPaymentRepo), workerPayments, workerBookings, notifier)

		anchor := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
		workerBookings.On("ListMonthlyEngagements", ctx).Return([]domain.WorkerBooking{
			{ID: 1, TenantID: 1, WorkerID: 5, ServiceType: "cleaning", BookingDate: anchor},
			{ID: 2, TenantID: 2, WorkerID: 5, ServiceType: "cleaning", BookingDate: anchor},
		}, nil)
		start := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
		workerPayments.On("HasPaidBetween", ctx, int32(1), int32(5), start, end).Return(true, nil)
		workerPayments.On("HasPaidBetween", ctx, int32(2), int32(5), start, end).Return(false, nil)
		notifier.On("Notify", ctx, mock.Anything).Return(nil)

		n, err := svc.SendWorkerPaymentReminders(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		require.Len(t, notifier.Sent, 1)
		assert.Equal(t, int32(2), notifier.Sent[0].Recipient.ID)
		assert.Equal(t, "Your cleaning payment for the cycle ending 2025-07-10 is due", notifier.Sent[0].Message)
	})
}
