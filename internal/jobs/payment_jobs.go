package jobs

import (
	"context"

	"rentease-backend/internal/logger"
)

// MarkOverduePayments flips unpaid rent past its due date to OVERDUE
func (jr *JobRunner) MarkOverduePayments() {
	jr.runWithRecovery(JobMarkOverduePayments, func(ctx context.Context) error {
		count, err := jr.services.Payment.MarkOverdue(ctx, jr.now())
		if err != nil {
			return err
		}
		logger.Info("Marked payments as overdue", "count", count)
		return nil
	})
}

// SendWorkerPaymentReminders reminds tenants of monthly workers with no
// payment in the current billing cycle
func (jr *JobRunner) SendWorkerPaymentReminders() {
	jr.runWithRecovery(JobSendWorkerPaymentReminders, func(ctx context.Context) error {
		sent, err := jr.services.Payment.SendWorkerPaymentReminders(ctx, jr.now())
		if err != nil {
			return err
		}
		logger.Info("Worker payment reminders sent", "count", sent)
		return nil
	})
}
