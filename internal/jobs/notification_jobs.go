package jobs

import (
	"context"

	"rentease-backend/internal/logger"
)

// RelayNotifications publishes unpublished notifications to the broker.
// It is a no-op when no broker is configured.
func (jr *JobRunner) RelayNotifications() {
	if jr.config.RabbitMQ.URL == "" {
		logger.Debug("RabbitMQ not configured, skipping notification relay")
		return
	}
	jr.runWithRecovery(JobRelayNotifications, func(ctx context.Context) error {
		n, err := jr.services.Notification.RelayPending(ctx, jr.config.RabbitMQ.BatchSize)
		if jr.metrics != nil {
			jr.metrics.AddRelayed(n)
		}
		if err != nil {
			return err
		}
		if n > 0 {
			logger.Info("Relayed notifications", "count", n)
		}
		return nil
	})
}
