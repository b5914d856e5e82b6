package jobs

import (
	"context"
	"fmt"
	"time"

	"rentease-backend/internal/config"
	"rentease-backend/internal/logger"
	"rentease-backend/internal/metrics"
	"rentease-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	services *Services
	config   *config.Config
	metrics  *metrics.Metrics
	now      func() time.Time
}

// Services holds all service dependencies needed by jobs
type Services struct {
	Payment      service.PaymentService
	Notification service.NotificationService
}

// NewJobRunner creates a new job runner with all dependencies. m may be nil.
func NewJobRunner(services *Services, cfg *config.Config, m *metrics.Metrics) *JobRunner {
	return &JobRunner{
		services: services,
		config:   cfg,
		metrics:  m,
		now:      time.Now,
	}
}

// Config returns the configuration the runner was built with.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery and records the
// outcome.
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func(ctx context.Context) error) (err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
			err = fmt.Errorf("job %s panicked: %v", jobName, r)
		}
		if jr.metrics != nil {
			jr.metrics.ObserveJob(jobName, err, time.Since(start))
		}
	}()

	logger.Info("Starting job", "job", jobName)
	if err = jobFunc(context.Background()); err != nil {
		logger.Error("Job failed", "job", jobName, "error", err)
		return err
	}
	logger.Info("Job completed", "job", jobName, "duration", time.Since(start))
	return nil
}

// RunAll runs every job once, in schedule order (for manual execution)
func (jr *JobRunner) RunAll() {
	jr.MarkOverduePayments()
	jr.SendWorkerPaymentReminders()
	jr.RelayNotifications()
}

// Run executes the job registered under name. It returns false for unknown
// names.
func (jr *JobRunner) Run(name string) bool {
	switch name {
	case JobMarkOverduePayments:
		jr.MarkOverduePayments()
	case JobSendWorkerPaymentReminders:
		jr.SendWorkerPaymentReminders()
	case JobRelayNotifications:
		jr.RelayNotifications()
	case "all":
		jr.RunAll()
	default:
		return false
	}
	return true
}

// Job names, as accepted by Run and used for metrics.
const (
	JobMarkOverduePayments        = "mark-overdue-payments"
	JobSendWorkerPaymentReminders = "send-worker-payment-reminders"
	JobRelayNotifications         = "relay-notifications"
)

// JobNames lists the jobs accepted by Run.
var JobNames = []string{JobMarkOverduePayments, JobSendWorkerPaymentReminders, JobRelayNotifications, "all"}
