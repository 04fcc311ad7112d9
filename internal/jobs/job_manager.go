package jobs

import (
	"fmt"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	notificationRelayJob  *NotificationRelayJob
	paymentAutoAdvanceJob *PaymentAutoAdvanceJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	relayHandler commands.RelayNotificationsCommandHandler,
	advanceHandler commands.AdvancePaidOrdersCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		notificationRelayJob:  NewNotificationRelayJob(relayHandler, logger),
		paymentAutoAdvanceJob: NewPaymentAutoAdvanceJob(advanceHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.notificationRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start notification relay job: %w", err)
	}

	if err := jm.paymentAutoAdvanceJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.notificationRelayJob.Stop()
		return fmt.Errorf("failed to start payment auto-advance job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.notificationRelayJob.Stop()
	jm.paymentAutoAdvanceJob.Stop()
}
