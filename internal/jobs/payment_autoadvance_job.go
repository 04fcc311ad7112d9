package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PaymentAutoAdvanceJob moves paid orders into preparation.
// Runs every five seconds so a confirmed payment promptly advances the
// order without waiting for a manual store acceptance.
type PaymentAutoAdvanceJob struct {
	handler commands.AdvancePaidOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPaymentAutoAdvanceJob creates a job that advances paid created orders.
// Uses AdvancePaidOrdersCommandHandler to process a batch on every tick.
func NewPaymentAutoAdvanceJob(handler commands.AdvancePaidOrdersCommandHandler, logger *slog.Logger) *PaymentAutoAdvanceJob {
	return &PaymentAutoAdvanceJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "payment_autoadvance_job"),
	}
}

// Start begins the auto-advance job to run every five seconds.
func (j *PaymentAutoAdvanceJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAdvancePaidOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Payment auto-advance job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment auto-advance job started (running every 5 seconds)")
	return nil
}

// Stop stops the auto-advance job.
func (j *PaymentAutoAdvanceJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payment auto-advance job stopped")
}
