// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order processing.
//
// # Available Jobs
//
// 1. NotificationRelayJob - Runs every second to dispatch pending outbox events as push notifications
// 2. PaymentAutoAdvanceJob - Runs every 5 seconds to advance paid orders from created to preparing
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(relayHandler, advanceHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The relay job uses the cron expression "* * * * * *" (every second) so a
// recorded event reaches the recipient quickly; the auto-advance job uses
// "*/5 * * * * *" because store acceptance is not latency sensitive.
//
// # Error Handling
//
// - The relay job treats a send failure as delivered-and-lost: the event is
//   already marked, it is logged and never retried
// - The auto-advance job logs pass failures; the next tick retries naturally
// - Failed job starts will stop any already running jobs
package jobs
