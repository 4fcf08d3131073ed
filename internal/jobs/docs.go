// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic sweeps the ordering flow depends on.
//
// # Available Jobs
//
// 1. QuoteRequestExpiryJob - Runs every minute to expire pending quote requests whose deadline passed
// 2. OfferExpiryJob - Runs every minute to expire active offers whose validity window ended
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireQuoteRequestsHandler, expireOffersHandler, logger)
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
// Both jobs use the cron expression "0 * * * * *" which means they run at the
// top of every minute. Expiry is enforced by the clock at read time as well,
// so the sweep only has to converge stored state, not gate correctness.
//
// # Error Handling
//
// - Sweep failures are logged and retried on the next tick; a sweep is idempotent
// - Failed job starts will stop any already running jobs
package jobs
