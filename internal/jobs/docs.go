// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order housekeeping.
//
// # Available Jobs
//
// 1. OrderExpiryJob - Runs every minute to cancel orders that stayed pending
// past the configured maximum age, restoring their reserved stock
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(staleOrdersHandler, cancelOrderHandler, maxPendingAge, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The expiry job ignores orders that changed state between the lookup and
// the cancellation; everything else is logged and the job moves on to the
// next candidate.
package jobs
