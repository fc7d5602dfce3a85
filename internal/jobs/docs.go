// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the fulfillment service.
//
// # Available Jobs
//
// 1. ReconciliationJob - Replays terminal work order outcomes that the order
// side has not absorbed yet, retrying until both state machines converge
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(backlogHandler, outcomeHandler, spec, logger)
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
// The reconciliation spec comes from configuration (RECONCILE_SPEC), in
// cron format with a seconds field, for example "*/10 * * * * *".
//
// # Error Handling
//
// - Conflicts between a work order outcome and a terminal order status are
// logged at error level on every run; they need an operator, not a retry
// - All other failures are logged and retried on the next run
package jobs
