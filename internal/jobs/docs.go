// Package jobs provides the scheduled backend refreshes of the order desk.
//
// Jobs are cron-based (github.com/robfig/cron/v3, with a seconds field) and
// run the sync commands of the application layer.
//
// # Available Jobs
//
// 1. OrderSyncJob - replaces the e-commerce order index with a fresh backend fetch
// 2. InTransitSyncJob - replaces the in-transit index with a fresh backend fetch
//
// # Usage
//
//	jobManager := jobs.NewJobManager(syncOrdersHandler, syncInTransitHandler, "0 */5 * * * *", logger)
//
//	// one refresh before serving
//	if err := jobManager.RunAll(ctx); err != nil {
//		logger.Warn("Initial sync failed", "error", err)
//	}
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Both jobs share one schedule. A tick is skipped while the previous cycle of
// the same job is still running. An empty schedule disables the jobs.
//
// # Error Handling
//
// A failed cycle is logged with its cycle id and leaves the previous snapshot
// in place. The sync handler records the failure for the status summary.
package jobs
