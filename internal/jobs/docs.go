// Package jobs provides scheduled background tasks for the food delivery service.
//
// Jobs are cron-based, using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// OrderStatusJob - runs the order status sweep (default "@every 1m"), moving
// orders from Preparing to Out for Delivery to Delivered as their time in the
// current status passes the configured thresholds.
//
// # Usage
//
//	job := jobs.NewOrderStatusJob(&sweepHandler, appMetrics, cfg.SweepSchedule, logger)
//	jobManager := jobs.NewJobManager(job)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// waits for a sweep in progress
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The schedule accepts standard five-field cron expressions and descriptors
// such as "@every 30s". Ticks never queue: if a sweep is still running when
// the next tick fires, that tick is skipped.
//
// # Error Handling
//
// A sweep that cannot list orders is logged and counted as a failed run.
// Per-order failures are handled inside the sweep itself. Panics are recovered
// and logged by the scheduler.
package jobs
