// Package jobs provides scheduled background tasks for the cuboids service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// CapacityAuditJob reports bags whose cuboids take more room than the bag
// volume. Writes never produce such bags, so every report points at data
// changed outside the service.
//
// # Usage
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(findOverfilledHandler, "0 */5 * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//
//	defer jobManager.StopAll(shutdownCtx)
//
// # Scheduling
//
// Schedules are cron expressions with a seconds field (cron.WithSeconds),
// so "0 */5 * * * *" runs every five minutes on the minute.
//
// # Error Handling
//
// A failed audit is logged and retried on the next tick.
// An invalid schedule makes StartAll fail.
package jobs
