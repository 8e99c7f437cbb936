// Package jobs provides scheduled background tasks for the workshop bot.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. SessionExpiryJob - Runs every minute to discard intake sessions that
// have been idle longer than the configured TTL.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(sessionStore, 30*time.Minute, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The expiry sweep itself cannot fail; it logs how many sessions it removed
// when the count is non-zero.
package jobs
