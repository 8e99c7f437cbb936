package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"bladeshop/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	sessionExpiryJob *SessionExpiryJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(sessions ports.SessionStore, sessionTTL time.Duration, logger *slog.Logger) *JobManager {
	return &JobManager{
		sessionExpiryJob: NewSessionExpiryJob(sessions, sessionTTL, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.sessionExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start session expiry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.sessionExpiryJob.Stop()
}
