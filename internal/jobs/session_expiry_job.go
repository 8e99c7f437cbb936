package jobs

import (
	"context"
	"log/slog"
	"time"

	"bladeshop/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// SessionExpiryJob sweeps abandoned intake sessions.
// Runs every minute and discards sessions idle longer than the configured TTL,
// so a half-filled order form left overnight does not swallow the admin's
// next message months later.
type SessionExpiryJob struct {
	sessions ports.SessionStore
	ttl      time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSessionExpiryJob creates a job that expires sessions idle longer than ttl.
func NewSessionExpiryJob(sessions ports.SessionStore, ttl time.Duration, logger *slog.Logger) *SessionExpiryJob {
	return &SessionExpiryJob{
		sessions: sessions,
		ttl:      ttl,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "session_expiry_job"),
	}
}

// Start begins the session expiry job to run every minute.
func (j *SessionExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		if removed := j.sessions.DeleteIdle(time.Now(), j.ttl); removed > 0 {
			j.logger.InfoContext(ctx, "Swept idle intake sessions", "removed", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session expiry job started (running every minute)", "ttl", j.ttl)
	return nil
}

// Stop stops the session expiry job.
func (j *SessionExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Session expiry job stopped")
}
