package ports

import (
	"time"

	"bladeshop/internal/core/domain/model/intake"
)

// SessionStore keeps in-progress intake sessions, keyed per
// (administrator, conversation) pair. Sessions are ephemeral: the store is
// in-memory only and its contents are lost on process restart.
//
// Put with an already-present key replaces the existing session; starting
// the intake flow twice in the same conversation deliberately discards the
// first attempt.
type SessionStore interface {
	// Get returns the session for the pair, if one is in progress.
	Get(adminID, chatID int64) (*intake.Session, bool)

	// Put stores or replaces the session under its own (admin, chat) key.
	Put(session *intake.Session)

	// Delete discards the session for the pair, if any.
	Delete(adminID, chatID int64)

	// DeleteIdle discards every session whose last accepted input is older
	// than the given duration relative to now, and returns how many were
	// removed. The expiry job calls this periodically.
	DeleteIdle(now time.Time, olderThan time.Duration) int
}
