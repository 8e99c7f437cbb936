// Package inmemory holds adapters backed by process memory. Intake sessions
// live here: a half-filled order form is not worth surviving a restart.
package inmemory

import (
	"sync"
	"time"

	"bladeshop/internal/core/domain/model/intake"
)

type sessionKey struct {
	adminID int64
	chatID  int64
}

// SessionStore is a mutex-guarded map of in-progress intake sessions keyed
// per (administrator, conversation) pair. Safe for concurrent use: webhook
// updates and the expiry job touch it from different goroutines.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[sessionKey]*intake.Session
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[sessionKey]*intake.Session),
	}
}

// Get returns the session for the pair, if one is in progress.
func (s *SessionStore) Get(adminID, chatID int64) (*intake.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionKey{adminID: adminID, chatID: chatID}]
	return session, ok
}

// Put stores or replaces the session under its own (admin, chat) key.
func (s *SessionStore) Put(session *intake.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sessionKey{adminID: session.AdminID(), chatID: session.ChatID()}] = session
}

// Delete discards the session for the pair, if any.
func (s *SessionStore) Delete(adminID, chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionKey{adminID: adminID, chatID: chatID})
}

// DeleteIdle discards every session whose last accepted input is older than
// olderThan relative to now, and returns how many were removed.
func (s *SessionStore) DeleteIdle(now time.Time, olderThan time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, session := range s.sessions {
		if now.Sub(session.TouchedAt()) > olderThan {
			delete(s.sessions, key)
			removed++
		}
	}

	return removed
}
