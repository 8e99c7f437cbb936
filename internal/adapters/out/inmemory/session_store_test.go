package inmemory_test

import (
	"sync"
	"testing"
	"time"

	"bladeshop/internal/adapters/out/inmemory"
	"bladeshop/internal/core/domain/model/intake"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAdminID = int64(380617987)
	testChatID  = int64(-100200300)
)

func newTestSession(t *testing.T, adminID, chatID int64) *intake.Session {
	t.Helper()

	session, err := intake.NewSession(adminID, chatID)
	require.NoError(t, err)
	return session
}

func TestSessionStore_GetMissing_ReturnsFalse(t *testing.T) {
	store := inmemory.NewSessionStore()

	session, ok := store.Get(testAdminID, testChatID)

	assert.False(t, ok)
	assert.Nil(t, session)
}

func TestSessionStore_PutThenGet_ReturnsSession(t *testing.T) {
	store := inmemory.NewSessionStore()
	session := newTestSession(t, testAdminID, testChatID)

	store.Put(session)

	got, ok := store.Get(testAdminID, testChatID)
	require.True(t, ok)
	assert.Same(t, session, got)
}

func TestSessionStore_Put_ReplacesExistingSession(t *testing.T) {
	store := inmemory.NewSessionStore()
	first := newTestSession(t, testAdminID, testChatID)
	second := newTestSession(t, testAdminID, testChatID)

	store.Put(first)
	store.Put(second)

	got, ok := store.Get(testAdminID, testChatID)
	require.True(t, ok)
	assert.Same(t, second, got)
}

func TestSessionStore_KeysArePerAdminAndChat(t *testing.T) {
	store := inmemory.NewSessionStore()
	inChat := newTestSession(t, testAdminID, testChatID)
	inDirect := newTestSession(t, testAdminID, testAdminID)

	store.Put(inChat)
	store.Put(inDirect)

	got, ok := store.Get(testAdminID, testChatID)
	require.True(t, ok)
	assert.Same(t, inChat, got)

	got, ok = store.Get(testAdminID, testAdminID)
	require.True(t, ok)
	assert.Same(t, inDirect, got)
}

func TestSessionStore_Delete_RemovesSession(t *testing.T) {
	store := inmemory.NewSessionStore()
	store.Put(newTestSession(t, testAdminID, testChatID))

	store.Delete(testAdminID, testChatID)

	_, ok := store.Get(testAdminID, testChatID)
	assert.False(t, ok)
}

func TestSessionStore_Delete_MissingIsNoOp(t *testing.T) {
	store := inmemory.NewSessionStore()

	store.Delete(testAdminID, testChatID)
}

func TestSessionStore_DeleteIdle_RemovesStaleSessions(t *testing.T) {
	store := inmemory.NewSessionStore()

	store.Put(newTestSession(t, testAdminID, testChatID))
	store.Put(newTestSession(t, testAdminID+1, testChatID))

	removed := store.DeleteIdle(time.Now().Add(31*time.Minute), 30*time.Minute)

	assert.Equal(t, 2, removed)

	_, ok := store.Get(testAdminID, testChatID)
	assert.False(t, ok)
	_, ok = store.Get(testAdminID+1, testChatID)
	assert.False(t, ok)
}

// Inbound updates mutate a session on their own goroutines while the cron
// sweep walks the store reading TouchedAt. Run both at once so the race
// detector can catch unsynchronized session state.
func TestSessionStore_DeleteIdle_ConcurrentWithSessionInput(t *testing.T) {
	store := inmemory.NewSessionStore()
	session := newTestSession(t, testAdminID, testChatID)
	store.Put(session)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			_ = session.Apply("полевой нож")
		}
	}()

	for i := 0; i < 500; i++ {
		store.DeleteIdle(time.Now(), time.Hour)
	}
	wg.Wait()

	_, ok := store.Get(testAdminID, testChatID)
	assert.True(t, ok)
}

func TestSessionStore_DeleteIdle_KeepsRecentSessions(t *testing.T) {
	store := inmemory.NewSessionStore()
	store.Put(newTestSession(t, testAdminID, testChatID))

	removed := store.DeleteIdle(time.Now(), 30*time.Minute)

	assert.Equal(t, 0, removed)

	_, ok := store.Get(testAdminID, testChatID)
	assert.True(t, ok)
}
