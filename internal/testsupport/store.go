package testsupport

import (
	"context"
	"testing"

	"streamsort/internal/config"
	"streamsort/internal/logging"
	"streamsort/internal/session"
	"streamsort/internal/storage"
)

// MustOpenStore opens the store cfg selects and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) storage.Store {
	t.Helper()

	store, err := storage.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// NewSession opens the configured store and wraps it in a session with a
// no-op logger. The session is closed on cleanup.
func NewSession(t testing.TB, cfg *config.Config) *session.Session {
	t.Helper()

	store, err := storage.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	sess := session.New(store, logging.NewNop())
	t.Cleanup(func() {
		_ = sess.Close()
	})
	return sess
}
