package impl

import (
	"io"
	"log/slog"
	"testing"

	"quickdash/config"
	"quickdash/internal/domain/repository"
	"quickdash/internal/infra/persistence/kv"
	"quickdash/internal/infra/storage"

	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	cfg.Backend.BaseURL = "http://backend.test"

	return cfg
}

func floatPtr(v float64) *float64 {
	return &v
}

// persistedState is one session's view of storage shared through an in-memory backend.
type persistedState struct {
	store     repository.StateStore
	locations repository.LocationRepository
	warehouse repository.WarehouseCache
	tokens    repository.TokenRepository
}

func newPersistedState(t *testing.T, backend *storage.MemoryBackend, sessionID string) persistedState {
	t.Helper()

	store := storage.NewMemoryStore(backend, sessionID)
	t.Cleanup(func() { require.NoError(t, store.Close()) })

	return persistedState{
		store:     store,
		locations: kv.NewLocationRepository(store),
		warehouse: kv.NewWarehouseCache(store),
		tokens:    kv.NewTokenRepository(store),
	}
}
