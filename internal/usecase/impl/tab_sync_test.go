package impl

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"quickdash/internal/domain/entity"
	"quickdash/internal/infra/storage"
	mockService "quickdash/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// tabSyncFixtures models two sessions of the same origin.
type tabSyncFixtures struct {
	sync     *tabSync
	reloader *mockService.MockReloader
	own      persistedState
	other    persistedState
	reloads  *atomic.Int32
}

func createTestTabSync(t *testing.T) tabSyncFixtures {
	backend := storage.NewMemoryBackend()
	own := newPersistedState(t, backend, "tab-a")
	other := newPersistedState(t, backend, "tab-b")
	reloader := mockService.NewMockReloader(t)

	cfg := newTestConfig()
	cfg.Sync.Debounce = 50 * time.Millisecond

	reloads := &atomic.Int32{}
	reloader.EXPECT().
		Reload(mock.Anything, "location changed in another session").
		RunAndReturn(func(context.Context, string) error {
			reloads.Add(1)

			return nil
		}).
		Maybe()

	return tabSyncFixtures{
		sync:     NewTabSync(own.store, reloader, cfg, newDiscardLogger()).(*tabSync),
		reloader: reloader,
		own:      own,
		other:    other,
		reloads:  reloads,
	}
}

// startWatching runs Watch until the test ends.
func startWatching(t *testing.T, fx tabSyncFixtures) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	watching := make(chan struct{})
	fx.sync.onWatching = func() { close(watching) }

	done := make(chan error, 1)
	go func() { done <- fx.sync.Watch(ctx) }()

	t.Cleanup(func() {
		cancel()
		assert.NoError(t, <-done)
	})

	select {
	case <-watching:
	case <-time.After(2 * time.Second):
		t.Fatal("watch never started")
	}
}

func TestTabSync_ForeignDeliveryWriteReloadsOnce(t *testing.T) {
	fx := createTestTabSync(t)
	startWatching(t, fx)
	ctx := context.Background()

	// A burst: delivery plus browsing rewritten in the other session.
	require.NoError(t, fx.other.locations.SaveDelivery(ctx, entity.DeliveryLocation{AddressID: "addr-9", Latitude: 12.93, Longitude: 77.62}))
	require.NoError(t, fx.other.locations.SaveBrowsing(ctx, entity.BrowsingLocation{Latitude: 12.9716, Longitude: 77.5946}))

	require.Eventually(t, func() bool { return fx.reloads.Load() == 1 }, 2*time.Second, 10*time.Millisecond)

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), fx.reloads.Load())
}

func TestTabSync_OwnWritesNeverReload(t *testing.T) {
	fx := createTestTabSync(t)
	startWatching(t, fx)
	ctx := context.Background()

	require.NoError(t, fx.own.locations.SaveBrowsing(ctx, entity.BrowsingLocation{Latitude: 12.9716, Longitude: 77.5946}))
	require.NoError(t, fx.own.locations.SaveDelivery(ctx, entity.DeliveryLocation{AddressID: "addr-1", Latitude: 12.93, Longitude: 77.62}))

	time.Sleep(200 * time.Millisecond)
	assert.Zero(t, fx.reloads.Load())
}

func TestTabSync_UnrelatedForeignKeysAreIgnored(t *testing.T) {
	fx := createTestTabSync(t)
	startWatching(t, fx)
	ctx := context.Background()

	require.NoError(t, fx.other.tokens.Save(ctx, entity.TokenPair{AccessToken: "access"}))
	require.NoError(t, fx.other.warehouse.Store(ctx, entity.ResolvedWarehouse{WarehouseID: "W1", CacheKey: "address:addr-1"}))

	time.Sleep(200 * time.Millisecond)
	assert.Zero(t, fx.reloads.Load())
}

func TestTabSync_Disabled(t *testing.T) {
	fx := createTestTabSync(t)
	fx.sync.enabled = false

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, fx.sync.Watch(ctx))
}
