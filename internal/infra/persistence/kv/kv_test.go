package kv

import (
	"context"
	"testing"
	"time"

	"quickdash/internal/domain/entity"
	domainerrors "quickdash/internal/domain/errors"
	"quickdash/internal/domain/repository"
	"quickdash/internal/infra/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() repository.StateStore {
	return storage.NewMemoryStore(storage.NewMemoryBackend(), "tab-test")
}

func TestLocationRepository_BrowsingNeverTouchesDelivery(t *testing.T) {
	ctx := context.Background()
	repo := NewLocationRepository(newTestStore())

	delivery := entity.DeliveryLocation{AddressID: "addr-1", Label: "Home", City: "Bengaluru", Latitude: 12.93, Longitude: 77.62}
	require.NoError(t, repo.SaveDelivery(ctx, delivery))
	require.NoError(t, repo.SaveBrowsing(ctx, entity.BrowsingLocation{Latitude: 12.97, Longitude: 77.59, CityName: "Bengaluru", AreaLabel: "MG Road"}))

	gotDelivery, err := repo.LoadDelivery(ctx)
	require.NoError(t, err)
	assert.Equal(t, &delivery, gotDelivery)

	gotBrowsing, err := repo.LoadBrowsing(ctx)
	require.NoError(t, err)
	require.NotNil(t, gotBrowsing)
	assert.Equal(t, 12.97, gotBrowsing.Latitude)
	assert.Equal(t, "MG Road", gotBrowsing.AreaLabel)
}

func TestLocationRepository_SaveBrowsingRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	repo := NewLocationRepository(store)

	err := repo.SaveBrowsing(ctx, entity.BrowsingLocation{Latitude: 95, Longitude: 10})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	_, ok, err := store.Get(ctx, repository.KeyBrowsingLatitude)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLocationRepository_LoadBrowsingIgnoresMalformed(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	repo := NewLocationRepository(store)

	require.NoError(t, store.Set(ctx, map[string]string{
		repository.KeyBrowsingLatitude:  "not-a-number",
		repository.KeyBrowsingLongitude: "77.5",
	}))

	got, err := repo.LoadBrowsing(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLocationRepository_LoadDeliveryNeedsMatchingContext(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
	}{
		{
			name:   "address id without context",
			values: map[string]string{repository.KeyDeliveryAddressID: "addr-2"},
		},
		{
			name: "context for another address",
			values: map[string]string{
				repository.KeyDeliveryAddressID: "addr-2",
				repository.KeyDeliveryContext:   `{"address_id":"addr-1","latitude":12.93,"longitude":77.62}`,
			},
		},
		{
			name: "malformed context",
			values: map[string]string{
				repository.KeyDeliveryAddressID: "addr-2",
				repository.KeyDeliveryContext:   `{"address_id":`,
			},
		},
		{
			name: "coordinates out of range",
			values: map[string]string{
				repository.KeyDeliveryAddressID: "addr-2",
				repository.KeyDeliveryContext:   `{"address_id":"addr-2","latitude":120,"longitude":77.62}`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := newTestStore()
			repo := NewLocationRepository(store)

			require.NoError(t, store.Set(ctx, tt.values))

			got, err := repo.LoadDelivery(ctx)
			require.NoError(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestLocationRepository_ForeignDeliveryReplacesOwn(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemoryBackend()
	own := NewLocationRepository(storage.NewMemoryStore(backend, "tab-a"))
	other := NewLocationRepository(storage.NewMemoryStore(backend, "tab-b"))

	require.NoError(t, own.SaveDelivery(ctx, entity.DeliveryLocation{AddressID: "addr-1", Label: "Home", Latitude: 12.97, Longitude: 77.59}))
	replacement := entity.DeliveryLocation{AddressID: "addr-2", Label: "Work", Latitude: 12.93, Longitude: 77.69}
	require.NoError(t, other.SaveDelivery(ctx, replacement))

	got, err := own.LoadDelivery(ctx)
	require.NoError(t, err)
	assert.Equal(t, &replacement, got)
}

func TestLocationRepository_ClearAndDeleteDelivery(t *testing.T) {
	ctx := context.Background()
	repo := NewLocationRepository(newTestStore())

	require.NoError(t, repo.SaveDelivery(ctx, entity.DeliveryLocation{AddressID: "addr-1"}))
	require.NoError(t, repo.SaveBrowsing(ctx, entity.BrowsingLocation{Latitude: 1, Longitude: 2}))

	require.NoError(t, repo.DeleteDelivery(ctx))
	delivery, err := repo.LoadDelivery(ctx)
	require.NoError(t, err)
	assert.Nil(t, delivery)
	browsing, err := repo.LoadBrowsing(ctx)
	require.NoError(t, err)
	assert.NotNil(t, browsing)

	require.NoError(t, repo.Clear(ctx))
	browsing, err = repo.LoadBrowsing(ctx)
	require.NoError(t, err)
	assert.Nil(t, browsing)
}

func TestWarehouseCache_RoundTripAndInvalidate(t *testing.T) {
	ctx := context.Background()
	cache := NewWarehouseCache(newTestStore())

	empty, err := cache.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, empty)

	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, cache.Store(ctx, entity.ResolvedWarehouse{WarehouseID: "wh-1", Serviceable: true, CacheKey: "address:addr-1", ResolvedAt: at}))

	got, err := cache.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "wh-1", got.WarehouseID)
	assert.Equal(t, "address:addr-1", got.CacheKey)
	assert.True(t, got.ResolvedAt.Equal(at))

	assert.Error(t, cache.Store(ctx, entity.ResolvedWarehouse{}))

	require.NoError(t, cache.Invalidate(ctx))
	got, err = cache.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTokenRepository_SaveKeepsRefreshWhenNotRotated(t *testing.T) {
	ctx := context.Background()
	repo := NewTokenRepository(newTestStore())

	none, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, none)

	require.NoError(t, repo.Save(ctx, entity.TokenPair{AccessToken: "a1", RefreshToken: "r1"}))
	require.NoError(t, repo.Save(ctx, entity.TokenPair{AccessToken: "a2"}))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, &entity.TokenPair{AccessToken: "a2", RefreshToken: "r1"}, got)

	require.NoError(t, repo.Clear(ctx))
	got, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTokenRepository_ReloadLockExpires(t *testing.T) {
	ctx := context.Background()
	repo := NewTokenRepository(newTestStore())
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	ok, err := repo.AcquireReloadLock(ctx, now, 10*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.AcquireReloadLock(ctx, now.Add(5*time.Second), 10*time.Second)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.AcquireReloadLock(ctx, now.Add(11*time.Second), 10*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
}
