package impl

import (
	"context"
	"testing"

	"quickdash/internal/domain/entity"
	"quickdash/internal/infra/storage"
	mockUsecase "quickdash/internal/mocks/usecase"
	"quickdash/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sessionServiceFixtures holds all test dependencies for session tests.
type sessionServiceFixtures struct {
	service    usecase.SessionUsecase
	warehouses *mockUsecase.MockWarehouseUsecase
	guard      *mockUsecase.MockCartGuardUsecase
	state      persistedState
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	state := newPersistedState(t, storage.NewMemoryBackend(), "tab-a")
	warehouses := mockUsecase.NewMockWarehouseUsecase(t)
	guard := mockUsecase.NewMockCartGuardUsecase(t)

	return sessionServiceFixtures{
		service:    NewSessionService(state.store, state.locations, warehouses, guard, newDiscardLogger()),
		warehouses: warehouses,
		guard:      guard,
		state:      state,
	}
}

func TestSessionService_Reload_WithoutLocationOnlyResets(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.guard.EXPECT().Reset().Return()
	fx.warehouses.EXPECT().Reset().Return()

	require.NoError(t, fx.service.Reload(ctx, "location cleared"))

	fx.guard.EXPECT().Status().Return(entity.GuardStatus{State: entity.GuardStateIdle})

	status, err := fx.service.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tab-a", status.SessionID)
	assert.Equal(t, 1, status.Reloads)
	assert.Equal(t, "location cleared", status.LastReason)
	assert.False(t, status.LastReloadAt.IsZero())
	assert.True(t, status.Location.IsNone())
}

func TestSessionService_Reload_RevalidatesPersistedLocation(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	require.NoError(t, fx.state.locations.SaveDelivery(ctx, entity.DeliveryLocation{AddressID: "addr-5", Latitude: 12.93, Longitude: 77.62}))

	fx.guard.EXPECT().Reset().Return()
	fx.warehouses.EXPECT().Reset().Return()
	fx.guard.EXPECT().Validate(ctx).Return(entity.GuardStatus{State: entity.GuardStateConsistent}, nil)

	require.NoError(t, fx.service.Reload(ctx, "location changed in another session"))
}

func TestSessionService_Status_ReportsCachedWarehouse(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	delivery := entity.DeliveryLocation{AddressID: "addr-5", Latitude: 12.93, Longitude: 77.62}
	require.NoError(t, fx.state.locations.SaveDelivery(ctx, delivery))

	fx.warehouses.EXPECT().CachedWarehouseID(ctx, entity.NewDeliveryRecord(delivery)).Return("W2", true, nil)
	fx.guard.EXPECT().Status().Return(entity.GuardStatus{State: entity.GuardStateConsistent, WarehouseID: "W2"})

	status, err := fx.service.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, "W2", status.Warehouse)
	assert.Equal(t, entity.LocationKindDelivery, status.Location.Kind)
	assert.Zero(t, status.Reloads)
}
