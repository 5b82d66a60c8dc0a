package impl

import (
	"context"
	"testing"
	"time"

	"quickdash/internal/domain/entity"
	domainerrors "quickdash/internal/domain/errors"
	"quickdash/internal/infra/storage"
	mockService "quickdash/internal/mocks/service"
	mockUsecase "quickdash/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartGuardFixtures holds all test dependencies for cart guard tests.
type cartGuardFixtures struct {
	guard      *cartGuard
	carts      *mockService.MockCartGateway
	warehouses *mockUsecase.MockWarehouseUsecase
	notifier   *mockService.MockNotifier
	bus        *mockService.MockLocationEventBus
	state      persistedState
}

func createTestCartGuard(t *testing.T) cartGuardFixtures {
	state := newPersistedState(t, storage.NewMemoryBackend(), "tab-a")
	carts := mockService.NewMockCartGateway(t)
	warehouses := mockUsecase.NewMockWarehouseUsecase(t)
	notifier := mockService.NewMockNotifier(t)
	bus := mockService.NewMockLocationEventBus(t)

	return cartGuardFixtures{
		guard:      NewCartGuard(state.locations, state.tokens, carts, warehouses, notifier, bus, newDiscardLogger()).(*cartGuard),
		carts:      carts,
		warehouses: warehouses,
		notifier:   notifier,
		bus:        bus,
		state:      state,
	}
}

func (fx cartGuardFixtures) signIn(t *testing.T) {
	require.NoError(t, fx.state.tokens.Save(context.Background(), entity.TokenPair{AccessToken: "access", RefreshToken: "refresh"}))
}

func cacheKeyIs(key string) any {
	return mock.MatchedBy(func(record entity.LocationRecord) bool {
		return record.CacheKey() == key
	})
}

func TestCartGuard_Validate_GuestSkipsValidation(t *testing.T) {
	fx := createTestCartGuard(t)
	ctx := context.Background()

	require.NoError(t, fx.state.locations.SaveBrowsing(ctx, entity.BrowsingLocation{Latitude: 12.9716, Longitude: 77.5946}))

	status, err := fx.guard.Validate(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.GuardStateIdle, status.State)
}

func TestCartGuard_Validate_WithoutLocationStaysIdle(t *testing.T) {
	fx := createTestCartGuard(t)
	fx.signIn(t)

	status, err := fx.guard.Validate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.GuardStateIdle, status.State)
}

func TestCartGuard_Validate_PrefersAddressID(t *testing.T) {
	fx := createTestCartGuard(t)
	fx.signIn(t)
	ctx := context.Background()

	require.NoError(t, fx.state.locations.SaveBrowsing(ctx, entity.BrowsingLocation{Latitude: 12.9716, Longitude: 77.5946}))
	require.NoError(t, fx.state.locations.SaveDelivery(ctx, entity.DeliveryLocation{
		AddressID: "addr-7", City: "Bengaluru", Latitude: 12.93, Longitude: 77.62,
	}))

	fx.carts.EXPECT().
		ValidateCart(ctx, entity.CartValidationRequest{AddressID: "addr-7"}).
		Return(&entity.CartValidation{IsValid: true, WarehouseID: "W2"}, nil)
	fx.warehouses.EXPECT().Remember(ctx, cacheKeyIs("address:addr-7"), "W2").Return(nil)

	status, err := fx.guard.Validate(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.GuardStateConsistent, status.State)
	assert.Equal(t, "W2", status.WarehouseID)
}

func TestCartGuard_Validate_BrowsingSendsCoordinates(t *testing.T) {
	fx := createTestCartGuard(t)
	fx.signIn(t)
	ctx := context.Background()

	require.NoError(t, fx.state.locations.SaveBrowsing(ctx, entity.BrowsingLocation{Latitude: 12.9716, Longitude: 77.5946}))

	fx.carts.EXPECT().
		ValidateCart(ctx, entity.CartValidationRequest{Latitude: 12.9716, Longitude: 77.5946}).
		Return(&entity.CartValidation{IsValid: true, WarehouseID: "W1"}, nil)
	fx.warehouses.EXPECT().Remember(ctx, mock.Anything, "W1").Return(nil)

	_, err := fx.guard.Validate(ctx)
	require.NoError(t, err)
}

func TestCartGuard_Validate_ConflictDoesNotClearCart(t *testing.T) {
	fx := createTestCartGuard(t)
	fx.signIn(t)
	ctx := context.Background()

	require.NoError(t, fx.state.locations.SaveBrowsing(ctx, entity.BrowsingLocation{Latitude: 28.6139, Longitude: 77.2090}))

	fx.carts.EXPECT().
		ValidateCart(ctx, mock.Anything).
		Return(&entity.CartValidation{
			IsValid:          false,
			WarehouseID:      "W2",
			UnavailableItems: []entity.UnavailableItem{{SKU: "MILK-1", ProductName: "Milk", Reason: "out of stock"}},
		}, nil)
	fx.notifier.EXPECT().Warning(ctx, "Items like Milk are not available at this new location.").Return()

	status, err := fx.guard.Validate(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.GuardStateConflict, status.State)
	require.Len(t, status.UnavailableItems, 1)
	assert.Equal(t, "MILK-1", status.UnavailableItems[0].SKU)

	// ClearCart has no expectation: the conflict waits for the user.
	fx.carts.AssertNotCalled(t, "ClearCart", mock.Anything)
}

func TestCartGuard_Validate_ConflictWithoutNamesUsesGenericMessage(t *testing.T) {
	fx := createTestCartGuard(t)
	fx.signIn(t)
	ctx := context.Background()

	require.NoError(t, fx.state.locations.SaveBrowsing(ctx, entity.BrowsingLocation{Latitude: 28.6139, Longitude: 77.2090}))

	fx.carts.EXPECT().ValidateCart(ctx, mock.Anything).Return(&entity.CartValidation{IsValid: false}, nil)
	fx.notifier.EXPECT().Warning(ctx, "Your cart items are from a different store.").Return()

	status, err := fx.guard.Validate(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.GuardStateConflict, status.State)
}

func TestCartGuard_Validate_FailureIsOnlyLogged(t *testing.T) {
	fx := createTestCartGuard(t)
	fx.signIn(t)
	ctx := context.Background()

	require.NoError(t, fx.state.locations.SaveBrowsing(ctx, entity.BrowsingLocation{Latitude: 12.9716, Longitude: 77.5946}))

	fx.carts.EXPECT().ValidateCart(ctx, mock.Anything).Return(nil, errors.New("timeout"))

	status, err := fx.guard.Validate(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.GuardStateFailed, status.State)
	assert.Contains(t, status.LastError, "timeout")
}

func TestCartGuard_Validate_StaleResponseIsDiscarded(t *testing.T) {
	fx := createTestCartGuard(t)
	fx.signIn(t)
	ctx := context.Background()

	first := entity.BrowsingLocation{Latitude: 12.9716, Longitude: 77.5946}
	second := entity.BrowsingLocation{Latitude: 28.6139, Longitude: 77.2090}
	require.NoError(t, fx.state.locations.SaveBrowsing(ctx, first))

	entered := make(chan struct{})
	release := make(chan struct{})

	fx.carts.EXPECT().
		ValidateCart(mock.Anything, entity.CartValidationRequest{Latitude: first.Latitude, Longitude: first.Longitude}).
		RunAndReturn(func(context.Context, entity.CartValidationRequest) (*entity.CartValidation, error) {
			close(entered)
			<-release

			return &entity.CartValidation{
				IsValid:          false,
				UnavailableItems: []entity.UnavailableItem{{ProductName: "Bread"}},
			}, nil
		})
	fx.carts.EXPECT().
		ValidateCart(mock.Anything, entity.CartValidationRequest{Latitude: second.Latitude, Longitude: second.Longitude}).
		Return(&entity.CartValidation{IsValid: true, WarehouseID: "W2"}, nil)
	fx.warehouses.EXPECT().
		Remember(mock.Anything, cacheKeyIs(entity.NewBrowsingRecord(second).CacheKey()), "W2").
		Return(nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = fx.guard.Validate(ctx)
	}()

	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("first validation never reached the backend")
	}

	require.NoError(t, fx.state.locations.SaveBrowsing(ctx, second))
	status, err := fx.guard.Validate(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.GuardStateConsistent, status.State)

	close(release)
	<-done

	// The late conflict for the first location neither overrides the state nor toasts.
	status = fx.guard.Status()
	assert.Equal(t, entity.GuardStateConsistent, status.State)
	assert.Equal(t, "W2", status.WarehouseID)
	assert.Equal(t, uint64(2), status.Generation)
}

func TestCartGuard_ResolveConflict_RequiresPendingConflict(t *testing.T) {
	fx := createTestCartGuard(t)

	_, err := fx.guard.ResolveConflict(context.Background(), entity.ConflictDecisionClearCart)
	assert.True(t, errors.Is(err, domainerrors.ErrNoPendingConflict))
}

func enterConflict(t *testing.T, fx cartGuardFixtures) {
	t.Helper()
	fx.signIn(t)
	ctx := context.Background()

	require.NoError(t, fx.state.locations.SaveBrowsing(ctx, entity.BrowsingLocation{Latitude: 28.6139, Longitude: 77.2090}))
	fx.carts.EXPECT().ValidateCart(ctx, mock.Anything).Return(&entity.CartValidation{IsValid: false}, nil).Once()
	fx.notifier.EXPECT().Warning(ctx, mock.Anything).Return().Once()

	status, err := fx.guard.Validate(ctx)
	require.NoError(t, err)
	require.Equal(t, entity.GuardStateConflict, status.State)
}

func TestCartGuard_ResolveConflict_ClearCart(t *testing.T) {
	fx := createTestCartGuard(t)
	enterConflict(t, fx)
	ctx := context.Background()

	fx.carts.EXPECT().ClearCart(ctx).Return(nil)
	fx.notifier.EXPECT().Info(ctx, "Cart cleared for new location.").Return()

	status, err := fx.guard.ResolveConflict(ctx, entity.ConflictDecisionClearCart)
	require.NoError(t, err)
	assert.Equal(t, entity.GuardStateConsistent, status.State)
}

func TestCartGuard_ResolveConflict_ClearFailureKeepsConflict(t *testing.T) {
	fx := createTestCartGuard(t)
	enterConflict(t, fx)
	ctx := context.Background()

	fx.carts.EXPECT().ClearCart(ctx).Return(errors.New("boom"))
	fx.notifier.EXPECT().Error(ctx, "Please clear your cart manually.").Return()

	status, err := fx.guard.ResolveConflict(ctx, entity.ConflictDecisionClearCart)
	require.Error(t, err)
	assert.Equal(t, entity.GuardStateConflict, status.State)
}

func TestCartGuard_ResolveConflict_KeepCart(t *testing.T) {
	fx := createTestCartGuard(t)
	enterConflict(t, fx)

	status, err := fx.guard.ResolveConflict(context.Background(), entity.ConflictDecisionKeepCart)
	require.NoError(t, err)
	assert.Equal(t, entity.GuardStateIdle, status.State)
}

func TestCartGuard_ResolveConflict_UnknownDecision(t *testing.T) {
	fx := createTestCartGuard(t)
	enterConflict(t, fx)

	status, err := fx.guard.ResolveConflict(context.Background(), entity.ConflictDecision("MAYBE"))
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
	assert.Equal(t, entity.GuardStateConflict, status.State)
}

func TestCartGuard_Reset(t *testing.T) {
	fx := createTestCartGuard(t)
	enterConflict(t, fx)

	fx.guard.Reset()

	status := fx.guard.Status()
	assert.Equal(t, entity.GuardStateIdle, status.State)
	assert.Empty(t, status.UnavailableItems)
}

func TestCartGuard_Listen_ValidatesOnEveryEvent(t *testing.T) {
	fx := createTestCartGuard(t)
	fx.signIn(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, fx.state.locations.SaveBrowsing(ctx, entity.BrowsingLocation{Latitude: 12.9716, Longitude: 77.5946}))

	events := make(chan entity.LocationChangedEvent, 1)
	fx.bus.EXPECT().Subscribe(ctx).Return(events, nil)

	validated := make(chan struct{})
	fx.carts.EXPECT().
		ValidateCart(ctx, mock.Anything).
		RunAndReturn(func(context.Context, entity.CartValidationRequest) (*entity.CartValidation, error) {
			close(validated)

			return &entity.CartValidation{IsValid: true, WarehouseID: "W1"}, nil
		})
	fx.warehouses.EXPECT().Remember(ctx, mock.Anything, "W1").Return(nil)

	listenErr := make(chan error, 1)
	go func() { listenErr <- fx.guard.Listen(ctx) }()

	events <- entity.LocationChangedEvent{Source: entity.LocationSourceBrowsing}

	select {
	case <-validated:
	case <-time.After(2 * time.Second):
		t.Fatal("location change did not trigger validation")
	}

	close(events)
	require.NoError(t, <-listenErr)
	assert.Equal(t, entity.GuardStateConsistent, fx.guard.Status().State)
}

func TestCartGuard_Listen_SubscribeFailure(t *testing.T) {
	fx := createTestCartGuard(t)
	ctx := context.Background()

	fx.bus.EXPECT().Subscribe(ctx).Return(nil, errors.New("closed"))

	assert.Error(t, fx.guard.Listen(ctx))
}
