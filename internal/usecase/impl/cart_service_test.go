package impl

import (
	"context"
	"testing"

	"quickdash/internal/domain/entity"
	domainerrors "quickdash/internal/domain/errors"
	"quickdash/internal/domain/service"
	"quickdash/internal/infra/storage"
	mockService "quickdash/internal/mocks/service"
	"quickdash/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service  usecase.CartUsecase
	resolver usecase.WarehouseUsecase
	gateway  *mockService.MockWarehouseGateway
	carts    *mockService.MockCartGateway
	notifier *mockService.MockNotifier
	state    persistedState
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	state := newPersistedState(t, storage.NewMemoryBackend(), "tab-a")
	gateway := mockService.NewMockWarehouseGateway(t)
	carts := mockService.NewMockCartGateway(t)
	notifier := mockService.NewMockNotifier(t)

	resolver := NewWarehouseResolver(state.locations, gateway, state.warehouse, newTestConfig(), newDiscardLogger())

	return cartServiceFixtures{
		service:  NewCartService(state.locations, state.tokens, resolver, carts, notifier, newDiscardLogger()),
		resolver: resolver,
		gateway:  gateway,
		carts:    carts,
		notifier: notifier,
		state:    state,
	}
}

func TestCartService_AddToCart_RequiresLocation(t *testing.T) {
	fx := createTestCartService(t)

	// No cart gateway expectations: the gate must fire before any cart call.
	cart, err := fx.service.AddToCart(context.Background(), &usecase.AddToCartInput{SKU: "MILK-1", Quantity: 1})
	assert.Nil(t, cart)
	assert.True(t, errors.Is(err, domainerrors.ErrLocationRequired))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "LOCATION_REQUIRED", appErr.ErrorCode())
}

func TestCartService_AddToCart_UsesResolvedWarehouse(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	require.NoError(t, fx.state.locations.SaveBrowsing(ctx, entity.BrowsingLocation{Latitude: 12.9716, Longitude: 77.5946, CityName: "Bengaluru"}))

	fx.gateway.EXPECT().
		FindServiceable(ctx, 12.9716, 77.5946, "Bengaluru").
		Return(&service.ServiceabilityResult{Serviceable: true, WarehouseID: "W1"}, nil).
		Once()

	snapshot := &entity.CartSnapshot{
		Items:       []entity.CartItem{{ID: "1", SKU: "MILK-1", Quantity: 1, UnitPrice: decimal.RequireFromString("32.50")}},
		TotalAmount: decimal.RequireFromString("32.50"),
		WarehouseID: "W1",
	}
	fx.carts.EXPECT().
		AddItem(ctx, service.AddCartItemRequest{SKU: "MILK-1", Quantity: 1, WarehouseID: "W1"}).
		Return(snapshot, nil).
		Twice()
	fx.notifier.EXPECT().Success(ctx, "Item added to cart").Return().Twice()

	cart, err := fx.service.AddToCart(ctx, &usecase.AddToCartInput{SKU: "MILK-1"})
	require.NoError(t, err)
	assert.Equal(t, 1, cart.ItemCount())

	// Second add hits the cache; FindServiceable is expected once.
	_, err = fx.service.AddToCart(ctx, &usecase.AddToCartInput{SKU: "MILK-1"})
	require.NoError(t, err)
}

func TestCartService_AddToCart_NotServiceable(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	require.NoError(t, fx.state.locations.SaveBrowsing(ctx, entity.BrowsingLocation{Latitude: 28.6139, Longitude: 77.2090}))

	fx.gateway.EXPECT().
		FindServiceable(ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(&service.ServiceabilityResult{Serviceable: false}, nil)

	_, err := fx.service.AddToCart(ctx, &usecase.AddToCartInput{SKU: "MILK-1"})
	assert.True(t, errors.Is(err, domainerrors.ErrNotServiceable))
}

func TestCartService_AddToCart_RejectsNegativeQuantity(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.AddToCart(context.Background(), &usecase.AddToCartInput{SKU: "MILK-1", Quantity: -2})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidQuantity))
}

func TestCartService_AddToCart_BackendFailureNotifies(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	delivery := entity.DeliveryLocation{AddressID: "addr-1", Latitude: 12.93, Longitude: 77.62}
	require.NoError(t, fx.state.locations.SaveDelivery(ctx, delivery))
	require.NoError(t, fx.resolver.Remember(ctx, entity.NewDeliveryRecord(delivery), "W2"))

	fx.carts.EXPECT().
		AddItem(ctx, service.AddCartItemRequest{SKU: "EGG-6", Quantity: 2, WarehouseID: "W2"}).
		Return(nil, domainerrors.NewBackendError(400, "Out of stock"))
	fx.notifier.EXPECT().Error(ctx, "Out of stock").Return()

	_, err := fx.service.AddToCart(ctx, &usecase.AddToCartInput{SKU: "EGG-6", Quantity: 2})
	assert.True(t, errors.Is(err, domainerrors.ErrBackend))
}

func TestCartService_ItemCount_GuestIsZero(t *testing.T) {
	fx := createTestCartService(t)

	count, err := fx.service.ItemCount(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCartService_ItemCount_SignedIn(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	require.NoError(t, fx.state.tokens.Save(ctx, entity.TokenPair{AccessToken: "access"}))
	fx.carts.EXPECT().GetCart(ctx).Return(&entity.CartSnapshot{Items: []entity.CartItem{{ID: "1"}, {ID: "2"}}}, nil)

	count, err := fx.service.ItemCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCartService_RemoveItem(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.carts.EXPECT().RemoveItem(ctx, "line-9").Return(nil)
	fx.carts.EXPECT().GetCart(ctx).Return(&entity.CartSnapshot{}, nil)
	fx.notifier.EXPECT().Info(ctx, "Item removed").Return()

	cart, err := fx.service.RemoveItem(ctx, "line-9")
	require.NoError(t, err)
	assert.Zero(t, cart.ItemCount())
}

func TestCartService_RemoveItem_Failure(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.carts.EXPECT().RemoveItem(ctx, "line-9").Return(errors.New("boom"))
	fx.notifier.EXPECT().Error(ctx, "Failed to remove item").Return()

	_, err := fx.service.RemoveItem(ctx, "line-9")
	assert.Error(t, err)
}

func TestCartService_ClearCart(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.carts.EXPECT().ClearCart(ctx).Return(nil)

	require.NoError(t, fx.service.ClearCart(ctx))
}
