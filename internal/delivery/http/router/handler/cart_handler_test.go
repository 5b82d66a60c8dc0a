package handler

import (
	"net/http"
	"testing"

	deliverycontext "quickdash/internal/delivery/context"
	"quickdash/internal/domain/entity"
	domainerrors "quickdash/internal/domain/errors"
	mockUsecase "quickdash/internal/mocks/usecase"
	"quickdash/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type cartHandlerFixtures struct {
	echo  *echo.Echo
	auth  *mockUsecase.MockAuthUsecase
	cart  *mockUsecase.MockCartUsecase
	guard *mockUsecase.MockCartGuardUsecase
}

func createTestCartHandler(t *testing.T) cartHandlerFixtures {
	e, auth := newTestEcho(t)
	cart := mockUsecase.NewMockCartUsecase(t)
	guard := mockUsecase.NewMockCartGuardUsecase(t)

	h := NewCartHandler(CartHandlerParams{CartUC: cart, GuardUC: guard, Logger: newDiscardLogger()})
	e.GET("/cart", h.GetCart)
	e.POST("/cart/items", h.AddItem)
	e.DELETE("/cart/items/:id", h.RemoveItem)
	e.DELETE("/cart", h.ClearCart)
	e.GET("/cart/count", h.GetCount)
	e.GET("/cart/status", h.GetStatus)
	e.POST("/cart/validate", h.Validate)
	e.POST("/cart/conflict", h.ResolveConflict)

	return cartHandlerFixtures{echo: e, auth: auth, cart: cart, guard: guard}
}

func TestCartHandler_AddItem(t *testing.T) {
	fx := createTestCartHandler(t)

	fx.cart.EXPECT().
		AddToCart(mock.Anything, &usecase.AddToCartInput{SKU: "SKU-1", Quantity: 2}).
		Return(&entity.CartSnapshot{WarehouseID: "W1", Items: []entity.CartItem{{ID: "item-1", SKU: "SKU-1", Quantity: 2}}}, nil)

	rec, env := doRequest(t, fx.echo, http.MethodPost, "/cart/items", `{"sku":"SKU-1","quantity":2}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "W1", decodeData[entity.CartSnapshot](t, env).WarehouseID)
}

func TestCartHandler_AddItem_RejectsMissingSKU(t *testing.T) {
	fx := createTestCartHandler(t)

	rec, env := doRequest(t, fx.echo, http.MethodPost, "/cart/items", `{"quantity":1}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	fx.cart.AssertNotCalled(t, "AddToCart", mock.Anything, mock.Anything)
}

func TestCartHandler_AddItem_LocationRequired(t *testing.T) {
	fx := createTestCartHandler(t)

	fx.cart.EXPECT().
		AddToCart(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrLocationRequired)

	rec, env := doRequest(t, fx.echo, http.MethodPost, "/cart/items", `{"sku":"SKU-1"}`)

	assert.Equal(t, http.StatusPreconditionRequired, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "LOCATION_REQUIRED", env.Error.Code)
}

func TestCartHandler_AuthExpiredCarriesAction(t *testing.T) {
	fx := createTestCartHandler(t)

	fx.cart.EXPECT().GetCart(mock.Anything).Return(nil, domainerrors.ErrAuthExpired)
	fx.auth.EXPECT().
		HandleAuthExpired(mock.Anything, entity.PageScope("checkout")).
		Return(entity.AuthActionReLogin, nil)

	rec, env := doRequest(t, fx.echo, http.MethodGet, "/cart", "", deliverycontext.HeaderXPageScope, "checkout")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "AUTH_EXPIRED", env.Error.Code)
	assert.Equal(t, map[string]string{"action": "RE_LOGIN"}, decodeData[map[string]string](t, env))
}

func TestCartHandler_GetCount(t *testing.T) {
	fx := createTestCartHandler(t)

	fx.cart.EXPECT().ItemCount(mock.Anything).Return(3, nil)

	rec, env := doRequest(t, fx.echo, http.MethodGet, "/cart/count", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, decodeData[CountResponse](t, env).Count)
}

func TestCartHandler_RemoveAndClear(t *testing.T) {
	fx := createTestCartHandler(t)

	fx.cart.EXPECT().RemoveItem(mock.Anything, "item-9").Return(&entity.CartSnapshot{}, nil)
	fx.cart.EXPECT().ClearCart(mock.Anything).Return(nil)

	rec, env := doRequest(t, fx.echo, http.MethodDelete, "/cart/items/item-9", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Item removed", env.Message)

	rec, _ = doRequest(t, fx.echo, http.MethodDelete, "/cart", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCartHandler_StatusAndValidate(t *testing.T) {
	fx := createTestCartHandler(t)

	fx.guard.EXPECT().Status().Return(entity.GuardStatus{State: entity.GuardStateConflict, Generation: 4})
	fx.guard.EXPECT().Validate(mock.Anything).Return(entity.GuardStatus{State: entity.GuardStateConsistent, Generation: 5}, nil)

	_, env := doRequest(t, fx.echo, http.MethodGet, "/cart/status", "")
	assert.Equal(t, entity.GuardStateConflict, decodeData[entity.GuardStatus](t, env).State)

	_, env = doRequest(t, fx.echo, http.MethodPost, "/cart/validate", "")
	status := decodeData[entity.GuardStatus](t, env)
	assert.Equal(t, entity.GuardStateConsistent, status.State)
	assert.Equal(t, uint64(5), status.Generation)
}

func TestCartHandler_ResolveConflict(t *testing.T) {
	fx := createTestCartHandler(t)

	fx.guard.EXPECT().
		ResolveConflict(mock.Anything, entity.ConflictDecisionClearCart).
		Return(entity.GuardStatus{State: entity.GuardStateConsistent}, nil)

	rec, env := doRequest(t, fx.echo, http.MethodPost, "/cart/conflict", `{"decision":"CLEAR_CART"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.GuardStateConsistent, decodeData[entity.GuardStatus](t, env).State)
}

func TestCartHandler_ResolveConflict_RejectsUnknownDecision(t *testing.T) {
	fx := createTestCartHandler(t)

	rec, env := doRequest(t, fx.echo, http.MethodPost, "/cart/conflict", `{"decision":"MERGE"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestCartHandler_ResolveConflict_NoPendingConflict(t *testing.T) {
	fx := createTestCartHandler(t)

	fx.guard.EXPECT().
		ResolveConflict(mock.Anything, entity.ConflictDecisionKeepCart).
		Return(entity.GuardStatus{}, domainerrors.ErrNoPendingConflict)

	rec, env := doRequest(t, fx.echo, http.MethodPost, "/cart/conflict", `{"decision":"KEEP_CART"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "NO_PENDING_CONFLICT", env.Error.Code)
}
