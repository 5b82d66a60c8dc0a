package handler

import (
	"log/slog"
	"net/http"

	"quickdash/internal/delivery/http/response"
	"quickdash/internal/domain/entity"
	"quickdash/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC  usecase.CartUsecase
	GuardUC usecase.CartGuardUsecase
	Logger  *slog.Logger
}

// CartHandler exposes cart mutations and the consistency guard.
type CartHandler struct {
	cartUC  usecase.CartUsecase
	guardUC usecase.CartGuardUsecase
	logger  *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC:  params.CartUC,
		guardUC: params.GuardUC,
		logger:  params.Logger,
	}
}

// ConflictRequest carries the user's answer to a cart conflict.
type ConflictRequest struct {
	Decision entity.ConflictDecision `json:"decision" validate:"required,oneof=CLEAR_CART KEEP_CART"`
}

// CountResponse feeds the cart badge.
type CountResponse struct {
	Count int `json:"count"`
}

// GetCart returns the current cart.
func (h *CartHandler) GetCart(c echo.Context) error {
	cart, err := h.cartUC.GetCart(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, cart, "")
}

// AddItem adds a product to the cart of the resolved warehouse.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req usecase.AddToCartInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	cart, err := h.cartUC.AddToCart(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, cart, "Item added to cart")
}

// RemoveItem removes a line from the cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	cart, err := h.cartUC.RemoveItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, cart, "Item removed")
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	if err := h.cartUC.ClearCart(c.Request().Context()); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// GetCount returns the cart badge count.
func (h *CartHandler) GetCount(c echo.Context) error {
	count, err := h.cartUC.ItemCount(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, CountResponse{Count: count}, "")
}

// GetStatus returns the guard status.
func (h *CartHandler) GetStatus(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.guardUC.Status(), "")
}

// Validate runs a cart validation for the current location.
func (h *CartHandler) Validate(c echo.Context) error {
	status, err := h.guardUC.Validate(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, status, "")
}

// ResolveConflict applies the user's decision to a pending conflict.
func (h *CartHandler) ResolveConflict(c echo.Context) error {
	var req ConflictRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid conflict decision")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	status, err := h.guardUC.ResolveConflict(c.Request().Context(), req.Decision)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, status, "")
}
