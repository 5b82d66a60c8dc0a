package handler

import (
	"log/slog"
	"net/http"

	"quickdash/internal/delivery/http/response"
	"quickdash/internal/domain/service"
	"quickdash/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
	Logger    *slog.Logger
}

// AddressHandler exposes the address book.
type AddressHandler struct {
	addressUC usecase.AddressUsecase
	logger    *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
		logger:    params.Logger,
	}
}

// ListAddresses returns the saved addresses.
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	addresses, err := h.addressUC.List(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, addresses, "")
}

// CreateAddress saves a new address. The usecase validates the payload.
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	var req service.CreateAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address")
	}

	result, err := h.addressUC.Create(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	message := "Address saved"
	if !result.Serviceable {
		message = result.Warning
	}

	return response.Success(c, http.StatusCreated, result, message)
}

// DeleteAddress removes a saved address.
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	if err := h.addressUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// SelectAddress makes a saved address the delivery location.
func (h *AddressHandler) SelectAddress(c echo.Context) error {
	delivery, err := h.addressUC.Select(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, delivery, "Delivery location updated")
}
