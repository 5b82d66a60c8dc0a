package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"quickdash/internal/delivery/http/response"
	"quickdash/internal/domain/entity"
	"quickdash/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC    usecase.LocationUsecase
	WarehouseUC   usecase.WarehouseUsecase
	GeolocationUC usecase.GeolocationUsecase
	Logger        *slog.Logger
}

// LocationHandler exposes the location context and warehouse resolution.
type LocationHandler struct {
	locationUC    usecase.LocationUsecase
	warehouseUC   usecase.WarehouseUsecase
	geolocationUC usecase.GeolocationUsecase
	logger        *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC:    params.LocationUC,
		warehouseUC:   params.WarehouseUC,
		geolocationUC: params.GeolocationUC,
		logger:        params.Logger,
	}
}

// LocationResponse is the effective location together with its navbar label.
type LocationResponse struct {
	Location entity.LocationRecord `json:"location"`
	Display  entity.DisplayLabel   `json:"display"`
}

// GetLocation returns the effective location record.
func (h *LocationHandler) GetLocation(c echo.Context) error {
	ctx := c.Request().Context()

	record, err := h.locationUC.GetEffectiveLocation(ctx)
	if err != nil {
		return err
	}

	label, err := h.locationUC.GetDisplayLabel(ctx)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, LocationResponse{Location: record, Display: label}, "")
}

// GetDisplayLabel returns what the navbar should show.
func (h *LocationHandler) GetDisplayLabel(c echo.Context) error {
	label, err := h.locationUC.GetDisplayLabel(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, label, "")
}

// SetBrowsing stores a browsing location picked by GPS or the map.
func (h *LocationHandler) SetBrowsing(c echo.Context) error {
	var req usecase.BrowsingInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid browsing location")
	}

	if err := h.locationUC.SetBrowsingLocation(c.Request().Context(), &req); err != nil {
		return err
	}

	return h.GetLocation(c)
}

// SetDelivery stores an address object from the address book as the delivery location.
func (h *LocationHandler) SetDelivery(c echo.Context) error {
	var address map[string]any
	if err := c.Bind(&address); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address object")
	}

	delivery, err := h.locationUC.SetDeliveryAddress(c.Request().Context(), address)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, delivery, "Delivery location updated")
}

// ClearLocation wipes the location context.
func (h *LocationHandler) ClearLocation(c echo.Context) error {
	if err := h.locationUC.Clear(c.Request().Context()); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// DetectLocation runs GPS detection and stores the result as browsing location.
func (h *LocationHandler) DetectLocation(c echo.Context) error {
	browsing, err := h.geolocationUC.DetectAndSetBrowsing(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, browsing, "Location detected")
}

// GetWarehouse resolves the warehouse for the effective location, or for the
// delivery address when checkout=true.
func (h *LocationHandler) GetWarehouse(c echo.Context) error {
	checkout := false
	if raw := c.QueryParam("checkout"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "checkout must be a boolean")
		}
		checkout = parsed
	}

	ctx := c.Request().Context()

	var (
		resolved *entity.ResolvedWarehouse
		err      error
	)
	if checkout {
		resolved, err = h.warehouseUC.ResolveForCheckout(ctx)
	} else {
		resolved, err = h.warehouseUC.ResolveEffective(ctx)
	}
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, resolved, "")
}
