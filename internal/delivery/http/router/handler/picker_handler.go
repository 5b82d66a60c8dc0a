package handler

import (
	"log/slog"
	"net/http"

	"quickdash/internal/delivery/http/response"
	"quickdash/internal/domain/entity"
	domainerrors "quickdash/internal/domain/errors"
	"quickdash/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PickerHandlerParams holds dependencies for PickerHandler, injected by Fx.
type PickerHandlerParams struct {
	fx.In

	PickerUC usecase.PickerUsecase
	Logger   *slog.Logger
}

// PickerHandler drives map picker sessions.
type PickerHandler struct {
	pickerUC usecase.PickerUsecase
	logger   *slog.Logger
}

// NewPickerHandler is the constructor for PickerHandler
func NewPickerHandler(params PickerHandlerParams) *PickerHandler {
	return &PickerHandler{
		pickerUC: params.PickerUC,
		logger:   params.Logger,
	}
}

// OpenPickerRequest selects what confirming the picker does.
type OpenPickerRequest struct {
	Mode entity.PickerMode `json:"mode" validate:"omitempty,oneof=SERVICE PICKER"`
}

// MovePinRequest pans the pin.
type MovePinRequest struct {
	Latitude  float64 `json:"lat" validate:"latitude"`
	Longitude float64 `json:"lng" validate:"longitude"`
}

// PickerView is the current state of a picker session.
type PickerView struct {
	ID        string                `json:"id"`
	Mode      entity.PickerMode     `json:"mode"`
	Latitude  float64               `json:"lat"`
	Longitude float64               `json:"lng"`
	Address   *entity.GeocodedPlace `json:"address,omitempty"`
}

func newPickerView(session usecase.PickerSession) PickerView {
	lat, lng := session.Center()

	return PickerView{
		ID:        session.ID(),
		Mode:      session.Mode(),
		Latitude:  lat,
		Longitude: lng,
		Address:   session.Address(),
	}
}

// Open starts a picker session centered on the current location.
func (h *PickerHandler) Open(c echo.Context) error {
	var req OpenPickerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid picker mode")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	session, err := h.pickerUC.Open(c.Request().Context(), req.Mode)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, newPickerView(session), "")
}

// Get returns the pin and its latest geocoded address.
func (h *PickerHandler) Get(c echo.Context) error {
	session, err := h.session(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newPickerView(session), "")
}

// MovePin pans the pin; the address follows once geocoding settles.
func (h *PickerHandler) MovePin(c echo.Context) error {
	session, err := h.session(c)
	if err != nil {
		return err
	}

	var req MovePinRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pin position")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	session.MoveTo(req.Latitude, req.Longitude)

	return response.Success(c, http.StatusOK, newPickerView(session), "")
}

// Confirm closes the picker with the pinned location.
func (h *PickerHandler) Confirm(c echo.Context) error {
	session, err := h.session(c)
	if err != nil {
		return err
	}

	picked, err := session.Confirm(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, picked, "Location confirmed")
}

// Cancel closes the picker without a result.
func (h *PickerHandler) Cancel(c echo.Context) error {
	session, err := h.session(c)
	if err != nil {
		return err
	}

	session.Cancel()

	return c.NoContent(http.StatusNoContent)
}

func (h *PickerHandler) session(c echo.Context) (usecase.PickerSession, error) {
	id := c.Param("id")

	session, ok := h.pickerUC.Get(id)
	if !ok {
		return nil, domainerrors.ErrNotFound.WithDetails("picker " + id)
	}

	return session, nil
}
