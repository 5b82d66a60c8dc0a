package handler

import (
	"log/slog"
	"net/http"

	"quickdash/internal/delivery/http/response"
	"quickdash/internal/infra/notification"
	"quickdash/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Toasts    *notification.ToastNotifier
	Logger    *slog.Logger
}

// SessionHandler exposes the session lifetime and its notifications.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	toasts    *notification.ToastNotifier
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		toasts:    params.Toasts,
		logger:    params.Logger,
	}
}

// ReloadRequest optionally names why the session is reloaded.
type ReloadRequest struct {
	Reason string `json:"reason"`
}

// HealthCheck handles health check requests
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetSession returns the session summary.
func (h *SessionHandler) GetSession(c echo.Context) error {
	status, err := h.sessionUC.Status(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, status, "")
}

// Reload rebuilds the session from persisted state.
func (h *SessionHandler) Reload(c echo.Context) error {
	var req ReloadRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reload request")
	}
	if req.Reason == "" {
		req.Reason = "manual reload"
	}

	if err := h.sessionUC.Reload(c.Request().Context(), req.Reason); err != nil {
		return err
	}

	return h.GetSession(c)
}

// GetNotifications returns the recent toasts, oldest first.
func (h *SessionHandler) GetNotifications(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.toasts.Recent(), "")
}
