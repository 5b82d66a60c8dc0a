package handler

import (
	"context"
	"net/http"
	"testing"

	"quickdash/internal/domain/entity"
	"quickdash/internal/infra/notification"
	mockUsecase "quickdash/internal/mocks/usecase"
	"quickdash/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionHandlerFixtures struct {
	echo     *echo.Echo
	sessions *mockUsecase.MockSessionUsecase
	toasts   *notification.ToastNotifier
}

func createTestSessionHandler(t *testing.T) sessionHandlerFixtures {
	e, _ := newTestEcho(t)
	sessions := mockUsecase.NewMockSessionUsecase(t)
	toasts := notification.NewToastNotifier(newDiscardLogger())

	h := NewSessionHandler(SessionHandlerParams{SessionUC: sessions, Toasts: toasts, Logger: newDiscardLogger()})
	e.GET("/health", HealthCheck)
	e.GET("/session", h.GetSession)
	e.POST("/session/reload", h.Reload)
	e.GET("/notifications", h.GetNotifications)

	return sessionHandlerFixtures{echo: e, sessions: sessions, toasts: toasts}
}

func TestSessionHandler_Reload_DefaultsReason(t *testing.T) {
	fx := createTestSessionHandler(t)

	fx.sessions.EXPECT().Reload(mock.Anything, "manual reload").Return(nil)
	fx.sessions.EXPECT().Status(mock.Anything).Return(&usecase.SessionStatus{
		SessionID:  "tab-a",
		Reloads:    1,
		LastReason: "manual reload",
		Location:   entity.NoLocation,
	}, nil)

	rec, env := doRequest(t, fx.echo, http.MethodPost, "/session/reload", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	status := decodeData[usecase.SessionStatus](t, env)
	assert.Equal(t, "tab-a", status.SessionID)
	assert.Equal(t, 1, status.Reloads)
}

func TestSessionHandler_Reload_WithReason(t *testing.T) {
	fx := createTestSessionHandler(t)

	fx.sessions.EXPECT().Reload(mock.Anything, "auth expired").Return(nil)
	fx.sessions.EXPECT().Status(mock.Anything).Return(&usecase.SessionStatus{SessionID: "tab-a"}, nil)

	rec, _ := doRequest(t, fx.echo, http.MethodPost, "/session/reload", `{"reason":"auth expired"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionHandler_GetNotifications(t *testing.T) {
	fx := createTestSessionHandler(t)
	ctx := context.Background()

	fx.toasts.Success(ctx, "Item added to cart")
	fx.toasts.Warning(ctx, "Your cart items are from a different store.")

	rec, env := doRequest(t, fx.echo, http.MethodGet, "/notifications", "")

	require.Equal(t, http.StatusOK, rec.Code)
	toasts := decodeData[[]notification.Toast](t, env)
	require.Len(t, toasts, 2)
	assert.Equal(t, notification.LevelSuccess, toasts[0].Level)
	assert.Equal(t, "Your cart items are from a different store.", toasts[1].Message)
}

func TestHealthCheck(t *testing.T) {
	fx := createTestSessionHandler(t)

	rec, _ := doRequest(t, fx.echo, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}
