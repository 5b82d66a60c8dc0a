package handler

import (
	"net/http"
	"testing"

	"quickdash/internal/domain/entity"
	domainerrors "quickdash/internal/domain/errors"
	mockUsecase "quickdash/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type authHandlerFixtures struct {
	echo *echo.Echo
	auth *mockUsecase.MockAuthUsecase
}

func createTestAuthHandler(t *testing.T) authHandlerFixtures {
	e, _ := newTestEcho(t)
	auth := mockUsecase.NewMockAuthUsecase(t)

	h := NewAuthHandler(AuthHandlerParams{AuthUC: auth, Logger: newDiscardLogger()})
	e.POST("/auth/otp", h.SendOTP)
	e.POST("/auth/verify", h.VerifyOTP)
	e.POST("/auth/logout", h.Logout)
	e.GET("/auth/status", h.Status)

	return authHandlerFixtures{echo: e, auth: auth}
}

func TestAuthHandler_SendOTP(t *testing.T) {
	fx := createTestAuthHandler(t)

	fx.auth.EXPECT().SendOTP(mock.Anything, "9876543210").Return(&entity.OTPChallenge{Phone: "9876543210"}, nil)

	rec, env := doRequest(t, fx.echo, http.MethodPost, "/auth/otp", `{"phone":"9876543210"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OTP sent", env.Message)
}

func TestAuthHandler_SendOTP_RejectsShortPhone(t *testing.T) {
	fx := createTestAuthHandler(t)

	rec, env := doRequest(t, fx.echo, http.MethodPost, "/auth/otp", `{"phone":"123"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestAuthHandler_VerifyOTP(t *testing.T) {
	fx := createTestAuthHandler(t)

	fx.auth.EXPECT().VerifyOTP(mock.Anything, "9876543210", "123456").Return(nil)
	fx.auth.EXPECT().VerifyOTP(mock.Anything, "9876543210", "12ab").Return(domainerrors.ErrInvalidOTP)

	rec, env := doRequest(t, fx.echo, http.MethodPost, "/auth/verify", `{"phone":"9876543210","otp":"123456"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeData[AuthStatusResponse](t, env).Authenticated)

	rec, env = doRequest(t, fx.echo, http.MethodPost, "/auth/verify", `{"phone":"9876543210","otp":"12ab"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_OTP", env.Error.Code)
}

func TestAuthHandler_LogoutAndStatus(t *testing.T) {
	fx := createTestAuthHandler(t)

	fx.auth.EXPECT().Logout(mock.Anything).Return(nil)
	fx.auth.EXPECT().IsAuthenticated(mock.Anything).Return(false, nil)

	rec, _ := doRequest(t, fx.echo, http.MethodPost, "/auth/logout", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	_, env := doRequest(t, fx.echo, http.MethodGet, "/auth/status", "")
	assert.False(t, decodeData[AuthStatusResponse](t, env).Authenticated)
}
