package handler

import (
	"log/slog"
	"net/http"

	"quickdash/internal/delivery/http/response"
	"quickdash/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler exposes the OTP sign-in flow.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// SendOTPRequest asks for a one-time password.
type SendOTPRequest struct {
	Phone string `json:"phone" validate:"required,min=10,max=15"`
}

// VerifyOTPRequest exchanges a one-time password for tokens.
type VerifyOTPRequest struct {
	Phone string `json:"phone" validate:"required,min=10,max=15"`
	OTP   string `json:"otp" validate:"required"`
}

// AuthStatusResponse tells whether the session is signed in.
type AuthStatusResponse struct {
	Authenticated bool `json:"authenticated"`
}

// SendOTP requests a one-time password for a phone number.
func (h *AuthHandler) SendOTP(c echo.Context) error {
	var req SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid phone number")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	challenge, err := h.authUC.SendOTP(c.Request().Context(), req.Phone)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, challenge, "OTP sent")
}

// VerifyOTP signs the customer in.
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid OTP")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.authUC.VerifyOTP(c.Request().Context(), req.Phone, req.OTP); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, AuthStatusResponse{Authenticated: true}, "Signed in")
}

// Logout signs the customer out.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authUC.Logout(c.Request().Context()); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Status reports whether the session is signed in.
func (h *AuthHandler) Status(c echo.Context) error {
	ok, err := h.authUC.IsAuthenticated(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, AuthStatusResponse{Authenticated: ok}, "")
}
