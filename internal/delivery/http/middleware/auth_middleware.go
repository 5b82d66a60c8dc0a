package middleware

import (
	"log/slog"

	deliverycontext "quickdash/internal/delivery/context"
	domainerrors "quickdash/internal/domain/errors"
	"quickdash/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware keeps the backend credentials fresh for the requests it wraps.
type AuthMiddleware struct {
	auth   usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(auth usecase.AuthUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{auth: auth, logger: logger}
}

// EnsureFresh refreshes a nearly expired access token before the handler talks to
// the backend. Only an expired session stops the request; other refresh failures
// are left to the reactive 401 path.
func (m *AuthMiddleware) EnsureFresh(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if err := m.auth.EnsureFresh(ctx); err != nil {
			if errors.Is(err, domainerrors.ErrAuthExpired) {
				return err
			}

			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Proactive token refresh failed", slog.Any("error", err))
		}

		return next(c)
	}
}

// RequireSignIn rejects guests with AUTH_EXPIRED so the UI can apply the expiry policy.
func (m *AuthMiddleware) RequireSignIn(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		signedIn, err := m.auth.IsAuthenticated(c.Request().Context())
		if err != nil {
			return err
		}
		if !signedIn {
			return domainerrors.ErrAuthExpired.WithDetails("sign in required")
		}

		return next(c)
	}
}
