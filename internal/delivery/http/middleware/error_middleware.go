// Package middleware contains the echo middleware of the local HTTP surface.
package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "quickdash/internal/delivery/context"
	"quickdash/internal/delivery/http/response"
	"quickdash/internal/domain/entity"
	domainerrors "quickdash/internal/domain/errors"
	"quickdash/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware renders errors returned by handlers
type ErrorMiddleware struct {
	auth   usecase.AuthUsecase
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(auth usecase.AuthUsecase, logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		auth:   auth,
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		var data any
		if errors.Is(err, domainerrors.ErrAuthExpired) {
			data = m.authExpiredAction(c)
		}

		m.write(c, logger, appErr.HTTPCode(), response.Response{
			Success: false,
			Code:    appErr.HTTPCode(),
			Message: appErr.Message(),
			Data:    data,
			Error: &response.ErrorInfo{
				Code:    appErr.ErrorCode(),
				Details: appErr.Details(),
			},
		})

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if text, ok := httpErr.Message.(string); ok {
			message = text
		}

		m.write(c, logger, httpErr.Code, response.Response{
			Success: false,
			Code:    httpErr.Code,
			Message: message,
			Error: &response.ErrorInfo{
				Code:    "HTTP_ERROR",
				Details: message,
			},
		})

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	m.write(c, logger, http.StatusInternalServerError, response.Response{
		Success: false,
		Code:    http.StatusInternalServerError,
		Message: domainerrors.ErrInternalError.Message(),
		Error: &response.ErrorInfo{
			Code:    domainerrors.ErrInternalError.ErrorCode(),
			Details: err.Error(),
		},
	})
}

// authExpiredAction tells the UI collaborator how to recover from an expired session.
func (m *ErrorMiddleware) authExpiredAction(c echo.Context) map[string]entity.AuthFailureAction {
	ctx := c.Request().Context()

	action, err := m.auth.HandleAuthExpired(ctx, deliverycontext.GetPageScope(ctx))
	if err != nil {
		m.logger.Warn("Failed to decide auth expiry action", slog.Any("error", err))
		action = entity.AuthActionNone
	}

	return map[string]entity.AuthFailureAction{"action": action}
}

func (m *ErrorMiddleware) write(c echo.Context, logger *slog.Logger, status int, body response.Response) {
	if err := c.JSON(status, body); err != nil {
		logger.Error("Failed to write error response", slog.Any("error", err))
	}
}
