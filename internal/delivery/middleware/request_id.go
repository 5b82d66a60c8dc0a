// Package middleware contains echo middleware shared by every HTTP delivery.
package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "quickdash/internal/delivery/context"
	"quickdash/internal/domain/entity"
	"quickdash/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware generates or extracts a unique Request ID for each request and creates a request-scoped logger
type RequestIDMiddleware struct {
	logger    *slog.Logger
	sessionID string
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger, store repository.StateStore) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger:    logger,
		sessionID: store.SessionID(),
	}
}

// Process handles the generation or extraction of the Request ID and creates a logger
// carrying the request and session ids
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		reqLogger := m.logger.With(
			slog.String("request_id", requestID),
			slog.String("session_id", m.sessionID),
		)

		ctx := c.Request().Context()
		ctx = deliverycontext.WithRequestID(ctx, requestID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)

		if scope := strings.TrimSpace(c.Request().Header.Get(deliverycontext.HeaderXPageScope)); scope != "" {
			ctx = deliverycontext.WithPageScope(ctx, entity.PageScope(strings.ToLower(scope)))
		}

		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
