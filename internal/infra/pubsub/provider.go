// Package pubsub carries location-changed notifications between the components of a session.
package pubsub

import (
	"context"
	"log/slog"

	"quickdash/internal/domain/repository"
	"quickdash/internal/domain/service"

	"go.uber.org/fx"
)

// BusParams holds dependencies for the LocationEventBus, injected by Fx
type BusParams struct {
	fx.In

	Lc     fx.Lifecycle
	Logger *slog.Logger
	Store  repository.StateStore
}

// NewEventBus creates the session bus and closes it on shutdown.
func NewEventBus(params BusParams) service.LocationEventBus {
	logger := params.Logger
	bus := NewLocationEventBus(logger, params.Store.SessionID(), 0)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing LocationEventBus")

			return bus.Close()
		},
	})

	return bus
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventBus),
)
