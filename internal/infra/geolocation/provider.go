// Package geolocation provides the device position sources used for browsing locations.
package geolocation

import (
	"log/slog"

	"quickdash/config"
	"quickdash/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the PositionProvider, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewPositionProvider creates a PositionProvider based on configuration.
func NewPositionProvider(params Params) (service.PositionProvider, error) {
	cfg := params.Config.Geolocation

	switch cfg.Provider {
	case config.PositionProviderStatic, "":
		params.Logger.Info("Using static position provider",
			slog.Float64("lat", cfg.Latitude),
			slog.Float64("lng", cfg.Longitude),
		)

		return NewStaticProvider(cfg.Latitude, cfg.Longitude), nil

	case config.PositionProviderHTTP:
		if cfg.Endpoint == "" {
			return nil, errors.New("endpoint is required for http position provider")
		}
		params.Logger.Info("Using HTTP position provider", slog.String("endpoint", cfg.Endpoint))

		return NewHTTPProvider(cfg.Endpoint), nil

	default:
		return nil, errors.Errorf("unknown position provider: %s", cfg.Provider)
	}
}
