// Package storage implements the persisted client state shared by every session of
// the same origin.
package storage

import (
	"context"
	"log/slog"

	"quickdash/config"
	"quickdash/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for the StateStore, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewStateStore creates a StateStore based on configuration. Each process gets a
// fresh session id.
func NewStateStore(params StoreParams) (repository.StateStore, error) {
	cfg := params.Config.Storage
	logger := params.Logger
	sessionID := uuid.NewString()

	var store repository.StateStore
	var err error

	switch cfg.Provider {
	case config.StorageProviderMemory, "":
		logger.Info("Using in-memory state store, state is not shared")

		store = NewMemoryStore(NewMemoryBackend(), sessionID)

	case config.StorageProviderFile:
		logger.Info("Using file state store", slog.String("path", cfg.Path))

		store, err = NewFileStore(cfg.Path, sessionID, logger)
		if err != nil {
			return nil, err
		}

	case config.StorageProviderRedis:
		logger.Info("Using redis state store",
			slog.String("addr", cfg.RedisAddr),
			slog.String("channel", cfg.Channel),
		)

		store, err = NewRedisStore(params.Ctx, RedisOptions{
			Addr:      cfg.RedisAddr,
			Password:  cfg.RedisPassword,
			DB:        cfg.RedisDB,
			KeyPrefix: cfg.KeyPrefix,
			Channel:   cfg.Channel,
		}, sessionID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown storage provider: %s", cfg.Provider)
	}

	logger.Info("Session started", slog.String("session_id", sessionID))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing StateStore")

			return store.Close()
		},
	})

	return store, nil
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewStateStore),
)
