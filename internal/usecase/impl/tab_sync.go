package impl

import (
	"context"
	"log/slog"
	"time"

	"quickdash/config"
	"quickdash/internal/domain/repository"
	"quickdash/internal/domain/service"
	"quickdash/internal/usecase"

	"github.com/bep/debounce"
	"github.com/pkg/errors"
)

const foreignLocationReason = "location changed in another session"

// tabSync implements the TabSyncUsecase interface.
type tabSync struct {
	store    repository.StateStore
	reloader service.Reloader
	enabled  bool
	debounce time.Duration
	logger   *slog.Logger

	// onWatching runs once the store subscription is live.
	onWatching func()
}

// NewTabSync is the constructor for tabSync.
func NewTabSync(store repository.StateStore, reloader service.Reloader, cfg *config.Config, logger *slog.Logger) usecase.TabSyncUsecase {
	return &tabSync{
		store:    store,
		reloader: reloader,
		enabled:  cfg.Sync.Enabled,
		debounce: cfg.Sync.Debounce,
		logger:   logger,
	}
}

// Watch reloads once per burst of foreign writes to the location keys. The other
// session's state is not merged: after the reload this session reads it as its own.
func (s *tabSync) Watch(ctx context.Context) error {
	if !s.enabled {
		s.logger.Info("Cross-session sync disabled")
		<-ctx.Done()

		return nil
	}

	changes, err := s.store.Watch(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to watch state store")
	}

	if s.onWatching != nil {
		s.onWatching()
	}

	debounced := debounce.New(s.debounce)
	reload := func() {
		if ctx.Err() != nil {
			return
		}

		if err := s.reloader.Reload(ctx, foreignLocationReason); err != nil {
			s.logger.Error("Reload after foreign write failed", slog.Any("error", err))
		}
	}

	for change := range changes {
		if !change.Foreign || !triggersReload(change.Key) {
			continue
		}

		s.logger.Info("Foreign location write detected",
			slog.String("key", change.Key),
			slog.String("writer", change.Writer),
		)
		debounced(reload)
	}

	return nil
}

func triggersReload(key string) bool {
	return key == repository.KeyDeliveryAddressID || key == repository.KeyBrowsingLatitude
}
