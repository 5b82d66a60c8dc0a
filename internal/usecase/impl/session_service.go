package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "quickdash/internal/delivery/context"
	"quickdash/internal/domain/repository"
	"quickdash/internal/usecase"

	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface and is the session's Reloader.
type sessionService struct {
	store        repository.StateStore
	locationRepo repository.LocationRepository
	warehouses   usecase.WarehouseUsecase
	guard        usecase.CartGuardUsecase
	now          func() time.Time
	logger       *slog.Logger

	mu           sync.Mutex
	reloads      int
	lastReason   string
	lastReloadAt time.Time
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	store repository.StateStore,
	locationRepo repository.LocationRepository,
	warehouses usecase.WarehouseUsecase,
	guard usecase.CartGuardUsecase,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		store:        store,
		locationRepo: locationRepo,
		warehouses:   warehouses,
		guard:        guard,
		now:          time.Now,
		logger:       logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Reload drops every in-memory result and rebuilds the view from persisted state,
// like a page reload does for a browser tab.
func (srv *sessionService) Reload(ctx context.Context, reason string) error {
	srv.guard.Reset()
	srv.warehouses.Reset()

	srv.mu.Lock()
	srv.reloads++
	srv.lastReason = reason
	srv.lastReloadAt = srv.now()
	count := srv.reloads
	srv.mu.Unlock()

	record, err := effectiveLocation(ctx, srv.locationRepo)
	if err != nil {
		return errors.Wrap(err, "failed to re-hydrate location")
	}

	srv.log(ctx).Info("Session reloaded",
		slog.String("reason", reason),
		slog.Int("reloads", count),
		slog.String("location", string(record.Kind)),
	)

	if record.IsNone() {
		return nil
	}

	if _, err := srv.guard.Validate(ctx); err != nil {
		srv.log(ctx).Warn("Cart validation after reload failed", slog.Any("error", err))
	}

	return nil
}

func (srv *sessionService) Status(ctx context.Context) (*usecase.SessionStatus, error) {
	record, err := effectiveLocation(ctx, srv.locationRepo)
	if err != nil {
		return nil, err
	}

	status := &usecase.SessionStatus{
		SessionID: srv.store.SessionID(),
		Location:  record,
		Guard:     srv.guard.Status(),
	}

	if !record.IsNone() {
		id, ok, err := srv.warehouses.CachedWarehouseID(ctx, record)
		if err != nil {
			return nil, err
		}
		if ok {
			status.Warehouse = id
		}
	}

	srv.mu.Lock()
	status.Reloads = srv.reloads
	status.LastReason = srv.lastReason
	status.LastReloadAt = srv.lastReloadAt
	srv.mu.Unlock()

	return status, nil
}
