package impl

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"quickdash/config"
	deliverycontext "quickdash/internal/delivery/context"
	"quickdash/internal/domain/entity"
	domainerrors "quickdash/internal/domain/errors"
	"quickdash/internal/domain/repository"
	"quickdash/internal/domain/service"
	"quickdash/internal/usecase"

	"github.com/pkg/errors"
)

// warehouseResolver implements the WarehouseUsecase interface. It is the only
// writer of the warehouse cache.
type warehouseResolver struct {
	locationRepo repository.LocationRepository
	gateway      service.WarehouseGateway
	cache        repository.WarehouseCache
	cacheTTL     time.Duration
	now          func() time.Time
	logger       *slog.Logger

	// generation moves on every resolution and invalidation; a resolution only
	// writes the cache if no newer one started meanwhile.
	generation atomic.Uint64
}

// NewWarehouseResolver is the constructor for warehouseResolver.
func NewWarehouseResolver(
	locationRepo repository.LocationRepository,
	gateway service.WarehouseGateway,
	cache repository.WarehouseCache,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.WarehouseUsecase {
	var ttl time.Duration
	if cfg.Warehouse != nil {
		ttl = cfg.Warehouse.CacheTTL
	}

	return &warehouseResolver{
		locationRepo: locationRepo,
		gateway:      gateway,
		cache:        cache,
		cacheTTL:     ttl,
		now:          time.Now,
		logger:       logger,
	}
}

func (r *warehouseResolver) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

func (r *warehouseResolver) Resolve(ctx context.Context, record entity.LocationRecord) (*entity.ResolvedWarehouse, error) {
	point, ok := record.Point()
	if !ok {
		return nil, domainerrors.ErrLocationRequired
	}

	generation := r.generation.Add(1)
	key := record.CacheKey()

	result, err := r.gateway.FindServiceable(ctx, point.Lat(), point.Lon(), record.City())
	if err != nil {
		if errors.Is(err, domainerrors.ErrAuthExpired) {
			return nil, err
		}

		r.log(ctx).Warn("Warehouse resolution failed", slog.String("key", key), slog.Any("error", err))

		return nil, domainerrors.ErrResolutionFailed.WithDetails(err.Error())
	}

	if !result.Serviceable || result.WarehouseID == "" {
		// A previous id must never outlive a negative answer.
		if err := r.cache.Invalidate(ctx); err != nil {
			return nil, errors.Wrap(err, "failed to drop cached warehouse")
		}

		r.log(ctx).Info("Location not serviceable", slog.String("key", key))

		return nil, domainerrors.ErrNotServiceable.WithDetails(result.Message)
	}

	resolved := entity.ResolvedWarehouse{
		WarehouseID: result.WarehouseID,
		Serviceable: true,
		CacheKey:    key,
		ResolvedAt:  r.now(),
	}

	if r.generation.Load() != generation {
		r.log(ctx).Debug("Discarding stale warehouse resolution",
			slog.String("key", key),
			slog.Uint64("generation", generation),
		)

		return &resolved, nil
	}

	if err := r.cache.Store(ctx, resolved); err != nil {
		return nil, errors.Wrap(err, "failed to cache warehouse")
	}

	r.log(ctx).Info("Warehouse resolved",
		slog.String("key", key),
		slog.String("warehouse_id", resolved.WarehouseID),
	)

	return &resolved, nil
}

// ResolveEffective serves browsing-time lookups and prefers a matching cache entry.
func (r *warehouseResolver) ResolveEffective(ctx context.Context) (*entity.ResolvedWarehouse, error) {
	record, err := effectiveLocation(ctx, r.locationRepo)
	if err != nil {
		return nil, err
	}
	if record.IsNone() {
		return nil, domainerrors.ErrLocationRequired
	}

	if id, ok, err := r.CachedWarehouseID(ctx, record); err != nil {
		return nil, err
	} else if ok {
		return &entity.ResolvedWarehouse{WarehouseID: id, Serviceable: true, CacheKey: record.CacheKey()}, nil
	}

	return r.Resolve(ctx, record)
}

// ResolveForCheckout ignores any browsing location: checkout commits to an address.
func (r *warehouseResolver) ResolveForCheckout(ctx context.Context) (*entity.ResolvedWarehouse, error) {
	delivery, err := r.locationRepo.LoadDelivery(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load delivery location")
	}
	if delivery == nil {
		return nil, domainerrors.ErrDeliveryAddressRequired
	}

	return r.Resolve(ctx, entity.NewDeliveryRecord(*delivery))
}

func (r *warehouseResolver) CachedWarehouseID(ctx context.Context, record entity.LocationRecord) (string, bool, error) {
	cached, err := r.cache.Load(ctx)
	if err != nil {
		return "", false, errors.Wrap(err, "failed to load cached warehouse")
	}
	if cached == nil || cached.CacheKey == "" || cached.CacheKey != record.CacheKey() {
		return "", false, nil
	}
	if r.cacheTTL > 0 && r.now().Sub(cached.ResolvedAt) > r.cacheTTL {
		return "", false, nil
	}

	return cached.WarehouseID, true, nil
}

func (r *warehouseResolver) Remember(ctx context.Context, record entity.LocationRecord, warehouseID string) error {
	if warehouseID == "" || record.IsNone() {
		return nil
	}

	r.generation.Add(1)

	return errors.Wrap(r.cache.Store(ctx, entity.ResolvedWarehouse{
		WarehouseID: warehouseID,
		Serviceable: true,
		CacheKey:    record.CacheKey(),
		ResolvedAt:  r.now(),
	}), "failed to cache warehouse")
}

func (r *warehouseResolver) Invalidate(ctx context.Context) error {
	r.generation.Add(1)

	return errors.Wrap(r.cache.Invalidate(ctx), "failed to invalidate warehouse cache")
}

func (r *warehouseResolver) Reset() {
	r.generation.Add(1)
}
