package kv

import (
	"context"

	"quickdash/internal/domain/entity"
	"quickdash/internal/domain/repository"

	"github.com/pkg/errors"
)

// warehouseCache implements the domain.WarehouseCache interface.
type warehouseCache struct {
	store repository.StateStore
}

// NewWarehouseCache is the constructor for warehouseCache.
func NewWarehouseCache(store repository.StateStore) repository.WarehouseCache {
	return &warehouseCache{store: store}
}

func (c *warehouseCache) Load(ctx context.Context) (*entity.ResolvedWarehouse, error) {
	values, err := c.store.GetMany(ctx, warehouseKeys...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cached warehouse")
	}

	return toWarehouseDomain(values), nil
}

func (c *warehouseCache) Store(ctx context.Context, resolved entity.ResolvedWarehouse) error {
	if resolved.WarehouseID == "" {
		return errors.New("cannot cache an empty warehouse id")
	}

	return errors.Wrap(c.store.Set(ctx, fromWarehouseDomain(resolved)), "failed to cache warehouse")
}

func (c *warehouseCache) Invalidate(ctx context.Context) error {
	return errors.Wrap(c.store.Delete(ctx, warehouseKeys...), "failed to invalidate warehouse cache")
}
