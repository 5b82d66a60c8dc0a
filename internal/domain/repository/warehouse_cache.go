package repository

import (
	"context"

	"quickdash/internal/domain/entity"
)

// WarehouseCache stores the last resolved warehouse id together with the key it was resolved for.
type WarehouseCache interface {
	// Load returns the cached resolution, or nil when nothing is cached.
	Load(ctx context.Context) (*entity.ResolvedWarehouse, error)

	Store(ctx context.Context, resolved entity.ResolvedWarehouse) error

	Invalidate(ctx context.Context) error
}
