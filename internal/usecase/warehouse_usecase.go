package usecase

import (
	"context"

	"quickdash/internal/domain/entity"
)

// WarehouseUsecase translates location records into fulfillment warehouse decisions.
type WarehouseUsecase interface {
	// Resolve asks the backend for the warehouse serving record.
	// It returns ErrNotServiceable or ErrResolutionFailed, never both.
	Resolve(ctx context.Context, record entity.LocationRecord) (*entity.ResolvedWarehouse, error)

	// ResolveEffective resolves the effective location (delivery over browsing).
	ResolveEffective(ctx context.Context) (*entity.ResolvedWarehouse, error)

	// ResolveForCheckout always resolves the delivery record.
	ResolveForCheckout(ctx context.Context) (*entity.ResolvedWarehouse, error)

	// CachedWarehouseID returns the cached id only when it was resolved for record.
	CachedWarehouseID(ctx context.Context, record entity.LocationRecord) (string, bool, error)

	// Remember caches a warehouse id resolved elsewhere (cart validation) for record.
	Remember(ctx context.Context, record entity.LocationRecord, warehouseID string) error

	// Invalidate drops the cached warehouse and discards in-flight resolutions.
	Invalidate(ctx context.Context) error

	// Reset discards in-flight resolutions without touching the persisted cache.
	Reset()
}
