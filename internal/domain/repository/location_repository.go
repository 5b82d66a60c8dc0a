package repository

import (
	"context"

	"quickdash/internal/domain/entity"
)

// LocationRepository persists the browsing and delivery records independently.
type LocationRepository interface {
	// LoadBrowsing returns the stored browsing location, or nil when none (or a malformed one) is stored.
	LoadBrowsing(ctx context.Context) (*entity.BrowsingLocation, error)

	// SaveBrowsing supersedes the browsing record. It never touches the delivery record.
	SaveBrowsing(ctx context.Context, location entity.BrowsingLocation) error

	// LoadDelivery returns the stored delivery location, or nil when none is stored.
	LoadDelivery(ctx context.Context) (*entity.DeliveryLocation, error)

	// SaveDelivery supersedes the delivery record. It never touches the browsing record.
	SaveDelivery(ctx context.Context, location entity.DeliveryLocation) error

	// DeleteDelivery removes only the delivery record.
	DeleteDelivery(ctx context.Context) error

	// Clear removes both records.
	Clear(ctx context.Context) error
}
