package usecase

import (
	"context"

	"quickdash/internal/domain/entity"
)

// BrowsingInput represents a coarse location picked by GPS or the map.
// Coordinates are pointers so that a missing value can be told apart from zero.
type BrowsingInput struct {
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
	CityName         string   `json:"city_name,omitempty"`
	AreaLabel        string   `json:"area_label,omitempty"`
	FormattedAddress string   `json:"formatted_address,omitempty"`
}

// LocationUsecase is the single source of truth for where the session operates.
type LocationUsecase interface {
	// SetBrowsingLocation stores the browsing record. Invalid coordinates are logged
	// and dropped; only storage and publishing failures are returned.
	SetBrowsingLocation(ctx context.Context, input *BrowsingInput) error

	// SetDeliveryAddress normalizes an upstream address object and stores it as the
	// delivery record. The browsing record is left untouched.
	SetDeliveryAddress(ctx context.Context, address map[string]any) (*entity.DeliveryLocation, error)

	// UseAddress stores an already normalized saved address as the delivery record.
	UseAddress(ctx context.Context, address *entity.CustomerAddress) (*entity.DeliveryLocation, error)

	// ForgetAddress drops the delivery record if it points at addressID.
	ForgetAddress(ctx context.Context, addressID string) (bool, error)

	GetEffectiveLocation(ctx context.Context) (entity.LocationRecord, error)
	GetDeliveryLocation(ctx context.Context) (*entity.DeliveryLocation, error)
	GetDisplayLabel(ctx context.Context) (entity.DisplayLabel, error)

	// Clear wipes both records and reloads the session.
	Clear(ctx context.Context) error
}
