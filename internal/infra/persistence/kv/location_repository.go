// Package kv implements the domain repositories on top of the shared StateStore.
package kv

import (
	"context"

	"quickdash/internal/domain/entity"
	domainerrors "quickdash/internal/domain/errors"
	"quickdash/internal/domain/repository"

	"github.com/pkg/errors"
)

// locationRepository implements the domain.LocationRepository interface.
type locationRepository struct {
	store repository.StateStore
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(store repository.StateStore) repository.LocationRepository {
	return &locationRepository{store: store}
}

func (repo *locationRepository) LoadBrowsing(ctx context.Context) (*entity.BrowsingLocation, error) {
	values, err := repo.store.GetMany(ctx, browsingKeys...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load browsing location")
	}

	return toBrowsingDomain(values), nil
}

// SaveBrowsing refuses malformed coordinates; nothing is written in that case.
func (repo *locationRepository) SaveBrowsing(ctx context.Context, location entity.BrowsingLocation) error {
	if !entity.ValidCoordinates(location.Latitude, location.Longitude) {
		return domainerrors.ErrInvalidInput.WithDetails("browsing coordinates out of range")
	}

	if err := repo.store.Set(ctx, fromBrowsingDomain(location)); err != nil {
		return errors.Wrap(err, "failed to save browsing location")
	}

	return nil
}

func (repo *locationRepository) LoadDelivery(ctx context.Context) (*entity.DeliveryLocation, error) {
	values, err := repo.store.GetMany(ctx, deliveryKeys...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load delivery location")
	}

	return toDeliveryDomain(values), nil
}

func (repo *locationRepository) SaveDelivery(ctx context.Context, location entity.DeliveryLocation) error {
	if location.AddressID == "" {
		return domainerrors.ErrInvalidInput.WithDetails("delivery address id is required")
	}
	if !entity.ValidCoordinates(location.Latitude, location.Longitude) {
		return domainerrors.ErrInvalidInput.WithDetails("delivery coordinates out of range")
	}

	values, err := fromDeliveryDomain(location)
	if err != nil {
		return errors.Wrap(err, "failed to encode delivery location")
	}

	if err := repo.store.Set(ctx, values); err != nil {
		return errors.Wrap(err, "failed to save delivery location")
	}

	return nil
}

func (repo *locationRepository) DeleteDelivery(ctx context.Context) error {
	return errors.Wrap(repo.store.Delete(ctx, deliveryKeys...), "failed to delete delivery location")
}

func (repo *locationRepository) Clear(ctx context.Context) error {
	keys := append(append([]string{}, browsingKeys...), deliveryKeys...)

	return errors.Wrap(repo.store.Delete(ctx, keys...), "failed to clear locations")
}
