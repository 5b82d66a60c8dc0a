package usecase

import (
	"context"

	"quickdash/internal/domain/entity"
)

// PickerSession is one open map picker. Wait returns its outcome exactly once
// the picker is confirmed or cancelled.
type PickerSession interface {
	ID() string
	Mode() entity.PickerMode
	Center() (lat, lng float64)

	// MoveTo pans the pin; reverse geocoding is debounced.
	MoveTo(lat, lng float64)

	// Address returns the most recently geocoded place, if any.
	Address() *entity.GeocodedPlace

	Confirm(ctx context.Context) (*entity.PickedLocation, error)
	Cancel()
	Wait(ctx context.Context) (*entity.PickedLocation, error)
}

// PickerUsecase opens map picker sessions.
type PickerUsecase interface {
	Open(ctx context.Context, mode entity.PickerMode) (PickerSession, error)
	Get(id string) (PickerSession, bool)
}
