package service

import (
	"context"

	"quickdash/internal/domain/entity"
)

// PositionProvider reads the device position. It must honour ctx deadlines.
type PositionProvider interface {
	CurrentPosition(ctx context.Context, accuracy entity.Accuracy) (*entity.PositionFix, error)
}

// ReverseGeocoder turns coordinates into a human readable place.
type ReverseGeocoder interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) (*entity.GeocodedPlace, error)
}
