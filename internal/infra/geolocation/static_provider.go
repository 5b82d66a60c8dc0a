package geolocation

import (
	"context"
	"time"

	"quickdash/internal/domain/entity"
	"quickdash/internal/domain/service"

	"github.com/pkg/errors"
)

// ErrPositionUnavailable is returned when a provider has no fix to offer.
var ErrPositionUnavailable = errors.New("position unavailable")

type staticProvider struct {
	latitude  float64
	longitude float64
}

// NewStaticProvider reports a fixed position, for headless sessions. A zero
// position means the device has no location.
func NewStaticProvider(lat, lng float64) service.PositionProvider {
	return &staticProvider{latitude: lat, longitude: lng}
}

func (p *staticProvider) CurrentPosition(ctx context.Context, accuracy entity.Accuracy) (*entity.PositionFix, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	if p.latitude == 0 && p.longitude == 0 {
		return nil, ErrPositionUnavailable
	}
	if !entity.ValidCoordinates(p.latitude, p.longitude) {
		return nil, errors.Wrap(ErrPositionUnavailable, "configured coordinates out of range")
	}

	return &entity.PositionFix{
		Latitude:  p.latitude,
		Longitude: p.longitude,
		Accuracy:  accuracy,
		Timestamp: time.Now(),
	}, nil
}
