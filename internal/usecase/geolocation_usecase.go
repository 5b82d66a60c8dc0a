package usecase

import (
	"context"

	"quickdash/internal/domain/entity"
)

// GeolocationUsecase acquires the device position.
type GeolocationUsecase interface {
	// Detect tries a precise fix first and falls back to a coarse one.
	Detect(ctx context.Context) (*entity.PositionFix, error)

	// DetectAndSetBrowsing detects the position, reverse geocodes it on a best
	// effort basis and stores it as the browsing location.
	DetectAndSetBrowsing(ctx context.Context) (*entity.BrowsingLocation, error)
}
