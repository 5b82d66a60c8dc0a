package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"quickdash/config"
	deliverycontext "quickdash/internal/delivery/context"
	"quickdash/internal/domain/entity"
	domainerrors "quickdash/internal/domain/errors"
	"quickdash/internal/domain/service"
	"quickdash/internal/usecase"

	"github.com/pkg/errors"
)

// geolocationService implements the GeolocationUsecase interface.
type geolocationService struct {
	positions       service.PositionProvider
	geocoder        service.ReverseGeocoder
	locations       usecase.LocationUsecase
	highTimeout     time.Duration
	fallbackTimeout time.Duration
	logger          *slog.Logger
}

// NewGeolocationService is the constructor for geolocationService.
func NewGeolocationService(
	positions service.PositionProvider,
	geocoder service.ReverseGeocoder,
	locations usecase.LocationUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.GeolocationUsecase {
	return &geolocationService{
		positions:       positions,
		geocoder:        geocoder,
		locations:       locations,
		highTimeout:     cfg.Geolocation.HighAccuracyTimeout,
		fallbackTimeout: cfg.Geolocation.FallbackTimeout,
		logger:          logger,
	}
}

func (srv *geolocationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *geolocationService) Detect(ctx context.Context) (*entity.PositionFix, error) {
	fix, highErr := srv.attempt(ctx, entity.AccuracyHigh, srv.highTimeout)
	if highErr == nil {
		return fix, nil
	}

	srv.log(ctx).Warn("High accuracy position failed, trying coarse fix", slog.Any("error", highErr))

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "position detection cancelled")
	}

	fix, lowErr := srv.attempt(ctx, entity.AccuracyLow, srv.fallbackTimeout)
	if lowErr == nil {
		return fix, nil
	}

	srv.log(ctx).Warn("Coarse position failed", slog.Any("error", lowErr))

	return nil, domainerrors.ErrGeolocationFailed.WithDetails(fmt.Sprintf("high accuracy: %v; low accuracy: %v", highErr, lowErr))
}

func (srv *geolocationService) attempt(ctx context.Context, accuracy entity.Accuracy, timeout time.Duration) (*entity.PositionFix, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	fix, err := srv.positions.CurrentPosition(attemptCtx, accuracy)
	if err != nil {
		return nil, err
	}
	if fix == nil || !entity.ValidCoordinates(fix.Latitude, fix.Longitude) {
		return nil, errors.New("position out of range")
	}

	return fix, nil
}

func (srv *geolocationService) DetectAndSetBrowsing(ctx context.Context) (*entity.BrowsingLocation, error) {
	fix, err := srv.Detect(ctx)
	if err != nil {
		return nil, err
	}

	location := entity.BrowsingLocation{Latitude: fix.Latitude, Longitude: fix.Longitude}

	place, err := srv.geocoder.ReverseGeocode(ctx, fix.Latitude, fix.Longitude)
	if err != nil {
		srv.log(ctx).Warn("Reverse geocoding failed, keeping bare coordinates", slog.Any("error", err))
	} else if place != nil {
		location.CityName = place.City
		location.FormattedAddress = place.FormattedAddress
		location.AreaLabel = firstSegment(place.FormattedAddress)
	}

	err = srv.locations.SetBrowsingLocation(ctx, &usecase.BrowsingInput{
		Latitude:         &location.Latitude,
		Longitude:        &location.Longitude,
		CityName:         location.CityName,
		AreaLabel:        location.AreaLabel,
		FormattedAddress: location.FormattedAddress,
	})
	if err != nil {
		return nil, err
	}

	return &location, nil
}

// firstSegment returns the text before the first comma of a formatted address.
func firstSegment(formatted string) string {
	head, _, _ := strings.Cut(formatted, ",")

	return strings.TrimSpace(head)
}
