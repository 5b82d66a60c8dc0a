// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "quickdash/internal/delivery/context"
	"quickdash/internal/domain/entity"
	domainerrors "quickdash/internal/domain/errors"
	"quickdash/internal/domain/repository"
	"quickdash/internal/domain/service"
	"quickdash/internal/usecase"

	"github.com/pkg/errors"
)

// Navbar strings.
const (
	labelDelivery        = "Delivery to"
	labelBrowsing        = "Browsing in"
	labelNone            = "Select Location"
	subtextDeliveryEmpty = "Selected Address"
	subtextBrowsingEmpty = "Current Location"
)

// locationService implements the LocationUsecase interface.
type locationService struct {
	locationRepo repository.LocationRepository
	warehouses   usecase.WarehouseUsecase
	bus          service.LocationEventBus
	reloader     service.Reloader
	logger       *slog.Logger
}

// NewLocationService is the constructor for locationService.
func NewLocationService(
	locationRepo repository.LocationRepository,
	warehouses usecase.WarehouseUsecase,
	bus service.LocationEventBus,
	reloader service.Reloader,
	logger *slog.Logger,
) usecase.LocationUsecase {
	return &locationService{
		locationRepo: locationRepo,
		warehouses:   warehouses,
		bus:          bus,
		reloader:     reloader,
		logger:       logger,
	}
}

func (srv *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SetBrowsingLocation never returns an error for bad input: callers are best-effort UI flows.
func (srv *locationService) SetBrowsingLocation(ctx context.Context, input *usecase.BrowsingInput) error {
	if input == nil || input.Latitude == nil || input.Longitude == nil {
		srv.log(ctx).Warn("Dropping browsing location without coordinates")

		return nil
	}

	lat, lng := *input.Latitude, *input.Longitude
	if !entity.ValidCoordinates(lat, lng) {
		srv.log(ctx).Warn("Dropping malformed browsing location",
			slog.Float64("lat", lat),
			slog.Float64("lng", lng),
		)

		return nil
	}

	location := entity.BrowsingLocation{
		Latitude:         lat,
		Longitude:        lng,
		CityName:         strings.TrimSpace(input.CityName),
		AreaLabel:        strings.TrimSpace(input.AreaLabel),
		FormattedAddress: strings.TrimSpace(input.FormattedAddress),
	}

	if err := srv.locationRepo.SaveBrowsing(ctx, location); err != nil {
		return errors.Wrap(err, "failed to save browsing location")
	}

	srv.log(ctx).Info("Browsing location set",
		slog.Float64("lat", lat),
		slog.Float64("lng", lng),
		slog.String("city", location.CityName),
	)

	return srv.publish(ctx, entity.LocationSourceBrowsing, entity.NewBrowsingRecord(location))
}

func (srv *locationService) SetDeliveryAddress(ctx context.Context, address map[string]any) (*entity.DeliveryLocation, error) {
	decoded, err := entity.DecodeCustomerAddress(address)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails(err.Error())
	}

	return srv.UseAddress(ctx, decoded)
}

func (srv *locationService) UseAddress(ctx context.Context, address *entity.CustomerAddress) (*entity.DeliveryLocation, error) {
	if address == nil || address.ID == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("address id is required")
	}
	if !address.HasCoordinates {
		return nil, domainerrors.ErrInvalidInput.WithDetails("address has no coordinates")
	}
	if !entity.ValidCoordinates(address.Latitude, address.Longitude) {
		return nil, domainerrors.ErrInvalidInput.WithDetails("address coordinates out of range")
	}

	location := address.DeliveryLocation()
	if err := srv.locationRepo.SaveDelivery(ctx, location); err != nil {
		return nil, errors.Wrap(err, "failed to save delivery location")
	}

	srv.log(ctx).Info("Delivery address set", slog.String("address_id", location.AddressID))

	if err := srv.publish(ctx, entity.LocationSourceDelivery, entity.NewDeliveryRecord(location)); err != nil {
		return nil, err
	}

	return &location, nil
}

func (srv *locationService) ForgetAddress(ctx context.Context, addressID string) (bool, error) {
	current, err := srv.locationRepo.LoadDelivery(ctx)
	if err != nil {
		return false, errors.Wrap(err, "failed to load delivery location")
	}
	if current == nil || current.AddressID != addressID {
		return false, nil
	}

	if err := srv.locationRepo.DeleteDelivery(ctx); err != nil {
		return false, errors.Wrap(err, "failed to delete delivery location")
	}

	record, err := effectiveLocation(ctx, srv.locationRepo)
	if err != nil {
		return true, err
	}

	return true, srv.publish(ctx, entity.LocationSourceDelivery, record)
}

func (srv *locationService) GetEffectiveLocation(ctx context.Context) (entity.LocationRecord, error) {
	return effectiveLocation(ctx, srv.locationRepo)
}

func (srv *locationService) GetDeliveryLocation(ctx context.Context) (*entity.DeliveryLocation, error) {
	location, err := srv.locationRepo.LoadDelivery(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load delivery location")
	}

	return location, nil
}

func (srv *locationService) GetDisplayLabel(ctx context.Context) (entity.DisplayLabel, error) {
	record, err := effectiveLocation(ctx, srv.locationRepo)
	if err != nil {
		return entity.DisplayLabel{}, err
	}

	return displayLabel(record), nil
}

// Clear is the only operation that ends with a reload.
func (srv *locationService) Clear(ctx context.Context) error {
	if err := srv.locationRepo.Clear(ctx); err != nil {
		return errors.Wrap(err, "failed to clear location")
	}

	srv.log(ctx).Info("Location cleared")

	if err := srv.publish(ctx, entity.LocationSourceCleared, entity.NoLocation); err != nil {
		return err
	}

	return errors.Wrap(srv.reloader.Reload(ctx, "location cleared"), "failed to reload session")
}

// publish drops the cached warehouse before announcing the change.
func (srv *locationService) publish(ctx context.Context, source entity.LocationSource, record entity.LocationRecord) error {
	if err := srv.warehouses.Invalidate(ctx); err != nil {
		return errors.Wrap(err, "failed to invalidate warehouse cache")
	}

	event := entity.LocationChangedEvent{
		Source: source,
		Record: record,
	}
	if err := srv.bus.Publish(ctx, event); err != nil {
		return errors.Wrap(err, "failed to publish location change")
	}

	return nil
}

// effectiveLocation returns the delivery record when present, else the browsing one, else NONE.
func effectiveLocation(ctx context.Context, repo repository.LocationRepository) (entity.LocationRecord, error) {
	delivery, err := repo.LoadDelivery(ctx)
	if err != nil {
		return entity.NoLocation, errors.Wrap(err, "failed to load delivery location")
	}
	if delivery != nil {
		return entity.NewDeliveryRecord(*delivery), nil
	}

	browsing, err := repo.LoadBrowsing(ctx)
	if err != nil {
		return entity.NoLocation, errors.Wrap(err, "failed to load browsing location")
	}
	if browsing != nil {
		return entity.NewBrowsingRecord(*browsing), nil
	}

	return entity.NoLocation, nil
}

func displayLabel(record entity.LocationRecord) entity.DisplayLabel {
	switch {
	case record.Kind == entity.LocationKindDelivery && record.Delivery != nil:
		return entity.DisplayLabel{
			Type:      entity.DisplayTypeDelivery,
			Label:     labelDelivery,
			Subtext:   firstNonEmpty(record.Delivery.AddressLine, record.Delivery.Label, subtextDeliveryEmpty),
			IsActive:  true,
			AddressID: record.Delivery.AddressID,
		}
	case record.Kind == entity.LocationKindBrowsing && record.Browsing != nil:
		return entity.DisplayLabel{
			Type:    entity.DisplayTypeService,
			Label:   labelBrowsing,
			Subtext: firstNonEmpty(record.Browsing.AreaLabel, record.Browsing.FormattedAddress, subtextBrowsingEmpty),
		}
	default:
		return entity.DisplayLabel{
			Type:  entity.DisplayTypeNone,
			Label: labelNone,
		}
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
