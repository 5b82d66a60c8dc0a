package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "quickdash/internal/delivery/context"
	"quickdash/internal/domain/entity"
	domainerrors "quickdash/internal/domain/errors"
	"quickdash/internal/domain/service"
	"quickdash/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

const unserviceableAddressWarning = "We do not deliver to this address yet. It has been saved for later."

// addressService implements the AddressUsecase interface.
type addressService struct {
	addresses service.AddressGateway
	gateway   service.WarehouseGateway
	locations usecase.LocationUsecase
	validate  *validator.Validate
	logger    *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(
	addresses service.AddressGateway,
	gateway service.WarehouseGateway,
	locations usecase.LocationUsecase,
	logger *slog.Logger,
) usecase.AddressUsecase {
	return &addressService{
		addresses: addresses,
		gateway:   gateway,
		locations: locations,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		logger:    logger,
	}
}

func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *addressService) List(ctx context.Context) ([]*entity.CustomerAddress, error) {
	addresses, err := srv.addresses.ListAddresses(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

// Create checks serviceability first but saves the address either way.
func (srv *addressService) Create(ctx context.Context, input *service.CreateAddressRequest) (*usecase.CreateAddressResult, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("address is required")
	}
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails(err.Error())
	}

	req := *input
	req.Label = strings.ToUpper(req.Label)

	result := &usecase.CreateAddressResult{Serviceable: true}

	check, err := srv.gateway.FindServiceable(ctx, req.Latitude, req.Longitude, req.City)
	switch {
	case err != nil:
		if errors.Is(err, domainerrors.ErrAuthExpired) {
			return nil, err
		}
		srv.log(ctx).Warn("Serviceability pre-check failed", slog.Any("error", err))
	case !check.Serviceable || check.WarehouseID == "":
		result.Serviceable = false
		result.Warning = firstNonEmpty(check.Message, unserviceableAddressWarning)
	}

	address, err := srv.addresses.CreateAddress(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create address")
	}
	result.Address = address

	srv.log(ctx).Info("Address created",
		slog.String("address_id", address.ID),
		slog.Bool("serviceable", result.Serviceable),
	)

	return result, nil
}

func (srv *addressService) Delete(ctx context.Context, addressID string) error {
	if strings.TrimSpace(addressID) == "" {
		return domainerrors.ErrInvalidInput.WithDetails("address id is required")
	}

	if err := srv.addresses.DeleteAddress(ctx, addressID); err != nil {
		return errors.Wrap(err, "failed to delete address")
	}

	forgotten, err := srv.locations.ForgetAddress(ctx, addressID)
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Address deleted",
		slog.String("address_id", addressID),
		slog.Bool("was_delivery", forgotten),
	)

	return nil
}

func (srv *addressService) Select(ctx context.Context, addressID string) (*entity.DeliveryLocation, error) {
	addresses, err := srv.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, address := range addresses {
		if address.ID == addressID {
			return srv.locations.UseAddress(ctx, address)
		}
	}

	return nil, domainerrors.ErrNotFound.WithDetails("address " + addressID)
}
