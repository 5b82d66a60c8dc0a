package usecase

import (
	"context"

	"quickdash/internal/domain/entity"
	"quickdash/internal/domain/service"
)

// CreateAddressResult carries the created address and whether it can be delivered to.
type CreateAddressResult struct {
	Address     *entity.CustomerAddress `json:"address"`
	Serviceable bool                    `json:"serviceable"`
	Warning     string                  `json:"warning,omitempty"`
}

// AddressUsecase manages the customer's saved addresses.
type AddressUsecase interface {
	List(ctx context.Context) ([]*entity.CustomerAddress, error)

	// Create saves an address. An unserviceable location is a warning, not a failure.
	Create(ctx context.Context, input *service.CreateAddressRequest) (*CreateAddressResult, error)

	// Delete removes an address and forgets it as delivery location when selected.
	Delete(ctx context.Context, addressID string) error

	// Select makes a saved address the delivery location.
	Select(ctx context.Context, addressID string) (*entity.DeliveryLocation, error)
}
