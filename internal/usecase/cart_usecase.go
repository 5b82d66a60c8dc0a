package usecase

import (
	"context"

	"quickdash/internal/domain/entity"
)

// AddToCartInput represents an add-to-cart action
type AddToCartInput struct {
	SKU      string `json:"sku" validate:"required"`
	Quantity int    `json:"quantity" validate:"omitempty,min=1"`
}

// CartUsecase gates cart mutations on a resolved warehouse.
type CartUsecase interface {
	// AddToCart fails with ErrLocationRequired, before any cart call, when the session has no location.
	AddToCart(ctx context.Context, input *AddToCartInput) (*entity.CartSnapshot, error)
	GetCart(ctx context.Context) (*entity.CartSnapshot, error)
	RemoveItem(ctx context.Context, itemID string) (*entity.CartSnapshot, error)
	ClearCart(ctx context.Context) error

	// ItemCount feeds the cart badge; guests always have zero items.
	ItemCount(ctx context.Context) (int, error)
}

// CartGuardUsecase keeps the server cart aligned with the current location.
type CartGuardUsecase interface {
	// Validate runs one validation for the current location and returns the resulting status.
	Validate(ctx context.Context) (entity.GuardStatus, error)

	// ResolveConflict applies the user's decision to a pending conflict.
	ResolveConflict(ctx context.Context, decision entity.ConflictDecision) (entity.GuardStatus, error)

	Status() entity.GuardStatus

	// Reset discards the last result and any in-flight validation.
	Reset()

	// Listen validates after every location change until ctx is done.
	Listen(ctx context.Context) error
}
