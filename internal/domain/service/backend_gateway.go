package service

import (
	"context"

	"quickdash/internal/domain/entity"
)

// ServiceabilityResult is the normalized answer of the find-serviceable endpoint.
type ServiceabilityResult struct {
	Serviceable bool
	WarehouseID string
	Message     string
}

// WarehouseGateway asks the backend which warehouse covers a position.
type WarehouseGateway interface {
	FindServiceable(ctx context.Context, lat, lng float64, city string) (*ServiceabilityResult, error)
}

// AddCartItemRequest is the payload of the cart-add endpoint.
type AddCartItemRequest struct {
	SKU         string
	Quantity    int
	WarehouseID string
}

// CartGateway wraps the backend-owned cart.
type CartGateway interface {
	GetCart(ctx context.Context) (*entity.CartSnapshot, error)
	AddItem(ctx context.Context, req AddCartItemRequest) (*entity.CartSnapshot, error)
	RemoveItem(ctx context.Context, itemID string) error
	ClearCart(ctx context.Context) error
	ValidateCart(ctx context.Context, req entity.CartValidationRequest) (*entity.CartValidation, error)
}

// CreateAddressRequest is the payload of the address-create endpoint.
type CreateAddressRequest struct {
	Label         string  `json:"label" validate:"required,oneof=HOME WORK OTHER Home Work Other"`
	HouseNo       string  `json:"house_no" validate:"required"`
	ApartmentName string  `json:"apartment_name"`
	FloorNo       string  `json:"floor_no"`
	Landmark      string  `json:"landmark"`
	AddressText   string  `json:"google_address_text" validate:"required"`
	City          string  `json:"city" validate:"required"`
	Pincode       string  `json:"pincode" validate:"required,numeric,len=6"`
	Latitude      float64 `json:"latitude" validate:"latitude"`
	Longitude     float64 `json:"longitude" validate:"longitude"`
	ReceiverName  string  `json:"receiver_name" validate:"required"`
	ReceiverPhone string  `json:"receiver_phone" validate:"required,min=10,max=15"`
	IsDefault     bool    `json:"is_default"`
}

// AddressGateway wraps the customer address book.
type AddressGateway interface {
	ListAddresses(ctx context.Context) ([]*entity.CustomerAddress, error)
	CreateAddress(ctx context.Context, req CreateAddressRequest) (*entity.CustomerAddress, error)
	DeleteAddress(ctx context.Context, addressID string) error
}

// AuthGateway wraps the OTP login endpoints.
type AuthGateway interface {
	SendOTP(ctx context.Context, phone string) (*entity.OTPChallenge, error)
	VerifyOTP(ctx context.Context, phone, otp string) (*entity.TokenPair, error)

	// Refresh rotates the stored access token. It returns ErrAuthExpired when the
	// refresh token is rejected.
	Refresh(ctx context.Context) error
}
