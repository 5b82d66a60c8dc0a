package backend

import (
	"context"
	"net/http"
	"net/url"

	"quickdash/internal/domain/entity"
	"quickdash/internal/domain/service"
)

const addressesEndpoint = "/auth/customer/addresses/"

type addressGateway struct {
	client *Client
}

// NewAddressGateway is the constructor for the address gateway.
func NewAddressGateway(client *Client) service.AddressGateway {
	return &addressGateway{client: client}
}

func (g *addressGateway) ListAddresses(ctx context.Context) ([]*entity.CustomerAddress, error) {
	var body any
	if err := g.client.Do(ctx, http.MethodGet, addressesEndpoint, nil, &body); err != nil {
		return nil, err
	}

	return toAddresses(body)
}

func (g *addressGateway) CreateAddress(ctx context.Context, req service.CreateAddressRequest) (*entity.CustomerAddress, error) {
	var raw map[string]any
	if err := g.client.Do(ctx, http.MethodPost, addressesEndpoint, req, &raw); err != nil {
		return nil, err
	}

	address, err := entity.DecodeCustomerAddress(raw)
	if err != nil {
		return nil, unrecognized("create address: " + err.Error())
	}

	return address, nil
}

func (g *addressGateway) DeleteAddress(ctx context.Context, addressID string) error {
	return g.client.Do(ctx, http.MethodDelete, addressesEndpoint+url.PathEscape(addressID)+"/", nil, nil)
}
