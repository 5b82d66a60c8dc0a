package backend

import (
	"context"
	"net/http"
	"net/url"

	"quickdash/internal/domain/entity"
	domainerrors "quickdash/internal/domain/errors"
	"quickdash/internal/domain/service"

	"github.com/pkg/errors"
)

type cartGateway struct {
	client *Client
}

// NewCartGateway is the constructor for the cart gateway.
func NewCartGateway(client *Client) service.CartGateway {
	return &cartGateway{client: client}
}

func (g *cartGateway) GetCart(ctx context.Context) (*entity.CartSnapshot, error) {
	var raw map[string]any
	if err := g.client.Do(ctx, http.MethodGet, "/orders/cart/", nil, &raw); err != nil {
		return nil, err
	}

	return toCart(raw)
}

func (g *cartGateway) AddItem(ctx context.Context, req service.AddCartItemRequest) (*entity.CartSnapshot, error) {
	body := map[string]any{
		"sku":          req.SKU,
		"quantity":     req.Quantity,
		"warehouse_id": req.WarehouseID,
	}

	var raw map[string]any
	if err := g.client.Do(ctx, http.MethodPost, "/orders/cart/add/", body, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return &entity.CartSnapshot{}, nil
	}

	// Some deployments answer with a status message instead of the cart.
	if _, ok := raw["items"]; !ok {
		if _, nested := raw["cart"]; !nested {
			return g.GetCart(ctx)
		}
	}

	return toCart(raw)
}

func (g *cartGateway) RemoveItem(ctx context.Context, itemID string) error {
	return g.client.Do(ctx, http.MethodDelete, "/orders/cart/item/"+url.PathEscape(itemID)+"/", nil, nil)
}

// ClearCart uses the clear endpoint and falls back to DELETE on the cart when the
// backend does not expose it.
func (g *cartGateway) ClearCart(ctx context.Context) error {
	err := g.client.Do(ctx, http.MethodPost, "/orders/cart/clear/", map[string]any{}, nil)
	if err == nil {
		return nil
	}

	var backendErr *domainerrors.BackendError
	if errors.As(err, &backendErr) &&
		(backendErr.Status() == http.StatusNotFound || backendErr.Status() == http.StatusMethodNotAllowed) {
		return g.client.Do(ctx, http.MethodDelete, "/orders/cart/", nil, nil)
	}

	return err
}

func (g *cartGateway) ValidateCart(ctx context.Context, req entity.CartValidationRequest) (*entity.CartValidation, error) {
	var body map[string]any
	if req.AddressID != "" {
		body = map[string]any{"address_id": req.AddressID}
	} else {
		body = map[string]any{"lat": req.Latitude, "lng": req.Longitude}
	}

	var raw map[string]any
	if err := g.client.Do(ctx, http.MethodPost, "/orders/validate-cart/", body, &raw); err != nil {
		return nil, err
	}

	return toCartValidation(raw)
}
