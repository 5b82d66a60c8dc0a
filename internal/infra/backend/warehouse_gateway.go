package backend

import (
	"context"
	"net/http"

	"quickdash/internal/domain/service"
)

type warehouseGateway struct {
	client *Client
}

// NewWarehouseGateway is the constructor for the warehouse gateway.
func NewWarehouseGateway(client *Client) service.WarehouseGateway {
	return &warehouseGateway{client: client}
}

func (g *warehouseGateway) FindServiceable(ctx context.Context, lat, lng float64, city string) (*service.ServiceabilityResult, error) {
	body := map[string]any{
		"latitude":  lat,
		"longitude": lng,
		"city":      city,
	}

	var raw map[string]any
	if err := g.client.Do(ctx, http.MethodPost, "/warehouse/find-serviceable/", body, &raw); err != nil {
		return nil, err
	}

	return toServiceability(raw)
}
