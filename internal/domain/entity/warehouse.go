package entity

import "time"

// ResolvedWarehouse is the fulfillment decision derived from a LocationRecord.
// It is never the source of truth and is only cached for the record it was resolved for.
type ResolvedWarehouse struct {
	WarehouseID string    `json:"warehouse_id,omitempty"`
	Serviceable bool      `json:"serviceable"`
	CacheKey    string    `json:"-"`
	ResolvedAt  time.Time `json:"resolved_at"`
}
