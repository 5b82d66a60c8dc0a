package entity

import "github.com/shopspring/decimal"

// CartItem is a single line of the backend-owned cart.
type CartItem struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// CartSnapshot is the core's read-only view of the server cart.
type CartSnapshot struct {
	Items       []CartItem      `json:"items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	WarehouseID string          `json:"warehouse_id,omitempty"`
}

// ItemCount returns the number of distinct lines, matching the cart badge.
func (c *CartSnapshot) ItemCount() int {
	if c == nil {
		return 0
	}

	return len(c.Items)
}

// UnavailableItem explains why a cart line cannot be fulfilled at a warehouse.
type UnavailableItem struct {
	SKU         string `json:"sku,omitempty"`
	ProductName string `json:"product_name"`
	Reason      string `json:"reason"`
}

// CartValidation is the backend verdict on the cart against a location.
type CartValidation struct {
	IsValid          bool              `json:"is_valid"`
	WarehouseID      string            `json:"warehouse_id,omitempty"`
	UnavailableItems []UnavailableItem `json:"unavailable_items"`
}

// CartValidationRequest targets either a saved address or raw coordinates.
// AddressID takes priority when set.
type CartValidationRequest struct {
	AddressID string
	Latitude  float64
	Longitude float64
}

// ConflictDecision is the user's answer to a cart conflict.
type ConflictDecision string

const (
	ConflictDecisionClearCart ConflictDecision = "CLEAR_CART"
	ConflictDecisionKeepCart  ConflictDecision = "KEEP_CART"
)

// GuardState is the CartConsistencyGuard state.
type GuardState string

const (
	GuardStateIdle       GuardState = "IDLE"
	GuardStateValidating GuardState = "VALIDATING"
	GuardStateConsistent GuardState = "CONSISTENT"
	GuardStateConflict   GuardState = "CONFLICT"
	GuardStateFailed     GuardState = "FAILED"
)

// GuardStatus is a snapshot of the guard for UI collaborators.
type GuardStatus struct {
	State            GuardState        `json:"state"`
	Generation       uint64            `json:"generation"`
	WarehouseID      string            `json:"warehouse_id,omitempty"`
	UnavailableItems []UnavailableItem `json:"unavailable_items,omitempty"`
	LastError        string            `json:"last_error,omitempty"`
}
