package entity

// DisplayType tags the navbar rendering mode.
type DisplayType string

const (
	DisplayTypeDelivery DisplayType = "DELIVERY"
	DisplayTypeService  DisplayType = "SERVICE"
	DisplayTypeNone     DisplayType = "NONE"
)

// DisplayLabel is what the navbar shows for the current location context.
type DisplayLabel struct {
	Type      DisplayType `json:"type"`
	Label     string      `json:"label"`
	Subtext   string      `json:"subtext"`
	IsActive  bool        `json:"is_active"`
	AddressID string      `json:"id,omitempty"`
}
