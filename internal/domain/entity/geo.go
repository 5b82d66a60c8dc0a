package entity

import "time"

// Accuracy selects the precision requested from a position provider.
type Accuracy string

const (
	AccuracyHigh Accuracy = "high"
	AccuracyLow  Accuracy = "low"
)

// PositionFix is a single position reading.
type PositionFix struct {
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	AccuracyMeters float64   `json:"accuracy_m"`
	Accuracy       Accuracy  `json:"accuracy"`
	Timestamp      time.Time `json:"timestamp"`
}

// GeocodedPlace is a normalized reverse geocoding result.
type GeocodedPlace struct {
	FormattedAddress string `json:"formatted_address"`
	City             string `json:"city"`
	Pincode          string `json:"pincode"`
	Source           string `json:"source"`
}

// PickerMode selects what confirming the map picker does.
type PickerMode string

const (
	// PickerModeService sets the browsing location on confirm.
	PickerModeService PickerMode = "SERVICE"
	// PickerModePicker only hands the picked location back to the caller.
	PickerModePicker PickerMode = "PICKER"
)

// PickedLocation is the outcome of a confirmed map picker session.
type PickedLocation struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Address   string  `json:"address"`
	City      string  `json:"city"`
	Pincode   string  `json:"pincode"`
}
