// Package entity contains the core business objects of the project.
package entity

import (
	"math"
	"strconv"

	"github.com/paulmach/orb"
)

// LocationKind tags the variant held by a LocationRecord.
type LocationKind string

const (
	LocationKindNone     LocationKind = "NONE"
	LocationKindBrowsing LocationKind = "BROWSING"
	LocationKindDelivery LocationKind = "DELIVERY"
)

// BrowsingLocation is a coarse GPS or map-pin position without a stable identity.
type BrowsingLocation struct {
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	CityName         string  `json:"city_name,omitempty"`
	AreaLabel        string  `json:"area_label,omitempty"`
	FormattedAddress string  `json:"formatted_address,omitempty"`
}

// DeliveryLocation is tied to a persisted customer address.
type DeliveryLocation struct {
	AddressID   string  `json:"address_id"`
	Label       string  `json:"label"`
	AddressLine string  `json:"address_line"`
	City        string  `json:"city"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// LocationRecord is a tagged union over the browsing and delivery variants.
// Exactly one of Browsing and Delivery is set unless Kind is NONE.
type LocationRecord struct {
	Kind     LocationKind      `json:"kind"`
	Browsing *BrowsingLocation `json:"browsing,omitempty"`
	Delivery *DeliveryLocation `json:"delivery,omitempty"`
}

// NoLocation is the sentinel returned when neither variant is held.
var NoLocation = LocationRecord{Kind: LocationKindNone}

// NewBrowsingRecord wraps a browsing location.
func NewBrowsingRecord(b BrowsingLocation) LocationRecord {
	return LocationRecord{Kind: LocationKindBrowsing, Browsing: &b}
}

// NewDeliveryRecord wraps a delivery location.
func NewDeliveryRecord(d DeliveryLocation) LocationRecord {
	return LocationRecord{Kind: LocationKindDelivery, Delivery: &d}
}

func (r LocationRecord) IsNone() bool {
	return r.Kind == LocationKindNone || (r.Browsing == nil && r.Delivery == nil)
}

// Point returns the record's coordinates as an orb point (lng, lat).
func (r LocationRecord) Point() (orb.Point, bool) {
	switch {
	case r.Kind == LocationKindDelivery && r.Delivery != nil:
		return orb.Point{r.Delivery.Longitude, r.Delivery.Latitude}, true
	case r.Kind == LocationKindBrowsing && r.Browsing != nil:
		return orb.Point{r.Browsing.Longitude, r.Browsing.Latitude}, true
	default:
		return orb.Point{}, false
	}
}

// City returns the best known city name for the record.
func (r LocationRecord) City() string {
	switch {
	case r.Delivery != nil:
		return r.Delivery.City
	case r.Browsing != nil:
		return r.Browsing.CityName
	default:
		return ""
	}
}

// CacheKey identifies the record for warehouse caching: the address id for
// delivery records, coordinates rounded to six decimals for browsing ones.
func (r LocationRecord) CacheKey() string {
	switch {
	case r.Kind == LocationKindDelivery && r.Delivery != nil:
		return "address:" + r.Delivery.AddressID
	case r.Kind == LocationKindBrowsing && r.Browsing != nil:
		return "point:" + formatCoordinate(r.Browsing.Latitude) + "," + formatCoordinate(r.Browsing.Longitude)
	default:
		return ""
	}
}

// ValidCoordinates reports whether lat/lng are finite and within WGS84 bounds.
func ValidCoordinates(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}

	return worldBound.Contains(orb.Point{lng, lat})
}

var worldBound = orb.Bound{Min: orb.Point{-180, -90}, Max: orb.Point{180, 90}}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// LocationSource tags which write produced a location-changed event.
type LocationSource string

const (
	LocationSourceBrowsing LocationSource = "BROWSING"
	LocationSourceDelivery LocationSource = "DELIVERY"
	LocationSourceCleared  LocationSource = "CLEARED"
)
