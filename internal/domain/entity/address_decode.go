package entity

import (
	"quickdash/internal/util"

	"github.com/pkg/errors"
)

// ErrMalformedAddress is returned when a raw address lacks an id.
var ErrMalformedAddress = errors.New("address has no id")

// DecodeCustomerAddress normalizes the address shapes seen on the wire: coordinates
// under latitude/lat and longitude/lng/lon as numbers or strings, and the display
// line under address_line, google_address_text or full_address.
// Missing or malformed coordinates leave HasCoordinates unset.
func DecodeCustomerAddress(raw map[string]any) (*CustomerAddress, error) {
	id := util.FirstString(raw, "id", "address_id")
	if id == "" {
		return nil, ErrMalformedAddress
	}

	address := &CustomerAddress{
		ID:            id,
		Label:         util.FirstString(raw, "label"),
		AddressLine:   util.FirstString(raw, "address_line", "google_address_text", "full_address"),
		HouseNo:       util.FirstString(raw, "house_no"),
		ApartmentName: util.FirstString(raw, "apartment_name"),
		FloorNo:       util.FirstString(raw, "floor_no"),
		Landmark:      util.FirstString(raw, "landmark"),
		City:          util.FirstString(raw, "city"),
		Pincode:       util.FirstString(raw, "pincode"),
		ReceiverName:  util.FirstString(raw, "receiver_name"),
		ReceiverPhone: util.FirstString(raw, "receiver_phone"),
	}

	lat, okLat := util.FirstFloat(raw, "latitude", "lat")
	lng, okLng := util.FirstFloat(raw, "longitude", "lng", "lon")
	if okLat && okLng {
		address.Latitude = lat
		address.Longitude = lng
		address.HasCoordinates = true
	}
	if isDefault, ok := util.Bool(raw["is_default"]); ok {
		address.IsDefault = isDefault
	}

	return address, nil
}
