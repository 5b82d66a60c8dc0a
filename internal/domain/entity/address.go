package entity

// CustomerAddress is the normalized saved address returned by the address book.
type CustomerAddress struct {
	ID            string  `json:"id"`
	Label         string  `json:"label"`
	AddressLine   string  `json:"address_line"`
	HouseNo       string  `json:"house_no,omitempty"`
	ApartmentName string  `json:"apartment_name,omitempty"`
	FloorNo       string  `json:"floor_no,omitempty"`
	Landmark      string  `json:"landmark,omitempty"`
	City          string  `json:"city"`
	Pincode       string  `json:"pincode,omitempty"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	ReceiverName  string  `json:"receiver_name,omitempty"`
	ReceiverPhone string  `json:"receiver_phone,omitempty"`
	IsDefault     bool    `json:"is_default"`

	// HasCoordinates is set only when both coordinates decoded as numbers.
	HasCoordinates bool `json:"-"`
}

// DeliveryLocation projects the address onto the delivery variant of a LocationRecord.
func (a *CustomerAddress) DeliveryLocation() DeliveryLocation {
	return DeliveryLocation{
		AddressID:   a.ID,
		Label:       a.Label,
		AddressLine: a.AddressLine,
		City:        a.City,
		Latitude:    a.Latitude,
		Longitude:   a.Longitude,
	}
}
