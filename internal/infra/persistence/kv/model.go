package kv

import (
	"encoding/json"
	"strconv"
	"time"

	"quickdash/internal/domain/entity"
	"quickdash/internal/domain/repository"
)

//nolint:gochecknoglobals
var (
	browsingKeys = []string{
		repository.KeyBrowsingLatitude,
		repository.KeyBrowsingLongitude,
		repository.KeyBrowsingLabel,
		repository.KeyBrowsingCity,
		repository.KeyBrowsingArea,
	}
	deliveryKeys  = []string{repository.KeyDeliveryAddressID, repository.KeyDeliveryContext}
	warehouseKeys = []string{repository.KeyWarehouseID, repository.KeyWarehouseKey, repository.KeyWarehouseAt}
	tokenKeys     = []string{repository.KeyAccessToken, repository.KeyRefreshToken}
)

func fromBrowsingDomain(location entity.BrowsingLocation) map[string]string {
	return map[string]string{
		repository.KeyBrowsingLatitude:  formatFloat(location.Latitude),
		repository.KeyBrowsingLongitude: formatFloat(location.Longitude),
		repository.KeyBrowsingLabel:     location.FormattedAddress,
		repository.KeyBrowsingCity:      location.CityName,
		repository.KeyBrowsingArea:      location.AreaLabel,
	}
}

// toBrowsingDomain returns nil when the stored coordinates are missing or malformed.
func toBrowsingDomain(values map[string]string) *entity.BrowsingLocation {
	lat, okLat := parseFloat(values[repository.KeyBrowsingLatitude])
	lng, okLng := parseFloat(values[repository.KeyBrowsingLongitude])
	if !okLat || !okLng || !entity.ValidCoordinates(lat, lng) {
		return nil
	}

	return &entity.BrowsingLocation{
		Latitude:         lat,
		Longitude:        lng,
		CityName:         values[repository.KeyBrowsingCity],
		AreaLabel:        values[repository.KeyBrowsingArea],
		FormattedAddress: values[repository.KeyBrowsingLabel],
	}
}

func fromDeliveryDomain(location entity.DeliveryLocation) (map[string]string, error) {
	payload, err := json.Marshal(location)
	if err != nil {
		return nil, err
	}

	return map[string]string{
		repository.KeyDeliveryAddressID: location.AddressID,
		repository.KeyDeliveryContext:   string(payload),
	}, nil
}

// toDeliveryDomain returns nil unless the context document belongs to the stored
// address id and carries valid coordinates.
func toDeliveryDomain(values map[string]string) *entity.DeliveryLocation {
	addressID := values[repository.KeyDeliveryAddressID]
	raw, ok := values[repository.KeyDeliveryContext]
	if addressID == "" || !ok {
		return nil
	}

	var location entity.DeliveryLocation
	if err := json.Unmarshal([]byte(raw), &location); err != nil || location.AddressID != addressID {
		return nil
	}
	if !entity.ValidCoordinates(location.Latitude, location.Longitude) {
		return nil
	}

	return &location
}

func fromWarehouseDomain(resolved entity.ResolvedWarehouse) map[string]string {
	return map[string]string{
		repository.KeyWarehouseID:  resolved.WarehouseID,
		repository.KeyWarehouseKey: resolved.CacheKey,
		repository.KeyWarehouseAt:  resolved.ResolvedAt.UTC().Format(time.RFC3339Nano),
	}
}

func toWarehouseDomain(values map[string]string) *entity.ResolvedWarehouse {
	id := values[repository.KeyWarehouseID]
	if id == "" {
		return nil
	}

	resolved := &entity.ResolvedWarehouse{
		WarehouseID: id,
		Serviceable: true,
		CacheKey:    values[repository.KeyWarehouseKey],
	}
	if at, err := time.Parse(time.RFC3339Nano, values[repository.KeyWarehouseAt]); err == nil {
		resolved.ResolvedAt = at
	}

	return resolved
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseFloat(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	return v, true
}
