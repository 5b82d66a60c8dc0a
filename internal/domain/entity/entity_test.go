package entity

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		lat, lng float64
		want     bool
	}{
		{name: "bengaluru", lat: 12.9716, lng: 77.5946, want: true},
		{name: "corner", lat: -90, lng: 180, want: true},
		{name: "latitude too high", lat: 90.01, lng: 0, want: false},
		{name: "longitude too low", lat: 0, lng: -180.5, want: false},
		{name: "nan", lat: math.NaN(), lng: 0, want: false},
		{name: "inf", lat: 0, lng: math.Inf(1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidCoordinates(tt.lat, tt.lng))
		})
	}
}

func TestLocationRecord_CacheKey(t *testing.T) {
	browsing := NewBrowsingRecord(BrowsingLocation{Latitude: 12.97160049, Longitude: 77.5946})
	delivery := NewDeliveryRecord(DeliveryLocation{AddressID: "42"})

	assert.Equal(t, "point:12.971600,77.594600", browsing.CacheKey())
	assert.Equal(t, "address:42", delivery.CacheKey())
	assert.Equal(t, "", NoLocation.CacheKey())
}

func TestLocationRecord_PointAndCity(t *testing.T) {
	record := NewDeliveryRecord(DeliveryLocation{AddressID: "1", City: "Pune", Latitude: 18.52, Longitude: 73.85})

	point, ok := record.Point()
	require.True(t, ok)
	assert.Equal(t, 73.85, point.Lon())
	assert.Equal(t, 18.52, point.Lat())
	assert.Equal(t, "Pune", record.City())

	_, ok = NoLocation.Point()
	assert.False(t, ok)
	assert.True(t, NoLocation.IsNone())
}

func TestDecodeCustomerAddress_Variants(t *testing.T) {
	decoder := json.NewDecoder(strings.NewReader(`{
		"id": 17,
		"label": "Home",
		"google_address_text": "12, MG Road, Bengaluru",
		"city": "Bengaluru",
		"lat": "12.9716",
		"lon": 77.5946,
		"is_default": true
	}`))
	decoder.UseNumber()

	var raw map[string]any
	require.NoError(t, decoder.Decode(&raw))

	address, err := DecodeCustomerAddress(raw)
	require.NoError(t, err)
	assert.Equal(t, "17", address.ID)
	assert.Equal(t, "12, MG Road, Bengaluru", address.AddressLine)
	assert.Equal(t, 12.9716, address.Latitude)
	assert.Equal(t, 77.5946, address.Longitude)
	assert.True(t, address.IsDefault)
	assert.True(t, address.HasCoordinates)

	delivery := address.DeliveryLocation()
	assert.Equal(t, "17", delivery.AddressID)
	assert.Equal(t, "Home", delivery.Label)
}

func TestDecodeCustomerAddress_RequiresID(t *testing.T) {
	_, err := DecodeCustomerAddress(map[string]any{"latitude": 1.0, "longitude": 2.0})
	assert.ErrorIs(t, err, ErrMalformedAddress)
}

func TestDecodeCustomerAddress_MissingCoordinates(t *testing.T) {
	for _, raw := range []map[string]any{
		{"id": "7", "label": "Home"},
		{"id": "8", "latitude": "abc", "longitude": 77.59},
		{"id": "9", "latitude": 12.97},
	} {
		address, err := DecodeCustomerAddress(raw)
		require.NoError(t, err)
		assert.False(t, address.HasCoordinates)
		assert.Zero(t, address.Latitude)
		assert.Zero(t, address.Longitude)
	}

	address, err := DecodeCustomerAddress(map[string]any{"id": "11", "latitude": 0.0, "longitude": 0.0})
	require.NoError(t, err)
	assert.True(t, address.HasCoordinates)
}

func TestCartSnapshot_ItemCount(t *testing.T) {
	var nilCart *CartSnapshot
	assert.Equal(t, 0, nilCart.ItemCount())
	assert.Equal(t, 2, (&CartSnapshot{Items: []CartItem{{ID: "1"}, {ID: "2"}}}).ItemCount())
}
