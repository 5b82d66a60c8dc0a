package geocoding

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"quickdash/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGeocoder(t *testing.T, handler http.HandlerFunc) *nominatimGeocoder {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.ApplyDefaults()
	cfg.Geocoding.Endpoint = server.URL + "/reverse"

	return NewNominatimGeocoder(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).(*nominatimGeocoder)
}

func TestNominatimGeocoder_ReverseGeocode(t *testing.T) {
	geocoder := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "12.9716", r.URL.Query().Get("lat"))
		assert.Equal(t, "77.5946", r.URL.Query().Get("lon"))
		assert.Equal(t, "en", r.Header.Get("Accept-Language"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		w.Write([]byte(`{"display_name":"Cubbon Park, Bengaluru, Karnataka, 560001, India","address":{"town":"Bengaluru","county":"Bangalore Urban","postcode":"560001"}}`))
	})

	place, err := geocoder.ReverseGeocode(context.Background(), 12.9716, 77.5946)
	require.NoError(t, err)
	assert.Equal(t, "Cubbon Park, Bengaluru, Karnataka, 560001, India", place.FormattedAddress)
	assert.Equal(t, "Bengaluru", place.City)
	assert.Equal(t, "560001", place.Pincode)
	assert.Equal(t, SourceOSM, place.Source)
}

func TestNominatimGeocoder_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{name: "status", handler: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusTooManyRequests) }},
		{name: "error body", handler: func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(`{"error":"Unable to geocode"}`)) }},
		{name: "malformed", handler: func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(`not json`)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestGeocoder(t, tt.handler).ReverseGeocode(context.Background(), 1, 2)
			assert.Error(t, err)
		})
	}
}
