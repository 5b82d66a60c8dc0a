// Package geocoding resolves coordinates to human readable places.
package geocoding

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"quickdash/config"
	"quickdash/internal/domain/entity"
	"quickdash/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	SourceOSM        = "OSM"
	defaultUserAgent = "quickdash-session/1.0"
)

type nominatimResponse struct {
	DisplayName string `json:"display_name"`
	Address     struct {
		City     string `json:"city"`
		Town     string `json:"town"`
		Village  string `json:"village"`
		County   string `json:"county"`
		Postcode string `json:"postcode"`
	} `json:"address"`
	Error string `json:"error"`
}

// nominatimGeocoder implements ReverseGeocoder against an OpenStreetMap Nominatim endpoint.
type nominatimGeocoder struct {
	endpoint   string
	userAgent  string
	language   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewNominatimGeocoder creates a reverse geocoder from configuration.
func NewNominatimGeocoder(cfg *config.Config, logger *slog.Logger) service.ReverseGeocoder {
	userAgent := cfg.Geocoding.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &nominatimGeocoder{
		endpoint:   cfg.Geocoding.Endpoint,
		userAgent:  userAgent,
		language:   cfg.Geocoding.Language,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

func (g *nominatimGeocoder) ReverseGeocode(ctx context.Context, lat, lng float64) (*entity.GeocodedPlace, error) {
	query := url.Values{}
	query.Set("format", "json")
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create geocode request")
	}
	req.Header.Set("Accept-Language", g.language)
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reverse geocode")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("nominatim returned status %d", resp.StatusCode)
	}

	var body nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "failed to decode geocode response")
	}
	if body.Error != "" {
		return nil, errors.Errorf("nominatim: %s", body.Error)
	}

	place := &entity.GeocodedPlace{
		FormattedAddress: body.DisplayName,
		City:             firstNonEmpty(body.Address.City, body.Address.Town, body.Address.Village, body.Address.County),
		Pincode:          body.Address.Postcode,
		Source:           SourceOSM,
	}

	g.logger.Debug("Reverse geocoded",
		slog.Float64("lat", lat),
		slog.Float64("lng", lng),
		slog.String("city", place.City),
	)

	return place, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
