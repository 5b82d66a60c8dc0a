package geolocation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"quickdash/internal/domain/entity"
	"quickdash/internal/domain/service"

	"github.com/pkg/errors"
)

type positionResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`
}

// httpProvider asks a local position daemon for a fix. The daemon receives the
// requested accuracy as a query parameter and must answer within the ctx deadline.
type httpProvider struct {
	endpoint   string
	httpClient *http.Client
}

// NewHTTPProvider is the constructor for httpProvider.
func NewHTTPProvider(endpoint string) service.PositionProvider {
	return &httpProvider{
		endpoint:   endpoint,
		httpClient: &http.Client{},
	}
}

func (p *httpProvider) CurrentPosition(ctx context.Context, accuracy entity.Accuracy) (*entity.PositionFix, error) {
	query := url.Values{}
	query.Set("accuracy", string(accuracy))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create position request")
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read position")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(ErrPositionUnavailable, "position service returned %d", resp.StatusCode)
	}

	var body positionResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "failed to decode position")
	}
	if !entity.ValidCoordinates(body.Latitude, body.Longitude) {
		return nil, errors.Wrap(ErrPositionUnavailable, "position service returned invalid coordinates")
	}

	return &entity.PositionFix{
		Latitude:       body.Latitude,
		Longitude:      body.Longitude,
		AccuracyMeters: body.Accuracy,
		Accuracy:       accuracy,
		Timestamp:      time.Now(),
	}, nil
}
