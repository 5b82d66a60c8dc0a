package geolocation

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quickdash/config"
	"quickdash/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticProvider(t *testing.T) {
	fix, err := NewStaticProvider(12.9716, 77.5946).CurrentPosition(context.Background(), entity.AccuracyHigh)
	require.NoError(t, err)
	assert.Equal(t, 12.9716, fix.Latitude)
	assert.Equal(t, entity.AccuracyHigh, fix.Accuracy)

	_, err = NewStaticProvider(0, 0).CurrentPosition(context.Background(), entity.AccuracyLow)
	assert.ErrorIs(t, err, ErrPositionUnavailable)

	_, err = NewStaticProvider(120, 0).CurrentPosition(context.Background(), entity.AccuracyLow)
	assert.ErrorIs(t, err, ErrPositionUnavailable)
}

func TestHTTPProvider_PassesAccuracy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "low", r.URL.Query().Get("accuracy"))
		w.Write([]byte(`{"latitude":18.52,"longitude":73.85,"accuracy":1200}`))
	}))
	defer server.Close()

	fix, err := NewHTTPProvider(server.URL).CurrentPosition(context.Background(), entity.AccuracyLow)
	require.NoError(t, err)
	assert.Equal(t, 18.52, fix.Latitude)
	assert.Equal(t, 1200.0, fix.AccuracyMeters)
}

func TestHTTPProvider_HonoursDeadline(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewHTTPProvider(server.URL).CurrentPosition(ctx, entity.AccuracyHigh)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewPositionProvider(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.ApplyDefaults()
	provider, err := NewPositionProvider(Params{Config: cfg, Logger: logger})
	require.NoError(t, err)
	assert.IsType(t, &staticProvider{}, provider)

	cfg.Geolocation.Provider = config.PositionProviderHTTP
	_, err = NewPositionProvider(Params{Config: cfg, Logger: logger})
	assert.Error(t, err)

	cfg.Geolocation.Provider = "satellite"
	_, err = NewPositionProvider(Params{Config: cfg, Logger: logger})
	assert.Error(t, err)
}
