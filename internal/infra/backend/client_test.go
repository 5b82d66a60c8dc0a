package backend

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"quickdash/config"
	"quickdash/internal/domain/entity"
	domainerrors "quickdash/internal/domain/errors"
	"quickdash/internal/domain/repository"
	"quickdash/internal/infra/persistence/kv"
	"quickdash/internal/infra/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, repository.TokenRepository) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{Backend: &config.BackendConfig{BaseURL: server.URL + "/api/v1/", Timeout: 5 * time.Second}}
	tokens := kv.NewTokenRepository(storage.NewMemoryStore(storage.NewMemoryBackend(), "tab-test"))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewClient(cfg, tokens, logger), tokens
}

func TestClient_SendsBearerAndIdempotencyKey(t *testing.T) {
	var postKey, getKey, auth string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/orders/cart/add/", func(w http.ResponseWriter, r *http.Request) {
		postKey = r.Header.Get("Idempotency-Key")
		auth = r.Header.Get("Authorization")
		w.Write([]byte(`{"items":[]}`))
	})
	mux.HandleFunc("/api/v1/orders/cart/", func(w http.ResponseWriter, r *http.Request) {
		getKey = r.Header.Get("Idempotency-Key")
		w.Write([]byte(`{"items":[]}`))
	})

	client, tokens := newTestClient(t, mux)
	require.NoError(t, tokens.Save(context.Background(), entity.TokenPair{AccessToken: "access-1"}))

	require.NoError(t, client.Do(context.Background(), http.MethodPost, "/orders/cart/add/", map[string]any{"sku": "A"}, nil))
	require.NoError(t, client.Do(context.Background(), http.MethodGet, "orders/cart/", nil, nil))

	assert.Equal(t, "Bearer access-1", auth)
	assert.Len(t, postKey, 36)
	assert.Empty(t, getKey)
}

func TestClient_RefreshesOnceAndRetries(t *testing.T) {
	var refreshCalls atomic.Int32
	var mu sync.Mutex
	seen := []string{}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/refresh/", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "refresh-1", body["refresh"])
		time.Sleep(50 * time.Millisecond)
		w.Write([]byte(`{"access":"access-2"}`))
	})
	mux.HandleFunc("/api/v1/orders/cart/", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.Header.Get("Authorization"))
		mu.Unlock()

		if r.Header.Get("Authorization") != "Bearer access-2" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"Given token not valid"}`))

			return
		}
		w.Write([]byte(`{"items":[],"total_amount":"0.00"}`))
	})

	client, tokens := newTestClient(t, mux)
	ctx := context.Background()
	require.NoError(t, tokens.Save(ctx, entity.TokenPair{AccessToken: "access-1", RefreshToken: "refresh-1"}))

	var wg sync.WaitGroup
	errs := make([]error, 3)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = client.Do(ctx, http.MethodGet, "/orders/cart/", nil, nil)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, int32(1), refreshCalls.Load())

	stored, err := tokens.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "access-2", stored.AccessToken)
	assert.Equal(t, "refresh-1", stored.RefreshToken)
	assert.Contains(t, seen, "Bearer access-2")
}

func TestClient_RefreshFailureClearsTokens(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/refresh/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Token is blacklisted"}`))
	})
	mux.HandleFunc("/api/v1/auth/me/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	client, tokens := newTestClient(t, mux)
	ctx := context.Background()
	require.NoError(t, tokens.Save(ctx, entity.TokenPair{AccessToken: "stale", RefreshToken: "revoked"}))

	err := client.Do(ctx, http.MethodGet, "/auth/me/", nil, nil)
	assert.ErrorIs(t, err, domainerrors.ErrAuthExpired)

	stored, err := tokens.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestClient_GuestUnauthorizedIsAuthExpired(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	err := client.Do(context.Background(), http.MethodGet, "/orders/cart/", nil, nil)
	assert.ErrorIs(t, err, domainerrors.ErrAuthExpired)
}

func TestClient_NonSuccessBecomesBackendError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"quantity":["Ensure this value is greater than or equal to 1."]}`))
	}))

	err := client.Do(context.Background(), http.MethodPost, "/orders/cart/add/", map[string]any{}, nil)

	var backendErr *domainerrors.BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, http.StatusBadRequest, backendErr.Status())
	assert.Equal(t, "quantity: Ensure this value is greater than or equal to 1.", backendErr.Message())
}

func TestClient_MalformedBodyIsUnrecognized(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>oops</html>`))
	}))

	var out map[string]any
	err := client.Do(context.Background(), http.MethodGet, "/orders/cart/", nil, &out)
	assert.ErrorIs(t, err, domainerrors.ErrUnrecognizedResponse)
}

func TestExtractErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "detail first", body: `{"error":"e","detail":"d"}`, want: "d"},
		{name: "string error", body: `{"error":"Address not found"}`, want: "Address not found"},
		{name: "object error", body: `{"error":{"code":1}}`, want: `{"code":1}`},
		{name: "non field errors", body: `{"non_field_errors":["Invalid OTP","x"]}`, want: "Invalid OTP"},
		{name: "first field in document order", body: `{"pincode":["Enter 6 digits"],"city":["Required"]}`, want: "pincode: Enter 6 digits"},
		{name: "scalar field", body: `{"phone":"taken"}`, want: "phone: taken"},
		{name: "empty body", body: ``, want: genericErrorMessage},
		{name: "empty object", body: `{}`, want: genericErrorMessage},
		{name: "html", body: `<h1>502</h1>`, want: genericErrorMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractErrorMessage([]byte(tt.body)))
		})
	}
}
