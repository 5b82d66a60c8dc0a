// Package backend is the REST collaborator for the storefront API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"quickdash/config"
	"quickdash/internal/domain/entity"
	domainerrors "quickdash/internal/domain/errors"
	"quickdash/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
)

const refreshEndpoint = "/auth/refresh/"

// Client performs authenticated JSON requests against the backend. A 401 triggers
// at most one shared token refresh followed by a single retry of the request.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     repository.TokenRepository
	logger     *slog.Logger

	refreshGroup singleflight.Group
	newKey       func() string
}

// NewClient is the constructor for Client.
func NewClient(cfg *config.Config, tokens repository.TokenRepository, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.Backend.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Backend.Timeout},
		tokens:     tokens,
		logger:     logger,
		newKey:     uuid.NewString,
	}
}

type rawResponse struct {
	status int
	body   []byte
}

// Do sends body as JSON and decodes a successful response into out (when non-nil).
func (c *Client) Do(ctx context.Context, method, endpoint string, body, out any) error {
	raw, err := c.request(ctx, method, endpoint, body)
	if err != nil {
		return err
	}

	if out == nil || len(bytes.TrimSpace(raw.body)) == 0 {
		return nil
	}

	return decodeJSON(raw.body, out)
}

// request returns the raw response of a 2xx call; any other status becomes an error.
func (c *Client) request(ctx context.Context, method, endpoint string, body any) (*rawResponse, error) {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return nil, errors.Wrap(err, "failed to marshal request body")
		}
	}

	idempotencyKey := ""
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		idempotencyKey = c.newKey()
	}

	accessToken, err := c.currentAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := c.send(ctx, method, endpoint, payload, accessToken, idempotencyKey)
	if err != nil {
		return nil, err
	}

	if resp.status == http.StatusUnauthorized {
		c.logger.Debug("Backend returned 401, refreshing token", slog.String("endpoint", endpoint))

		refreshed, err := c.refreshAccessToken(ctx, accessToken)
		if err != nil {
			return nil, err
		}

		resp, err = c.send(ctx, method, endpoint, payload, refreshed, idempotencyKey)
		if err != nil {
			return nil, err
		}
	}

	if resp.status < 200 || resp.status >= 300 {
		message := extractErrorMessage(resp.body)
		c.logger.Debug("Backend request failed",
			slog.String("method", method),
			slog.String("endpoint", endpoint),
			slog.Int("status", resp.status),
			slog.String("message", message),
		)

		return nil, domainerrors.NewBackendError(resp.status, message)
	}

	return resp, nil
}

func (c *Client) send(ctx context.Context, method, endpoint string, payload []byte, accessToken, idempotencyKey string) (*rawResponse, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(endpoint), reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, endpoint)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	return &rawResponse{status: resp.StatusCode, body: data}, nil
}

func (c *Client) url(endpoint string) string {
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}

	return c.baseURL + endpoint
}

func (c *Client) currentAccessToken(ctx context.Context) (string, error) {
	tokens, err := c.tokens.Load(ctx)
	if err != nil {
		return "", err
	}
	if tokens == nil {
		return "", nil
	}

	return tokens.AccessToken, nil
}

type refreshResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// refreshAccessToken exchanges the refresh token once for all concurrent callers.
// On failure the stored tokens are cleared and ErrAuthExpired is returned.
func (c *Client) refreshAccessToken(ctx context.Context, staleToken string) (string, error) {
	result, err, _ := c.refreshGroup.Do("refresh", func() (any, error) {
		tokens, err := c.tokens.Load(ctx)
		if err != nil {
			return "", err
		}

		// Another caller already rotated the token after our request went out.
		if tokens != nil && tokens.AccessToken != "" && tokens.AccessToken != staleToken {
			return tokens.AccessToken, nil
		}

		if tokens == nil || tokens.RefreshToken == "" {
			return "", c.expireSession(ctx, "no refresh token")
		}

		payload, err := json.Marshal(map[string]string{"refresh": tokens.RefreshToken})
		if err != nil {
			return "", errors.Wrap(err, "failed to marshal refresh body")
		}

		resp, err := c.send(ctx, http.MethodPost, refreshEndpoint, payload, "", "")
		if err != nil {
			c.logger.Warn("Token refresh failed", slog.Any("error", err))

			return "", c.expireSession(ctx, "refresh transport error")
		}
		if resp.status != http.StatusOK {
			return "", c.expireSession(ctx, "refresh rejected: "+extractErrorMessage(resp.body))
		}

		var refreshed refreshResponse
		if err := json.Unmarshal(resp.body, &refreshed); err != nil || refreshed.Access == "" {
			return "", c.expireSession(ctx, "refresh response without access token")
		}

		if err := c.tokens.Save(ctx, entity.TokenPair{AccessToken: refreshed.Access, RefreshToken: refreshed.Refresh}); err != nil {
			return "", err
		}

		c.logger.Info("Access token refreshed")

		return refreshed.Access, nil
	})
	if err != nil {
		return "", err
	}

	return result.(string), nil
}

func (c *Client) expireSession(ctx context.Context, reason string) error {
	if err := c.tokens.Clear(ctx); err != nil {
		c.logger.Error("Failed to clear tokens", slog.Any("error", err))
	}

	return domainerrors.ErrAuthExpired.WithDetails(reason)
}

func decodeJSON(data []byte, out any) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(out); err != nil {
		return domainerrors.ErrUnrecognizedResponse.WithDetails(err.Error())
	}

	return nil
}
