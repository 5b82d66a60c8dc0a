package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"backend": map[string]any{
			"baseUrl": "",
		},
		"storage": map[string]any{
			"redisAddr": "",
		},
		"geolocation": map[string]any{
			"highAccuracyTimeout": "5s",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "BACKEND_BASEURL", want: "backend.baseUrl"},
		{envKey: "STORAGE_REDISADDR", want: "storage.redisAddr"},
		{envKey: "GEOLOCATION_HIGHACCURACYTIMEOUT", want: "geolocation.highAccuracyTimeout"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_OverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := []byte(`
backend:
  baseUrl: https://example.test/api/v1
  timeout: 3s
storage:
  provider: file
  path: /tmp/state.json
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "quick.yaml"), yamlBody, 0o600))

	t.Setenv("QUICKDASH_STORAGE_PROVIDER", "redis")

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	cfg, err := LoadWithEnv[Config]("quick", rel)
	require.NoError(t, err)

	assert.Equal(t, "https://example.test/api/v1", cfg.Backend.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, StorageProviderRedis, cfg.Storage.Provider)
	assert.Equal(t, "/tmp/state.json", cfg.Storage.Path)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, StorageProviderMemory, cfg.Storage.Provider)
	assert.Equal(t, 5*time.Second, cfg.Geolocation.HighAccuracyTimeout)
	assert.Equal(t, 15*time.Second, cfg.Geolocation.FallbackTimeout)
	assert.Equal(t, time.Second, cfg.Geocoding.Debounce)
	assert.Equal(t, 15*time.Minute, cfg.Geocoding.PickerTTL)
	assert.True(t, cfg.Sync.Enabled)
	assert.Equal(t, 10*time.Second, cfg.Auth.ReloadLockTTL)
	assert.Contains(t, cfg.Auth.PrivateScopes, "checkout")
	assert.Zero(t, cfg.Warehouse.CacheTTL)
	assert.Equal(t, "127.0.0.1", cfg.HTTP.Host)
	assert.Equal(t, 8080, cfg.HTTP.Port)
}
