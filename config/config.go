package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath = "."

	defaultBackendTimeout      = 15 * time.Second
	defaultHighAccuracyTimeout = 5 * time.Second
	defaultFallbackTimeout     = 15 * time.Second
	defaultGeocodeDebounce     = time.Second
	defaultPickerTTL           = 15 * time.Minute
	defaultSyncDebounce        = 100 * time.Millisecond
	defaultReloadLockTTL       = 10 * time.Second
	defaultRefreshSkew         = 30 * time.Second
	defaultNominatimEndpoint   = "https://nominatim.openstreetmap.org/reverse"
	defaultStorageChannel      = "quickdash:storage"
	defaultHTTPHost            = "127.0.0.1"
	defaultHTTPPort            = 8080
)

// Storage providers
const (
	StorageProviderMemory = "memory"
	StorageProviderFile   = "file"
	StorageProviderRedis  = "redis"
)

// Position providers
const (
	PositionProviderStatic = "static"
	PositionProviderHTTP   = "http"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Enabled      bool     `json:"enabled" yaml:"enabled"`
		Host         string   `json:"host" yaml:"host"`
		Port         int      `json:"port" yaml:"port"`
		AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
	} `json:"http" yaml:"http"`

	Backend *BackendConfig `json:"backend" yaml:"backend"`

	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Geolocation configures the two-tier position lookup
	Geolocation *GeolocationConfig `json:"geolocation" yaml:"geolocation"`

	// Geocoding configures reverse geocoding for the map picker
	Geocoding *GeocodingConfig `json:"geocoding" yaml:"geocoding"`

	Warehouse *WarehouseConfig `json:"warehouse" yaml:"warehouse"`

	// Sync configures the cross-session reload behaviour
	Sync *SyncConfig `json:"sync" yaml:"sync"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// BackendConfig points the session at the storefront REST API
type BackendConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// StorageConfig selects where persisted client state lives.
// Every session sharing the same file or redis instance behaves like a browser tab of the same origin.
type StorageConfig struct {
	// Provider type: "memory", "file" or "redis"
	Provider string `json:"provider" yaml:"provider"`

	// Path of the JSON state file (file provider)
	Path string `json:"path" yaml:"path"`

	// Redis address, key prefix and change channel (redis provider)
	RedisAddr     string `json:"redisAddr" yaml:"redisAddr"`
	RedisPassword string `json:"redisPassword" yaml:"redisPassword"`
	RedisDB       int    `json:"redisDb" yaml:"redisDb"`
	KeyPrefix     string `json:"keyPrefix" yaml:"keyPrefix"`
	Channel       string `json:"channel" yaml:"channel"`
}

// GeolocationConfig defines the precise and coarse position attempts
type GeolocationConfig struct {
	Provider string `json:"provider" yaml:"provider"`

	// Endpoint of the position service (http provider)
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// Fixed coordinates (static provider)
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`

	HighAccuracyTimeout time.Duration `json:"highAccuracyTimeout" yaml:"highAccuracyTimeout"`
	FallbackTimeout     time.Duration `json:"fallbackTimeout" yaml:"fallbackTimeout"`
}

// GeocodingConfig defines the reverse geocoder used by the map picker
type GeocodingConfig struct {
	Endpoint  string        `json:"endpoint" yaml:"endpoint"`
	UserAgent string        `json:"userAgent" yaml:"userAgent"`
	Language  string        `json:"language" yaml:"language"`
	Debounce  time.Duration `json:"debounce" yaml:"debounce"`
	// PickerTTL expires map picker sessions that were never confirmed or cancelled
	PickerTTL time.Duration `json:"pickerTtl" yaml:"pickerTtl"`
}

// WarehouseConfig defines warehouse cache behaviour
type WarehouseConfig struct {
	// CacheTTL bounds how long a resolved warehouse id is trusted. Zero disables expiry;
	// the cache is still dropped on every location change.
	CacheTTL time.Duration `json:"cacheTtl" yaml:"cacheTtl"`
}

type SyncConfig struct {
	Enabled  bool          `json:"enabled" yaml:"enabled"`
	Debounce time.Duration `json:"debounce" yaml:"debounce"`
}

// AuthConfig defines token handling
type AuthConfig struct {
	RefreshSkew   time.Duration `json:"refreshSkew" yaml:"refreshSkew"`
	ReloadLockTTL time.Duration `json:"reloadLockTtl" yaml:"reloadLockTtl"`
	// PrivateScopes lists the page scopes that require a signed-in user
	PrivateScopes []string `json:"privateScopes" yaml:"privateScopes"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment variables override YAML, e.g. BACKEND_BASEURL -> backend.baseUrl
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		Prefix: "QUICKDASH_",
		TransformFunc: func(k, v string) (string, any) {
			key := canonicalizeEnvKey(strings.TrimPrefix(k, "QUICKDASH_"), existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if cfg.Backend.BaseURL == "" {
		return nil, errors.New("backend.baseUrl is required")
	}

	return cfg, nil
}

// ApplyDefaults fills every optional section so consumers never deal with nil sections.
func (c *Config) ApplyDefaults() {
	if c.HTTP.Host == "" {
		c.HTTP.Host = defaultHTTPHost
	}
	if c.HTTP.Port == 0 {
		c.HTTP.Port = defaultHTTPPort
	}
	if len(c.HTTP.AllowOrigins) == 0 {
		c.HTTP.AllowOrigins = []string{"*"}
	}

	if c.Backend == nil {
		c.Backend = &BackendConfig{}
	}
	if c.Backend.Timeout <= 0 {
		c.Backend.Timeout = defaultBackendTimeout
	}

	if c.Storage == nil {
		c.Storage = &StorageConfig{}
	}
	if c.Storage.Provider == "" {
		c.Storage.Provider = StorageProviderMemory
	}
	if c.Storage.Channel == "" {
		c.Storage.Channel = defaultStorageChannel
	}

	if c.Geolocation == nil {
		c.Geolocation = &GeolocationConfig{}
	}
	if c.Geolocation.Provider == "" {
		c.Geolocation.Provider = PositionProviderStatic
	}
	if c.Geolocation.HighAccuracyTimeout <= 0 {
		c.Geolocation.HighAccuracyTimeout = defaultHighAccuracyTimeout
	}
	if c.Geolocation.FallbackTimeout <= 0 {
		c.Geolocation.FallbackTimeout = defaultFallbackTimeout
	}

	if c.Geocoding == nil {
		c.Geocoding = &GeocodingConfig{}
	}
	if c.Geocoding.Endpoint == "" {
		c.Geocoding.Endpoint = defaultNominatimEndpoint
	}
	if c.Geocoding.Language == "" {
		c.Geocoding.Language = "en"
	}
	if c.Geocoding.Debounce <= 0 {
		c.Geocoding.Debounce = defaultGeocodeDebounce
	}
	if c.Geocoding.PickerTTL <= 0 {
		c.Geocoding.PickerTTL = defaultPickerTTL
	}

	if c.Warehouse == nil {
		c.Warehouse = &WarehouseConfig{}
	}

	if c.Sync == nil {
		c.Sync = &SyncConfig{Enabled: true}
	}
	if c.Sync.Debounce <= 0 {
		c.Sync.Debounce = defaultSyncDebounce
	}

	if c.Auth == nil {
		c.Auth = &AuthConfig{}
	}
	if c.Auth.RefreshSkew <= 0 {
		c.Auth.RefreshSkew = defaultRefreshSkew
	}
	if c.Auth.ReloadLockTTL <= 0 {
		c.Auth.ReloadLockTTL = defaultReloadLockTTL
	}
	if len(c.Auth.PrivateScopes) == 0 {
		c.Auth.PrivateScopes = []string{"profile", "orders", "checkout", "addresses", "order_detail", "track_order"}
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
