// Package config handles loading and validating the SDK configuration from
// an in-memory map or a JSON/YAML file, and holds the in-process tier of
// the access-token cache.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/cdiscount-sdk/pkg/sdkerrors"
)

const (
	DefaultBaseURL        = "https://api.octopia-io.net/seller/v2"
	DefaultTokenURL       = "https://auth.octopia-io.net"
	DefaultGrantType      = "client_credentials"
	DefaultTimeout        = 30 * time.Second
	DefaultCacheFile      = ".cdiscount_token_cache.json"
	DefaultRedisKeyPrefix = "cdiscount:token:"

	// TokenPath is appended to the authorization server base URL.
	TokenPath = "/auth/realms/maas/protocol/openid-connect/token" //nolint:gosec // not a credential

	// SafetyBuffer is subtracted from a token's lifetime so it is never
	// used in the last minute before it expires.
	SafetyBuffer = 60 * time.Second
)

// Cache backends.
const (
	CacheBackendFile  = "file"
	CacheBackendRedis = "redis"
)

// Options is the raw, serializable configuration. Keys match the
// snake_case names used in configuration files.
type Options struct {
	ClientID          string `mapstructure:"client_id"           json:"client_id"           yaml:"client_id"`
	ClientSecret      string `mapstructure:"client_secret"       json:"client_secret"       yaml:"client_secret"`
	GrantType         string `mapstructure:"grant_type"          json:"grant_type"          yaml:"grant_type"`
	BaseURLToken      string `mapstructure:"base_url_token"      json:"base_url_token"      yaml:"base_url_token"`
	BaseURL           string `mapstructure:"base_url"            json:"base_url"            yaml:"base_url"`
	SellerID          string `mapstructure:"seller_id"           json:"seller_id"           yaml:"seller_id"`
	Timeout           int    `mapstructure:"timeout"             json:"timeout"             yaml:"timeout"` // seconds
	Debug             bool   `mapstructure:"debug"               json:"debug"               yaml:"debug"`
	TokenCachePath    string `mapstructure:"token_cache_path"    json:"token_cache_path"    yaml:"token_cache_path"`
	TokenCacheBackend string `mapstructure:"token_cache_backend" json:"token_cache_backend" yaml:"token_cache_backend"`
	RedisURL          string `mapstructure:"redis_url"           json:"redis_url"           yaml:"redis_url"`
	RedisKeyPrefix    string `mapstructure:"redis_key_prefix"    json:"redis_key_prefix"    yaml:"redis_key_prefix"`
	Tracing           bool   `mapstructure:"tracing"             json:"tracing"             yaml:"tracing"`
	LogLevel          string `mapstructure:"log_level"           json:"log_level"           yaml:"log_level"`
	LogFormat         string `mapstructure:"log_format"          json:"log_format"          yaml:"log_format"`
}

// Config is the validated configuration of one client instance. Option
// values are read-only after construction; the seller id and the
// in-process access token may change and are guarded by a mutex.
type Config struct {
	opts Options

	mu             sync.RWMutex
	sellerID       string
	accessToken    string
	tokenExpiresAt time.Time
	nowFunc        func() time.Time
}

// Option configures a Config.
type Option func(*Config)

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) Option {
	return func(c *Config) {
		c.nowFunc = f
	}
}

// New applies defaults to opts, validates them and returns a Config.
func New(opts Options, options ...Option) (*Config, error) {
	applyDefaults(&opts)

	if err := validate(&opts); err != nil {
		return nil, sdkerrors.NewConfigurationError("invalid configuration", err)
	}

	c := &Config{
		opts:     opts,
		sellerID: opts.SellerID,
		nowFunc:  time.Now,
	}
	for _, o := range options {
		o(c)
	}
	return c, nil
}

// FromMap builds a Config from a generic map such as one decoded from JSON.
// Values are weakly typed, so "timeout": "30" and "debug": "true" are
// accepted. Unknown keys are ignored.
func FromMap(m map[string]any, options ...Option) (*Config, error) {
	opts, err := DecodeOptions(m)
	if err != nil {
		return nil, err
	}
	return New(opts, options...)
}

// DecodeOptions decodes a generic map into Options without applying
// defaults.
func DecodeOptions(m map[string]any) (Options, error) {
	var opts Options

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &opts,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return opts, sdkerrors.NewConfigurationError("creating options decoder", err)
	}

	if err := dec.Decode(m); err != nil {
		return opts, sdkerrors.NewConfigurationError("decoding options", err)
	}

	return opts, nil
}

// Load reads a configuration file. Files ending in .yaml or .yml are parsed
// as YAML; anything else is parsed as JSON.
func Load(path string, options ...Option) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted caller
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, sdkerrors.NewConfigurationError(
				fmt.Sprintf("configuration file not found: %s", path), err,
			)
		}
		return nil, sdkerrors.NewConfigurationError("reading configuration file", err)
	}

	raw := map[string]any{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, sdkerrors.NewConfigurationError("invalid YAML in configuration file", err)
		}
	default:
		if err := unmarshalJSONObject(data, &raw); err != nil {
			return nil, sdkerrors.NewConfigurationError("invalid JSON in configuration file", err)
		}
	}

	return FromMap(raw, options...)
}

func applyDefaults(o *Options) {
	if o.GrantType == "" {
		o.GrantType = DefaultGrantType
	}
	if o.BaseURLToken == "" {
		o.BaseURLToken = DefaultTokenURL
	}
	if o.BaseURL == "" {
		o.BaseURL = DefaultBaseURL
	}
	o.BaseURLToken = strings.TrimRight(o.BaseURLToken, "/")
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")

	if o.Timeout <= 0 {
		o.Timeout = int(DefaultTimeout / time.Second)
	}
	if o.TokenCachePath == "" {
		o.TokenCachePath = filepath.Join(os.TempDir(), DefaultCacheFile)
	}
	if o.TokenCacheBackend == "" {
		o.TokenCacheBackend = CacheBackendFile
	}
	if o.RedisKeyPrefix == "" {
		o.RedisKeyPrefix = DefaultRedisKeyPrefix
	}
	if o.LogLevel == "" {
		o.LogLevel = "info"
		if o.Debug {
			o.LogLevel = "debug"
		}
	}
	if o.LogFormat == "" {
		o.LogFormat = "text"
	}
}

func validate(o *Options) error {
	var errs []error

	if o.ClientID == "" {
		errs = append(errs, fmt.Errorf("client_id is required"))
	}
	if o.ClientSecret == "" {
		errs = append(errs, fmt.Errorf("client_secret is required"))
	}

	switch o.TokenCacheBackend {
	case CacheBackendFile:
	case CacheBackendRedis:
		if o.RedisURL == "" {
			errs = append(
				errs,
				fmt.Errorf("redis_url is required when token_cache_backend is redis"),
			)
		}
	default:
		errs = append(
			errs,
			fmt.Errorf(
				"token_cache_backend must be one of: file, redis (got %q)",
				o.TokenCacheBackend,
			),
		)
	}

	switch o.LogFormat {
	case "text", "json", "pretty":
	default:
		errs = append(
			errs,
			fmt.Errorf("log_format must be one of: text, json, pretty (got %q)", o.LogFormat),
		)
	}

	return errors.Join(errs...)
}

// Options returns a copy of the option values, with the current seller id.
func (c *Config) Options() Options {
	o := c.opts
	o.SellerID = c.SellerID()
	return o
}

// ClientID returns the OAuth client identifier.
func (c *Config) ClientID() string { return c.opts.ClientID }
// ClientSecret returns the OAuth client secret.
func (c *Config) ClientSecret() string { return c.opts.ClientSecret }
// GrantType returns the token grant type.
func (c *Config) GrantType() string { return c.opts.GrantType }
// BaseURLToken returns the authorization server base URL.
func (c *Config) BaseURLToken() string { return c.opts.BaseURLToken }
// BaseURL returns the seller API base URL.
func (c *Config) BaseURL() string { return c.opts.BaseURL }
// Debug reports whether debug logging is enabled.
func (c *Config) Debug() bool { return c.opts.Debug }
// TokenCachePath returns the persistent token file path.
func (c *Config) TokenCachePath() string { return c.opts.TokenCachePath }
// Tracing reports whether HTTP calls are traced.
func (c *Config) Tracing() bool { return c.opts.Tracing }

// Timeout returns the per-request timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.opts.Timeout) * time.Second
}

// TokenEndpoint returns the full OAuth2 token URL.
func (c *Config) TokenEndpoint() string {
	return c.opts.BaseURLToken + TokenPath
}

// SellerID returns the tenant identifier sent with every API call.
func (c *Config) SellerID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sellerID
}

// SetSellerID changes the tenant identifier for subsequent calls.
func (c *Config) SetSellerID(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sellerID = id
}

// SetAccessToken stores a token in the in-process tier. The token is
// considered expired SafetyBuffer before expiresIn elapses.
func (c *Config) SetAccessToken(token string, expiresIn time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = token
	c.tokenExpiresAt = c.nowFunc().Add(expiresIn - SafetyBuffer)
}

// AccessToken returns the in-process token, which may be expired or empty.
func (c *Config) AccessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

// TokenExpiresAt returns the buffered expiry of the in-process token.
func (c *Config) TokenExpiresAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tokenExpiresAt
}

// IsTokenValid reports whether the in-process token can be used now.
func (c *Config) IsTokenValid() bool {
	_, ok := c.ValidAccessToken()
	return ok
}

// ValidAccessToken returns the in-process token when it is still valid.
func (c *Config) ValidAccessToken() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.accessToken == "" || c.tokenExpiresAt.IsZero() {
		return "", false
	}
	if !c.nowFunc().Before(c.tokenExpiresAt) {
		return "", false
	}
	return c.accessToken, true
}

// ClearToken drops the in-process token.
func (c *Config) ClearToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = ""
	c.tokenExpiresAt = time.Time{}
}
