package main

import "errors"

// KnownMetrics is the set of metric names exported by the Cdiscount SDK
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// Token metrics.
	"cdiscount_token_exchanges_total":           true,
	"cdiscount_token_cache_hits_total":          true,
	"cdiscount_token_exchange_duration_seconds": true,

	// Seller API metrics.
	"cdiscount_api_requests_total":           true,
	"cdiscount_api_request_duration_seconds": true,
	"cdiscount_auth_retries_total":           true,

	// Recording rules.
	"cdiscount:api_requests:rate5m":     true,
	"cdiscount:api_errors:rate5m":       true,
	"cdiscount:token_exchanges:rate5m":  true,
	"cdiscount:token_cache_hits:rate5m": true,
	"cdiscount:auth_retries:rate5m":     true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
