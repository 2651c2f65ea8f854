package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/gauge"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
)

// RequestRateStat returns a stat panel showing the current seller API
// request rate.
func RequestRateStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("API Requests").
		Description("Seller API requests per second").
		Datasource(datasource()).
		Height(statHeight).
		Span(statWidth).
		WithTarget(query(`cdiscount:api_requests:rate5m`, "", "A")).
		Unit("reqps").
		Thresholds(thresholds("green")).
		ColorScheme(byThreshold()).
		GraphMode(common.BigValueGraphModeArea)
}

// ErrorRatioGauge returns a gauge panel showing failed seller API requests
// as a percentage of all requests.
func ErrorRatioGauge() *gauge.PanelBuilder {
	return gauge.NewPanelBuilder().
		Title("API Error %").
		Description("Requests answered with 4xx, 5xx or no response").
		Datasource(datasource()).
		Height(statHeight).
		Span(statWidth).
		WithTarget(query(`cdiscount:api_errors:rate5m / cdiscount:api_requests:rate5m * 100`, "", "A")).
		Unit("percent").
		Min(0).
		Max(100).
		Thresholds(rising(1, 5)).
		ColorScheme(byThreshold())
}

// CacheHitRatioStat returns a stat panel showing the share of token
// lookups served from a cache tier rather than a fresh exchange.
func CacheHitRatioStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Token Cache Hit %").
		Description("Token lookups served from memory or the persistent cache").
		Datasource(datasource()).
		Height(statHeight).
		Span(statWidth).
		WithTarget(query(
			`sum(cdiscount:token_cache_hits:rate5m) / (sum(cdiscount:token_cache_hits:rate5m) + sum(cdiscount:token_exchanges:rate5m)) * 100`,
			"", "A",
		)).
		Unit("percent").
		Thresholds(falling(90, 50)).
		ColorScheme(byThreshold()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// ExchangeFailuresStat returns a stat panel counting failed token exchanges
// over the last day.
func ExchangeFailuresStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Exchange Failures (24h)").
		Description("Client-credentials exchanges rejected or unreachable in the last 24 hours").
		Datasource(datasource()).
		Height(statHeight).
		Span(statWidth).
		WithTarget(query(`sum(increase(cdiscount_token_exchanges_total{result="failure"}[24h]))`, "", "A")).
		Thresholds(rising(1, 5)).
		ColorScheme(byThreshold()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone).
		TextMode(common.BigValueTextModeValue)
}
