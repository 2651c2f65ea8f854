package panels

import "github.com/grafana/grafana-foundation-sdk/go/timeseries"

// ExchangeRate returns a timeseries panel showing token exchanges per
// minute split by result.
func ExchangeRate() *timeseries.PanelBuilder {
	return multiSeries("Token Exchanges / min", "Client-credentials exchanges by result", thirdRow).
		WithTarget(query(`cdiscount:token_exchanges:rate5m * 60`, "{{result}}", "A"))
}

// CacheHits returns a timeseries panel showing token cache hits per minute
// split by tier.
func CacheHits() *timeseries.PanelBuilder {
	return multiSeries("Cache Hits / min", "Token lookups served by the memory and persistent tiers", thirdRow).
		WithTarget(query(`cdiscount:token_cache_hits:rate5m * 60`, "{{tier}}", "A"))
}

// ExchangeLatency returns a timeseries panel showing p50 and p95 token
// exchange durations.
func ExchangeLatency() *timeseries.PanelBuilder {
	b := multiSeries("Exchange Latency", "Token exchange duration percentiles", thirdRow).
		Unit("s")
	return withQuantiles(b, "cdiscount_token_exchange_duration_seconds", 0.50, 0.95)
}
