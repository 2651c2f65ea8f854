package panels

import "github.com/grafana/grafana-foundation-sdk/go/timeseries"

// RequestRate returns a timeseries panel showing seller API requests per
// second split by status class.
func RequestRate() *timeseries.PanelBuilder {
	return multiSeries("Request Rate", "Seller API requests per second by status class", halfRow).
		WithTarget(query(`sum(rate(cdiscount_api_requests_total[5m])) by (status)`, "{{status}}", "A")).
		Unit("reqps")
}

// LatencyPercentiles returns a timeseries panel showing p50, p95 and p99
// seller API request latencies.
func LatencyPercentiles() *timeseries.PanelBuilder {
	b := multiSeries("Latency Percentiles", "Seller API request duration percentiles", halfRow).
		Unit("s")
	return withQuantiles(b, "cdiscount_api_request_duration_seconds", 0.50, 0.95, 0.99)
}

// ErrorRate returns a timeseries panel showing failed requests as a
// percentage of all seller API requests.
func ErrorRate() *timeseries.PanelBuilder {
	return series("Error Rate %", "4xx, 5xx and transport failures as percentage of total requests", halfRow).
		WithTarget(query(`cdiscount:api_errors:rate5m / cdiscount:api_requests:rate5m * 100`, "error %", "A")).
		Unit("percent").
		Thresholds(rising(1, 5)).
		ColorScheme(byThreshold())
}

// AuthRetries returns a timeseries panel showing requests re-issued after
// a 401 per minute.
func AuthRetries() *timeseries.PanelBuilder {
	return series("401 Retries / min", "Requests re-issued with a fresh token after a 401", halfRow).
		WithTarget(query(`cdiscount:auth_retries:rate5m * 60`, "retries/min", "A")).
		Thresholds(rising(1, 5)).
		ColorScheme(byThreshold())
}
