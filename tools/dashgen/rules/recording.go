package rules

// RecordingRules returns the pre-computed rates shared by the overview
// dashboard and the alerts.
func RecordingRules() Resource {
	return newResource("cdiscount-recording-rules", "cdiscount-recording",
		record("cdiscount:api_requests:rate5m",
			`sum(rate(cdiscount_api_requests_total[5m]))`),
		record("cdiscount:api_errors:rate5m",
			`sum(rate(cdiscount_api_requests_total{status=~"4xx|5xx|error"}[5m]))`),
		record("cdiscount:token_exchanges:rate5m",
			`sum by (result) (rate(cdiscount_token_exchanges_total[5m]))`),
		record("cdiscount:token_cache_hits:rate5m",
			`sum by (tier) (rate(cdiscount_token_cache_hits_total[5m]))`),
		record("cdiscount:auth_retries:rate5m",
			`sum(rate(cdiscount_auth_retries_total[5m]))`),
	)
}
