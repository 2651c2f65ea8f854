package rules

// AlertRules returns the alerts for processes embedding the Cdiscount SDK.
func AlertRules() Resource {
	return newResource("cdiscount-alerts", "cdiscount-alerts",
		alert("CdiscountTokenExchangeFailing",
			`increase(cdiscount_token_exchanges_total{result="failure"}[10m]) > 0`,
			"5m", "critical",
			"Cdiscount token exchange is failing",
			"The authorization server has rejected or failed client-credentials exchanges for more than 5 minutes."),
		alert("CdiscountHighErrorRate",
			`cdiscount:api_errors:rate5m / cdiscount:api_requests:rate5m > 0.05`,
			"5m", "warning",
			"High seller API error rate",
			"More than 5% of seller API requests have failed over the last 5 minutes."),
		alert("CdiscountAuthRetries",
			`cdiscount:auth_retries:rate5m > 0.1`,
			"10m", "warning",
			"Frequent 401 responses from the seller API",
			"Requests are being re-issued after a 401 more than 0.1/s. Cached tokens may be revoked early."),
		alert("CdiscountTokenChurn",
			`sum(cdiscount:token_exchanges:rate5m) > 0.05`,
			"15m", "warning",
			"Tokens are exchanged more often than expected",
			"Token exchanges exceed one every 20 seconds. The token cache is probably not shared or not writable."),
		alert("CdiscountSlowRequests",
			`histogram_quantile(0.95, sum(rate(cdiscount_api_request_duration_seconds_bucket[5m])) by (le)) > 5`,
			"10m", "warning",
			"Seller API p95 latency above 5s",
			"The 95th percentile seller API request duration has exceeded 5 seconds for 10 minutes."),
	)
}
