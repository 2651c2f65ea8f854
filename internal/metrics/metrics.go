// Package metrics defines Prometheus metrics for the Cdiscount seller SDK.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cdiscount"

// Token metrics.
var (
	TokenExchangesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_exchanges_total",
		Help:      "Total number of client-credentials exchanges with the authorization server.",
	}, []string{"result"})

	TokenCacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_cache_hits_total",
		Help:      "Total number of token lookups served from a cache tier.",
	}, []string{"tier"})

	TokenExchangeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "token_exchange_duration_seconds",
		Help:      "Duration of token exchanges in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)

// API metrics.
var (
	APIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_requests_total",
		Help:      "Total number of seller API requests by method and status class.",
	}, []string{"method", "status"})

	APIRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "api_request_duration_seconds",
		Help:      "Duration of seller API requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})

	AuthRetriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_retries_total",
		Help:      "Total number of requests re-issued after a 401 response.",
	})
)

// Token cache tiers.
const (
	TierMemory     = "memory"
	TierPersistent = "persistent"
)

// Token exchange results.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// StatusClass buckets an HTTP status into "2xx", "4xx" and so on. Zero
// means no response was received.
func StatusClass(status int) string {
	switch {
	case status <= 0:
		return "error"
	case status < 200:
		return "1xx"
	case status < 300:
		return "2xx"
	case status < 400:
		return "3xx"
	case status < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
