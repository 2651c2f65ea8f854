package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, TokenExchangesTotal)
	assert.NotNil(t, TokenCacheHitsTotal)
	assert.NotNil(t, TokenExchangeDuration)
	assert.NotNil(t, APIRequestsTotal)
	assert.NotNil(t, APIRequestDuration)
	assert.NotNil(t, AuthRetriesTotal)
}

func TestStatusClass(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		want   string
	}{
		{status: 0, want: "error"},
		{status: 101, want: "1xx"},
		{status: 200, want: "2xx"},
		{status: 204, want: "2xx"},
		{status: 302, want: "3xx"},
		{status: 401, want: "4xx"},
		{status: 404, want: "4xx"},
		{status: 500, want: "5xx"},
		{status: 503, want: "5xx"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, StatusClass(tt.status))
		})
	}
}
