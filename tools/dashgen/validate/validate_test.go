package validate

import (
	"testing"

	"github.com/prometheus/prometheus/promql/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/cdiscount-sdk/tools/dashgen/rules"
)

var known = map[string]bool{
	"cdiscount_api_requests_total":           true,
	"cdiscount_api_request_duration_seconds": true,
	"cdiscount:api_requests:rate5m":          true,
}

func TestExpr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		expr         string
		wantErrors   int
		wantWarnings int
	}{
		{name: "known counter", expr: `sum(rate(cdiscount_api_requests_total[5m]))`},
		{name: "recording rule", expr: `cdiscount:api_requests:rate5m * 60`},
		{
			name: "histogram bucket resolves to base",
			expr: `histogram_quantile(0.95, sum(rate(cdiscount_api_request_duration_seconds_bucket[5m])) by (le))`,
		},
		{name: "unknown metric", expr: `rate(cdiscount_missing_total[5m])`, wantErrors: 1},
		{name: "syntax error", expr: `sum(rate(cdiscount_api_requests_total[5m])`, wantErrors: 1},
		{name: "no selectors", expr: `vector(1)`, wantWarnings: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := Expr("test", tt.expr, known)
			assert.Len(t, res.Errors, tt.wantErrors, "errors: %v", res.Errors)
			assert.Len(t, res.Warnings, tt.wantWarnings, "warnings: %v", res.Warnings)
			assert.Equal(t, tt.wantErrors == 0, res.Ok())
		})
	}
}

func TestMetricNames(t *testing.T) {
	t.Parallel()

	node, err := parser.ParseExpr(`b_total / a_total + rate(b_total[1m])`)
	require.NoError(t, err)
	assert.Equal(t, []string{"a_total", "b_total"}, MetricNames(node))
}

func TestDashboard_NestedPanels(t *testing.T) {
	t.Parallel()

	dash := map[string]any{
		"panels": []any{
			map[string]any{
				"title": "Row",
				"panels": []any{
					map[string]any{
						"title":   "Good",
						"targets": []any{map[string]any{"refId": "A", "expr": "cdiscount:api_requests:rate5m"}},
					},
					map[string]any{
						"title":   "Bad",
						"targets": []any{map[string]any{"refId": "A", "expr": "nope_total"}},
					},
					map[string]any{
						"title":   "Empty",
						"targets": []any{map[string]any{"refId": "B"}},
					},
				},
			},
		},
	}

	res := Dashboard(dash, known)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], `panel "Bad"`)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], `panel "Empty"`)
}

func TestRules_UnlistedRecording(t *testing.T) {
	t.Parallel()

	cr := rules.Resource{Spec: rules.Spec{Groups: []rules.Group{{
		Name: "g",
		Rules: []rules.Rule{
			{Record: "cdiscount:other:rate5m", Expr: `sum(rate(cdiscount_api_requests_total[5m]))`},
			{Alert: "Fine", Expr: `cdiscount:api_requests:rate5m > 1`},
		},
	}}}}

	res := Rules(cr, known)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "cdiscount:other:rate5m")
}
