package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewResource(t *testing.T) {
	t.Parallel()

	r := newResource("name", "group",
		record("a:b:rate5m", "sum(x)"),
		alert("Loud", "a:b:rate5m > 1", "5m", "warning", "sum", "desc"),
	)

	assert.Equal(t, apiVersion, r.APIVersion)
	assert.Equal(t, kind, r.Kind)
	assert.Equal(t, "name", r.Metadata.Name)
	assert.Equal(t, selectorValue, r.Metadata.Labels[selectorLabel])
	require.Len(t, r.Spec.Groups, 1)
	assert.Equal(t, "group", r.Spec.Groups[0].Name)
	require.Len(t, r.Spec.Groups[0].Rules, 2)
}

func TestRule_YAML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rule     Rule
		wantName string
		contains []string
		absent   []string
	}{
		{
			name:     "recording rule",
			rule:     record("a:b:rate5m", "sum(x)"),
			wantName: "a:b:rate5m",
			contains: []string{"record: a:b:rate5m", "expr: sum(x)"},
			absent:   []string{"alert:", "for:", "labels:", "annotations:"},
		},
		{
			name:     "alert",
			rule:     alert("Loud", "x > 1", "10m", "critical", "it is loud", "very loud"),
			wantName: "Loud",
			contains: []string{"alert: Loud", "for: 10m", "severity: critical", "summary: it is loud", "description: very loud"},
			absent:   []string{"record:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.wantName, tt.rule.Name())

			data, err := yaml.Marshal(tt.rule)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, string(data), s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, string(data), s)
			}
		})
	}
}
