package transport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type status string

func (s status) String() string { return "status:" + string(s) }

func TestFilterParams(t *testing.T) {
	t.Parallel()

	var (
		nilString *string
		nilMap    map[string]string
		empty     = ""
		zero      = 0
	)

	got := FilterParams(Params{
		"keep":       "x",
		"emptyStr":   "",
		"nil":        nil,
		"nilPointer": nilString,
		"ptrToEmpty": &empty,
		"nilMap":     nilMap,
		"zero":       0,
		"ptrToZero":  &zero,
		"false":      false,
	})

	assert.Equal(t, Params{
		"keep":      "x",
		"zero":      0,
		"ptrToZero": &zero,
		"false":     false,
	}, got)
}

func TestParams_Encode(t *testing.T) {
	t.Parallel()

	name := "brand"
	tests := []struct {
		name   string
		params Params
		want   string
	}{
		{name: "empty", params: nil, want: ""},
		{name: "string", params: Params{"q": "a b"}, want: "q=a+b"},
		{name: "int and float", params: Params{"page": 2, "ratio": 0.5}, want: "page=2&ratio=0.5"},
		{name: "bool", params: Params{"open": true, "closed": false}, want: "closed=false&open=true"},
		{
			name:   "time as RFC 3339",
			params: Params{"from": time.Date(2025, 1, 16, 18, 20, 0, 0, time.UTC)},
			want:   "from=2025-01-16T18%3A20%3A00Z",
		},
		{name: "string slice", params: Params{"id": []string{"1", "2"}}, want: "id=1&id=2"},
		{name: "int slice", params: Params{"id": []int{3, 4}}, want: "id=3&id=4"},
		{name: "pointer", params: Params{"fields": &name}, want: "fields=brand"},
		{name: "stringer", params: Params{"s": status("open")}, want: "s=status%3Aopen"},
		{
			name:   "blank entries dropped",
			params: Params{"a": "", "b": nil, "c": "1", "d": []any{"", "x", nil}},
			want:   "c=1&d=x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.params.Encode())
		})
	}
}
