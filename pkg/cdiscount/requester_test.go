package cdiscount

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPageOptions_Params(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts PageOptions
		want Params
	}{
		{name: "zero values omitted", opts: PageOptions{}, want: Params{}},
		{
			name: "page index and size",
			opts: PageOptions{PageIndex: 1, PageSize: 50},
			want: Params{"pageIndex": 1, "pageSize": 50},
		},
		{
			name: "cursor and limit",
			opts: PageOptions{Cursor: "abc", Limit: 10},
			want: Params{"cursor": "abc", "limit": 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.opts.Params())
		})
	}
}

func TestDateRange_Params(t *testing.T) {
	t.Parallel()

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC)

	assert.Equal(t, Params{
		"updatedAtMin": "2025-01-01T00:00:00Z",
		"updatedAtMax": "2025-01-31T23:59:59Z",
	}, DateRange{Min: from, Max: to}.Params("", ""))

	assert.Equal(t, Params{"createdAtMin": "2025-01-01T00:00:00Z"},
		DateRange{Min: from}.Params("createdAtMin", "createdAtMax"))

	assert.Empty(t, DateRange{}.Params("", ""))
}

func TestMergeParams(t *testing.T) {
	t.Parallel()

	got := MergeParams(Params{"a": 1, "b": 2}, nil, Params{"b": 3})
	assert.Equal(t, Params{"a": 1, "b": 3}, got)
}

func TestCommaList(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a,b,c", CommaList("a", "b", "c"))
	assert.Empty(t, CommaList())
}

func TestResourcePath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/orders", resourcePath("/orders"))
	assert.Equal(t, "/orders/o1", resourcePath("/orders", "o1"))
	assert.Equal(t, "/orders/a%2Fb%20c", resourcePath("/orders", "a/b c"))
}

func TestLanguageHeader(t *testing.T) {
	t.Parallel()

	assert.Nil(t, languageHeader(""))
	assert.Equal(t, map[string]string{"Accept-Language": "de-DE"}, languageHeader("de-DE"))
}
