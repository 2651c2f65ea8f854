package transport

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponse_PaginationEnvelope(t *testing.T) {
	t.Parallel()

	header := http.Header{}
	header.Set("Link", `<https://a/?cursor=2>; rel="next"`)
	resp := newResponse(
		http.StatusOK,
		header,
		[]byte(`{"itemsPerPage":10,"items":[{"id":"X"}],"total_item_count":37}`),
	)

	assert.True(t, resp.IsSuccess())
	assert.Len(t, resp.Items(), 1)

	perPage, ok := resp.ItemsPerPage()
	require.True(t, ok)
	assert.Equal(t, 10, perPage)

	total, ok := resp.TotalCount()
	require.True(t, ok)
	assert.Equal(t, 37, total)

	assert.True(t, resp.HasNextPage())
	assert.Equal(t, "https://a/?cursor=2", resp.NextPageURL())
	assert.Equal(t, "X", resp.Get("items.0.id").String())
}

func TestResponse_PaginationLinks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		link     string
		want     map[string]string
		wantNext bool
	}{
		{
			name: "next and prev",
			link: `<https://a/?cursor=1>; rel="next", <https://a/?cursor=0>; rel="prev"`,
			want: map[string]string{
				"next": "https://a/?cursor=1",
				"prev": "https://a/?cursor=0",
			},
			wantNext: true,
		},
		{
			name:     "last page",
			link:     `<https://a/?cursor=0>; rel="prev", <https://a/?cursor=0>; rel="first"`,
			want:     map[string]string{"prev": "https://a/?cursor=0", "first": "https://a/?cursor=0"},
			wantNext: false,
		},
		{
			name:     "no header",
			link:     "",
			want:     map[string]string{},
			wantNext: false,
		},
		{
			name:     "malformed segment ignored",
			link:     `garbage, <https://a/?cursor=5>;rel="next"`,
			want:     map[string]string{"next": "https://a/?cursor=5"},
			wantNext: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			header := http.Header{}
			if tt.link != "" {
				header.Set("Link", tt.link)
			}
			resp := newResponse(http.StatusOK, header, nil)

			assert.Equal(t, tt.want, resp.PaginationLinks())
			assert.Equal(t, tt.wantNext, resp.HasNextPage())
			assert.Equal(t, tt.link, resp.LinkHeader())
		})
	}
}

func TestResponse_TotalCountFallback(t *testing.T) {
	t.Parallel()

	resp := newResponse(http.StatusOK, nil, []byte(`{"count":12}`))
	total, ok := resp.TotalCount()
	require.True(t, ok)
	assert.Equal(t, 12, total)

	resp = newResponse(http.StatusOK, nil, []byte(`{"total_item_count":5,"count":12}`))
	total, ok = resp.TotalCount()
	require.True(t, ok)
	assert.Equal(t, 5, total)
}

func TestResponse_AbsentAggregates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty body", raw: ""},
		{name: "object without aggregates", raw: `{"id":"S1"}`},
		{name: "array body", raw: `[{"id":"S1"}]`},
		{name: "null aggregates", raw: `{"itemsPerPage":null,"items":null,"count":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resp := newResponse(http.StatusOK, nil, []byte(tt.raw))

			assert.NotNil(t, resp.Items())
			assert.Empty(t, resp.Items())
			_, ok := resp.ItemsPerPage()
			assert.False(t, ok)
			_, ok = resp.TotalCount()
			assert.False(t, ok)
		})
	}
}

func TestResponse_Header(t *testing.T) {
	t.Parallel()

	resp := newResponse(http.StatusOK, http.Header{
		"X-Request-Id": {"first", "second"},
		"custom-lower": {"raw"},
	}, nil)

	assert.Equal(t, "first", resp.Header("x-request-id"))
	assert.Equal(t, "raw", resp.Header("Custom-Lower"))
	assert.Empty(t, resp.Header("missing"))
}

func TestResponse_Decode(t *testing.T) {
	t.Parallel()

	resp := newResponse(http.StatusOK, nil, []byte(`{"id":"S1","name":"ACME"}`))

	var seller struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, resp.Decode(&seller))
	assert.Equal(t, "S1", seller.ID)
	assert.Equal(t, "ACME", seller.Name)

	empty := newResponse(http.StatusNoContent, nil, nil)
	assert.Nil(t, empty.Data)
	assert.ErrorIs(t, empty.Decode(&seller), ErrEmptyBody)
}

func TestResponse_IsSuccess(t *testing.T) {
	t.Parallel()

	assert.True(t, newResponse(http.StatusOK, nil, nil).IsSuccess())
	assert.True(t, newResponse(http.StatusNoContent, nil, nil).IsSuccess())
	assert.False(t, newResponse(http.StatusFound, nil, nil).IsSuccess())
}
