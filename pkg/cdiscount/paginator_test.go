package cdiscount_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/cdiscount-sdk/pkg/cdiscount"
	"github.com/donaldgifford/cdiscount-sdk/pkg/cdiscount/mocks"
)

func page(id, next string) *cdiscount.Response {
	resp := &cdiscount.Response{
		StatusCode: http.StatusOK,
		Data:       map[string]any{"id": id},
		Headers:    http.Header{},
	}
	if next != "" {
		resp.Headers.Set("Link", "<"+next+`>; rel="next"`)
	}
	return resp
}

func TestPaginator_Paginate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		maxPages    int
		stopAfter   int
		setupMocks  func(*mocks.MockRequester)
		wantPages   int
		wantSeen    []string
		wantStopped string
	}{
		{
			name: "follows next links until the last page",
			setupMocks: func(m *mocks.MockRequester) {
				m.EXPECT().
					Get(mock.Anything, "https://a/?cursor=2", noQuery, noHeader).
					Return(page("p2", "https://a/?cursor=3"), nil).
					Once()
				m.EXPECT().
					Get(mock.Anything, "https://a/?cursor=3", noQuery, noHeader).
					Return(page("p3", ""), nil).
					Once()
			},
			wantPages:   3,
			wantSeen:    []string{"p1", "p2", "p3"},
			wantStopped: cdiscount.StoppedNoMoreResults,
		},
		{
			name:     "stops at max pages",
			maxPages: 2,
			setupMocks: func(m *mocks.MockRequester) {
				m.EXPECT().
					Get(mock.Anything, "https://a/?cursor=2", noQuery, noHeader).
					Return(page("p2", "https://a/?cursor=3"), nil).
					Once()
			},
			wantPages:   2,
			wantSeen:    []string{"p1", "p2"},
			wantStopped: cdiscount.StoppedMaxPages,
		},
		{
			name:        "stops when the callback declines",
			stopAfter:   1,
			setupMocks:  func(*mocks.MockRequester) {},
			wantPages:   1,
			wantSeen:    []string{"p1"},
			wantStopped: cdiscount.StoppedCallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := mocks.NewMockRequester(t)
			tt.setupMocks(m)

			var opts []cdiscount.PaginatorOption
			if tt.maxPages > 0 {
				opts = append(opts, cdiscount.WithMaxPages(tt.maxPages))
			}
			p := cdiscount.NewPaginator(m, opts...)

			var seen []string
			result, err := p.Paginate(context.Background(), page("p1", "https://a/?cursor=2"),
				func(resp *cdiscount.Response) (bool, error) {
					seen = append(seen, resp.Data.(map[string]any)["id"].(string))
					return tt.stopAfter == 0 || len(seen) < tt.stopAfter, nil
				})

			require.NoError(t, err)
			assert.Equal(t, tt.wantPages, result.PagesUsed)
			assert.Equal(t, tt.wantStopped, result.StoppedAt)
			assert.Equal(t, tt.wantSeen, seen)
		})
	}
}

func TestPaginator_FetchError(t *testing.T) {
	t.Parallel()

	m := mocks.NewMockRequester(t)
	boom := errors.New("boom")
	m.EXPECT().Get(mock.Anything, "https://a/?cursor=2", noQuery, noHeader).Return(nil, boom).Once()

	result, err := cdiscount.NewPaginator(m).Paginate(
		context.Background(),
		page("p1", "https://a/?cursor=2"),
		func(*cdiscount.Response) (bool, error) { return true, nil },
	)

	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "fetching page 2")
	assert.Equal(t, 1, result.PagesUsed)
}

func TestPaginator_CallbackError(t *testing.T) {
	t.Parallel()

	m := mocks.NewMockRequester(t)
	boom := errors.New("boom")

	_, err := cdiscount.NewPaginator(m).Paginate(
		context.Background(),
		page("p1", "https://a/?cursor=2"),
		func(*cdiscount.Response) (bool, error) { return false, boom },
	)

	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "handling page 1")
}
