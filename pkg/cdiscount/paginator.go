package cdiscount

import (
	"context"
	"fmt"
	"log/slog"
)

const defaultMaxPages = 50

// Reasons a pagination run stopped.
const (
	StoppedCallback      = "callback"
	StoppedMaxPages      = "max_pages"
	StoppedNoMoreResults = "no_more_results"
)

// PageFunc receives each page in order. Returning false stops the run.
type PageFunc func(page *Response) (bool, error)

// Paginator follows Link rel="next" headers from a first response.
type Paginator struct {
	r        Requester
	logger   *slog.Logger
	maxPages int
}

// PaginatorOption configures the Paginator.
type PaginatorOption func(*Paginator)

// WithMaxPages caps the number of pages visited, the first included.
func WithMaxPages(n int) PaginatorOption {
	return func(p *Paginator) {
		p.maxPages = n
	}
}

// WithPaginatorLogger sets the logger.
func WithPaginatorLogger(l *slog.Logger) PaginatorOption {
	return func(p *Paginator) {
		p.logger = l
	}
}

// NewPaginator creates a Paginator that fetches follow-up pages through r.
func NewPaginator(r Requester, opts ...PaginatorOption) *Paginator {
	p := &Paginator{
		r:        r,
		logger:   slog.New(slog.DiscardHandler),
		maxPages: defaultMaxPages,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PaginateResult summarizes a pagination run.
type PaginateResult struct {
	PagesUsed int
	StoppedAt string
}

// Paginate hands first and every following page to fn, stopping when:
// - fn returns false
// - max pages reached
// - a page has no next link
//
// A next link on a host other than the API's fails the fetch.
func (p *Paginator) Paginate(ctx context.Context, first *Response, fn PageFunc) (*PaginateResult, error) {
	result := &PaginateResult{}
	page := first

	for {
		result.PagesUsed++

		more, err := fn(page)
		if err != nil {
			return result, fmt.Errorf("handling page %d: %w", result.PagesUsed, err)
		}
		if !more {
			result.StoppedAt = StoppedCallback
			return result, nil
		}

		next := page.NextPageURL()
		if next == "" {
			result.StoppedAt = StoppedNoMoreResults
			return result, nil
		}
		if result.PagesUsed >= p.maxPages {
			p.logger.Debug("pagination stopped at page limit", "pages", result.PagesUsed, "next", next)
			result.StoppedAt = StoppedMaxPages
			return result, nil
		}

		page, err = p.r.Get(ctx, next, nil, nil)
		if err != nil {
			return result, fmt.Errorf("fetching page %d: %w", result.PagesUsed+1, err)
		}
	}
}
