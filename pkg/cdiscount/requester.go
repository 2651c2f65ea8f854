package cdiscount

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/donaldgifford/cdiscount-sdk/pkg/transport"
)

// Aliases so callers of the operation groups rarely import transport.
type (
	Params   = transport.Params
	Response = transport.Response
	Part     = transport.Part
)

// Requester is the part of the transport the operation groups depend on.
// *transport.Client implements it.
type Requester interface {
	Get(ctx context.Context, endpoint string, query transport.Params, header map[string]string) (*transport.Response, error)
	Post(ctx context.Context, endpoint string, body any, header map[string]string) (*transport.Response, error)
	Patch(ctx context.Context, endpoint string, body any, header map[string]string) (*transport.Response, error)
	PostMultipart(ctx context.Context, endpoint string, parts []transport.Part, header map[string]string) (*transport.Response, error)
}

var _ Requester = (*transport.Client)(nil)

// PageOptions holds the common paging parameters. Zero values are omitted.
type PageOptions struct {
	PageIndex int
	PageSize  int
	Cursor    string
	Limit     int
}

// Params returns the non-zero fields as query parameters.
func (p PageOptions) Params() Params {
	out := Params{}
	if p.Cursor != "" {
		out["cursor"] = p.Cursor
	}
	if p.Limit > 0 {
		out["limit"] = p.Limit
	}
	if p.PageIndex > 0 {
		out["pageIndex"] = p.PageIndex
	}
	if p.PageSize > 0 {
		out["pageSize"] = p.PageSize
	}
	return out
}

// DateRange bounds a listing by date. Zero times are omitted.
type DateRange struct {
	Min time.Time
	Max time.Time
}

// Params returns the bounds as RFC 3339 strings under minKey and maxKey,
// which default to updatedAtMin and updatedAtMax.
func (d DateRange) Params(minKey, maxKey string) Params {
	if minKey == "" {
		minKey = "updatedAtMin"
	}
	if maxKey == "" {
		maxKey = "updatedAtMax"
	}
	out := Params{}
	if !d.Min.IsZero() {
		out[minKey] = d.Min.Format(time.RFC3339)
	}
	if !d.Max.IsZero() {
		out[maxKey] = d.Max.Format(time.RFC3339)
	}
	return out
}

// MergeParams combines several parameter sets; later sets win.
func MergeParams(sets ...Params) Params {
	out := Params{}
	for _, s := range sets {
		for k, v := range s {
			out[k] = v
		}
	}
	return out
}

// CommaList joins values for parameters that take a comma-separated list.
func CommaList(values ...string) string {
	return strings.Join(values, ",")
}

func languageHeader(lang string) map[string]string {
	if lang == "" {
		return nil
	}
	return map[string]string{"Accept-Language": lang}
}

// resourcePath joins escaped segments onto a resource root.
func resourcePath(root string, segments ...string) string {
	var b strings.Builder
	b.WriteString(root)
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}
