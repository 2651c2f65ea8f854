package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrEmptyBody is returned by Decode when the response had no body.
var ErrEmptyBody = errors.New("response body is empty")

var linkPattern = regexp.MustCompile(`<([^>]+)>;\s*rel="([^"]+)"`)

// Response is the envelope returned for every successful API call. Data
// holds the decoded JSON body, or nil when the body was empty or not JSON;
// Raw always holds the bytes received.
type Response struct {
	StatusCode int
	Data       any
	Headers    http.Header
	Raw        []byte
}

func newResponse(status int, header http.Header, raw []byte) *Response {
	r := &Response{
		StatusCode: status,
		Headers:    header,
		Raw:        raw,
	}
	if len(raw) > 0 && json.Valid(raw) {
		var data any
		if err := json.Unmarshal(raw, &data); err == nil {
			r.Data = data
		}
	}
	if r.Headers == nil {
		r.Headers = http.Header{}
	}
	return r
}

// IsSuccess reports a 2xx status.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// Header returns the first value of the named header, matched
// case-insensitively.
func (r *Response) Header(name string) string {
	if v := r.Headers.Get(name); v != "" {
		return v
	}
	// Headers built by hand may not use canonical keys.
	for k, vs := range r.Headers {
		if strings.EqualFold(k, name) && len(vs) > 0 {
			return vs[0]
		}
	}
	return ""
}

// Get runs a gjson path query against the body.
func (r *Response) Get(path string) gjson.Result {
	return gjson.GetBytes(r.Raw, path)
}

// Decode unmarshals the body into v.
func (r *Response) Decode(v any) error {
	if len(r.Raw) == 0 {
		return ErrEmptyBody
	}
	return json.Unmarshal(r.Raw, v)
}

// Items returns data.items, or an empty slice when absent.
func (r *Response) Items() []any {
	obj, _ := r.Data.(map[string]any)
	if items, ok := obj["items"].([]any); ok {
		return items
	}
	return []any{}
}

// ItemsPerPage returns data.itemsPerPage when present.
func (r *Response) ItemsPerPage() (int, bool) {
	return r.intField("itemsPerPage")
}

// TotalCount returns data.total_item_count, falling back to data.count.
func (r *Response) TotalCount() (int, bool) {
	if n, ok := r.intField("total_item_count"); ok {
		return n, true
	}
	return r.intField("count")
}

func (r *Response) intField(key string) (int, bool) {
	if _, ok := r.Data.(map[string]any); !ok {
		return 0, false
	}
	v := gjson.GetBytes(r.Raw, gjsonEscape(key))
	if !v.Exists() || v.Type == gjson.Null {
		return 0, false
	}
	return int(v.Int()), true
}

// LinkHeader returns the raw Link header.
func (r *Response) LinkHeader() string {
	return r.Header("Link")
}

// PaginationLinks parses the Link header into rel to URI.
func (r *Response) PaginationLinks() map[string]string {
	links := map[string]string{}
	header := r.LinkHeader()
	if header == "" {
		return links
	}
	for _, part := range strings.Split(header, ",") {
		if m := linkPattern.FindStringSubmatch(strings.TrimSpace(part)); m != nil {
			links[m[2]] = m[1]
		}
	}
	return links
}

// HasNextPage reports whether the Link header has a next relation.
func (r *Response) HasNextPage() bool {
	_, ok := r.PaginationLinks()["next"]
	return ok
}

// NextPageURL returns the next relation, or "" on the last page.
func (r *Response) NextPageURL() string {
	return r.PaginationLinks()["next"]
}

var gjsonSpecial = strings.NewReplacer(".", `\.`, "*", `\*`, "?", `\?`)

func gjsonEscape(key string) string {
	return gjsonSpecial.Replace(key)
}
