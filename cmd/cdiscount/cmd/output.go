package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/tidwall/gjson"

	"github.com/donaldgifford/cdiscount-sdk/pkg/cdiscount"
	"github.com/donaldgifford/cdiscount-sdk/pkg/transport"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

// printItemsTable prints one row per element of the response's items
// array, one column per gjson path.
func printItemsTable(w io.Writer, resp *cdiscount.Response, columns ...string) error {
	items := resp.Get("items").Array()
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "No results.")
		return err
	}

	tw := newTabWriter(w)
	header := make([]string, len(columns))
	for i, c := range columns {
		header[i] = strings.ToUpper(c)
	}
	tw.writef("%s\n", strings.Join(header, "\t"))

	for _, item := range items {
		row := make([]string, len(columns))
		for i, c := range columns {
			row[i] = cell(item.Get(c))
		}
		tw.writef("%s\n", strings.Join(row, "\t"))
	}

	if total, ok := resp.TotalCount(); ok {
		tw.writef("\nShowing %d of %d\n", len(items), total)
	}
	if resp.HasNextPage() {
		tw.writef("Next page: %s\n", resp.NextPageURL())
	}
	return tw.finish()
}

// printDetail prints the top-level fields of a JSON object body.
func printDetail(w io.Writer, resp *cdiscount.Response) error {
	body := gjson.ParseBytes(resp.Raw)
	if !body.IsObject() {
		_, err := fmt.Fprintln(w, strings.TrimSpace(string(resp.Raw)))
		return err
	}

	tw := newTabWriter(w)
	body.ForEach(func(key, value gjson.Result) bool {
		tw.writef("%s:\t%s\n", key.String(), cell(value))
		return true
	})
	return tw.finish()
}

func printTokenInfo(w io.Writer, info transport.TokenInfo) error {
	tw := newTabWriter(w)
	tw.writef("Cache:\t%s\n", info.CacheFilePath)
	tw.writef("Memory token:\t%v (valid: %v)\n", info.HasMemoryToken, info.MemoryTokenValid)
	tw.writef("Persistent token:\t%v\n", info.HasFileToken)
	if info.FileTokenExpiresAtReadable != nil {
		tw.writef("Expires at:\t%s\n", *info.FileTokenExpiresAtReadable)
	}
	if info.FileTokenRemainingSeconds != nil {
		tw.writef("Remaining:\t%ds\n", *info.FileTokenRemainingSeconds)
	}
	return tw.finish()
}

// printResponse renders a response as indented JSON or as a detail view.
func printResponse(w io.Writer, resp *cdiscount.Response) error {
	if jsonOutput() {
		return outputJSON(w, resp.Data)
	}
	return printDetail(w, resp)
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func cell(v gjson.Result) string {
	switch {
	case !v.Exists() || v.Type == gjson.Null:
		return "-"
	case v.IsObject(), v.IsArray():
		return truncate(v.Raw, 40)
	default:
		return truncate(v.String(), 40)
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
