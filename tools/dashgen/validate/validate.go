// Package validate checks generated dashboards and rule files for PromQL
// syntax errors and references to metrics the SDK does not export.
package validate

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/prometheus/prometheus/promql/parser"
	"github.com/tidwall/gjson"

	"github.com/donaldgifford/cdiscount-sdk/tools/dashgen/rules"
)

// Histogram and summary series suffixes resolved back to their base metric.
var seriesSuffixes = []string{"_bucket", "_sum", "_count"}

// Result collects validation findings. Errors fail generation; warnings
// are reported only.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were found.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) merge(other Result) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

// Expr parses expr and checks every selected metric against known. where
// prefixes each finding.
func Expr(where, expr string, known map[string]bool) Result {
	var res Result

	node, err := parser.ParseExpr(expr)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("%s: parsing %q: %v", where, expr, err))
		return res
	}

	names := MetricNames(node)
	if len(names) == 0 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("%s: %q selects no metrics", where, expr))
	}
	for _, name := range names {
		if !isKnown(name, known) {
			res.Errors = append(res.Errors, fmt.Sprintf("%s: unknown metric %q", where, name))
		}
	}
	return res
}

// MetricNames returns the sorted, de-duplicated metric names selected by node.
func MetricNames(node parser.Node) []string {
	var names []string
	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		if vs, ok := n.(*parser.VectorSelector); ok && vs.Name != "" {
			names = append(names, vs.Name)
		}
		return nil
	})
	slices.Sort(names)
	return slices.Compact(names)
}

func isKnown(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range seriesSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return true
		}
	}
	return false
}

// Dashboard validates every query target in a built dashboard, including
// panels nested in rows.
func Dashboard(dash any, known map[string]bool) Result {
	var res Result

	data, err := json.Marshal(dash)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("marshaling dashboard: %v", err))
		return res
	}

	var visit func(panel gjson.Result)
	visit = func(panel gjson.Result) {
		title := panel.Get("title").String()
		panel.Get("targets").ForEach(func(_, target gjson.Result) bool {
			expr := target.Get("expr").String()
			if expr == "" {
				res.Warnings = append(res.Warnings, fmt.Sprintf("panel %q: target %s has no expression",
					title, target.Get("refId").String()))
				return true
			}
			res.merge(Expr(fmt.Sprintf("panel %q", title), expr, known))
			return true
		})
		panel.Get("panels").ForEach(func(_, inner gjson.Result) bool {
			visit(inner)
			return true
		})
	}

	gjson.GetBytes(data, "panels").ForEach(func(_, panel gjson.Result) bool {
		visit(panel)
		return true
	})
	return res
}

// Rules validates every expression in a rule resource. Recording rule
// names must appear in known so dashboards can reference them.
func Rules(cr rules.Resource, known map[string]bool) Result {
	var res Result
	for _, group := range cr.Spec.Groups {
		for _, rule := range group.Rules {
			name := rule.Name()
			if rule.Record != "" && !known[rule.Record] {
				res.Errors = append(res.Errors, fmt.Sprintf("rule %q: recording rule not listed in known metrics", name))
			}
			res.merge(Expr(fmt.Sprintf("rule %q", name), rule.Expr, known))
		}
	}
	return res
}
