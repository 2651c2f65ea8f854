// Package panels provides Grafana dashboard panel builders for the
// Cdiscount SDK metrics.
package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/cog"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/prometheus"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// Grid sizes on Grafana's 24-column layout.
const (
	statWidth    = 6
	statHeight   = 4
	seriesHeight = 8

	halfRow  uint32 = 12
	thirdRow uint32 = 8
)

// step colors values at or above at.
type step struct {
	at    float64
	color string
}

func datasource() dashboard.DataSourceRef {
	return dashboard.DataSourceRef{
		Type: cog.ToPtr("prometheus"),
		Uid:  cog.ToPtr("${datasource}"),
	}
}

func query(expr, legend, refID string) *prometheus.DataqueryBuilder {
	return prometheus.NewDataqueryBuilder().
		Expr(expr).
		LegendFormat(legend).
		RefId(refID)
}

// refID returns the Grafana target letter for the i-th query of a panel.
func refID(i int) string {
	return string(rune('A' + i))
}

// series returns a line chart carrying the datasource, size and styling
// every timeseries panel on the overview shares.
func series(title, description string, span uint32) *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(datasource()).
		Height(seriesHeight).
		Span(span).
		FillOpacity(10).
		LineWidth(2).
		DrawStyle(common.GraphDrawStyleLine)
}

// multiSeries is series with a table legend and a shared tooltip, colored
// from the classic palette.
func multiSeries(title, description string, span uint32) *timeseries.PanelBuilder {
	return series(title, description, span).
		Legend(common.NewVizLegendOptionsBuilder().
			DisplayMode(common.LegendDisplayModeTable).
			Placement(common.LegendPlacementBottom).
			Calcs([]string{"mean", "max"})).
		Tooltip(common.NewVizTooltipOptionsBuilder().
			Mode(common.TooltipDisplayModeMulti).
			Sort(common.SortOrderDescending)).
		Thresholds(thresholds("green")).
		ColorScheme(classicPalette())
}

// withQuantiles adds one histogram_quantile target per quantile of the
// histogram, labelled p50, p95 and so on.
func withQuantiles(b *timeseries.PanelBuilder, histogram string, quantiles ...float64) *timeseries.PanelBuilder {
	for i, q := range quantiles {
		b.WithTarget(query(
			fmt.Sprintf(`histogram_quantile(%.2f, sum(rate(%s_bucket[5m])) by (le))`, q, histogram),
			fmt.Sprintf("p%.0f", q*100),
			refID(i),
		))
	}
	return b
}

func thresholds(base string, steps ...step) cog.Builder[dashboard.ThresholdsConfig] {
	ts := []dashboard.Threshold{{Color: base}}
	for _, s := range steps {
		ts = append(ts, dashboard.Threshold{Value: cog.ToPtr(s.at), Color: s.color})
	}
	return dashboard.NewThresholdsConfigBuilder().
		Mode(dashboard.ThresholdsModeAbsolute).
		Steps(ts)
}

// rising turns yellow at warn and red at crit.
func rising(warn, crit float64) cog.Builder[dashboard.ThresholdsConfig] {
	return thresholds("green", step{warn, "yellow"}, step{crit, "red"})
}

// falling is red below crit, yellow below warn and green above.
func falling(warn, crit float64) cog.Builder[dashboard.ThresholdsConfig] {
	return thresholds("red", step{crit, "yellow"}, step{warn, "green"})
}

func byThreshold() cog.Builder[dashboard.FieldColor] {
	return dashboard.NewFieldColorBuilder().
		Mode(dashboard.FieldColorModeIdThresholds)
}

func classicPalette() cog.Builder[dashboard.FieldColor] {
	return dashboard.NewFieldColorBuilder().
		Mode(dashboard.FieldColorModeIdPaletteClassic)
}
