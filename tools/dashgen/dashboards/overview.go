// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/cdiscount-sdk/tools/dashgen/panels"
)

// BuildOverview constructs the Cdiscount SDK dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Cdiscount SDK").
		Uid("cdiscount-overview").
		Tags([]string{"cdiscount", "octopia"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.RequestRateStat()).
		WithPanel(panels.ErrorRatioGauge()).
		WithPanel(panels.CacheHitRatioStat()).
		WithPanel(panels.ExchangeFailuresStat()))

	// Row 2: Token.
	b.WithRow(dashboard.NewRowBuilder("Token").
		WithPanel(panels.ExchangeRate()).
		WithPanel(panels.CacheHits()).
		WithPanel(panels.ExchangeLatency()))

	// Row 3: Seller API.
	b.WithRow(dashboard.NewRowBuilder("Seller API").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()).
		WithPanel(panels.AuthRetries()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
