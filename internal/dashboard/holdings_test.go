package dashboard

import (
	"reflect"
	"testing"

	"regime-dashboard/internal/model"
)

func TestAllocationSegmentsOrderAndColors(t *testing.T) {
	pal := DefaultPalette()
	p := model.PortfolioState{
		CashBalance: 1000,
		Holdings: []model.Holding{
			{Ticker: "SHV", Value: 500},
			{Ticker: "QQQ", Value: 300},
		},
	}
	got := AllocationSegments(p, "SHV", pal)
	want := []Segment{
		{Label: "Cash", Value: 1000, Color: pal.Cash},
		{Label: "SHV", Value: 500, Color: pal.SafeAsset},
		{Label: "QQQ", Value: 300, Color: pal.RiskAsset},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("segments = %+v, want %+v", got, want)
	}
}

func TestBuildHoldingsChartConfig(t *testing.T) {
	view := BuildHoldings(sampleStatus().Portfolio, DefaultOptions())

	if view.Cash != "1,000.00" {
		t.Errorf("cash = %q", view.Cash)
	}
	if view.Chart.Type != "doughnut" {
		t.Errorf("type = %q", view.Chart.Type)
	}
	if !reflect.DeepEqual(view.Chart.Data.Labels, []string{"Cash", "SHV", "QQQ"}) {
		t.Errorf("labels = %v", view.Chart.Data.Labels)
	}
	ds := view.Chart.Data.Datasets[0]
	if !reflect.DeepEqual(ds.Data, []float64{1000, 500, 300}) {
		t.Errorf("data = %v", ds.Data)
	}
	colors, ok := ds.BackgroundColor.([]string)
	if !ok || !reflect.DeepEqual(colors, []string{"#e9ecef", "#adb5bd", "#0d6efd"}) {
		t.Errorf("colors = %v", ds.BackgroundColor)
	}
	if view.Chart.Options.Plugins.Legend.Position != "bottom" {
		t.Errorf("legend = %+v", view.Chart.Options.Plugins.Legend)
	}
	if len(view.Rows) != 2 || view.Rows[0].Weight != "27.8%" || !view.Rows[0].Safe {
		t.Errorf("rows = %+v", view.Rows)
	}
}

func TestAllocationOnlyCash(t *testing.T) {
	segs := AllocationSegments(model.PortfolioState{CashBalance: 42}, "SHV", DefaultPalette())
	if len(segs) != 1 || segs[0].Label != "Cash" {
		t.Fatalf("segments = %+v", segs)
	}
}
