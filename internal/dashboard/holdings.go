package dashboard

import "regime-dashboard/internal/model"

// Segment is one slice of the allocation doughnut.
type Segment struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// HoldingRow is one line of the holdings list under the chart.
type HoldingRow struct {
	Ticker string `json:"ticker"`
	Qty    string `json:"qty"`
	Value  string `json:"value"`
	Weight string `json:"weight"`
	Safe   bool   `json:"safe"`
}

type HoldingsView struct {
	Cash     string       `json:"cash"`
	Segments []Segment    `json:"segments"`
	Rows     []HoldingRow `json:"rows"`
	Chart    ChartConfig  `json:"chart"`
}

// AllocationSegments returns Cash first, then one segment per holding in
// input order. The safe-asset ticker gets its own neutral color; every other
// ticker shares the accent color.
func AllocationSegments(p model.PortfolioState, safeTicker string, pal Palette) []Segment {
	segs := make([]Segment, 0, len(p.Holdings)+1)
	segs = append(segs, Segment{Label: "Cash", Value: p.CashBalance, Color: pal.Cash})
	for _, h := range p.Holdings {
		color := pal.RiskAsset
		if h.Ticker == safeTicker {
			color = pal.SafeAsset
		}
		segs = append(segs, Segment{Label: h.Ticker, Value: h.Value, Color: color})
	}
	return segs
}

// BuildHoldings builds the allocation chart and holdings list.
func BuildHoldings(p model.PortfolioState, opts Options) HoldingsView {
	segs := AllocationSegments(p, opts.SafeAssetTicker, opts.Palette)

	labels := make([]string, len(segs))
	values := make([]float64, len(segs))
	colors := make([]string, len(segs))
	for i, s := range segs {
		labels[i] = s.Label
		values[i] = s.Value
		colors[i] = s.Color
	}

	rows := make([]HoldingRow, 0, len(p.Holdings))
	for _, h := range p.Holdings {
		weight := "-"
		if p.TotalValue > 0 {
			weight = fixed(h.Value/p.TotalValue*100, 1) + "%"
		}
		rows = append(rows, HoldingRow{
			Ticker: h.Ticker,
			Qty:    shortest(h.Qty),
			Value:  FormatCurrency(h.Value),
			Weight: weight,
			Safe:   h.Ticker == opts.SafeAssetTicker,
		})
	}

	return HoldingsView{
		Cash:     FormatCurrency(p.CashBalance),
		Segments: segs,
		Rows:     rows,
		Chart: ChartConfig{
			Type: "doughnut",
			Data: ChartData{
				Labels: labels,
				Datasets: []Dataset{{
					Data:            values,
					BackgroundColor: colors,
					BorderWidth:     1,
				}},
			},
			Options: ChartOptions{
				Responsive:          true,
				MaintainAspectRatio: boolPtr(false),
				Plugins:             &Plugins{Legend: Legend{Position: "bottom"}},
			},
		},
	}
}
