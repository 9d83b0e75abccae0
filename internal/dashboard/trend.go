package dashboard

import "regime-dashboard/internal/model"

type TrendCharts struct {
	Labels      []string    `json:"labels"`
	Performance ChartConfig `json:"performance"`
	Strategy    ChartConfig `json:"strategy"`
}

// TrendLabel strips the year from a YYYY-MM-DD date ("2024-05-01" -> "05-01").
func TrendLabel(date string) string {
	if len(date) <= 5 {
		return ""
	}
	return date[5:]
}

// BuildTrends builds the portfolio-vs-benchmark and price-vs-MA180 charts
// from the trailing window of the summary. Values are plotted as stored.
func BuildTrends(summary []model.SummaryRow, opts Options) TrendCharts {
	recent := model.LastN(summary, opts.TrendWindow)

	labels := make([]string, len(recent))
	totals := make([]float64, len(recent))
	prices := make([]float64, len(recent))
	ma := make([]float64, len(recent))
	for i, row := range recent {
		labels[i] = TrendLabel(row.Date)
		totals[i] = row.TotalValue
		prices[i] = row.SPYPrice
		ma[i] = row.SPYMA180
	}

	pal := opts.Palette
	performance := ChartConfig{
		Type: "line",
		Data: ChartData{
			Labels: labels,
			Datasets: []Dataset{
				{
					Label:           "My Portfolio ($)",
					Data:            totals,
					BorderColor:     pal.Portfolio,
					BackgroundColor: pal.PortfolioFill,
					YAxisID:         "y",
					Fill:            true,
					Tension:         0.3,
				},
				{
					Label:       "SPY Price ($)",
					Data:        prices,
					BorderColor: pal.Benchmark,
					BorderDash:  []int{5, 5},
					YAxisID:     "y1",
					Tension:     0.3,
					PointRadius: floatPtr(0),
				},
			},
		},
		Options: ChartOptions{
			Responsive:  true,
			Interaction: &Interaction{Mode: "index", Intersect: false},
			Scales: map[string]Scale{
				"y":  {Type: "linear", Display: true, Position: "left"},
				"y1": {Type: "linear", Display: true, Position: "right", Grid: &Grid{DrawOnChartArea: false}},
			},
		},
	}

	strategy := ChartConfig{
		Type: "line",
		Data: ChartData{
			Labels: labels,
			Datasets: []Dataset{
				{
					Label:       "SPY Close",
					Data:        prices,
					BorderColor: pal.TrendPrice,
					BorderWidth: 1.5,
					PointRadius: floatPtr(0),
				},
				{
					Label:       "MA 180",
					Data:        ma,
					BorderColor: pal.TrendMA,
					BorderWidth: 1.5,
					PointRadius: floatPtr(0),
				},
			},
		},
		Options: ChartOptions{
			Responsive: true,
			Plugins:    &Plugins{Legend: Legend{Display: boolPtr(false)}},
			Scales: map[string]Scale{
				"x": {Display: false},
				"y": {Display: false},
			},
		},
	}

	return TrendCharts{Labels: labels, Performance: performance, Strategy: strategy}
}
