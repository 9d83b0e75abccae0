package dashboard

import (
	"strings"

	"regime-dashboard/internal/model"
)

// Badge is a piece of text plus the CSS classes it is rendered with.
type Badge struct {
	Text  string `json:"text"`
	Class string `json:"class"`
}

// StatusPanel is the top card row of the page.
type StatusPanel struct {
	LastUpdated      string  `json:"last_updated"`
	TotalValue       string  `json:"total_value"`
	DailyReturnPct   float64 `json:"daily_return_pct"`
	DailyReturn      Badge   `json:"daily_return"`
	Regime           Badge   `json:"regime"`
	TriggerReason    string  `json:"trigger_reason,omitempty"`
	MomentumScore    string  `json:"momentum_score"`
	TargetExposure   string  `json:"target_exposure"`
	ExposureBarWidth string  `json:"exposure_bar_width"`
	VIX              string  `json:"vix"`
	MDD              string  `json:"mdd"`
	MDDRisk          bool    `json:"mdd_risk"`
	MDDClass         string  `json:"mdd_class"`
}

// DailyReturn compares today's total value with the last summary row, in
// percent. With no summary rows (or a zero base) it is 0.
func DailyReturn(totalValue float64, summary []model.SummaryRow) float64 {
	if len(summary) == 0 {
		return 0
	}
	prev := summary[len(summary)-1].TotalValue
	if prev == 0 {
		return 0
	}
	return (totalValue - prev) / prev * 100
}

// RegimeClass picks the regime style. Bull is checked before Bear, Bear
// before Crash.
func RegimeClass(regime model.Regime) string {
	s := string(regime)
	switch {
	case strings.Contains(s, "Bull"):
		return "fw-bold mb-0 regime-bull"
	case strings.Contains(s, "Bear"):
		return "fw-bold mb-0 regime-bear"
	case strings.Contains(s, "Crash"):
		return "fw-bold mb-0 regime-crash"
	default:
		return "fw-bold mb-0 regime-sideways"
	}
}

// BuildStatusPanel formats the scalar fields of status.json.
func BuildStatusPanel(status model.StatusSnapshot, summary []model.SummaryRow, opts Options) StatusPanel {
	s := status.Strategy
	m := s.MarketScore
	p := status.Portfolio

	ret := DailyReturn(p.TotalValue, summary)
	retClass := "badge rounded-pill bg-success"
	if ret < 0 {
		retClass = "badge rounded-pill bg-danger"
	}

	panel := StatusPanel{
		LastUpdated:      "Last Update: " + status.LastUpdated,
		TotalValue:       FormatCurrency(p.TotalValue),
		DailyReturnPct:   ret,
		DailyReturn:      Badge{Text: signedPercent(ret), Class: retClass},
		Regime:           Badge{Text: s.Regime.Display(), Class: RegimeClass(s.Regime)},
		TriggerReason:    s.TriggerReason,
		MomentumScore:    fixed(m.SPYMomentum, 4),
		TargetExposure:   fixed(s.TargetExposure*100, 0) + "%",
		ExposureBarWidth: shortest(s.TargetExposure*100) + "%",
		VIX:              fixed(m.VIX, 2),
		MDD:              fixed(m.SPYMDD*100, 2) + "%",
		MDDRisk:          m.SPYMDD < opts.MDDRiskThreshold,
	}
	if panel.MDDRisk {
		panel.MDDClass = "text-danger"
	}
	return panel
}
