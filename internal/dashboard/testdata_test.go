package dashboard

import (
	"fmt"

	"regime-dashboard/internal/model"
)

func sampleStatus() model.StatusSnapshot {
	return model.StatusSnapshot{
		LastUpdated: "2024-05-02 16:10:00",
		Strategy: model.StrategyState{
			Regime:         "Bull",
			TargetExposure: 0.8,
			MarketScore: model.MarketScore{
				SPYMomentum: 0.05123,
				VIX:         14.234,
				SPYMDD:      -0.04,
			},
		},
		Portfolio: model.PortfolioState{
			TotalValue:  1800,
			CashBalance: 1000,
			Holdings: []model.Holding{
				{Ticker: "SHV", Value: 500, Qty: 5},
				{Ticker: "QQQ", Value: 300, Qty: 1},
			},
		},
	}
}

// summaryRows returns n daily rows starting 2024-01-01.
func summaryRows(n int) []model.SummaryRow {
	rows := make([]model.SummaryRow, n)
	for i := range rows {
		rows[i] = model.SummaryRow{
			Date:       fmt.Sprintf("2024-%02d-%02d", 1+i/28, 1+i%28),
			TotalValue: 1000 + float64(i),
			SPYPrice:   400 + float64(i),
			SPYMA180:   390 + float64(i),
		}
	}
	return rows
}

// historyRows returns n sessions whose reason is "session <i>" (1-based).
func historyRows(n int) []model.HistoryRow {
	rows := make([]model.HistoryRow, n)
	for i := range rows {
		rows[i] = model.HistoryRow{
			Date:         fmt.Sprintf("2024-02-%02d 09:31:00", i+1),
			Reason:       fmt.Sprintf("session %d", i+1),
			Actions:      []model.Action{{Action: model.SideBuy, Ticker: "QQQ", Quantity: 1}},
			ActionSource: model.ActionSourceExecutions,
		}
	}
	return rows
}
