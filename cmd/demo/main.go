package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"regime-dashboard/internal/data"
	"regime-dashboard/internal/model"
)

// Demo:
// - Generate a deterministic status/summary/history set
// - Write it in the bot's layout so `cmd/api` or `cmd/cli` can render it
func main() {
	outDir := flag.String("out", "./docs/data", "Directory to write status.json, summary.json and history.json")
	days := flag.Int("days", 120, "Number of summary rows")
	sessions := flag.Int("sessions", 15, "Number of history rows")
	endDate := flag.String("end", "2024-05-02", "Date of the last summary row (YYYY-MM-DD)")
	flag.Parse()

	end, err := time.Parse("2006-01-02", *endDate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --end: %v\n", err)
		os.Exit(2)
	}

	docs := sampleDocuments(end, *days, *sessions)
	if err := data.WriteDocuments(*outDir, docs); err != nil {
		fmt.Fprintf(os.Stderr, "write documents: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d summary rows and %d history rows to %s\n", len(docs.Summary), len(docs.History), *outDir)
	fmt.Printf("Regime=%s Total=$%.2f\n", docs.Status.Strategy.Regime, docs.Status.Portfolio.TotalValue)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func sampleDocuments(end time.Time, days, sessions int) *model.Documents {
	summary := make([]model.SummaryRow, days)
	for i := range summary {
		d := end.AddDate(0, 0, i-days+1)
		t := float64(i)
		spy := 420 + 0.6*t + 12*math.Sin(t/9)
		summary[i] = model.SummaryRow{
			Date:       d.Format("2006-01-02"),
			TotalValue: round2(10000 + 18*t + 220*math.Sin(t/7)),
			SPYPrice:   round2(spy),
			SPYMA180:   round2(410 + 0.55*t),
		}
	}

	holdings := []model.Holding{
		{Ticker: "QQQ", Qty: 9, Price: 438.27, Value: round2(9 * 438.27)},
		{Ticker: "QLD", Qty: 20, Price: 87.15, Value: round2(20 * 87.15)},
		{Ticker: "SHV", Qty: 30, Price: 110.42, Value: round2(30 * 110.42)},
	}
	cash := 1250.0
	total := cash
	for _, h := range holdings {
		total += h.Value
	}

	status := model.StatusSnapshot{
		LastUpdated: end.Format("2006-01-02") + " 16:10:00",
		Strategy: model.StrategyState{
			Regime:         model.RegimeBull,
			TargetExposure: 0.8,
			TriggerReason:  "SPY above MA180, VIX calm",
			MarketScore: model.MarketScore{
				SPYMomentum:   0.0421,
				VIX:           14.8,
				SPYMDD:        -0.032,
				SPYVolatility: 0.011,
			},
		},
		Portfolio: model.PortfolioState{
			TotalValue:  round2(total),
			CashBalance: cash,
			Holdings:    holdings,
		},
	}
	if days > 0 {
		last := summary[days-1]
		status.Strategy.MarketScore.SPYPrice = last.SPYPrice
		status.Strategy.MarketScore.SPYMA180 = last.SPYMA180
	}

	history := make([]model.HistoryRow, sessions)
	for i := range history {
		d := end.AddDate(0, 0, (i-sessions+1)*3)
		row := model.HistoryRow{
			ID:             fmt.Sprintf("session-%03d", i+1),
			Date:           d.Format("2006-01-02") + " 09:31:00",
			PortfolioValue: round2(10000 + 40*float64(i)),
		}
		switch i % 3 {
		case 0:
			// Older bot versions only wrote planned orders.
			row.Reason = "Rebalance to safe asset"
			row.Actions = []model.Action{{Action: model.SideSell, Ticker: "QQQ", Quantity: 1}, {Action: model.SideBuy, Ticker: "SHV", Quantity: 4}}
			row.ActionSource = model.ActionSourceOrders
		case 1:
			amount := round2(438.27 * 2)
			row.Reason = "Momentum entry"
			row.TotalTradeAmount = &amount
			row.Actions = []model.Action{{Action: model.SideBuy, Ticker: "QQQ", Quantity: 2, Price: 438.27}}
			row.ActionSource = model.ActionSourceExecutions
		default:
			row.Reason = "No change"
			row.Actions = []model.Action{}
			row.ActionSource = model.ActionSourceNone
		}
		history[i] = row
	}

	return &model.Documents{Status: status, Summary: summary, History: history}
}
