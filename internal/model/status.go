package model

import "github.com/shopspring/decimal"

// StatusSnapshot is the shape of status.json.
type StatusSnapshot struct {
	LastUpdated string         `json:"last_updated"`
	Strategy    StrategyState  `json:"strategy"`
	Portfolio   PortfolioState `json:"portfolio"`
}

// StrategyState is the strategy's current decision.
type StrategyState struct {
	Regime         Regime      `json:"regime"`
	TargetExposure float64     `json:"target_exposure"` // fraction in [0,1], not clamped
	TriggerReason  string      `json:"trigger_reason,omitempty"`
	MarketScore    MarketScore `json:"market_score"`
}

// MarketScore holds the benchmark indicators the regime was derived from.
type MarketScore struct {
	SPYMomentum   float64 `json:"spy_momentum"`
	VIX           float64 `json:"vix"`
	SPYMDD        float64 `json:"spy_mdd"` // negative fraction, e.g. -0.12
	SPYPrice      float64 `json:"spy_price,omitempty"`
	SPYMA180      float64 `json:"spy_ma180,omitempty"`
	SPYVolatility float64 `json:"spy_volatility,omitempty"`
}

// PortfolioState is the account snapshot at last_updated.
type PortfolioState struct {
	TotalValue  float64   `json:"total_value"`
	CashBalance float64   `json:"cash_balance"`
	Holdings    []Holding `json:"holdings"`
}

// Holding is one position, valued at the last known price.
type Holding struct {
	Ticker string  `json:"ticker"`
	Value  float64 `json:"value"`
	Qty    float64 `json:"qty,omitempty"`
	Price  float64 `json:"price,omitempty"`
}

// Drift returns total_value - (cash + sum(holdings.value)). The bot derives
// total_value from the same numbers, so anything beyond rounding means the
// documents were written from different snapshots.
func (p PortfolioState) Drift() decimal.Decimal {
	sum := decimal.NewFromFloat(p.CashBalance)
	for _, h := range p.Holdings {
		sum = sum.Add(decimal.NewFromFloat(h.Value))
	}
	return decimal.NewFromFloat(p.TotalValue).Sub(sum)
}
