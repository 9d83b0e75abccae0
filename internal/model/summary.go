package model

// SummaryRow is one historical day from summary.json. Rows are stored
// oldest first.
type SummaryRow struct {
	Date       string  `json:"date"` // YYYY-MM-DD
	TotalValue float64 `json:"total_value"`
	SPYPrice   float64 `json:"spy_price"`
	SPYMA180   float64 `json:"spy_ma180"`

	CashBalance    float64 `json:"cash_balance,omitempty"`
	SPYVolatility  float64 `json:"spy_volatility,omitempty"`
	SPYMomentum    float64 `json:"spy_momentum,omitempty"`
	MDD            float64 `json:"mdd,omitempty"`
	Regime         string  `json:"regime,omitempty"`
	TargetExposure float64 `json:"target_exposure,omitempty"`
}

// LastN returns the trailing n rows in chronological order, or all rows when
// there are fewer than n.
func LastN(rows []SummaryRow, n int) []SummaryRow {
	if n < 0 {
		n = 0
	}
	if len(rows) <= n {
		return rows
	}
	return rows[len(rows)-n:]
}
