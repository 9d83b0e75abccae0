package model

import "encoding/json"

// HistoryRow is one trading session from history.json.
//
// Older bot versions wrote the planned orders under "orders"; newer ones
// write the fills under "executions". UnmarshalJSON resolves the two into
// Actions once, preferring executions whenever the key is present.
type HistoryRow struct {
	ID               string   `json:"id,omitempty"`
	Date             string   `json:"date"`
	Reason           string   `json:"reason"`
	TotalTradeAmount *float64 `json:"total_trade_amount,omitempty"`
	PortfolioValue   float64  `json:"portfolio_value,omitempty"`

	Actions      []Action     `json:"-"`
	ActionSource ActionSource `json:"-"`
}

type historyRowWire struct {
	ID               string    `json:"id,omitempty"`
	Date             string    `json:"date"`
	Reason           string    `json:"reason"`
	TotalTradeAmount *float64  `json:"total_trade_amount,omitempty"`
	PortfolioValue   float64   `json:"portfolio_value,omitempty"`
	Executions       *[]Action `json:"executions,omitempty"`
	Orders           *[]Action `json:"orders,omitempty"`
}

// MarshalJSON writes the row back in the bot's layout, under the field the
// actions were read from.
func (r HistoryRow) MarshalJSON() ([]byte, error) {
	w := historyRowWire{
		ID:               r.ID,
		Date:             r.Date,
		Reason:           r.Reason,
		TotalTradeAmount: r.TotalTradeAmount,
		PortfolioValue:   r.PortfolioValue,
	}
	actions := r.Actions
	if actions == nil {
		actions = []Action{}
	}
	switch r.ActionSource {
	case ActionSourceOrders:
		w.Orders = &actions
	case ActionSourceNone:
	default:
		w.Executions = &actions
	}
	return json.Marshal(w)
}

func (r *HistoryRow) UnmarshalJSON(b []byte) error {
	var w historyRowWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*r = HistoryRow{
		ID:               w.ID,
		Date:             w.Date,
		Reason:           w.Reason,
		TotalTradeAmount: w.TotalTradeAmount,
		PortfolioValue:   w.PortfolioValue,
	}
	switch {
	case w.Executions != nil:
		r.Actions = *w.Executions
		r.ActionSource = ActionSourceExecutions
	case w.Orders != nil:
		r.Actions = *w.Orders
		r.ActionSource = ActionSourceOrders
	default:
		r.ActionSource = ActionSourceNone
	}
	if r.Actions == nil {
		r.Actions = []Action{}
	}
	return nil
}

// NewestFirst returns up to n rows, newest first. The input is not modified.
func NewestFirst(rows []HistoryRow, n int) []HistoryRow {
	if n < 0 || n > len(rows) {
		n = len(rows)
	}
	out := make([]HistoryRow, 0, n)
	for i := len(rows) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, rows[i])
	}
	return out
}
