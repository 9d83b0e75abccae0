package dashboard

import "regime-dashboard/internal/model"

// HistoryEntry is one row of the trade history table.
type HistoryEntry struct {
	Date   string             `json:"date"`
	Reason string             `json:"reason"`
	Amount string             `json:"amount"`
	Badges []Badge            `json:"badges"`
	Source model.ActionSource `json:"source"`
}

// Empty reports whether the row has no actions; the table shows a muted dash.
func (e HistoryEntry) Empty() bool {
	return len(e.Badges) == 0
}

// ActionBadge renders "BUY QQQ (3)". BUY is green; anything else is red.
func ActionBadge(a model.Action) Badge {
	class := "badge bg-danger order-badge"
	if a.IsBuy() {
		class = "badge bg-success order-badge"
	}
	return Badge{
		Text:  a.String(),
		Class: class,
	}
}

func truncateDate(date string) string {
	if len(date) > 10 {
		return date[:10]
	}
	return date
}

func tradeAmount(v *float64) string {
	if v == nil || *v == 0 {
		return "-"
	}
	return "$" + FormatCurrency(*v)
}

// BuildHistory returns up to opts.HistoryRows entries, newest first.
func BuildHistory(history []model.HistoryRow, opts Options) []HistoryEntry {
	recent := model.NewestFirst(history, opts.HistoryRows)
	out := make([]HistoryEntry, 0, len(recent))
	for _, row := range recent {
		badges := make([]Badge, 0, len(row.Actions))
		for _, a := range row.Actions {
			badges = append(badges, ActionBadge(a))
		}
		out = append(out, HistoryEntry{
			Date:   truncateDate(row.Date),
			Reason: row.Reason,
			Amount: tradeAmount(row.TotalTradeAmount),
			Badges: badges,
			Source: row.ActionSource,
		})
	}
	return out
}
