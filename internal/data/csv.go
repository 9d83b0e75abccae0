package data

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"regime-dashboard/internal/model"
)

// WriteHistoryCSV writes every history row to path, newest first.
func WriteHistoryCSV(path string, history []model.HistoryRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return EncodeHistoryCSV(f, history)
}

// EncodeHistoryCSV is WriteHistoryCSV to an arbitrary writer.
func EncodeHistoryCSV(out io.Writer, history []model.HistoryRow) error {
	w := csv.NewWriter(out)

	header := []string{
		"date",
		"reason",
		"total_trade_amount",
		"portfolio_value",
		"source",
		"actions",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range model.NewestFirst(history, -1) {
		actions := make([]string, len(r.Actions))
		for i, a := range r.Actions {
			actions[i] = a.String()
		}
		row := []string{
			r.Date,
			r.Reason,
			fmtAmount(r.TotalTradeAmount),
			fmtFloat(r.PortfolioValue),
			string(r.ActionSource),
			strings.Join(actions, "; "),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func fmtAmount(x *float64) string {
	if x == nil {
		return ""
	}
	return fmtFloat(*x)
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
