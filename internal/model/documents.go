package model

// Documents is the set of files the bot publishes, decoded for one render pass.
type Documents struct {
	Status  StatusSnapshot
	Summary []SummaryRow
	History []HistoryRow
}

// Document names as published by the bot.
const (
	StatusFile  = "status.json"
	SummaryFile = "summary.json"
	HistoryFile = "history.json"
)
