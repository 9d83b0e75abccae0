package models

import "regime-dashboard/internal/dashboard"

// DashboardResponse is the full view model of one render pass.
type DashboardResponse struct {
	Token string          `json:"token"`
	View  *dashboard.View `json:"view"`
}

// StatusResponse carries the status panel only.
type StatusResponse struct {
	Token  string                `json:"token"`
	Status dashboard.StatusPanel `json:"status"`
}

// ChartResponse carries one Chart.js configuration.
type ChartResponse struct {
	Token string                `json:"token"`
	Name  string                `json:"name"`
	Chart dashboard.ChartConfig `json:"chart"`
}

// HistoryResponse carries the trade history table rows.
type HistoryResponse struct {
	Token   string                   `json:"token"`
	Entries []dashboard.HistoryEntry `json:"entries"`
	Count   int                      `json:"count"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
