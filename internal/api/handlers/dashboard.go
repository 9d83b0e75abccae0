package handlers

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"regime-dashboard/internal/api/models"
	"regime-dashboard/internal/dashboard"
	"regime-dashboard/internal/data"
	"regime-dashboard/internal/logger"

	"github.com/gin-gonic/gin"
)

// ViewRenderer is satisfied by *dashboard.Renderer.
type ViewRenderer interface {
	Render(ctx context.Context, token string) (*dashboard.View, error)
}

// DashboardHandler serves the page and its JSON sections. Every request is
// an independent render pass with its own freshness token.
type DashboardHandler struct {
	renderer ViewRenderer
	now      func() time.Time
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(renderer ViewRenderer) *DashboardHandler {
	return &DashboardHandler{renderer: renderer, now: time.Now}
}

func (h *DashboardHandler) render(c *gin.Context) (*dashboard.View, string, error) {
	token := data.NewFreshnessToken(h.now())
	ctx := c.Request.Context()
	view, err := h.renderer.Render(ctx, token)
	if err != nil {
		logger.ErrorWithErr(ctx, "Dashboard render failed", err, "path", c.Request.URL.Path, "token", token)
	}
	return view, token, err
}

// failureStatus maps a render failure to an HTTP status: the document host
// failing is a bad gateway, anything else is ours.
func failureStatus(err error) int {
	if dashboard.IsLoadError(err) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func writeFailure(c *gin.Context, err error) {
	c.JSON(failureStatus(err), models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    dashboard.ErrorCode,
			Message: err.Error(),
		},
	})
}

// Page handles GET /
func (h *DashboardHandler) Page(c *gin.Context) {
	view, _, err := h.render(c)

	var buf bytes.Buffer
	shown := dashboard.RenderPage(&buf, view, err)
	status := http.StatusOK
	if shown != nil {
		if err == nil {
			logger.ErrorWithErr(c.Request.Context(), "Dashboard page template failed", shown)
		}
		status = failureStatus(shown)
	}
	c.Header("Cache-Control", "no-store")
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

// Dashboard handles GET /api/v1/dashboard
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	view, token, err := h.render(c)
	if err != nil {
		writeFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, models.DashboardResponse{Token: token, View: view})
}

// Status handles GET /api/v1/status
func (h *DashboardHandler) Status(c *gin.Context) {
	view, token, err := h.render(c)
	if err != nil {
		writeFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, models.StatusResponse{Token: token, Status: view.Status})
}

var chartNames = map[string]func(*dashboard.View) dashboard.ChartConfig{
	"allocation":  func(v *dashboard.View) dashboard.ChartConfig { return v.Holdings.Chart },
	"performance": func(v *dashboard.View) dashboard.ChartConfig { return v.Trends.Performance },
	"strategy":    func(v *dashboard.View) dashboard.ChartConfig { return v.Trends.Strategy },
}

// Chart handles GET /api/v1/charts/:name
func (h *DashboardHandler) Chart(c *gin.Context) {
	name := c.Param("name")
	pick, ok := chartNames[name]
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "CHART_NOT_FOUND",
				Message: "unknown chart: " + name,
				Details: map[string]interface{}{
					"available": []string{"allocation", "performance", "strategy"},
				},
			},
		})
		return
	}

	view, token, err := h.render(c)
	if err != nil {
		writeFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ChartResponse{Token: token, Name: name, Chart: pick(view)})
}

// History handles GET /api/v1/history
func (h *DashboardHandler) History(c *gin.Context) {
	view, token, err := h.render(c)
	if err != nil {
		writeFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, models.HistoryResponse{
		Token:   token,
		Entries: view.History,
		Count:   len(view.History),
	})
}

// Health handles GET /health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{Status: "ok"})
}
