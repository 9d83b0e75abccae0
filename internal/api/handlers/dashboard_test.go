package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"regime-dashboard/internal/api/middleware"
	"regime-dashboard/internal/api/models"
	"regime-dashboard/internal/dashboard"
	"regime-dashboard/internal/data"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
)

const (
	statusJSON = `{
		"last_updated": "2024-05-02 16:10:00",
		"strategy": {"regime": "Bear_Weak", "target_exposure": 0.4,
			"market_score": {"spy_momentum": -0.012, "vix": 22.5, "spy_mdd": -0.2}},
		"portfolio": {"total_value": 1800, "cash_balance": 1000,
			"holdings": [{"ticker": "SHV", "value": 500}, {"ticker": "QQQ", "value": 300}]}
	}`
	summaryJSON = `[
		{"date": "2024-05-01", "total_value": 2000, "spy_price": 500, "spy_ma180": 480}
	]`
	historyJSON = `[
		{"date": "2024-05-01 09:31:00", "reason": "old", "orders": [{"action": "SELL", "ticker": "SHV", "quantity": 5}]},
		{"date": "2024-05-02 09:31:00", "reason": "new", "total_trade_amount": 300,
			"executions": [{"action": "BUY", "ticker": "QQQ", "quantity": 1}]}
	]`
)

func init() {
	gin.SetMode(gin.TestMode)
}

// documentHost serves the three documents, except those listed in missing.
func documentHost(t *testing.T, missing ...string) (*httptest.Server, *sync.Map) {
	t.Helper()
	bodies := map[string]string{
		"/status.json":  statusJSON,
		"/summary.json": summaryJSON,
		"/history.json": historyJSON,
	}
	for _, m := range missing {
		delete(bodies, "/"+m)
	}
	tokens := &sync.Map{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokens.Store(r.URL.Path, r.URL.Query().Get("t"))
		body, ok := bodies[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, tokens
}

func newRouter(r ViewRenderer) *gin.Engine {
	router := gin.New()
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())
	h := NewDashboardHandler(r)
	h.now = func() time.Time { return time.UnixMilli(1714665000000) }
	Register(router, h)
	return router
}

func routerForHost(t *testing.T, missing ...string) (*gin.Engine, *sync.Map) {
	srv, tokens := documentHost(t, missing...)
	loader := data.NewLoader(data.NewHTTPSource(srv.URL, 0))
	return newRouter(dashboard.NewRenderer(loader, dashboard.DefaultOptions())), tokens
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	router, _ := routerForHost(t)
	w := get(router, "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != `{"status":"ok"}` {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestDashboardJSON(t *testing.T) {
	router, tokens := routerForHost(t)
	w := get(router, "/api/v1/dashboard")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	var resp models.DashboardResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Token != "1714665000000" {
		t.Errorf("token = %q", resp.Token)
	}
	for _, name := range []string{"/status.json", "/summary.json", "/history.json"} {
		if v, _ := tokens.Load(name); v != "1714665000000" {
			t.Errorf("%s fetched with t=%v", name, v)
		}
	}
	st := resp.View.Status
	if st.DailyReturn.Text != "-10.00%" || !st.MDDRisk || st.Regime.Text != "Bear Weak" {
		t.Errorf("status = %+v", st)
	}
	if len(resp.View.History) != 2 || resp.View.History[0].Reason != "new" {
		t.Errorf("history = %+v", resp.View.History)
	}
}

func TestHistoryEndpointLegacyRow(t *testing.T) {
	router, _ := routerForHost(t)
	w := get(router, "/api/v1/history")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp models.HistoryResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Count != 2 {
		t.Fatalf("count = %d", resp.Count)
	}
	old := resp.Entries[1]
	if old.Amount != "-" || len(old.Badges) != 1 || old.Badges[0].Text != "SELL SHV (5)" {
		t.Errorf("legacy entry = %+v", old)
	}
	if resp.Entries[0].Amount != "$300.00" {
		t.Errorf("amount = %q", resp.Entries[0].Amount)
	}
}

func TestChartEndpoint(t *testing.T) {
	router, _ := routerForHost(t)

	w := get(router, "/api/v1/charts/allocation")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp models.ChartResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Chart.Type != "doughnut" || len(resp.Chart.Data.Labels) != 3 {
		t.Errorf("chart = %+v", resp.Chart)
	}

	w = get(router, "/api/v1/charts/volume")
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown chart status = %d", w.Code)
	}
}

func TestMissingDocumentReturnsBadGateway(t *testing.T) {
	router, _ := routerForHost(t, "summary.json")
	w := get(router, "/api/v1/status")
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error.Code != dashboard.ErrorCode {
		t.Errorf("code = %q", resp.Error.Code)
	}
	if !strings.Contains(resp.Error.Message, "summary.json") {
		t.Errorf("message = %q", resp.Error.Message)
	}
}

func TestPageRendersErrorPanel(t *testing.T) {
	router, _ := routerForHost(t, "status.json")
	w := get(router, "/")
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d", w.Code)
	}
	doc, err := goquery.NewDocumentFromReader(w.Body)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Find(".container .alert-danger").Length() != 1 {
		t.Error("error panel missing")
	}
	if doc.Find("#history-table-body").Length() != 0 || doc.Find("canvas").Length() != 0 {
		t.Error("dashboard sections rendered on failure")
	}
}

func TestPageRendersDashboard(t *testing.T) {
	router, _ := routerForHost(t)
	w := get(router, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if cc := w.Header().Get("Cache-Control"); cc != "no-store" {
		t.Errorf("Cache-Control = %q", cc)
	}
	doc, err := goquery.NewDocumentFromReader(w.Body)
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.Find("#regime-text").Text(); got != "Bear Weak" {
		t.Errorf("regime = %q", got)
	}
	if got := doc.Find("#mdd-value").AttrOr("class", ""); got != "text-danger" {
		t.Errorf("mdd class = %q", got)
	}
}

type failingRenderer struct{ err error }

func (f failingRenderer) Render(context.Context, string) (*dashboard.View, error) {
	return nil, f.err
}

func TestRenderFailureIsInternalError(t *testing.T) {
	router := newRouter(failingRenderer{err: errors.New("template exploded")})
	w := get(router, "/api/v1/dashboard")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

type panickingRenderer struct{}

func (panickingRenderer) Render(context.Context, string) (*dashboard.View, error) {
	panic("boom")
}

func TestRecoveryEnvelope(t *testing.T) {
	router := newRouter(panickingRenderer{})
	w := get(router, "/api/v1/status")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error.Code != "INTERNAL_ERROR" || resp.Error.Message != "boom" {
		t.Errorf("error = %+v", resp.Error)
	}
}

func TestCORSPreflight(t *testing.T) {
	router, _ := routerForHost(t)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/dashboard", nil)
	req.Header.Set("Origin", "https://example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("allow origin = %q", got)
	}
}
