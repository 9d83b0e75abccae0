package dashboard

import (
	"context"

	"regime-dashboard/internal/config"
	"regime-dashboard/internal/logger"
	"regime-dashboard/internal/model"
)

// Options are the presentation constants of one dashboard.
type Options struct {
	TrendWindow      int
	HistoryRows      int
	MDDRiskThreshold float64
	SafeAssetTicker  string
	Palette          Palette
}

// OptionsFromConfig converts the display section of the config.
func OptionsFromConfig(d config.DisplayConfig) Options {
	return Options{
		TrendWindow:      d.TrendWindow,
		HistoryRows:      d.HistoryRows,
		MDDRiskThreshold: d.MDDRiskThreshold,
		SafeAssetTicker:  d.SafeAssetTicker,
		Palette:          DefaultPalette(),
	}
}

// DefaultOptions is OptionsFromConfig(config.DefaultDisplay()).
func DefaultOptions() Options {
	return OptionsFromConfig(config.DefaultDisplay())
}

// View is everything one page shows.
type View struct {
	Token    string         `json:"token"`
	Status   StatusPanel    `json:"status"`
	Holdings HoldingsView   `json:"holdings"`
	Trends   TrendCharts    `json:"trends"`
	History  []HistoryEntry `json:"history"`
}

// DocumentLoader is satisfied by *data.Loader.
type DocumentLoader interface {
	Load(ctx context.Context, token string) (*model.Documents, error)
}

// Renderer runs one load-then-render pass per call.
type Renderer struct {
	loader DocumentLoader
	opts   Options
}

func NewRenderer(loader DocumentLoader, opts Options) *Renderer {
	return &Renderer{loader: loader, opts: opts}
}

// Options returns the renderer's presentation constants.
func (r *Renderer) Options() Options {
	return r.opts
}

// Render loads the documents with token and builds the view. Any load
// failure aborts the pass; nothing partial is returned.
func (r *Renderer) Render(ctx context.Context, token string) (*View, error) {
	docs, err := r.loader.Load(ctx, token)
	if err != nil {
		return nil, err
	}
	op := logger.StartOperation(ctx, "dashboard.render")
	view := Build(docs, token, r.opts)
	op.End("history_rows", len(view.History), "trend_points", len(view.Trends.Labels))
	return view, nil
}

// Build runs the section builders in page order. Each reads only the
// documents.
func Build(docs *model.Documents, token string, opts Options) *View {
	return &View{
		Token:    token,
		Status:   BuildStatusPanel(docs.Status, docs.Summary, opts),
		Holdings: BuildHoldings(docs.Status.Portfolio, opts),
		Trends:   BuildTrends(docs.Summary, opts),
		History:  BuildHistory(docs.History, opts),
	}
}
