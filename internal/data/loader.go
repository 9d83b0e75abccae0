package data

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"regime-dashboard/internal/logger"
	"regime-dashboard/internal/model"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// driftTolerance is the portfolio reconciliation slack, in dollars.
var driftTolerance = decimal.NewFromFloat(0.01)

// LoadError wraps any failure to fetch or decode one of the documents.
type LoadError struct {
	Document string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Document, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewFreshnessToken returns the cache-busting value for one render pass.
func NewFreshnessToken(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

// Loader fetches and decodes the three documents as a unit.
type Loader struct {
	src Source
}

// NewLoader creates a loader over src.
func NewLoader(src Source) *Loader {
	return &Loader{src: src}
}

// Load fetches status, summary and history concurrently with the same token.
// Either all three decode or Load fails; the first failure cancels the other
// requests and their outcomes are discarded.
func (l *Loader) Load(ctx context.Context, token string) (*model.Documents, error) {
	op := logger.StartOperation(ctx, "dashboard.load", "token", token)
	ctx = op.Context()

	names := [3]string{model.StatusFile, model.SummaryFile, model.HistoryFile}
	var bodies [3][]byte

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			b, err := l.src.Fetch(gctx, name, token)
			if err != nil {
				return &LoadError{Document: name, Err: err}
			}
			bodies[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		op.EndWithError(err)
		return nil, err
	}

	docs := &model.Documents{}
	targets := [3]any{&docs.Status, &docs.Summary, &docs.History}
	for i, name := range names {
		if err := json.Unmarshal(bodies[i], targets[i]); err != nil {
			lerr := &LoadError{Document: name, Err: fmt.Errorf("decode: %w", err)}
			op.EndWithError(lerr)
			return nil, lerr
		}
	}
	if docs.Summary == nil {
		docs.Summary = []model.SummaryRow{}
	}
	if docs.History == nil {
		docs.History = []model.HistoryRow{}
	}

	if drift := docs.Status.Portfolio.Drift(); drift.Abs().GreaterThan(driftTolerance) {
		logger.Warn(ctx, "Portfolio does not reconcile", "drift", drift.StringFixed(2),
			"total_value", docs.Status.Portfolio.TotalValue)
	}

	op.End("summary_rows", len(docs.Summary), "history_rows", len(docs.History))
	return docs, nil
}
