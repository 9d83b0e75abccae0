package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"regime-dashboard/internal/config"
	"regime-dashboard/internal/dashboard"
	"regime-dashboard/internal/data"
	"regime-dashboard/internal/logger"
	"regime-dashboard/internal/model"

	"github.com/joho/godotenv"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	_ = godotenv.Load()

	var err error
	switch os.Args[1] {
	case "render":
		err = cmdRender(os.Args[2:])
	case "status":
		err = cmdStatus(os.Args[2:])
	case "export-history":
		err = cmdExportHistory(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		ev := dashboard.NewErrorView(err)
		fmt.Fprintf(os.Stderr, "%s\n%s\n%s\n%s\n", ev.Title, ev.Message, ev.MessageEN, ev.Detail)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli render --config config.yaml --out dashboard.html")
	fmt.Println("  cli status --config config.yaml")
	fmt.Println("  cli export-history --config config.yaml --out history.csv")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - --source overrides source.base (a directory or an http(s) URL)")
	fmt.Println("  - render writes the same page the server returns for GET /")
}

type common struct {
	cfgPath *string
	source  *string
}

func commonFlags(fs *flag.FlagSet) common {
	return common{
		cfgPath: fs.String("config", os.Getenv("CONFIG_PATH"), "Path to YAML config (optional)"),
		source:  fs.String("source", "", "Override source.base"),
	}
}

func (c common) load() (*config.Config, error) {
	cfg, err := config.Load(*c.cfgPath)
	if err != nil {
		return nil, err
	}
	if *c.source != "" {
		cfg.Source.Base = *c.source
	}
	// Logs go to stderr so stdout stays clean for command output.
	if err := logger.InitWithWriter(cfg.Log, os.Stderr); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loader(cfg *config.Config) *data.Loader {
	return data.NewLoader(data.NewSource(cfg.Source.Base, cfg.Source.Timeout))
}

func cmdRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	c := commonFlags(fs)
	outPath := fs.String("out", "dashboard.html", "Output HTML path")
	_ = fs.Parse(args)

	cfg, err := c.load()
	if err != nil {
		return err
	}
	ctx := context.Background()
	defer logger.Shutdown(ctx)

	renderer := dashboard.NewRenderer(loader(cfg), dashboard.OptionsFromConfig(cfg.Display))
	view, renderErr := renderer.Render(ctx, data.NewFreshnessToken(time.Now()))

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		return err
	}
	f, err := os.Create(*outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := dashboard.RenderPage(f, view, renderErr); err != nil {
		return err
	}
	fmt.Printf("Wrote dashboard to %s\n", *outPath)
	return nil
}

func cmdStatus(args []string) error {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	c := commonFlags(fs)
	_ = fs.Parse(args)

	cfg, err := c.load()
	if err != nil {
		return err
	}
	ctx := context.Background()
	defer logger.Shutdown(ctx)

	renderer := dashboard.NewRenderer(loader(cfg), dashboard.OptionsFromConfig(cfg.Display))
	view, err := renderer.Render(ctx, data.NewFreshnessToken(time.Now()))
	if err != nil {
		return err
	}

	s := view.Status
	fmt.Println(s.LastUpdated)
	fmt.Printf("Total value:     $%s (%s)\n", s.TotalValue, s.DailyReturn.Text)
	fmt.Printf("Regime:          %s\n", s.Regime.Text)
	if s.TriggerReason != "" {
		fmt.Printf("Trigger:         %s\n", s.TriggerReason)
	}
	fmt.Printf("Momentum:        %s\n", s.MomentumScore)
	fmt.Printf("Target exposure: %s\n", s.TargetExposure)
	fmt.Printf("VIX:             %s\n", s.VIX)
	mdd := s.MDD
	if s.MDDRisk {
		mdd += " (risk)"
	}
	fmt.Printf("SPY MDD:         %s\n", mdd)
	fmt.Printf("Cash:            $%s\n", view.Holdings.Cash)
	for _, h := range view.Holdings.Rows {
		fmt.Printf("  %-6s %10s  $%12s  %s\n", h.Ticker, h.Qty, h.Value, h.Weight)
	}
	return nil
}

func cmdExportHistory(args []string) error {
	fs := flag.NewFlagSet("export-history", flag.ExitOnError)
	c := commonFlags(fs)
	outPath := fs.String("out", "history.csv", "Output CSV path")
	_ = fs.Parse(args)

	cfg, err := c.load()
	if err != nil {
		return err
	}
	ctx := context.Background()
	defer logger.Shutdown(ctx)

	docs, err := loader(cfg).Load(ctx, data.NewFreshnessToken(time.Now()))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		return err
	}
	if err := data.WriteHistoryCSV(*outPath, docs.History); err != nil {
		return err
	}
	fmt.Printf("Wrote %d rows to %s\n", len(docs.History), *outPath)
	printSources(docs.History)
	return nil
}

func printSources(history []model.HistoryRow) {
	counts := map[model.ActionSource]int{}
	for _, r := range history {
		counts[r.ActionSource]++
	}
	fmt.Printf("executions=%d orders=%d none=%d\n",
		counts[model.ActionSourceExecutions], counts[model.ActionSourceOrders], counts[model.ActionSourceNone])
}
