package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"regime-dashboard/internal/api/handlers"
	"regime-dashboard/internal/api/middleware"
	"regime-dashboard/internal/config"
	"regime-dashboard/internal/dashboard"
	"regime-dashboard/internal/data"
	"regime-dashboard/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfgPath := flag.String("config", os.Getenv("CONFIG_PATH"), "Path to YAML config (optional)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Log); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	ctx := context.Background()

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	src := data.NewSource(cfg.Source.Base, cfg.Source.Timeout)
	renderer := dashboard.NewRenderer(data.NewLoader(src), dashboard.OptionsFromConfig(cfg.Display))
	handlers.Register(router, handlers.NewDashboardHandler(renderer))

	// The bot's documents can be served from here too, so the page and its
	// data share one origin.
	if !data.IsRemote(cfg.Source.Base) && cfg.Server.StaticData {
		if info, err := os.Stat(cfg.Source.Base); err == nil && info.IsDir() {
			router.Static("/data", cfg.Source.Base)
			logger.Info(ctx, "Serving documents", "dir", cfg.Source.Base, "path", "/data")
		} else {
			logger.Warn(ctx, "Document directory not found, skipping static serving", "dir", cfg.Source.Base)
		}
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info(ctx, "Starting dashboard server", "addr", server.Addr, "source", cfg.Source.Base)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorWithErr(ctx, "Server failed", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "Shutting down dashboard server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.ErrorWithErr(ctx, "Forced shutdown", err)
	}
	if err := logger.Shutdown(shutdownCtx); err != nil {
		logger.ErrorWithErr(ctx, "Tracer shutdown failed", err)
	}
}
