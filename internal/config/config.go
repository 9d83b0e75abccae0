package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"regime-dashboard/internal/logger"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Source  SourceConfig     `yaml:"source"`
	Display DisplayConfig    `yaml:"display"`
	Server  ServerConfig     `yaml:"server"`
	Log     logger.LogConfig `yaml:"log"`
}

// SourceConfig says where the bot's documents live.
type SourceConfig struct {
	// Base is either an http(s) URL prefix or a local directory.
	Base string `yaml:"base"`
	// Timeout bounds each document request. Zero means no timeout.
	Timeout time.Duration `yaml:"timeout"`
}

// DisplayConfig holds the presentation constants.
type DisplayConfig struct {
	TrendWindow      int     `yaml:"trend_window"`
	HistoryRows      int     `yaml:"history_rows"`
	MDDRiskThreshold float64 `yaml:"mdd_risk_threshold"`
	SafeAssetTicker  string  `yaml:"safe_asset_ticker"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
	// StaticData serves the source directory under /data when the source is local.
	StaticData bool `yaml:"static_data"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Source:  SourceConfig{Base: "./docs/data"},
		Display: DefaultDisplay(),
		Server:  ServerConfig{Port: 8080, StaticData: true},
		Log:     logger.LogConfig{Level: "INFO", Format: "json"},
	}
}

// DefaultDisplay returns the dashboard's stock presentation constants.
func DefaultDisplay() DisplayConfig {
	return DisplayConfig{
		TrendWindow:      90,
		HistoryRows:      10,
		MDDRiskThreshold: -0.15,
		SafeAssetTicker:  "SHV",
	}
}

// Load reads path (if non-empty), fills defaults, applies environment
// overrides and validates the result.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.ApplyEnv()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
func LoadUnchecked(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	def := Default()
	if c.Source.Base == "" {
		c.Source.Base = def.Source.Base
	}
	c.Display = MergeDisplay(def.Display, c.Display)
	if c.Server.Port == 0 {
		c.Server.Port = def.Server.Port
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = def.Log.Format
	}
	return &c, nil
}

// ApplyEnv overlays environment variables onto c.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("DASHBOARD_SOURCE"); v != "" {
		c.Source.Base = v
	}
	if v := os.Getenv("API_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv("LOG_TRACING_ENABLED"); v != "" {
		c.Log.Tracing = v == "true"
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if strings.TrimSpace(c.Source.Base) == "" {
		return errors.New("source.base is required")
	}
	if c.Source.Timeout < 0 {
		return fmt.Errorf("source.timeout must not be negative, got %s", c.Source.Timeout)
	}
	if c.Display.TrendWindow <= 0 {
		return fmt.Errorf("display.trend_window must be positive, got %d", c.Display.TrendWindow)
	}
	if c.Display.HistoryRows <= 0 {
		return fmt.Errorf("display.history_rows must be positive, got %d", c.Display.HistoryRows)
	}
	if c.Display.MDDRiskThreshold > 0 {
		return fmt.Errorf("display.mdd_risk_threshold is a drawdown and must be <= 0, got %.4f", c.Display.MDDRiskThreshold)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	return nil
}

// MergeDisplay overlays non-zero fields from override onto base.
func MergeDisplay(base, override DisplayConfig) DisplayConfig {
	out := base
	if override.TrendWindow != 0 {
		out.TrendWindow = override.TrendWindow
	}
	if override.HistoryRows != 0 {
		out.HistoryRows = override.HistoryRows
	}
	// Zero is treated as unset.
	if override.MDDRiskThreshold != 0 {
		out.MDDRiskThreshold = override.MDDRiskThreshold
	}
	if override.SafeAssetTicker != "" {
		out.SafeAssetTicker = override.SafeAssetTicker
	}
	return out
}
