package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"SignalScout/internal/model"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Analysis.RiskReward != 3.0 {
		t.Errorf("RiskReward = %v, want 3.0", cfg.Analysis.RiskReward)
	}
	if cfg.Analysis.MinPillars != 3 {
		t.Errorf("MinPillars = %v, want 3", cfg.Analysis.MinPillars)
	}
	if cfg.DataSource.Provider != "yahoo" {
		t.Errorf("Provider = %q, want yahoo", cfg.DataSource.Provider)
	}
	if got := cfg.Interval(); got != model.Interval1Day {
		t.Errorf("Interval = %v, want 1d", got)
	}
	if got := cfg.Timeframes(); len(got) != 3 || got[0] != model.Interval1Hour {
		t.Errorf("Timeframes = %v", got)
	}
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("analysis:\n  interval: 1h\n  risk_reward: 2.5\ndata_source:\n  provider: mock\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SCOUT_RISK_REWARD", "4")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Analysis.Interval != "1h" {
		t.Errorf("Interval = %q, want 1h", cfg.Analysis.Interval)
	}
	if cfg.Analysis.RiskReward != 4 {
		t.Errorf("RiskReward = %v, want env override 4", cfg.Analysis.RiskReward)
	}
	if cfg.DataSource.Provider != "mock" {
		t.Errorf("Provider = %q, want mock", cfg.DataSource.Provider)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown provider", func(c *Config) { c.DataSource.Provider = "bloomberg" }},
		{"rest without base url", func(c *Config) { c.DataSource.Provider = "rest" }},
		{"bad interval", func(c *Config) { c.Analysis.Interval = "7m" }},
		{"bad timeframe", func(c *Config) { c.Analysis.Timeframes = []string{"1h", "9h"} }},
		{"short lookback", func(c *Config) { c.Analysis.Lookback = 5 }},
		{"zero workers", func(c *Config) { c.Screener.Workers = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
			if err != nil {
				t.Fatal(err)
			}
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate accepted invalid config")
			}
		})
	}
}

func TestAnalyzerParams(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	cfg.Analysis.BandMethod = "vwap"
	cfg.Analysis.RiskReward = 2
	p, err := cfg.AnalyzerParams()
	if err != nil {
		t.Fatalf("AnalyzerParams: %v", err)
	}
	if p.Bands.Method != model.BandVWAP {
		t.Errorf("Method = %v, want VWAP", p.Bands.Method)
	}
	if p.Trade.RiskReward != 2 {
		t.Errorf("RiskReward = %v, want 2", p.Trade.RiskReward)
	}

	cfg.Analysis.BandMethod = "bollinger"
	_, err = cfg.AnalyzerParams()
	var cfgErr *model.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Errorf("want ConfigurationError for unknown band method, got %v", err)
	}
}
