package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"SignalScout/internal/analysis"
	"SignalScout/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Analysis struct {
		Interval    string    `yaml:"interval"`
		Lookback    int       `yaml:"lookback"`
		BandMethod  string    `yaml:"band_method"`
		SigmaLevels []float64 `yaml:"sigma_levels"`
		ATRLevels   []float64 `yaml:"atr_levels"`
		RiskReward  float64   `yaml:"risk_reward"`
		MinPillars  int       `yaml:"min_pillars"`
		Timeframes  []string  `yaml:"timeframes"`
	} `yaml:"analysis"`
	DataSource struct {
		Provider       string  `yaml:"provider"`
		BaseURL        string  `yaml:"base_url"`
		APIKey         string  `yaml:"api_key"`
		RequestsPerSec float64 `yaml:"requests_per_sec"`
		MaxRetries     int     `yaml:"max_retries"`
		TimeoutSec     int     `yaml:"timeout_sec"`
	} `yaml:"data_source"`
	Cache struct {
		Dir              string `yaml:"dir"`
		BarsTTLMin       int    `yaml:"bars_ttl_min"`
		QuotesTTLMin     int    `yaml:"quotes_ttl_min"`
		CandidatesTTLMin int    `yaml:"candidates_ttl_min"`
		Disabled         bool   `yaml:"disabled"`
	} `yaml:"cache"`
	Screener struct {
		Watchlist []string `yaml:"watchlist"`
		CSVPath   string   `yaml:"csv_path"`
		Workers   int      `yaml:"workers"`
		MinScore  float64  `yaml:"min_score"`
	} `yaml:"screener"`
	Telegram struct {
		BotToken   string  `yaml:"bot_token"`
		ChatID     string  `yaml:"chat_id"`
		AlertScore float64 `yaml:"alert_score"`
	} `yaml:"telegram"`
	Schedule struct {
		ScanCron string `yaml:"scan_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
		Disabled   bool   `yaml:"disabled"`
	} `yaml:"database"`
	SettingsFile string `yaml:"settings_file"`
	Proxy        string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides, .env first so secrets can live
	// next to the binary instead of the shell profile.
	_ = godotenv.Load()
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("SCOUT_PROVIDER"); v != "" {
		cfg.DataSource.Provider = v
	}
	if v := os.Getenv("SCOUT_API_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("SCOUT_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SCOUT_RISK_REWARD"); v != "" {
		var rr float64
		if _, err := fmt.Sscanf(v, "%f", &rr); err == nil {
			cfg.Analysis.RiskReward = rr
		}
	}
	if v := os.Getenv("SCOUT_SCAN_CRON"); v != "" {
		cfg.Schedule.ScanCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if cfg.Analysis.Interval == "" {
		cfg.Analysis.Interval = "1d"
	}
	if cfg.Analysis.Lookback == 0 {
		cfg.Analysis.Lookback = 120
	}
	if cfg.Analysis.RiskReward == 0 {
		cfg.Analysis.RiskReward = 3.0
	}
	if cfg.Analysis.MinPillars == 0 {
		cfg.Analysis.MinPillars = 3
	}
	if len(cfg.Analysis.Timeframes) == 0 {
		cfg.Analysis.Timeframes = []string{"1h", "4h", "1d"}
	}
	if cfg.DataSource.Provider == "" {
		cfg.DataSource.Provider = "yahoo"
	}
	if cfg.DataSource.RequestsPerSec == 0 {
		cfg.DataSource.RequestsPerSec = 5
	}
	if cfg.DataSource.MaxRetries == 0 {
		cfg.DataSource.MaxRetries = 3
	}
	if cfg.DataSource.TimeoutSec == 0 {
		cfg.DataSource.TimeoutSec = 20
	}
	if cfg.Cache.Dir == "" {
		cfg.Cache.Dir = "data/cache"
	}
	if cfg.Cache.BarsTTLMin == 0 {
		cfg.Cache.BarsTTLMin = 15
	}
	if cfg.Cache.QuotesTTLMin == 0 {
		cfg.Cache.QuotesTTLMin = 5
	}
	if cfg.Cache.CandidatesTTLMin == 0 {
		cfg.Cache.CandidatesTTLMin = 60
	}
	if cfg.Screener.Workers == 0 {
		cfg.Screener.Workers = 3
	}
	if cfg.Screener.MinScore == 0 {
		cfg.Screener.MinScore = 50
	}
	if cfg.Telegram.AlertScore == 0 {
		cfg.Telegram.AlertScore = 70
	}
	if cfg.Schedule.ScanCron == "" {
		cfg.Schedule.ScanCron = "0 30 16 * * 1-5"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/signalscout.db"
	}
	if cfg.SettingsFile == "" {
		cfg.SettingsFile = "data/settings.json"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	switch c.DataSource.Provider {
	case "yahoo", "mock":
	case "rest":
		if c.DataSource.BaseURL == "" {
			return fmt.Errorf("data_source.base_url is required for the rest provider")
		}
	default:
		return fmt.Errorf("data_source.provider must be yahoo, rest or mock")
	}
	if _, err := model.ParseInterval(c.Analysis.Interval); err != nil {
		return fmt.Errorf("analysis.interval: %w", err)
	}
	for _, tf := range c.Analysis.Timeframes {
		if _, err := model.ParseInterval(tf); err != nil {
			return fmt.Errorf("analysis.timeframes: %w", err)
		}
	}
	if c.Analysis.Lookback < 21 {
		return fmt.Errorf("analysis.lookback must cover at least 21 bars")
	}
	if c.Screener.Workers < 1 {
		return fmt.Errorf("screener.workers must be positive")
	}
	return nil
}

// AnalyzerParams assembles engine parameters from the analysis section,
// leaving unset fields at their defaults.
func (c *Config) AnalyzerParams() (analysis.Params, error) {
	p := analysis.DefaultParams()

	switch c.Analysis.BandMethod {
	case "":
	case "vwap":
		p.Bands.Method = model.BandVWAP
	case "sma_atr":
		p.Bands.Method = model.BandSMAATR
	default:
		return p, &model.ConfigurationError{Field: "band_method", Reason: "must be vwap or sma_atr"}
	}
	if len(c.Analysis.SigmaLevels) > 0 {
		p.Bands.SigmaLevels = c.Analysis.SigmaLevels
	}
	if len(c.Analysis.ATRLevels) > 0 {
		p.Bands.ATRLevels = c.Analysis.ATRLevels
	}
	p.Trade.RiskReward = c.Analysis.RiskReward
	p.Momentum.MinPillars = c.Analysis.MinPillars

	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

// Interval returns the parsed primary bar interval.
func (c *Config) Interval() model.Interval {
	iv, err := model.ParseInterval(c.Analysis.Interval)
	if err != nil {
		return model.Interval1Day
	}
	return iv
}

// Timeframes returns the parsed confirmation intervals.
func (c *Config) Timeframes() []model.Interval {
	out := make([]model.Interval, 0, len(c.Analysis.Timeframes))
	for _, tf := range c.Analysis.Timeframes {
		iv, err := model.ParseInterval(tf)
		if err != nil {
			continue
		}
		out = append(out, iv)
	}
	return out
}
