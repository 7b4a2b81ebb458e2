package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"SignalScout/internal/analysis"
	"SignalScout/internal/config"
	"SignalScout/internal/display"
	"SignalScout/internal/provider"
	"SignalScout/internal/recorder"
	"SignalScout/internal/settings"
)

// Execute runs the root command. Errors are already rendered by the
// time it returns; the caller only decides the exit code.
func Execute() error {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		display.Error(err)
		return err
	}
	return nil
}

// NewRootCmd builds the scout command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "scout",
		Short: "SignalScout - technical analysis and scan tool",
		Long: `SignalScout analyzes price series with VWAP/ATR bands, MACD, RSI,
SuperTrend and multi-timeframe confirmation, scores momentum and squeeze
setups, and emits entry/stop/target recommendations.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level, _ := cmd.Flags().GetString("log-level")
			setupLogging(level)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: interactive menu on a terminal, help otherwise.
			if !stdinIsTerminal() {
				return cmd.Help()
			}
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()
			return runMenu(app)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "config file path (default configs/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")

	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newSqueezeCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func setupLogging(level string) {
	lv, err := zerolog.ParseLevel(level)
	if err != nil {
		lv = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lv).
		With().Timestamp().Logger()
}

func stdinIsTerminal() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// app bundles the wired collaborators every command needs. Built once
// per invocation by loadApp, closed by the command that built it.
type app struct {
	cfg      *config.Config
	params   analysis.Params
	analyzer *analysis.Analyzer
	fetcher  provider.Fetcher
	recorder recorder.Recorder
	settings *settings.Manager
}

// loadApp loads and validates configuration, then wires the fetcher,
// the analyzer, the recorder and the settings manager.
func loadApp(cmd *cobra.Command) (*app, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = "configs/config.yaml"
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	params, err := cfg.AnalyzerParams()
	if err != nil {
		return nil, err
	}
	analyzer, err := analysis.New(params)
	if err != nil {
		return nil, err
	}

	fetcher, err := provider.New(cfg)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("provider", fetcher.Name()).Msg("data source selected")

	var rec recorder.Recorder = recorder.NewNoopRecorder()
	if !cfg.Database.Disabled && cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Warn().Err(err).Msg("recorder unavailable, history disabled")
		} else {
			rec = sr
		}
	}

	st, err := settings.NewManager(cfg.SettingsFile)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	return &app{
		cfg:      cfg,
		params:   params,
		analyzer: analyzer,
		fetcher:  fetcher,
		recorder: rec,
		settings: st,
	}, nil
}

// Close releases the recorder.
func (a *app) Close() {
	if err := a.recorder.Close(); err != nil {
		log.Warn().Err(err).Msg("close recorder")
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("SignalScout v1.0.0")
		},
	}
}
