package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"SignalScout/internal/analysis"
	"SignalScout/internal/display"
	"SignalScout/internal/export"
	"SignalScout/internal/model"
	"SignalScout/internal/provider"
)

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze TICKER",
		Short: "Run the full analysis pipeline for one ticker",
		Long: `Fetch bars for a ticker, compute bands, oscillators and multi-timeframe
confirmation, score the setup and print a recommendation card.
Example: scout analyze AAPL --interval 1d --rr 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			symbol := strings.ToUpper(strings.TrimSpace(args[0]))
			if err := validateTicker(symbol); err != nil {
				return err
			}

			interval := app.cfg.Interval()
			if v, _ := cmd.Flags().GetString("interval"); v != "" {
				interval, err = model.ParseInterval(v)
				if err != nil {
					return err
				}
			}
			lookback, _ := cmd.Flags().GetInt("period")
			if lookback <= 0 {
				lookback = app.cfg.Analysis.Lookback
			}
			rr, _ := cmd.Flags().GetFloat64("rr")

			rep, err := runAnalysis(cmd.Context(), app, symbol, interval, app.cfg.Timeframes(), lookback, rr)
			if err != nil {
				return err
			}

			fmt.Println(display.RenderReport(rep))

			if path, _ := cmd.Flags().GetString("json"); path != "" {
				if err := export.WriteReport(path, rep); err != nil {
					return err
				}
				display.Success("report written to " + path)
			}
			if path, _ := cmd.Flags().GetString("csv"); path != "" {
				if err := export.WriteReport(path, rep); err != nil {
					return err
				}
				display.Success("report written to " + path)
			}
			return nil
		},
	}

	cmd.Flags().String("interval", "", "bar interval (1m, 5m, 15m, 1h, 4h, 1d, 1wk)")
	cmd.Flags().Int("period", 0, "number of bars to fetch")
	cmd.Flags().Float64("rr", 0, "risk:reward ratio override")
	cmd.Flags().String("json", "", "write the report to a JSON file")
	cmd.Flags().String("csv", "", "write the report to a CSV file")

	return cmd
}

// runAnalysis collects input and runs the analyzer with the effective
// risk:reward: the flag when given, the persisted preference otherwise.
func runAnalysis(ctx context.Context, app *app, symbol string, interval model.Interval, timeframes []model.Interval, lookback int, rr float64) (*model.Report, error) {
	analyzer := app.analyzer
	if rr == 0 {
		rr = app.settings.Get().RiskReward
	}
	if rr != app.params.Trade.RiskReward {
		params := app.params
		params.Trade.RiskReward = rr
		var err error
		analyzer, err = analysis.New(params)
		if err != nil {
			return nil, err
		}
	}

	col := provider.NewCollector(app.fetcher, interval, lookback, timeframes)
	input, err := col.Collect(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("no data for %s: %w", symbol, err)
	}

	rep, err := analyzer.Analyze(input)
	if err != nil {
		var invalid *model.InvalidSeriesError
		var short *model.InsufficientHistoryError
		if errors.As(err, &invalid) || errors.As(err, &short) {
			return nil, fmt.Errorf("no usable data for %s: %w", symbol, err)
		}
		return nil, err
	}
	if err := app.recorder.RecordAnalysis(rep); err != nil {
		log.Warn().Err(err).Msg("record analysis")
	}
	return rep, nil
}
