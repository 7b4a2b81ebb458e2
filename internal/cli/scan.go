package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"SignalScout/internal/display"
	"SignalScout/internal/export"
	"SignalScout/internal/model"
	"SignalScout/internal/screener"
)

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan the candidate universe for momentum setups",
		Long: `Score every candidate against the five momentum pillars (intraday move,
relative volume, catalyst proxy, price band, float) and rank the survivors.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScanCmd(cmd, model.ScanMomentum)
		},
	}
	addScanFlags(cmd)
	return cmd
}

func newSqueezeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "squeeze",
		Short: "Scan the candidate universe for squeeze setups",
		Long: `Score every candidate on volume-cluster proximity, unusual volume,
consolidation tightness, level range and gap-fill pattern, plus the
low-float pressure policy where the feed supplies float and short interest.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScanCmd(cmd, model.ScanSqueeze)
		},
	}
	addScanFlags(cmd)
	return cmd
}

func addScanFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("min-score", 0, "minimum qualifying score")
	cmd.Flags().Int("limit", screener.DefaultLimit, "maximum candidates to keep")
	cmd.Flags().String("export", "", "write results to a .json or .csv file")
}

func runScanCmd(cmd *cobra.Command, kind model.ScanKind) error {
	app, err := loadApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	minScore, _ := cmd.Flags().GetFloat64("min-score")
	limit, _ := cmd.Flags().GetInt("limit")

	res, err := runScan(cmd.Context(), app, kind, minScore, limit)
	if err != nil {
		return err
	}

	fmt.Println(display.RenderScan(res))

	if path, _ := cmd.Flags().GetString("export"); path != "" {
		if err := export.WriteScan(path, res); err != nil {
			return err
		}
		display.Success("results written to " + path)
	}
	return nil
}

// runScan builds the screener and runs one pass. A zero minScore falls
// back to the persisted preference for momentum scans and the squeeze
// default otherwise.
func runScan(ctx context.Context, app *app, kind model.ScanKind, minScore float64, limit int) (*model.ScanResult, error) {
	source, err := screener.NewSource(app.cfg)
	if err != nil {
		return nil, err
	}
	if minScore == 0 {
		if kind == model.ScanSqueeze {
			minScore = screener.DefaultSqueezeMin
		} else {
			minScore = app.settings.Get().MinScore
		}
	}

	scr := screener.New(app.fetcher, source, app.params, app.cfg)
	res, err := scr.Scan(ctx, screener.ScanOptions{Kind: kind, MinScore: minScore, Limit: limit})
	if err != nil {
		return nil, err
	}
	if err := app.recorder.RecordScan(res); err != nil {
		log.Warn().Err(err).Msg("record scan")
	}
	return res, nil
}
