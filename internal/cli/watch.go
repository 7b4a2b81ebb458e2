package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"SignalScout/internal/notifier"
	"SignalScout/internal/provider"
	"SignalScout/internal/scheduler"
	"SignalScout/internal/screener"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run the scheduled scan daemon",
		Long: `Start the cron scheduler and the Telegram command loop. Scheduled scans
push candidates at or above the alert threshold through the notifier.
Stops cleanly on SIGINT/SIGTERM.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			scanNow, _ := cmd.Flags().GetBool("now")
			return runWatch(cmd.Context(), app, scanNow)
		},
	}
	cmd.Flags().Bool("now", false, "run one scan immediately on startup")
	return cmd
}

func runWatch(parent context.Context, app *app, scanNow bool) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source, err := screener.NewSource(app.cfg)
	if err != nil {
		return err
	}
	scr := screener.New(app.fetcher, source, app.params, app.cfg)
	col := provider.NewCollector(app.fetcher, app.cfg.Interval(), app.cfg.Analysis.Lookback, app.cfg.Timeframes())

	tn := notifier.NewTelegramNotifier(app.cfg.Telegram.BotToken, app.cfg.Telegram.ChatID, app.cfg.Proxy)
	if !tn.Enabled() {
		log.Warn().Msg("no telegram token configured, alerts print to the log only")
	}

	sched := scheduler.NewScheduler(ctx, col, app.analyzer, scr, app.settings, tn, app.recorder, app.cfg.Telegram.AlertScore)
	if err := sched.RegisterAll(app.cfg.Schedule.ScanCron); err != nil {
		return err
	}
	sched.Start()
	defer sched.Stop()

	go tn.StartPolling(ctx, sched.HandleCommand)

	if scanNow {
		sched.RunScanNow()
	}

	log.Info().Str("cron", app.cfg.Schedule.ScanCron).Msg("watch daemon running, Ctrl+C to stop")
	<-ctx.Done()
	log.Info().Msg("shutting down")
	return nil
}
