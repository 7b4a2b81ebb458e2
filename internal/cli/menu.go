package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"SignalScout/internal/display"
	"SignalScout/internal/model"
)

const (
	menuAnalyze  = "Analyze a ticker"
	menuScan     = "Momentum scan"
	menuSqueeze  = "Squeeze scan"
	menuHistory  = "Recent runs"
	menuSettings = "Settings"
	menuQuit     = "Quit"
)

// runMenu drives the interactive loop: pick an action, run it, repeat
// until Quit or Ctrl+C.
func runMenu(app *app) error {
	ctx := context.Background()

	for {
		var choice string
		prompt := &survey.Select{
			Message: "What would you like to do?",
			Options: []string{menuAnalyze, menuScan, menuSqueeze, menuHistory, menuSettings, menuQuit},
		}
		if err := survey.AskOne(prompt, &choice); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return nil
			}
			return err
		}

		var err error
		switch choice {
		case menuAnalyze:
			err = menuAnalyzeFlow(ctx, app)
		case menuScan:
			err = menuScanFlow(ctx, app, model.ScanMomentum)
		case menuSqueeze:
			err = menuScanFlow(ctx, app, model.ScanSqueeze)
		case menuHistory:
			err = menuHistoryFlow(app)
		case menuSettings:
			err = menuSettingsFlow(app)
		case menuQuit:
			return nil
		}
		if errors.Is(err, terminal.InterruptErr) {
			continue
		}
		if err != nil {
			display.Error(err)
		}
	}
}

func menuAnalyzeFlow(ctx context.Context, app *app) error {
	symbol, err := promptTicker()
	if err != nil {
		return err
	}
	preset, err := promptPreset(app.settings.Get().LastPreset)
	if err != nil {
		return err
	}
	if err := app.settings.SetPreset(preset.Name); err != nil {
		return err
	}

	rep, err := runAnalysis(ctx, app, symbol, preset.Primary, preset.Timeframes, app.cfg.Analysis.Lookback, 0)
	if err != nil {
		return err
	}
	fmt.Println(display.RenderReport(rep))
	return nil
}

func menuScanFlow(ctx context.Context, app *app, kind model.ScanKind) error {
	res, err := runScan(ctx, app, kind, 0, 0)
	if err != nil {
		return err
	}
	fmt.Println(display.RenderScan(res))
	return nil
}

func menuHistoryFlow(app *app) error {
	runs, err := app.recorder.RecentRuns(10)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		display.Info("no recorded runs yet")
		return nil
	}
	fmt.Println(display.RenderRuns(runs))
	return nil
}

func menuSettingsFlow(app *app) error {
	cur := app.settings.Get()

	rr, err := promptPositiveFloat("Default risk:reward ratio:", cur.RiskReward)
	if err != nil {
		return err
	}
	if err := app.settings.SetRiskReward(rr); err != nil {
		return err
	}

	minScore, err := promptPositiveFloat("Minimum scan score:", cur.MinScore)
	if err != nil {
		return err
	}
	if err := app.settings.SetMinScore(minScore); err != nil {
		return err
	}

	scheduleOn, err := promptConfirm("Enable scheduled scans?", cur.ScheduleOn)
	if err != nil {
		return err
	}
	if err := app.settings.SetSchedule(scheduleOn); err != nil {
		return err
	}

	display.Success("settings saved")
	return nil
}
