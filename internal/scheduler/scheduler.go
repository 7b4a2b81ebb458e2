package scheduler

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"SignalScout/internal/analysis"
	"SignalScout/internal/model"
	"SignalScout/internal/notifier"
	"SignalScout/internal/provider"
	"SignalScout/internal/recorder"
	"SignalScout/internal/screener"
	"SignalScout/internal/settings"
)

const helpText = "Available commands:\n• analyze TICKER\n• scan\n• squeeze\n• status"

// Scheduler manages the cron tasks and the remote command surface.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *provider.Collector
	Analyzer  *analysis.Analyzer
	Screener  *screener.Screener
	Settings  *settings.Manager
	Notifier  *notifier.TelegramNotifier
	Recorder  recorder.Recorder
	Ctx       context.Context

	alertScore float64

	mu      sync.Mutex
	alerted map[string]bool

	logger zerolog.Logger
}

// NewScheduler creates a new Scheduler. Candidates scoring at or above
// alertScore are pushed through the notifier when a scheduled scan runs.
func NewScheduler(ctx context.Context, col *provider.Collector, an *analysis.Analyzer, scr *screener.Screener, st *settings.Manager, tn *notifier.TelegramNotifier, rec recorder.Recorder, alertScore float64) *Scheduler {
	return &Scheduler{
		Cron:       cron.New(cron.WithSeconds()),
		Collector:  col,
		Analyzer:   an,
		Screener:   scr,
		Settings:   st,
		Notifier:   tn,
		Recorder:   rec,
		Ctx:        ctx,
		alertScore: alertScore,
		alerted:    make(map[string]bool),
		logger:     log.With().Str("component", "scheduler").Logger(),
	}
}

// RegisterAll registers the scheduled scan and the weekly alert reset.
func (s *Scheduler) RegisterAll(scanCron string) error {
	if _, err := s.Cron.AddFunc(scanCron, s.scanTask); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	// Alert dedup reset: every Monday 00:00
	if _, err := s.Cron.AddFunc("0 0 0 * * 1", func() {
		s.ResetWeeklyAlerts()
		s.logger.Info().Msg("weekly alert flags reset")
	}); err != nil {
		return fmt.Errorf("register weekly reset: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.logger.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	s.logger.Info().Msg("scheduler stopped")
}

// RunScanNow executes the scheduled scan immediately, regardless of the
// schedule toggle.
func (s *Scheduler) RunScanNow() {
	s.scanAndAlert()
}

func (s *Scheduler) scanTask() {
	if !s.Settings.Get().ScheduleOn {
		s.logger.Debug().Msg("scheduled scan disabled in settings")
		return
	}
	s.scanAndAlert()
}

func (s *Scheduler) scanAndAlert() {
	s.logger.Info().Msg("running scheduled scan")

	res, err := s.runScan(model.ScanMomentum)
	if err != nil {
		s.logger.Error().Err(err).Msg("scheduled scan")
		s.trySend(fmt.Sprintf("❌ Scheduled scan failed: %v", err))
		return
	}

	hits := s.freshAlerts(res)
	if len(hits) == 0 {
		s.logger.Info().Int("candidates", len(res.Candidates)).Msg("no fresh alerts")
		return
	}
	alert := *res
	alert.Candidates = hits
	s.trySend(notifier.FormatAlert(&alert, s.alertScore))
}

func (s *Scheduler) runScan(kind model.ScanKind) (*model.ScanResult, error) {
	res, err := s.Screener.Scan(s.Ctx, screener.ScanOptions{
		Kind:     kind,
		MinScore: s.Settings.Get().MinScore,
	})
	if err != nil {
		return nil, err
	}
	if err := s.Recorder.RecordScan(res); err != nil {
		s.logger.Error().Err(err).Msg("record scan")
	}
	return res, nil
}

// freshAlerts returns the candidates at or above the alert threshold
// that have not alerted since the last weekly reset, marking them so
// repeated daily scans stay quiet about the same ticker.
func (s *Scheduler) freshAlerts(res *model.ScanResult) []model.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Candidate
	for _, c := range res.Candidates {
		if c.Score.Total < s.alertScore || s.alerted[c.Symbol] {
			continue
		}
		s.alerted[c.Symbol] = true
		out = append(out, c)
	}
	return out
}

// ResetWeeklyAlerts clears the alerted-symbol set so recurring setups
// can alert again.
func (s *Scheduler) ResetWeeklyAlerts() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerted = make(map[string]bool)
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return helpText
	}
	switch strings.ToLower(strings.TrimPrefix(fields[0], "/")) {
	case "analyze":
		if len(fields) < 2 {
			return "Usage: analyze TICKER"
		}
		return s.analyzeCommand(strings.ToUpper(fields[1]))
	case "scan":
		return s.scanCommand(model.ScanMomentum)
	case "squeeze":
		return s.scanCommand(model.ScanSqueeze)
	case "status":
		return s.statusCommand()
	default:
		return helpText
	}
}

func (s *Scheduler) analyzeCommand(symbol string) string {
	input, err := s.Collector.Collect(s.Ctx, symbol)
	if err != nil {
		return fmt.Sprintf("❌ %s: %v", symbol, err)
	}
	rep, err := s.Analyzer.Analyze(input)
	if err != nil {
		return fmt.Sprintf("❌ %s: %v", symbol, err)
	}
	if err := s.Recorder.RecordAnalysis(rep); err != nil {
		s.logger.Error().Err(err).Msg("record analysis")
	}
	return notifier.FormatReport(rep)
}

func (s *Scheduler) scanCommand(kind model.ScanKind) string {
	res, err := s.runScan(kind)
	if err != nil {
		return fmt.Sprintf("❌ scan failed: %v", err)
	}
	return notifier.FormatScanResult(res)
}

func (s *Scheduler) statusCommand() string {
	runs, err := s.Recorder.RecentRuns(5)
	if err != nil {
		s.logger.Error().Err(err).Msg("recent runs")
	}
	return notifier.FormatStatus(s.Settings.Get(), runs)
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		s.logger.Error().Err(err).Msg("send notification")
	}
}
