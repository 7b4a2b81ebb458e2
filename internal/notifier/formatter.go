package notifier

import (
	"fmt"
	"strings"
	"time"

	"SignalScout/internal/model"
	"SignalScout/internal/recorder"
	"SignalScout/internal/settings"
)

// FormatReport formats one analysis report into a Telegram message.
func FormatReport(rep *model.Report) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>%s</b> %s | %s\n\n", rep.Symbol, rep.Interval, time.Now().Format("2006-01-02")))

	b.WriteString(fmt.Sprintf("Last close: %.2f\n", rep.LastClose))
	b.WriteString(fmt.Sprintf("Zone: %s (%s center %.2f)\n", rep.Bands.Zone, rep.Bands.Method, rep.Bands.Center))
	if !rep.Oscillator.Partial.RSI {
		b.WriteString(fmt.Sprintf("RSI: %.1f", rep.Oscillator.RSI))
		if !rep.Oscillator.Partial.MACD {
			b.WriteString(fmt.Sprintf(" | MACD: %s", rep.Oscillator.MACDTrend))
		}
		if !rep.Oscillator.Partial.SuperTrend {
			b.WriteString(fmt.Sprintf(" | SuperTrend: %s", rep.Oscillator.SuperTrend))
		}
		b.WriteString("\n")
	}
	if rep.MTF != nil {
		b.WriteString(fmt.Sprintf("Timeframes: %s (%d/%d bullish)\n", rep.MTF.Bias, rep.MTF.BullishCount, len(rep.MTF.Trends)))
	}
	b.WriteString("\n")

	b.WriteString("📈 <b>Signal factors:</b>\n")
	for _, f := range rep.Signal.Factors {
		b.WriteString(fmt.Sprintf("  %s: %+.0f (%s)\n", f.Name, f.Points, f.Detail))
	}
	b.WriteString("  ─────────────────\n")
	b.WriteString(fmt.Sprintf("  Total: %.1f (%s)\n\n", rep.Signal.Total, rep.Signal.Grade))

	rec := rep.Recommendation
	if rec.Direction == model.DirectionNone {
		b.WriteString("💤 No qualifying setup at this price.\n")
	} else {
		b.WriteString(fmt.Sprintf("💰 <b>Plan:</b> %s (%s)\n", rec.Direction, rec.Strength))
		b.WriteString(fmt.Sprintf("   Entry %.2f | Stop %.2f | Target %.2f\n", rec.Entry, rec.Stop, rec.Target))
		b.WriteString(fmt.Sprintf("   Risk/Reward: %.1f\n", rec.RiskRewardRatio))
	}

	for _, w := range rep.Warnings {
		b.WriteString(fmt.Sprintf("\n⚠️ %s", w))
	}

	return b.String()
}

// FormatScanResult formats a ranked scan into a Telegram message.
func FormatScanResult(res *model.ScanResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("🔎 <b>%s scan</b> | %s\n\n", scanTitle(res.Kind), time.Now().Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Scanned %d, skipped %d, qualified %d\n", res.Scanned, res.Skipped, len(res.Candidates)))

	if len(res.Candidates) == 0 {
		b.WriteString("\nNo candidates met the bar.\n")
		return b.String()
	}

	b.WriteString("\n")
	for i, c := range res.Candidates {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, candidateLine(res.Kind, c)))
	}
	return b.String()
}

// FormatAlert formats the candidates at or above threshold for a push
// alert. Returns the empty string when none qualify, so callers can
// skip the send.
func FormatAlert(res *model.ScanResult, threshold float64) string {
	var hits []model.Candidate
	for _, c := range res.Candidates {
		if c.Score.Total >= threshold {
			hits = append(hits, c)
		}
	}
	if len(hits) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("🚨 <b>%s alert</b> | %s\n\n", scanTitle(res.Kind), time.Now().Format("2006-01-02 15:04")))
	for i, c := range hits {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, candidateLine(res.Kind, c)))
	}
	return b.String()
}

// FormatStatus formats the saved preferences and recent run history.
func FormatStatus(s settings.Settings, runs []recorder.RunSummary) string {
	var b strings.Builder

	b.WriteString("📦 <b>SignalScout status</b>\n\n")
	b.WriteString(fmt.Sprintf("Preset: %s | Min score: %.0f | R:R %.1f\n", s.LastPreset, s.MinScore, s.RiskReward))
	b.WriteString(fmt.Sprintf("Scheduler: %s\n", onOff(s.ScheduleOn)))
	if len(s.Watchlist) > 0 {
		b.WriteString(fmt.Sprintf("Watchlist: %s (%d)\n", strings.Join(s.Watchlist, ", "), len(s.Watchlist)))
	} else {
		b.WriteString("Watchlist: empty\n")
	}

	b.WriteString("\n🗂 <b>Recent runs:</b>\n")
	if len(runs) == 0 {
		b.WriteString("  none yet\n")
		return b.String()
	}
	for _, r := range runs {
		b.WriteString(fmt.Sprintf("  %s %s: %d scanned, %d hits, top %.0f\n",
			r.CreatedAt.Format("01-02 15:04"), r.Kind, r.Scanned, r.Candidates, r.TopScore))
	}
	return b.String()
}

func scanTitle(kind model.ScanKind) string {
	switch kind {
	case model.ScanSqueeze:
		return "Squeeze"
	default:
		return "Momentum"
	}
}

func candidateLine(kind model.ScanKind, c model.Candidate) string {
	switch kind {
	case model.ScanSqueeze:
		return fmt.Sprintf("<b>%s</b> %.0f (%s) | $%.2f | float %.1fM | %s",
			c.Symbol, c.Score.Total, c.Score.Grade, c.Price, c.FloatM, c.Quality)
	default:
		return fmt.Sprintf("<b>%s</b> %.0f (%s) | $%.2f %+.1f%% | rvol %.1fx | %d pillars",
			c.Symbol, c.Score.Total, c.Score.Grade, c.Price, c.ChangePct, c.RelVolume, c.Pillars)
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
