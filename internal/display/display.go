package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"SignalScout/internal/model"
	"SignalScout/internal/recorder"
)

// UI styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3B82F6")).
			Padding(1, 2)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6"))

	// Verdict styles
	bullStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true)
	bearStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	flatStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6"))
	gradeBlue  = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6")).Bold(true)
	gradeAmber = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Bold(true)
)

func zoneStyle(z model.BandZone) lipgloss.Style {
	switch z {
	case model.ZoneAboveBands, model.ZoneBelowBands:
		return bearStyle
	case model.ZoneUpperBand, model.ZoneLowerBand:
		return warnStyle
	default:
		return flatStyle
	}
}

func gradeStyle(grade string) lipgloss.Style {
	switch grade {
	case "A":
		return bullStyle
	case "B":
		return gradeBlue
	case "C":
		return gradeAmber
	default:
		return bearStyle
	}
}

func trendMark(t model.TrendState) string {
	switch t {
	case model.TrendBullish:
		return bullStyle.Render("▲ BULLISH")
	case model.TrendBearish:
		return bearStyle.Render("▼ BEARISH")
	default:
		return flatStyle.Render("· NEUTRAL")
	}
}

func grade(b model.ScoreBreakdown) string {
	return fmt.Sprintf("%.1f (%s)", b.Total, gradeStyle(b.Grade).Render(b.Grade))
}

// RenderReport renders the full analysis card for one symbol.
func RenderReport(rep *model.Report) string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render(fmt.Sprintf("Bands %s", rep.Bands.Method)))
	b.WriteString(fmt.Sprintf(" | zone %s\n", zoneStyle(rep.Bands.Zone).Render(string(rep.Bands.Zone))))
	b.WriteString(fmt.Sprintf("  upper  %s\n", levels(rep.Bands.UpperBands)))
	b.WriteString(fmt.Sprintf("  center %.2f\n", rep.Bands.Center))
	b.WriteString(fmt.Sprintf("  lower  %s\n\n", levels(rep.Bands.LowerBands)))

	b.WriteString(sectionStyle.Render("Oscillators") + "\n")
	b.WriteString(oscillatorLines(rep.Oscillator))

	if rep.MTF != nil {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render("Timeframes"))
		b.WriteString(fmt.Sprintf(" %s (%d/%d bullish)\n", rep.MTF.Bias, rep.MTF.BullishCount, len(rep.MTF.Trends)))
		for _, tf := range rep.MTF.Trends {
			b.WriteString(fmt.Sprintf("  %-4s %s\n", tf.Interval, trendMark(tf.Trend)))
		}
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Scores") + "\n")
	b.WriteString(fmt.Sprintf("  Signal  %s\n", grade(rep.Signal)))
	for _, f := range rep.Signal.Factors {
		b.WriteString(fmt.Sprintf("    %+4.0f  %s (%s)\n", f.Points, f.Name, f.Detail))
	}
	b.WriteString(fmt.Sprintf("  Squeeze %s\n", grade(rep.Squeeze)))
	if rep.Momentum != nil {
		b.WriteString(fmt.Sprintf("  Momentum %s, %d pillars met (need %d)\n",
			grade(rep.Momentum.Breakdown), rep.Momentum.PillarsMet, rep.Momentum.PillarsNeeded))
	}
	if rep.Pressure != nil {
		b.WriteString(fmt.Sprintf("  Pressure %s, quality %s\n",
			grade(rep.Pressure.Breakdown), rep.Pressure.Quality))
	}

	b.WriteString("\n")
	b.WriteString(planLines(rep.Recommendation))

	for _, w := range rep.Warnings {
		b.WriteString(warnStyle.Render(fmt.Sprintf("\n⚠ %s", w)))
	}

	title := titleStyle.Render(fmt.Sprintf("📊 %s %s | last %.2f", rep.Symbol, rep.Interval, rep.LastClose))
	return title + "\n" + cardStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func levels(vals []float64) string {
	if len(vals) == 0 {
		return "n/a"
	}
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%.2f", v)
	}
	return strings.Join(parts, " / ")
}

func oscillatorLines(osc model.OscillatorResult) string {
	var b strings.Builder
	if !osc.Partial.RSI {
		b.WriteString(fmt.Sprintf("  RSI        %.1f\n", osc.RSI))
	}
	if !osc.Partial.MACD {
		b.WriteString(fmt.Sprintf("  MACD       %s  hist %+.3f", trendMark(osc.MACDTrend), osc.Histogram))
		if osc.MACDCross != model.CrossNone {
			b.WriteString(fmt.Sprintf("  %s cross", osc.MACDCross))
		}
		b.WriteString("\n")
	}
	if !osc.Partial.SuperTrend {
		b.WriteString(fmt.Sprintf("  SuperTrend %s  @ %.2f\n", trendMark(osc.SuperTrend), osc.SuperTrendValue))
	}
	if !osc.Partial.EMA {
		b.WriteString(fmt.Sprintf("  EMA        %s  %.2f / %.2f\n", trendMark(osc.EMATrend), osc.EMAFast, osc.EMASlow))
	}
	if missing := missingIndicators(osc.Partial); missing != "" {
		b.WriteString(flatStyle.Render(fmt.Sprintf("  insufficient history: %s", missing)) + "\n")
	}
	return b.String()
}

func missingIndicators(p model.PartialFlags) string {
	var names []string
	if p.MACD {
		names = append(names, "MACD")
	}
	if p.RSI {
		names = append(names, "RSI")
	}
	if p.SuperTrend {
		names = append(names, "SuperTrend")
	}
	if p.EMA {
		names = append(names, "EMA")
	}
	return strings.Join(names, ", ")
}

func planLines(rec model.Recommendation) string {
	if rec.Direction == model.DirectionNone {
		return flatStyle.Render("💤 No qualifying setup at this price.") + "\n"
	}

	style := bullStyle
	if rec.Direction == model.DirectionShort {
		style = bearStyle
	}
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Plan"))
	b.WriteString(fmt.Sprintf("  %s (%s)\n", style.Render(string(rec.Direction)), rec.Strength))
	b.WriteString(fmt.Sprintf("  entry %.2f | stop %.2f | target %.2f\n", rec.Entry, rec.Stop, rec.Target))
	b.WriteString(fmt.Sprintf("  risk %.2f | reward %.2f | R:R %.1f\n", rec.RiskAmount, rec.RewardAmount, rec.RiskRewardRatio))
	return b.String()
}

// RenderStats renders the screener-level quote numbers under an
// analysis card. Returns "" when the feed had no stats.
func RenderStats(stats *model.QuoteStats) string {
	if stats == nil {
		return ""
	}
	parts := []string{
		fmt.Sprintf("Volume %s", humanize.Comma(int64(stats.Volume))),
	}
	if stats.AvgVolume > 0 {
		parts[0] += fmt.Sprintf(" (%.1fx avg %s)", stats.RelVolume, humanize.Comma(int64(stats.AvgVolume)))
	}
	if stats.FloatShares > 0 {
		parts = append(parts, fmt.Sprintf("Float %s", humanize.Comma(int64(stats.FloatShares))))
	}
	if stats.ShortPctFloat > 0 {
		parts = append(parts, fmt.Sprintf("Short %.1f%% of float", stats.ShortPctFloat))
	}
	if stats.DaysToCover > 0 {
		parts = append(parts, fmt.Sprintf("DTC %.1f", stats.DaysToCover))
	}
	return "  " + strings.Join(parts, " | ")
}

// RenderScan renders the ranked scan table.
func RenderScan(res *model.ScanResult) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("🔎 %s scan", scanTitle(res.Kind))))
	b.WriteString(fmt.Sprintf("\nscanned %d | skipped %d | qualified %d\n", res.Scanned, res.Skipped, len(res.Candidates)))

	if len(res.Candidates) == 0 {
		b.WriteString("\n" + flatStyle.Render("No qualifying setup found.") + "\n")
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render(fmt.Sprintf("%3s  %-6s %8s %6s %9s %7s %7s  %s",
		"#", "SYMB", "SCORE", "GRADE", "PRICE", "CHG%", "RVOL", trailerHeader(res.Kind))))
	b.WriteString("\n")

	for i, c := range res.Candidates {
		b.WriteString(fmt.Sprintf("%3d  %-6s %8.1f %6s %9s %6.1f%% %6.1fx  %s",
			i+1, c.Symbol, c.Score.Total, gradeStyle(c.Score.Grade).Render(c.Score.Grade),
			"$"+humanize.CommafWithDigits(c.Price, 2), c.ChangePct, c.RelVolume, trailer(res.Kind, c)))
		for _, w := range c.Warnings {
			b.WriteString(warnStyle.Render(fmt.Sprintf("  ⚠ %s", w)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func scanTitle(kind model.ScanKind) string {
	if kind == model.ScanSqueeze {
		return "Squeeze"
	}
	return "Momentum"
}

func trailerHeader(kind model.ScanKind) string {
	if kind == model.ScanSqueeze {
		return "FLOAT/QUALITY"
	}
	return "PILLARS"
}

func trailer(kind model.ScanKind, c model.Candidate) string {
	if kind == model.ScanSqueeze {
		return fmt.Sprintf("%.1fM %s", c.FloatM, c.Quality)
	}
	return fmt.Sprintf("%d", c.Pillars)
}

// RenderRuns renders the recent run history.
func RenderRuns(runs []recorder.RunSummary) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("🗂 Recent runs") + "\n")
	if len(runs) == 0 {
		b.WriteString(flatStyle.Render("none yet") + "\n")
		return b.String()
	}
	for _, r := range runs {
		b.WriteString(fmt.Sprintf("  %s  %-8s scanned %-4d hits %-3d top %.1f\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Kind, r.Scanned, r.Candidates, r.TopScore))
	}
	return b.String()
}

// Error prints an error message.
func Error(err error) {
	fmt.Println(errStyle.Render(fmt.Sprintf("❌ %v", err)))
}

// Info prints an informational message.
func Info(msg string) {
	fmt.Println(infoStyle.Render("ℹ " + msg))
}

// Success prints a success message.
func Success(msg string) {
	fmt.Println(okStyle.Render("✅ " + msg))
}
