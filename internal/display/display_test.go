package display

import (
	"strings"
	"testing"
	"time"

	"SignalScout/internal/model"
	"SignalScout/internal/recorder"
)

func fullReport() *model.Report {
	return &model.Report{
		Symbol:    "TSLA",
		Interval:  model.Interval1Day,
		LastClose: 245.67,
		HasVolume: true,
		Bands: model.BandResult{
			Method:     model.BandVWAP,
			Center:     242.10,
			UpperBands: []float64{247.10, 252.30},
			LowerBands: []float64{237.20, 232.40},
			Zone:       model.ZoneUpperBand,
		},
		Oscillator: model.OscillatorResult{
			MACDLine:        1.2,
			SignalLine:      0.78,
			Histogram:       0.42,
			MACDTrend:       model.TrendBullish,
			MACDCross:       model.CrossBullish,
			RSI:             58.3,
			SuperTrend:      model.TrendBullish,
			SuperTrendValue: 239.10,
			EMAFast:         246.0,
			EMASlow:         243.8,
			EMATrend:        model.TrendBullish,
		},
		MTF: &model.MTFResult{
			Trends: []model.TimeframeTrend{
				{Interval: model.Interval1Hour, Trend: model.TrendBullish},
				{Interval: model.Interval4Hour, Trend: model.TrendBullish},
				{Interval: model.Interval1Day, Trend: model.TrendBullish},
			},
			BullishCount: 3,
			Bias:         model.MTFUnanimousBullish,
		},
		Signal: model.ScoreBreakdown{
			Total: 72.5,
			Grade: "B",
			Factors: []model.Factor{
				{Name: "MACD", Points: 20, Detail: "histogram rising"},
				{Name: "RSI", Points: 15, Detail: "58.3 in momentum band"},
			},
		},
		Squeeze: model.ScoreBreakdown{Total: 40, Grade: "F"},
		Momentum: &model.MomentumScore{
			Breakdown:     model.ScoreBreakdown{Total: 85, Grade: "A"},
			PillarsMet:    5,
			PillarsNeeded: 3,
			Qualified:     true,
		},
		Pressure: &model.PressureReport{
			Breakdown: model.ScoreBreakdown{Total: 70, Grade: "B"},
			Quality:   model.QualityStrong,
		},
		Recommendation: model.Recommendation{
			Direction:       model.DirectionLong,
			Strength:        model.StrengthModerate,
			Entry:           245.67,
			Stop:            238.20,
			Target:          268.08,
			RiskAmount:      7.47,
			RewardAmount:    22.41,
			RiskRewardRatio: 3.0,
		},
		Warnings: []string{"confirmation timeframe 4h unavailable"},
	}
}

func TestRenderReport_FullCard(t *testing.T) {
	out := RenderReport(fullReport())

	for _, want := range []string{
		"📊 TSLA 1d | last 245.67",
		"UPPER_BAND",
		"upper  247.10 / 252.30",
		"center 242.10",
		"lower  237.20 / 232.40",
		"RSI        58.3",
		"▲ BULLISH",
		"hist +0.420",
		"@ 239.10",
		"UNANIMOUS_BULLISH (3/3 bullish)",
		"Signal  72.5 (",
		"+20  MACD (histogram rising)",
		"Squeeze 40.0 (",
		"Momentum 85.0 (",
		"5 pillars met (need 3)",
		"quality STRONG",
		"entry 245.67 | stop 238.20 | target 268.08",
		"risk 7.47 | reward 22.41 | R:R 3.0",
		"⚠ confirmation timeframe 4h unavailable",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report card missing %q:\n%s", want, out)
		}
	}
}

func TestRenderReport_NoSetup(t *testing.T) {
	rep := fullReport()
	rep.Recommendation = model.Recommendation{Direction: model.DirectionNone}

	out := RenderReport(rep)
	if !strings.Contains(out, "No qualifying setup at this price.") {
		t.Errorf("missing no-setup line:\n%s", out)
	}
	if strings.Contains(out, "entry ") {
		t.Errorf("no-setup card should not show a plan:\n%s", out)
	}
}

func TestRenderReport_PartialIndicators(t *testing.T) {
	rep := fullReport()
	rep.Oscillator.Partial = model.PartialFlags{MACD: true, SuperTrend: true}

	out := RenderReport(rep)
	if !strings.Contains(out, "insufficient history: MACD, SuperTrend") {
		t.Errorf("missing partial note:\n%s", out)
	}
	if strings.Contains(out, "hist ") {
		t.Errorf("partial MACD should not render values:\n%s", out)
	}
}

func TestRenderScan_MomentumTable(t *testing.T) {
	res := &model.ScanResult{
		Kind:    model.ScanMomentum,
		Scanned: 5,
		Skipped: 1,
		Candidates: []model.Candidate{
			{Symbol: "RUNR", Price: 8.12, ChangePct: 30.2, RelVolume: 12,
				Score: model.ScoreBreakdown{Total: 85, Grade: "A"}, Pillars: 5},
			{Symbol: "MIDD", Price: 8.12, ChangePct: 16, RelVolume: 8,
				Score: model.ScoreBreakdown{Total: 65, Grade: "C"}, Pillars: 4},
		},
	}

	out := RenderScan(res)
	for _, want := range []string{
		"🔎 Momentum scan",
		"scanned 5 | skipped 1 | qualified 2",
		"PILLARS",
		"RUNR",
		"$8.12",
		"MIDD",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("scan table missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "RUNR") > strings.Index(out, "MIDD") {
		t.Error("rows out of rank order")
	}
}

func TestRenderScan_SqueezeRowAndWarnings(t *testing.T) {
	res := &model.ScanResult{
		Kind:    model.ScanSqueeze,
		Scanned: 2,
		Candidates: []model.Candidate{{
			Symbol: "SQZE", Price: 4.20, FloatM: 2.5,
			Score:    model.ScoreBreakdown{Total: 100, Grade: "A"},
			Quality:  model.QualityExcellent,
			Warnings: []string{"reverse split pattern in recent bars"},
		}},
	}

	out := RenderScan(res)
	for _, want := range []string{"Squeeze scan", "2.5M EXCELLENT", "⚠ reverse split pattern"} {
		if !strings.Contains(out, want) {
			t.Errorf("squeeze table missing %q:\n%s", want, out)
		}
	}
}

func TestRenderScan_Empty(t *testing.T) {
	out := RenderScan(&model.ScanResult{Kind: model.ScanMomentum, Scanned: 4, Skipped: 4})
	if !strings.Contains(out, "No qualifying setup found.") {
		t.Errorf("empty scan not reported:\n%s", out)
	}
}

func TestRenderStats(t *testing.T) {
	out := RenderStats(&model.QuoteStats{
		Volume:        2_400_000,
		AvgVolume:     800_000,
		RelVolume:     3.0,
		FloatShares:   12_000_000,
		ShortPctFloat: 18,
		DaysToCover:   2.5,
	})
	for _, want := range []string{
		"Volume 2,400,000 (3.0x avg 800,000)",
		"Float 12,000,000",
		"Short 18.0% of float",
		"DTC 2.5",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("stats line missing %q:\n%s", want, out)
		}
	}

	if out := RenderStats(nil); out != "" {
		t.Errorf("nil stats should render nothing, got %q", out)
	}

	yahoo := RenderStats(&model.QuoteStats{Volume: 1000, AvgVolume: 500, RelVolume: 2})
	if strings.Contains(yahoo, "Float") || strings.Contains(yahoo, "Short") {
		t.Errorf("unreported fields should be omitted:\n%s", yahoo)
	}
}

func TestRenderRuns(t *testing.T) {
	runs := []recorder.RunSummary{{
		Kind:       "MOMENTUM",
		Scanned:    40,
		Candidates: 4,
		TopScore:   85,
		CreatedAt:  time.Date(2025, 3, 7, 16, 30, 0, 0, time.UTC),
	}}

	out := RenderRuns(runs)
	if !strings.Contains(out, "2025-03-07 16:30") || !strings.Contains(out, "MOMENTUM") {
		t.Errorf("run history malformed:\n%s", out)
	}
	if out := RenderRuns(nil); !strings.Contains(out, "none yet") {
		t.Errorf("empty history not reported:\n%s", out)
	}
}
