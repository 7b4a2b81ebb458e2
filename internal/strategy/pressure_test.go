package strategy

import (
	"testing"
	"time"

	"SignalScout/internal/model"
)

// flatDaily builds n identical daily bars so individual fields can be
// bent per test.
func flatDaily(n int, price, volume float64) model.Series {
	base := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	pts := make([]model.PricePoint, n)
	for i := range pts {
		pts[i] = model.PricePoint{
			Time:   base.AddDate(0, 0, i),
			Open:   price,
			High:   price * 1.01,
			Low:    price * 0.99,
			Close:  price,
			Volume: volume,
		}
	}
	return model.Series{Symbol: "TEST", Interval: model.Interval1Day, Points: pts}
}

func TestScorePressure_TextbookSqueeze(t *testing.T) {
	// 4M float, 35% short, 3.5x volume at $8 pressing its high:
	// 15 + 20 + 10 + 10 + 10 + 5 (DTC 4) + 5 (catalyst) = 75
	stats := model.QuoteStats{
		Symbol:        "SQZE",
		Price:         8.0,
		RelVolume:     3.5,
		FloatShares:   4_000_000,
		ShortPctFloat: 35.0,
		DaysToCover:   4.0,
	}
	got := ScorePressure(stats, flatDaily(60, 8.0, 1_000_000), DefaultPressureParams())

	if got.Breakdown.Total != 75 {
		t.Errorf("expected score 75, got %.0f", got.Breakdown.Total)
	}
	if got.Breakdown.Grade != "C" {
		t.Errorf("expected grade C, got %s", got.Breakdown.Grade)
	}
	if got.Quality != model.QualityGood {
		t.Errorf("expected GOOD quality, got %s", got.Quality)
	}
	if got.ReverseSplitSuspect {
		t.Error("flat series should not look like a reverse split")
	}
}

func TestScorePressure_ClampsAtHundred(t *testing.T) {
	// every band maxed: 25+25+25+10+10+10+5+5 = 115 raw, clamped to 100
	s := flatDaily(60, 8.0, 1_000_000)
	for i := len(s.Points) - 2; i < len(s.Points); i++ {
		s.Points[i].Volume = 5_000_000
	}
	stats := model.QuoteStats{
		Symbol:        "MAXD",
		Price:         8.0,
		RelVolume:     12.0,
		FloatShares:   800_000,
		ShortPctFloat: 45.0,
		DaysToCover:   6.0,
	}
	got := ScorePressure(stats, s, DefaultPressureParams())

	var raw float64
	for _, f := range got.Breakdown.Factors {
		raw += f.Points
	}
	if raw != 115 {
		t.Errorf("expected raw factor sum 115, got %.0f", raw)
	}
	if got.Breakdown.Total != 100 {
		t.Errorf("expected clamped total 100, got %.0f", got.Breakdown.Total)
	}
	if got.Quality != model.QualityExcellent {
		t.Errorf("expected EXCELLENT quality, got %s", got.Quality)
	}
}

func TestScorePressure_NotBreakingHigh(t *testing.T) {
	s := flatDaily(60, 8.0, 1_000_000)
	// a spike high 10 bars back keeps the last close under 98% of the range top
	s.Points[len(s.Points)-10].High = 10.0
	stats := model.QuoteStats{Symbol: "LOWR", Price: 8.0, RelVolume: 1.0}
	got := ScorePressure(stats, s, DefaultPressureParams())

	for _, f := range got.Breakdown.Factors {
		if f.Name == "breakout" && f.Points != 0 {
			t.Errorf("expected no breakout points, got %.0f", f.Points)
		}
	}
}

func TestDetectReverseSplit(t *testing.T) {
	s := flatDaily(45, 2.0, 1_000_000)
	// split signature inside the last 30 bars: price 10x, volume halved
	i := len(s.Points) - 15
	for j := i; j < len(s.Points); j++ {
		s.Points[j].Close = 20.0
		s.Points[j].Open = 20.0
		s.Points[j].High = 20.2
		s.Points[j].Low = 19.8
		s.Points[j].Volume = 300_000
	}
	if !detectReverseSplit(s.Points) {
		t.Error("expected reverse split signature to be detected")
	}

	// same jump with volume intact is just a runner
	s2 := flatDaily(45, 2.0, 1_000_000)
	for j := i; j < len(s2.Points); j++ {
		s2.Points[j].Close = 20.0
	}
	if detectReverseSplit(s2.Points) {
		t.Error("price jump without volume drop must not flag")
	}

	// too little history to judge
	if detectReverseSplit(flatDaily(30, 2.0, 1_000_000).Points) {
		t.Error("short series must not flag")
	}
}

func TestConsecutiveVolumeDays(t *testing.T) {
	s := flatDaily(30, 8.0, 1_000_000)
	n := len(s.Points)
	s.Points[n-1].Volume = 5_000_000
	s.Points[n-2].Volume = 5_000_000
	if got := consecutiveVolumeDays(s.Points, 3); got != 2 {
		t.Errorf("expected streak of 2, got %d", got)
	}

	// a quiet bar breaks the streak even with a heavy bar behind it
	s.Points[n-2].Volume = 1_000_000
	s.Points[n-3].Volume = 5_000_000
	if got := consecutiveVolumeDays(s.Points, 3); got != 1 {
		t.Errorf("expected streak of 1, got %d", got)
	}
}
