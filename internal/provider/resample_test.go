package provider

import (
	"testing"
	"time"

	"SignalScout/internal/model"
)

func point(ts time.Time, o, h, l, c, v float64) model.PricePoint {
	return model.PricePoint{Time: ts, Open: o, High: h, Low: l, Close: c, Volume: v}
}

func TestResampleHours_FoldsIntoFourHourBuckets(t *testing.T) {
	day := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	in := model.Series{
		Symbol:   "AAPL",
		Interval: model.Interval1Hour,
		Points: []model.PricePoint{
			point(day.Add(14*time.Hour), 10, 11, 9.5, 10.5, 100),
			point(day.Add(15*time.Hour), 10.5, 12, 10, 11, 150),
			point(day.Add(16*time.Hour), 11, 11.5, 10.8, 11.2, 200),
			point(day.Add(17*time.Hour), 11.2, 13, 11, 12.5, 100),
			point(day.Add(18*time.Hour), 12.5, 12.8, 12, 12.2, 50),
		},
	}

	out := ResampleHours(in, 4)

	if out.Symbol != "AAPL" || out.Interval != model.Interval4Hour {
		t.Fatalf("got %s %s, want AAPL 4h", out.Symbol, out.Interval)
	}
	if len(out.Points) != 2 {
		t.Fatalf("got %d buckets, want 2", len(out.Points))
	}

	first := out.Points[0]
	if !first.Time.Equal(day.Add(12 * time.Hour)) {
		t.Errorf("first bucket at %v, want 12:00", first.Time)
	}
	if first.Open != 10 || first.High != 12 || first.Low != 9.5 || first.Close != 11 || first.Volume != 250 {
		t.Errorf("first bucket = %+v", first)
	}

	second := out.Points[1]
	if !second.Time.Equal(day.Add(16 * time.Hour)) {
		t.Errorf("second bucket at %v, want 16:00", second.Time)
	}
	if second.Open != 11 || second.High != 13 || second.Low != 10.8 || second.Close != 12.2 || second.Volume != 350 {
		t.Errorf("second bucket = %+v", second)
	}
}

func TestResampleWeekly_FoldsISOWeeks(t *testing.T) {
	in := model.Series{
		Symbol:   "MSFT",
		Interval: model.Interval1Day,
		Points: []model.PricePoint{
			point(time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC), 20, 21, 19, 20.5, 1000),
			point(time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC), 20.5, 22, 20, 21.5, 1200),
			point(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), 21.5, 23, 21, 22, 900),
		},
	}

	out := ResampleWeekly(in)

	if out.Interval != model.Interval1Week {
		t.Fatalf("got interval %s, want 1wk", out.Interval)
	}
	if len(out.Points) != 2 {
		t.Fatalf("got %d weeks, want 2", len(out.Points))
	}

	week1 := out.Points[0]
	if week1.Open != 20 || week1.High != 22 || week1.Low != 19 || week1.Close != 21.5 || week1.Volume != 2200 {
		t.Errorf("week 1 = %+v", week1)
	}
	if !week1.Time.Equal(in.Points[0].Time) {
		t.Errorf("week 1 keeps its first bar time, got %v", week1.Time)
	}

	week2 := out.Points[1]
	if week2.Open != 21.5 || week2.Close != 22 || week2.Volume != 900 {
		t.Errorf("week 2 = %+v", week2)
	}
}

func TestResampleHours_EmptyInput(t *testing.T) {
	out := ResampleHours(model.Series{Symbol: "AAPL", Interval: model.Interval1Hour}, 4)
	if len(out.Points) != 0 {
		t.Fatalf("got %d points for empty input", len(out.Points))
	}
	if out.Interval != model.Interval4Hour {
		t.Fatalf("got interval %s, want 4h", out.Interval)
	}
}
