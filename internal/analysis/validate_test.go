package analysis

import (
	"errors"
	"math"
	"testing"

	"SignalScout/internal/model"
)

func TestValidateSeries_RejectsMalformedBars(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*model.Series)
		reason string
	}{
		{"nan close", func(s *model.Series) { s.Points[3].Close = math.NaN() }, "non-finite price"},
		{"infinite high", func(s *model.Series) { s.Points[7].High = math.Inf(1) }, "non-finite price"},
		{"negative volume", func(s *model.Series) { s.Points[5].Volume = -10 }, "negative volume"},
		{"zero close", func(s *model.Series) { s.Points[9].Close = 0 }, "non-positive close"},
		{"inverted bar", func(s *model.Series) { s.Points[4].High, s.Points[4].Low = 90.0, 110.0 }, "high below low"},
		{"stalled clock", func(s *model.Series) { s.Points[6].Time = s.Points[5].Time }, "timestamps not strictly increasing"},
	}

	for _, tc := range cases {
		s := risingSeries(30, 100, 1.0, 1000)
		tc.mutate(&s)
		_, err := ValidateSeries(s, 21)

		var invalid *model.InvalidSeriesError
		if !errors.As(err, &invalid) {
			t.Errorf("%s: expected InvalidSeriesError, got %v", tc.name, err)
			continue
		}
		if invalid.Reason != tc.reason {
			t.Errorf("%s: expected reason %q, got %q", tc.name, tc.reason, invalid.Reason)
		}
	}
}

func TestValidateSeries_VolumeMajority(t *testing.T) {
	s := risingSeries(40, 100, 1.0, 1000)
	for i := 0; i < 20; i++ {
		s.Points[i].Volume = 0
	}
	hasVolume, err := ValidateSeries(s, 21)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !hasVolume {
		t.Error("volume on exactly half the bars still qualifies")
	}

	s.Points[20].Volume = 0
	hasVolume, err = ValidateSeries(s, 21)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hasVolume {
		t.Error("volume on less than half the bars must not qualify")
	}
}

func TestValidateSeries_LengthFloor(t *testing.T) {
	_, err := ValidateSeries(risingSeries(20, 100, 1.0, 1000), 21)
	var hist *model.InsufficientHistoryError
	if !errors.As(err, &hist) {
		t.Fatalf("expected InsufficientHistoryError, got %v", err)
	}
	if hist.Need != 21 || hist.Got != 20 {
		t.Errorf("expected need 21 got 20, have need %d got %d", hist.Need, hist.Got)
	}
}
