package analysis

import (
	"math"

	"SignalScout/internal/model"
)

// ValidateSeries checks series structure before any indicator runs and
// reports whether volume is reliable enough for VWAP: present and
// non-zero on at least half the bars. Pure function, no side effects.
func ValidateSeries(s model.Series, minPoints int) (hasVolume bool, err error) {
	if s.Len() < minPoints {
		return false, &model.InsufficientHistoryError{Op: "series validation", Need: minPoints, Got: s.Len()}
	}

	withVolume := 0
	for i, b := range s.Points {
		for _, v := range []float64{b.Open, b.High, b.Low, b.Close} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false, &model.InvalidSeriesError{Symbol: s.Symbol, Index: i, Reason: "non-finite price"}
			}
		}
		if math.IsNaN(b.Volume) || math.IsInf(b.Volume, 0) {
			return false, &model.InvalidSeriesError{Symbol: s.Symbol, Index: i, Reason: "non-finite volume"}
		}
		if b.Volume < 0 {
			return false, &model.InvalidSeriesError{Symbol: s.Symbol, Index: i, Reason: "negative volume"}
		}
		if b.Close <= 0 {
			return false, &model.InvalidSeriesError{Symbol: s.Symbol, Index: i, Reason: "non-positive close"}
		}
		if b.High < b.Low {
			return false, &model.InvalidSeriesError{Symbol: s.Symbol, Index: i, Reason: "high below low"}
		}
		if i > 0 && !b.Time.After(s.Points[i-1].Time) {
			return false, &model.InvalidSeriesError{Symbol: s.Symbol, Index: i, Reason: "timestamps not strictly increasing"}
		}
		if b.Volume > 0 {
			withVolume++
		}
	}

	return withVolume*2 >= s.Len(), nil
}
