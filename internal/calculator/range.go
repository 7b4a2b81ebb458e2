package calculator

import (
	"math"

	"SignalScout/internal/model"
)

// CalculateRange scans the most recent n bars and returns the high and
// low. Series shorter than n are scanned in full.
func CalculateRange(bars []model.PricePoint, n int) (high, low float64, err error) {
	if len(bars) == 0 {
		return 0, 0, &model.InsufficientHistoryError{Op: "Range", Need: 1, Got: 0}
	}
	if n <= 0 {
		return 0, 0, &model.ConfigurationError{Field: "range_window", Reason: "must be positive"}
	}
	start := len(bars) - n
	if start < 0 {
		start = 0
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for i := start; i < len(bars); i++ {
		if bars[i].High > high {
			high = bars[i].High
		}
		if bars[i].Low < low {
			low = bars[i].Low
		}
	}
	return high, low, nil
}

// CalculateRangePosition returns where a price sits within a range
// (0.0 at the low, 1.0 at the high).
func CalculateRangePosition(current, high, low float64) (float64, error) {
	if high == low {
		return 0.5, nil
	}
	if high < low {
		return 0, &model.InvalidSeriesError{Reason: "range high below low"}
	}
	pos := (current - low) / (high - low)
	if pos < 0 {
		pos = 0
	}
	if pos > 1 {
		pos = 1
	}
	return pos, nil
}
