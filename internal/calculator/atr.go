package calculator

import (
	"math"

	"SignalScout/internal/model"
)

// TrueRanges computes the per-bar true range. The first bar has no
// previous close, so its range degenerates to high-low.
func TrueRanges(bars []model.PricePoint) []float64 {
	tr := make([]float64, len(bars))
	for i, b := range bars {
		if i == 0 {
			tr[i] = b.High - b.Low
			continue
		}
		prevClose := bars[i-1].Close
		tr[i] = math.Max(b.High-b.Low,
			math.Max(math.Abs(b.High-prevClose), math.Abs(b.Low-prevClose)))
	}
	return tr
}

// CalculateATRSeries computes the rolling-mean average true range for
// every index. Entries before period-1 are zero; the first defined
// value sits at index period-1.
func CalculateATRSeries(bars []model.PricePoint, period int) ([]float64, error) {
	if period <= 0 {
		return nil, &model.ConfigurationError{Field: "atr_period", Reason: "must be positive"}
	}
	if len(bars) < period {
		return nil, &model.InsufficientHistoryError{Op: "ATR", Need: period, Got: len(bars)}
	}
	tr := TrueRanges(bars)
	atr := make([]float64, len(bars))
	var window float64
	for i, v := range tr {
		window += v
		if i >= period {
			window -= tr[i-period]
		}
		if i >= period-1 {
			atr[i] = window / float64(period)
		}
	}
	return atr, nil
}

// CalculateATR returns the average true range at the most recent index.
func CalculateATR(bars []model.PricePoint, period int) (float64, error) {
	series, err := CalculateATRSeries(bars, period)
	if err != nil {
		return 0, err
	}
	return series[len(series)-1], nil
}
