package calculator

import (
	"math"

	"SignalScout/internal/model"
)

// CalculateVWAP computes the running volume-weighted average price and
// its volume-weighted standard deviation at the most recent bar.
// Typical price (high+low+close)/3 is the price input; deviations are
// measured against the running VWAP at each bar, not the final one.
func CalculateVWAP(bars []model.PricePoint) (vwap, sigma float64, err error) {
	if len(bars) == 0 {
		return 0, 0, &model.InsufficientHistoryError{Op: "VWAP", Need: 1, Got: 0}
	}
	var cumVol, cumPV, cumVar float64
	for _, b := range bars {
		tp := (b.High + b.Low + b.Close) / 3
		cumVol += b.Volume
		cumPV += tp * b.Volume
		if cumVol == 0 {
			// zero-volume prefix contributes nothing to either sum
			continue
		}
		vwap = cumPV / cumVol
		dev := tp - vwap
		cumVar += dev * dev * b.Volume
	}
	if cumVol == 0 {
		return 0, 0, &model.InvalidSeriesError{Symbol: "", Index: 0, Reason: "zero cumulative volume"}
	}
	sigma = math.Sqrt(cumVar / cumVol)
	return vwap, sigma, nil
}
