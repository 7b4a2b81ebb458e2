package calculator

import (
	"SignalScout/internal/model"
)

// CalculateSMA computes the simple moving average of the given prices over the specified period.
func CalculateSMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, &model.ConfigurationError{Field: "sma_period", Reason: "must be positive"}
	}
	if len(prices) < period {
		return 0, &model.InsufficientHistoryError{Op: "SMA", Need: period, Got: len(prices)}
	}
	sum := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(period), nil
}

// CalculateEMASeries computes the exponential moving average for every
// index. The first value seeds the average, so output[i] is defined for
// all i; smoothing factor is 2/(period+1).
func CalculateEMASeries(prices []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, &model.ConfigurationError{Field: "ema_period", Reason: "must be positive"}
	}
	if len(prices) == 0 {
		return nil, &model.InsufficientHistoryError{Op: "EMA", Need: 1, Got: 0}
	}
	alpha := 2.0 / (float64(period) + 1.0)
	out := make([]float64, len(prices))
	out[0] = prices[0]
	for i := 1; i < len(prices); i++ {
		out[i] = alpha*prices[i] + (1-alpha)*out[i-1]
	}
	return out, nil
}

// CalculateEMA returns the exponential moving average at the most
// recent index.
func CalculateEMA(prices []float64, period int) (float64, error) {
	series, err := CalculateEMASeries(prices, period)
	if err != nil {
		return 0, err
	}
	return series[len(series)-1], nil
}

func extractCloses(bars []model.PricePoint) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}
