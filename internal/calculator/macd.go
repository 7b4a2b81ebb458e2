package calculator

import (
	"SignalScout/internal/model"
)

// MACDSeries holds the three MACD columns aligned to the input bars.
type MACDSeries struct {
	Line      []float64
	Signal    []float64
	Histogram []float64
}

// CalculateMACD computes MACD line, signal line and histogram from the
// close column. The slow EMA plus the signal EMA set the minimum input
// length (35 bars for the standard 12/26/9 setup).
func CalculateMACD(closes []float64, fast, slow, signalPeriod int) (MACDSeries, error) {
	if fast <= 0 || slow <= 0 || signalPeriod <= 0 {
		return MACDSeries{}, &model.ConfigurationError{Field: "macd_periods", Reason: "must be positive"}
	}
	if fast >= slow {
		return MACDSeries{}, &model.ConfigurationError{Field: "macd_periods", Reason: "fast period must be below slow period"}
	}
	need := slow + signalPeriod
	if len(closes) < need {
		return MACDSeries{}, &model.InsufficientHistoryError{Op: "MACD", Need: need, Got: len(closes)}
	}

	emaFast, err := CalculateEMASeries(closes, fast)
	if err != nil {
		return MACDSeries{}, err
	}
	emaSlow, err := CalculateEMASeries(closes, slow)
	if err != nil {
		return MACDSeries{}, err
	}

	line := make([]float64, len(closes))
	for i := range closes {
		line[i] = emaFast[i] - emaSlow[i]
	}
	signal, err := CalculateEMASeries(line, signalPeriod)
	if err != nil {
		return MACDSeries{}, err
	}
	hist := make([]float64, len(closes))
	for i := range closes {
		hist[i] = line[i] - signal[i]
	}
	return MACDSeries{Line: line, Signal: signal, Histogram: hist}, nil
}
