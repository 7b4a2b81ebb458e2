package calculator

import (
	"SignalScout/internal/model"
)

// SuperTrendState is the fold state carried bar to bar. Value is the
// active stop line; Bullish is the direction it protects.
type SuperTrendState struct {
	Value     float64
	UpperBand float64
	LowerBand float64
	Bullish   bool
}

// SuperTrendStep advances the fold by one bar. A close above the
// previous stop line puts the line at the lower band (bullish);
// otherwise it sits at the upper band (bearish).
func SuperTrendStep(prev SuperTrendState, upperBand, lowerBand, close float64) SuperTrendState {
	next := SuperTrendState{UpperBand: upperBand, LowerBand: lowerBand}
	if close > prev.Value {
		next.Value = lowerBand
		next.Bullish = true
	} else {
		next.Value = upperBand
		next.Bullish = false
	}
	return next
}

// CalculateSuperTrend folds the series left to right and returns the
// state at the most recent bar. Bands are (high+low)/2 +/- multiplier*ATR;
// the fold seeds bullish at the lower band on the first bar with a
// defined ATR (index period-1), so exactly `period` bars suffice.
func CalculateSuperTrend(bars []model.PricePoint, period int, multiplier float64) (SuperTrendState, error) {
	if multiplier <= 0 {
		return SuperTrendState{}, &model.ConfigurationError{Field: "supertrend_multiplier", Reason: "must be positive"}
	}
	atr, err := CalculateATRSeries(bars, period)
	if err != nil {
		return SuperTrendState{}, err
	}

	seed := period - 1
	hl := (bars[seed].High + bars[seed].Low) / 2
	state := SuperTrendState{
		Value:     hl - multiplier*atr[seed],
		UpperBand: hl + multiplier*atr[seed],
		LowerBand: hl - multiplier*atr[seed],
		Bullish:   true,
	}
	for i := seed + 1; i < len(bars); i++ {
		hl = (bars[i].High + bars[i].Low) / 2
		upper := hl + multiplier*atr[i]
		lower := hl - multiplier*atr[i]
		state = SuperTrendStep(state, upper, lower, bars[i].Close)
	}
	return state, nil
}
