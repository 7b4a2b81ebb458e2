package analysis

import (
	"errors"

	"SignalScout/internal/calculator"
	"SignalScout/internal/model"
)

// OscillatorParams configures the momentum indicator set.
type OscillatorParams struct {
	MACDFast             int
	MACDSlow             int
	MACDSignal           int
	RSIPeriod            int
	SuperTrendPeriod     int
	SuperTrendMultiplier float64
	EMAFast              int
	EMASlow              int
}

// DefaultOscillatorParams is the standard 12/26/9 MACD, RSI(14),
// SuperTrend(10, 3.0) and 9/20 EMA pair.
func DefaultOscillatorParams() OscillatorParams {
	return OscillatorParams{
		MACDFast:             12,
		MACDSlow:             26,
		MACDSignal:           9,
		RSIPeriod:            14,
		SuperTrendPeriod:     10,
		SuperTrendMultiplier: 3.0,
		EMAFast:              9,
		EMASlow:              20,
	}
}

// Validate rejects period combinations the calculators cannot run.
func (p OscillatorParams) Validate() error {
	if p.MACDFast <= 0 || p.MACDSlow <= 0 || p.MACDSignal <= 0 || p.MACDFast >= p.MACDSlow {
		return &model.ConfigurationError{Field: "macd_periods", Reason: "need 0 < fast < slow and a positive signal period"}
	}
	if p.RSIPeriod <= 0 {
		return &model.ConfigurationError{Field: "rsi_period", Reason: "must be positive"}
	}
	if p.SuperTrendPeriod <= 0 || p.SuperTrendMultiplier <= 0 {
		return &model.ConfigurationError{Field: "supertrend", Reason: "period and multiplier must be positive"}
	}
	if p.EMAFast <= 0 || p.EMASlow <= 0 || p.EMAFast >= p.EMASlow {
		return &model.ConfigurationError{Field: "ema_periods", Reason: "need 0 < fast < slow"}
	}
	return nil
}

// ComputeOscillators fills the indicator snapshot for the most recent
// bar. An indicator whose lookback exceeds the series is flagged
// partial and skipped; everything with enough history still computes.
func ComputeOscillators(s model.Series, p OscillatorParams) (model.OscillatorResult, error) {
	closes := closeColumn(s)
	var res model.OscillatorResult

	macd, err := calculator.CalculateMACD(closes, p.MACDFast, p.MACDSlow, p.MACDSignal)
	switch {
	case isInsufficient(err):
		res.Partial.MACD = true
	case err != nil:
		return res, err
	default:
		n := len(closes)
		res.MACDLine = macd.Line[n-1]
		res.SignalLine = macd.Signal[n-1]
		res.Histogram = macd.Histogram[n-1]
		res.MACDTrend = trendFromValue(res.Histogram)
		res.MACDCross = histogramCross(macd.Histogram)
	}

	rsi, err := calculator.CalculateRSI(s.Points, p.RSIPeriod)
	switch {
	case isInsufficient(err):
		res.Partial.RSI = true
	case err != nil:
		return res, err
	default:
		res.RSI = rsi
	}

	st, err := calculator.CalculateSuperTrend(s.Points, p.SuperTrendPeriod, p.SuperTrendMultiplier)
	switch {
	case isInsufficient(err):
		res.Partial.SuperTrend = true
	case err != nil:
		return res, err
	default:
		res.SuperTrendValue = st.Value
		if st.Bullish {
			res.SuperTrend = model.TrendBullish
		} else {
			res.SuperTrend = model.TrendBearish
		}
	}

	if len(closes) < p.EMASlow {
		res.Partial.EMA = true
		return res, nil
	}
	fast, err := calculator.CalculateEMA(closes, p.EMAFast)
	if err != nil {
		return res, err
	}
	slow, err := calculator.CalculateEMA(closes, p.EMASlow)
	if err != nil {
		return res, err
	}
	res.EMAFast = fast
	res.EMASlow = slow
	res.EMATrend = trendFromValue(fast - slow)

	return res, nil
}

// histogramCross reports a sign flip across the last two bars.
func histogramCross(hist []float64) model.CrossoverState {
	if len(hist) < 2 {
		return model.CrossNone
	}
	prev, cur := hist[len(hist)-2], hist[len(hist)-1]
	switch {
	case cur > 0 && prev <= 0:
		return model.CrossBullish
	case cur < 0 && prev >= 0:
		return model.CrossBearish
	default:
		return model.CrossNone
	}
}

func trendFromValue(v float64) model.TrendState {
	switch {
	case v > 0:
		return model.TrendBullish
	case v < 0:
		return model.TrendBearish
	default:
		return model.TrendNeutral
	}
}

func isInsufficient(err error) bool {
	var hist *model.InsufficientHistoryError
	return errors.As(err, &hist)
}
