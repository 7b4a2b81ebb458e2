package strategy

import (
	"fmt"

	"SignalScout/internal/model"
)

// ScoreSignal combines band position, oscillator state and timeframe
// agreement into the composite confidence score. Indicators flagged
// partial contribute zero points with the reason recorded, never a
// substituted default.
func ScoreSignal(bands model.BandResult, osc model.OscillatorResult, mtf *model.MTFResult, lastClose float64) model.ScoreBreakdown {
	factors := []model.Factor{
		scoreBandPosition(bands, lastClose),
		scoreMACDTrend(osc),
		scoreRSIBand(osc),
		scoreSuperTrend(osc),
		scoreEMATrend(osc),
		scoreTimeframes(mtf),
	}
	return model.NewScoreBreakdown(SignalGradeScale, factors)
}

// scoreBandPosition awards 20 above the center line, 10 at it, 0 below.
func scoreBandPosition(bands model.BandResult, lastClose float64) model.Factor {
	var points float64
	var detail string
	switch {
	case lastClose > bands.Center:
		points = 20
		detail = fmt.Sprintf("close %.2f above center %.2f", lastClose, bands.Center)
	case lastClose < bands.Center:
		points = 0
		detail = fmt.Sprintf("close %.2f below center %.2f", lastClose, bands.Center)
	default:
		points = 10
		detail = "close at center"
	}
	return model.Factor{Name: "band_position", Points: points, Detail: detail}
}

// scoreMACDTrend awards 25 for a positive histogram, 12 for flat, 0 below.
func scoreMACDTrend(osc model.OscillatorResult) model.Factor {
	if osc.Partial.MACD {
		return model.Factor{Name: "macd_trend", Points: 0, Detail: "insufficient history"}
	}
	var points float64
	switch {
	case osc.Histogram > 0:
		points = 25
	case osc.Histogram == 0:
		points = 12
	default:
		points = 0
	}
	return model.Factor{
		Name:   "macd_trend",
		Points: points,
		Detail: fmt.Sprintf("histogram %+.4f", osc.Histogram),
	}
}

// scoreRSIBand favors the 40-60 entry zone, fading toward both extremes.
func scoreRSIBand(osc model.OscillatorResult) model.Factor {
	if osc.Partial.RSI {
		return model.Factor{Name: "rsi", Points: 0, Detail: "insufficient history"}
	}
	r := osc.RSI
	var points float64
	switch {
	case r >= 40 && r <= 60:
		points = 20
	case r >= 30 && r < 40:
		points = 15
	case r > 60 && r <= 70:
		points = 15
	case r < 30:
		points = 10
	default: // overbought
		points = 0
	}
	return model.Factor{Name: "rsi", Points: points, Detail: fmt.Sprintf("RSI %.1f", r)}
}

// scoreSuperTrend awards 20 when the stop line sits below price.
func scoreSuperTrend(osc model.OscillatorResult) model.Factor {
	if osc.Partial.SuperTrend {
		return model.Factor{Name: "supertrend", Points: 0, Detail: "insufficient history"}
	}
	if osc.SuperTrend == model.TrendBullish {
		return model.Factor{Name: "supertrend", Points: 20, Detail: "bullish"}
	}
	return model.Factor{Name: "supertrend", Points: 0, Detail: "bearish"}
}

// scoreEMATrend awards 15 when the fast EMA leads, 7 when they touch.
func scoreEMATrend(osc model.OscillatorResult) model.Factor {
	if osc.Partial.EMA {
		return model.Factor{Name: "ema_trend", Points: 0, Detail: "insufficient history"}
	}
	var points float64
	switch osc.EMATrend {
	case model.TrendBullish:
		points = 15
	case model.TrendNeutral:
		points = 7
	default:
		points = 0
	}
	return model.Factor{
		Name:   "ema_trend",
		Points: points,
		Detail: fmt.Sprintf("fast %.2f vs slow %.2f", osc.EMAFast, osc.EMASlow),
	}
}

// scoreTimeframes awards a capped bonus only for unanimous bullish
// agreement across the confirmation timeframes.
func scoreTimeframes(mtf *model.MTFResult) model.Factor {
	if mtf == nil {
		return model.Factor{Name: "timeframes", Points: 0, Detail: "not checked"}
	}
	if mtf.Bias == model.MTFUnanimousBullish {
		return model.Factor{
			Name:   "timeframes",
			Points: 10,
			Detail: fmt.Sprintf("%d of %d bullish", mtf.BullishCount, len(mtf.Trends)),
		}
	}
	return model.Factor{
		Name:   "timeframes",
		Points: 0,
		Detail: fmt.Sprintf("%d of %d bullish", mtf.BullishCount, len(mtf.Trends)),
	}
}
