package strategy

import (
	"SignalScout/internal/model"
)

// minRiskFraction separates a usable band stop from a degenerate one.
const minRiskFraction = 0.001

// BuildRecommendation turns band, oscillator and timeframe state into
// a trade plan at the configured risk:reward. Three terminal outcomes:
// long, short, or none when the signals disagree or the series is too
// flat to place a stop.
func BuildRecommendation(bands model.BandResult, osc model.OscillatorResult, mtf *model.MTFResult, lastClose float64, p TradeParams) model.Recommendation {
	dir := pickDirection(osc, mtf)
	if dir == model.DirectionNone {
		return model.Recommendation{Direction: model.DirectionNone}
	}
	if len(bands.UpperBands) == 0 || len(bands.LowerBands) == 0 {
		return model.Recommendation{Direction: model.DirectionNone}
	}
	// a completely flat series offers no envelope to trade against
	if bands.UpperBands[0] == bands.Center || bands.LowerBands[0] == bands.Center {
		return model.Recommendation{Direction: model.DirectionNone}
	}

	entry := pickEntry(dir, bands, lastClose)
	if entry <= 0 {
		return model.Recommendation{Direction: model.DirectionNone}
	}

	var stop, risk float64
	if dir == model.DirectionLong {
		stop = bands.LowerBands[0]
		risk = entry - stop
		if risk < entry*minRiskFraction {
			stop = entry * (1 - p.StopFallbackPct/100)
			risk = entry - stop
		}
	} else {
		stop = bands.UpperBands[0]
		risk = stop - entry
		if risk < entry*minRiskFraction {
			stop = entry * (1 + p.StopFallbackPct/100)
			risk = stop - entry
		}
	}
	if risk <= 0 {
		return model.Recommendation{Direction: model.DirectionNone}
	}

	reward := risk * p.RiskReward
	var target float64
	if dir == model.DirectionLong {
		target = entry + reward
	} else {
		target = entry - reward
		if target <= 0 {
			return model.Recommendation{Direction: model.DirectionNone}
		}
	}

	return model.Recommendation{
		Direction:       dir,
		Strength:        classifyStrength(dir, bands, osc, mtf),
		Entry:           entry,
		Stop:            stop,
		Target:          target,
		RiskAmount:      risk,
		RewardAmount:    reward,
		RiskRewardRatio: reward / risk,
	}
}

// pickDirection requires a directional MACD histogram backed by the
// SuperTrend line or the EMA pair. A unanimous higher-timeframe vote
// against the signal vetoes it.
func pickDirection(osc model.OscillatorResult, mtf *model.MTFResult) model.Direction {
	macdBull := !osc.Partial.MACD && osc.MACDTrend == model.TrendBullish
	macdBear := !osc.Partial.MACD && osc.MACDTrend == model.TrendBearish
	stBull := !osc.Partial.SuperTrend && osc.SuperTrend == model.TrendBullish
	stBear := !osc.Partial.SuperTrend && osc.SuperTrend == model.TrendBearish
	emaBull := !osc.Partial.EMA && osc.EMATrend == model.TrendBullish
	emaBear := !osc.Partial.EMA && osc.EMATrend == model.TrendBearish

	switch {
	case macdBull && (stBull || emaBull):
		if mtf != nil && mtf.Bias == model.MTFUnanimousBearish {
			return model.DirectionNone
		}
		return model.DirectionLong
	case macdBear && (stBear || emaBear):
		if mtf != nil && mtf.Bias == model.MTFUnanimousBullish {
			return model.DirectionNone
		}
		return model.DirectionShort
	default:
		return model.DirectionNone
	}
}

// pickEntry waits for a pullback to the center line when price is
// already extended past the inner band in the signal direction;
// otherwise it takes the current price.
func pickEntry(dir model.Direction, bands model.BandResult, lastClose float64) float64 {
	if dir == model.DirectionLong {
		if bands.Zone == model.ZoneUpperBand || bands.Zone == model.ZoneAboveBands {
			return bands.Center
		}
		return lastClose
	}
	if bands.Zone == model.ZoneLowerBand || bands.Zone == model.ZoneBelowBands {
		return bands.Center
	}
	return lastClose
}

// classifyStrength counts independent confirmations: a fresh MACD
// crossover, an RSI that is not fighting the trade, unanimous
// timeframes, and a band breakout.
func classifyStrength(dir model.Direction, bands model.BandResult, osc model.OscillatorResult, mtf *model.MTFResult) model.Strength {
	confirmations := 0

	if dir == model.DirectionLong && osc.MACDCross == model.CrossBullish {
		confirmations++
	}
	if dir == model.DirectionShort && osc.MACDCross == model.CrossBearish {
		confirmations++
	}

	if !osc.Partial.RSI {
		if dir == model.DirectionLong && osc.RSI <= 70 {
			confirmations++
		}
		if dir == model.DirectionShort && osc.RSI >= 30 {
			confirmations++
		}
	}

	if mtf != nil {
		if dir == model.DirectionLong && mtf.Bias == model.MTFUnanimousBullish {
			confirmations++
		}
		if dir == model.DirectionShort && mtf.Bias == model.MTFUnanimousBearish {
			confirmations++
		}
	}

	if dir == model.DirectionLong && bands.Zone == model.ZoneAboveBands {
		confirmations++
	}
	if dir == model.DirectionShort && bands.Zone == model.ZoneBelowBands {
		confirmations++
	}

	switch {
	case confirmations >= 3:
		return model.StrengthStrong
	case confirmations == 2:
		return model.StrengthModerate
	default:
		return model.StrengthWeak
	}
}
