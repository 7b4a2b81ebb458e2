package analysis

import (
	"SignalScout/internal/calculator"
	"SignalScout/internal/model"
)

// AggregateTimeframes runs the reduced EMA trend check on each
// confirmation series and tallies agreement. Returns nil when the
// caller supplied no confirmation series. A series too short for the
// EMA counts as neutral, which blocks unanimity without failing the
// whole check.
func AggregateTimeframes(series []model.Series, emaPeriod int) *model.MTFResult {
	if len(series) == 0 {
		return nil
	}

	trends := make([]model.TimeframeTrend, 0, len(series))
	bullish, bearish := 0, 0
	for _, s := range series {
		tr := timeframeTrend(s, emaPeriod)
		trends = append(trends, model.TimeframeTrend{Interval: s.Interval, Trend: tr})
		switch tr {
		case model.TrendBullish:
			bullish++
		case model.TrendBearish:
			bearish++
		}
	}

	bias := model.MTFMixed
	switch {
	case bullish == len(series):
		bias = model.MTFUnanimousBullish
	case bearish == len(series):
		bias = model.MTFUnanimousBearish
	}

	return &model.MTFResult{Trends: trends, BullishCount: bullish, Bias: bias}
}

// timeframeTrend compares the last close to its EMA.
func timeframeTrend(s model.Series, period int) model.TrendState {
	if s.Len() < period {
		return model.TrendNeutral
	}
	ema, err := calculator.CalculateEMA(closeColumn(s), period)
	if err != nil {
		return model.TrendNeutral
	}
	return trendFromValue(s.Last().Close - ema)
}
