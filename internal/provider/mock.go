package provider

import (
	"context"
	"hash/fnv"
	"time"

	"SignalScout/internal/model"
)

// MockFetcher returns controllable fixed data for development and
// testing. Unset fields fall back to synthetic bars derived from the
// symbol, so repeated runs see identical series.
type MockFetcher struct {
	Price float64
	Bars  map[model.Interval]model.Series
	Stats *model.QuoteStats
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchBars(_ context.Context, symbol string, interval model.Interval, lookback int) (model.Series, error) {
	if s, ok := m.Bars[interval]; ok {
		return s, nil
	}
	base := m.Price
	if base == 0 {
		base = syntheticBase(symbol)
	}
	return generateBars(symbol, interval, base, lookback), nil
}

func (m *MockFetcher) FetchQuote(_ context.Context, symbol string) (*model.QuoteStats, error) {
	if m.Stats != nil {
		return m.Stats, nil
	}
	base := m.Price
	if base == 0 {
		base = syntheticBase(symbol)
	}
	return &model.QuoteStats{
		Symbol:        symbol,
		Price:         base,
		PrevClose:     base * 0.97,
		ChangePct:     3.0,
		Volume:        2_400_000,
		AvgVolume:     800_000,
		RelVolume:     3.0,
		FloatShares:   12_000_000,
		ShortPctFloat: 18,
		DaysToCover:   2.5,
	}, nil
}

// syntheticBase maps a symbol to a stable price in [5, 150).
func syntheticBase(symbol string) float64 {
	h := fnv.New32a()
	h.Write([]byte(symbol))
	return 5 + float64(h.Sum32()%1450)/10
}

func generateBars(symbol string, interval model.Interval, base float64, count int) model.Series {
	step := intervalStep(interval)
	start := time.Date(2025, 1, 2, 14, 30, 0, 0, time.UTC)

	pts := make([]model.PricePoint, count)
	for i := 0; i < count; i++ {
		p := base * (1 + float64(i-count/2)*0.001)
		pts[i] = model.PricePoint{
			Time:   start.Add(time.Duration(i) * step),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1_000_000,
		}
	}
	return model.Series{Symbol: symbol, Interval: interval, Points: pts}
}

func intervalStep(interval model.Interval) time.Duration {
	switch interval {
	case model.Interval1Min:
		return time.Minute
	case model.Interval5Min:
		return 5 * time.Minute
	case model.Interval15Min:
		return 15 * time.Minute
	case model.Interval30Min:
		return 30 * time.Minute
	case model.Interval1Hour:
		return time.Hour
	case model.Interval4Hour:
		return 4 * time.Hour
	case model.Interval1Week:
		return 7 * 24 * time.Hour
	case model.Interval1Month:
		return 30 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}
