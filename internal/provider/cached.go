package provider

import (
	"context"
	"time"

	"SignalScout/internal/cache"
	"SignalScout/internal/config"
	"SignalScout/internal/model"
)

// CachedFetcher wraps a Fetcher with a local JSON file cache so repeated
// lookups inside a session skip the network. Bars and quotes age out on
// separate TTLs.
type CachedFetcher struct {
	inner  Fetcher
	bars   *cache.Manager
	quotes *cache.Manager
}

// NewCachedFetcher wraps inner with the cache settings from cfg.
func NewCachedFetcher(inner Fetcher, cfg *config.Config) *CachedFetcher {
	enabled := !cfg.Cache.Disabled
	return &CachedFetcher{
		inner:  inner,
		bars:   cache.New(cfg.Cache.Dir, time.Duration(cfg.Cache.BarsTTLMin)*time.Minute, enabled),
		quotes: cache.New(cfg.Cache.Dir, time.Duration(cfg.Cache.QuotesTTLMin)*time.Minute, enabled),
	}
}

type barsKey struct {
	Symbol   string         `json:"symbol"`
	Interval model.Interval `json:"interval"`
	Lookback int            `json:"lookback"`
}

func (f *CachedFetcher) FetchBars(ctx context.Context, symbol string, interval model.Interval, lookback int) (model.Series, error) {
	key := barsKey{Symbol: symbol, Interval: interval, Lookback: lookback}

	var hit model.Series
	if f.bars.Get(f.inner.Name(), "bars", key, &hit) && hit.Len() > 0 {
		return hit, nil
	}

	series, err := f.inner.FetchBars(ctx, symbol, interval, lookback)
	if err != nil {
		return model.Series{}, err
	}
	f.bars.Set(f.inner.Name(), "bars", key, series)
	return series, nil
}

func (f *CachedFetcher) FetchQuote(ctx context.Context, symbol string) (*model.QuoteStats, error) {
	var hit model.QuoteStats
	if f.quotes.Get(f.inner.Name(), "quote", symbol, &hit) && hit.Symbol != "" {
		return &hit, nil
	}

	stats, err := f.inner.FetchQuote(ctx, symbol)
	if err != nil {
		return nil, err
	}
	f.quotes.Set(f.inner.Name(), "quote", symbol, stats)
	return stats, nil
}

// Name reports the wrapped fetcher so logs show the real source.
func (f *CachedFetcher) Name() string { return f.inner.Name() }
