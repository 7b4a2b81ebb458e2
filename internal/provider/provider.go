package provider

import (
	"context"
	"fmt"
	"time"

	"SignalScout/internal/config"
	"SignalScout/internal/model"
	"SignalScout/internal/platform/httpx"
)

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	FetchBars(ctx context.Context, symbol string, interval model.Interval, lookback int) (model.Series, error)
	FetchQuote(ctx context.Context, symbol string) (*model.QuoteStats, error)
	Name() string
}

// New builds the fetcher selected by the data_source section. Network
// providers are wrapped with the file cache unless caching is disabled.
func New(cfg *config.Config) (Fetcher, error) {
	var inner Fetcher
	switch cfg.DataSource.Provider {
	case "yahoo":
		inner = NewYahooFetcher()
	case "rest":
		client, err := httpx.NewClient(httpx.ClientOptions{
			Timeout:        time.Duration(cfg.DataSource.TimeoutSec) * time.Second,
			RequestsPerSec: cfg.DataSource.RequestsPerSec,
			MaxRetries:     cfg.DataSource.MaxRetries,
			ProxyURL:       cfg.Proxy,
		})
		if err != nil {
			return nil, err
		}
		inner = NewRESTFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, client)
	case "mock":
		return &MockFetcher{}, nil
	default:
		return nil, fmt.Errorf("unknown data source provider %q", cfg.DataSource.Provider)
	}

	if cfg.Cache.Disabled {
		return inner, nil
	}
	return NewCachedFetcher(inner, cfg), nil
}
