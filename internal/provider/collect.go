package provider

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"SignalScout/internal/model"
)

// Collector assembles everything one analysis run needs: the primary
// series, the confirmation timeframes and the screening stats.
type Collector struct {
	fetcher    Fetcher
	interval   model.Interval
	lookback   int
	timeframes []model.Interval
	logger     zerolog.Logger
}

// NewCollector creates a Collector on the given fetcher.
func NewCollector(fetcher Fetcher, interval model.Interval, lookback int, timeframes []model.Interval) *Collector {
	return &Collector{
		fetcher:    fetcher,
		interval:   interval,
		lookback:   lookback,
		timeframes: timeframes,
		logger:     log.With().Str("component", "collector").Logger(),
	}
}

// Collect fetches the primary series, the confirmation series and the
// quote stats for one symbol. The primary series is required; a failed
// confirmation timeframe or quote is logged and skipped so one flaky
// endpoint does not sink the whole analysis.
func (c *Collector) Collect(ctx context.Context, symbol string) (model.AnalysisInput, error) {
	primary, err := c.fetcher.FetchBars(ctx, symbol, c.interval, c.lookback)
	if err != nil {
		return model.AnalysisInput{}, fmt.Errorf("fetch %s %s bars: %w", symbol, c.interval, err)
	}

	input := model.AnalysisInput{Primary: primary}

	for _, tf := range c.timeframes {
		if tf == c.interval {
			input.Timeframes = append(input.Timeframes, primary)
			continue
		}
		s, err := c.fetcher.FetchBars(ctx, symbol, tf, c.lookback)
		if err != nil {
			if ctx.Err() != nil {
				return model.AnalysisInput{}, ctx.Err()
			}
			c.logger.Warn().Err(err).Str("symbol", symbol).Str("interval", string(tf)).
				Msg("confirmation timeframe unavailable, skipping")
			continue
		}
		input.Timeframes = append(input.Timeframes, s)
	}

	stats, err := c.fetcher.FetchQuote(ctx, symbol)
	if err != nil {
		if ctx.Err() != nil {
			return model.AnalysisInput{}, ctx.Err()
		}
		c.logger.Warn().Err(err).Str("symbol", symbol).
			Msg("quote stats unavailable, momentum and pressure scores will be skipped")
	} else {
		input.Stats = stats
	}

	return input, nil
}
