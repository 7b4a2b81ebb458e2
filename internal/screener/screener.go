package screener

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"SignalScout/internal/analysis"
	"SignalScout/internal/cache"
	"SignalScout/internal/config"
	"SignalScout/internal/model"
	"SignalScout/internal/provider"
	"SignalScout/internal/strategy"
)

// DefaultSqueezeMin is the qualifying squeeze score when no minimum is
// given. Momentum scans default to the configured screener minimum.
const DefaultSqueezeMin = 60.0

// DefaultLimit caps the ranked candidate list when no limit is given.
const DefaultLimit = 10

// ScanOptions control one scan pass.
type ScanOptions struct {
	Kind     model.ScanKind
	MinScore float64
	Limit    int
}

// Screener runs scoring passes over the candidate universe with a
// bounded worker pool. One flaky symbol never sinks a scan; it is
// logged, counted and skipped.
type Screener struct {
	fetcher  provider.Fetcher
	source   Source
	momentum strategy.MomentumParams
	squeeze  strategy.SqueezeParams
	pressure strategy.PressureParams
	lookback int
	workers  int
	results  *cache.Manager
	logger   zerolog.Logger
}

// New wires a screener from the fetcher, the candidate source and the
// validated analysis parameters.
func New(fetcher provider.Fetcher, source Source, params analysis.Params, cfg *config.Config) *Screener {
	return &Screener{
		fetcher:  fetcher,
		source:   source,
		momentum: params.Momentum,
		squeeze:  params.Squeeze,
		pressure: params.Pressure,
		lookback: cfg.Analysis.Lookback,
		workers:  cfg.Screener.Workers,
		results: cache.New(cfg.Cache.Dir,
			time.Duration(cfg.Cache.CandidatesTTLMin)*time.Minute, !cfg.Cache.Disabled),
		logger: log.With().Str("component", "screener").Logger(),
	}
}

type scanKey struct {
	Kind     model.ScanKind `json:"kind"`
	Symbols  []string       `json:"symbols"`
	MinScore float64        `json:"min_score"`
	Limit    int            `json:"limit"`
}

type scanSlot struct {
	cand    *model.Candidate
	skipped bool
}

// Scan runs one pass over the source universe and returns the ranked
// survivors, best first.
func (s *Screener) Scan(ctx context.Context, opts ScanOptions) (*model.ScanResult, error) {
	if opts.Kind == "" {
		opts.Kind = model.ScanMomentum
	}
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}

	symbols, err := s.source.Symbols(ctx)
	if err != nil {
		return nil, fmt.Errorf("load candidates from %s: %w", s.source.Name(), err)
	}
	if len(symbols) == 0 {
		return nil, fmt.Errorf("candidate source %s is empty", s.source.Name())
	}

	key := scanKey{Kind: opts.Kind, Symbols: symbols, MinScore: opts.MinScore, Limit: opts.Limit}
	var hit model.ScanResult
	if s.results.Get("screener", string(opts.Kind), key, &hit) {
		return &hit, nil
	}

	s.logger.Info().Str("kind", string(opts.Kind)).Int("candidates", len(symbols)).
		Int("workers", s.workers).Msg("scan started")

	// Each goroutine owns one slot, so no result locking is needed.
	slots := make([]scanSlot, len(symbols))
	sem := make(chan struct{}, s.workers)
	var wg sync.WaitGroup

	for i, symbol := range symbols {
		wg.Add(1)
		go func(idx int, sym string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			if ctx.Err() != nil {
				slots[idx].skipped = true
				return
			}
			switch opts.Kind {
			case model.ScanSqueeze:
				slots[idx].cand, slots[idx].skipped = s.scanSqueeze(ctx, sym, opts.MinScore)
			default:
				slots[idx].cand, slots[idx].skipped = s.scanMomentum(ctx, sym, opts.MinScore)
			}
		}(i, symbol)
	}
	wg.Wait()

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	result := &model.ScanResult{Kind: opts.Kind, Scanned: len(symbols)}
	for _, slot := range slots {
		if slot.skipped {
			result.Skipped++
		}
		if slot.cand != nil {
			result.Candidates = append(result.Candidates, *slot.cand)
		}
	}

	rankCandidates(result.Candidates)
	if len(result.Candidates) > opts.Limit {
		result.Candidates = result.Candidates[:opts.Limit]
	}

	s.logger.Info().Str("kind", string(opts.Kind)).Int("qualified", len(result.Candidates)).
		Int("skipped", result.Skipped).Msg("scan finished")

	s.results.Set("screener", string(opts.Kind), key, result)
	return result, nil
}

// rankCandidates orders by score, breaking ties on the day's move.
func rankCandidates(cands []model.Candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Score.Total != cands[j].Score.Total {
			return cands[i].Score.Total > cands[j].Score.Total
		}
		return cands[i].ChangePct > cands[j].ChangePct
	})
}

func (s *Screener) scanMomentum(ctx context.Context, symbol string, minScore float64) (*model.Candidate, bool) {
	stats, err := s.fetcher.FetchQuote(ctx, symbol)
	if err != nil {
		s.logger.Warn().Err(err).Str("symbol", symbol).Msg("quote unavailable, skipping")
		return nil, true
	}
	if stats.Price <= 0 {
		s.logger.Warn().Str("symbol", symbol).Msg("quote has no price, skipping")
		return nil, true
	}

	score := strategy.ScoreMomentum(*stats, s.momentum)
	if !score.Qualified || score.Breakdown.Total < minScore {
		return nil, false
	}

	return &model.Candidate{
		Symbol:    symbol,
		Price:     stats.Price,
		ChangePct: stats.ChangePct,
		RelVolume: stats.RelVolume,
		FloatM:    stats.FloatShares / 1e6,
		Score:     score.Breakdown,
		Pillars:   score.PillarsMet,
	}, false
}

func (s *Screener) scanSqueeze(ctx context.Context, symbol string, minScore float64) (*model.Candidate, bool) {
	stats, err := s.fetcher.FetchQuote(ctx, symbol)
	if err != nil {
		s.logger.Warn().Err(err).Str("symbol", symbol).Msg("quote unavailable, skipping")
		return nil, true
	}
	if stats.FloatShares <= 0 || stats.ShortPctFloat <= 0 {
		s.logger.Warn().Str("symbol", symbol).
			Msg("float or short interest unavailable, skipping squeeze checks")
		return nil, true
	}
	if reason := rejectPressure(*stats, s.pressure); reason != "" {
		s.logger.Debug().Str("symbol", symbol).Str("reason", reason).Msg("prefilter rejected")
		return nil, true
	}

	series, err := s.fetcher.FetchBars(ctx, symbol, model.Interval1Day, s.lookback)
	if err != nil {
		s.logger.Warn().Err(err).Str("symbol", symbol).Msg("daily bars unavailable, skipping")
		return nil, true
	}

	squeeze, err := strategy.ScoreSqueeze(series, s.squeeze)
	if err != nil {
		s.logger.Warn().Err(err).Str("symbol", symbol).Msg("squeeze score failed, skipping")
		return nil, true
	}
	if minScore <= 0 {
		minScore = DefaultSqueezeMin
	}
	if squeeze.Total < minScore {
		return nil, false
	}

	report := strategy.ScorePressure(*stats, series, s.pressure)
	cand := &model.Candidate{
		Symbol:    symbol,
		Price:     stats.Price,
		ChangePct: stats.ChangePct,
		RelVolume: stats.RelVolume,
		FloatM:    stats.FloatShares / 1e6,
		Score:     squeeze,
		Quality:   report.Quality,
	}
	if report.ReverseSplitSuspect {
		cand.Warnings = append(cand.Warnings, "reverse split pattern in recent bars")
	}
	return cand, false
}
