package screener

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"SignalScout/internal/config"
)

// Source yields the candidate symbols for one scan pass.
type Source interface {
	Symbols(ctx context.Context) ([]string, error)
	Name() string
}

// NewSource picks the candidate source from config: a CSV file when one
// is configured, otherwise the inline watchlist.
func NewSource(cfg *config.Config) (Source, error) {
	if cfg.Screener.CSVPath != "" {
		return &CSVSource{Path: cfg.Screener.CSVPath}, nil
	}
	if len(cfg.Screener.Watchlist) > 0 {
		return &WatchlistSource{Tickers: cfg.Screener.Watchlist}, nil
	}
	return nil, fmt.Errorf("no candidate source configured: set screener.watchlist or screener.csv_path")
}

// WatchlistSource serves a fixed ticker list.
type WatchlistSource struct {
	Tickers []string
}

func (s *WatchlistSource) Name() string { return "watchlist" }

func (s *WatchlistSource) Symbols(context.Context) ([]string, error) {
	return normalizeSymbols(s.Tickers), nil
}

// CSVSource reads tickers from the first column of a CSV file. A header
// row is recognized and skipped; lines starting with # are comments.
type CSVSource struct {
	Path string
}

func (s *CSVSource) Name() string { return "csv:" + s.Path }

func (s *CSVSource) Symbols(context.Context) ([]string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open candidate file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comment = '#'
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse candidate file: %w", err)
	}

	var raw []string
	for i, rec := range records {
		if len(rec) == 0 || rec[0] == "" {
			continue
		}
		if i == 0 && isHeaderField(rec[0]) {
			continue
		}
		raw = append(raw, rec[0])
	}
	return normalizeSymbols(raw), nil
}

func isHeaderField(field string) bool {
	switch strings.ToLower(strings.TrimSpace(field)) {
	case "symbol", "ticker", "tickers", "name":
		return true
	}
	return false
}

// normalizeSymbols uppercases, trims and dedupes while keeping order.
func normalizeSymbols(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		sym := strings.ToUpper(strings.TrimSpace(s))
		if sym == "" || seen[sym] {
			continue
		}
		seen[sym] = true
		out = append(out, sym)
	}
	return out
}
