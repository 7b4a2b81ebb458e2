package provider

import (
	"context"
	"testing"

	"SignalScout/internal/config"
	"SignalScout/internal/model"
)

func TestNew_ProviderSelection(t *testing.T) {
	cfg := &config.Config{}
	cfg.DataSource.Provider = "mock"

	f, err := New(cfg)
	if err != nil {
		t.Fatalf("New(mock): %v", err)
	}
	if _, ok := f.(*MockFetcher); !ok {
		t.Fatalf("got %T, want *MockFetcher", f)
	}

	cfg.DataSource.Provider = "yahoo"
	cfg.Cache.Dir = t.TempDir()
	f, err = New(cfg)
	if err != nil {
		t.Fatalf("New(yahoo): %v", err)
	}
	if _, ok := f.(*CachedFetcher); !ok {
		t.Fatalf("got %T, want cache-wrapped fetcher", f)
	}
	if f.Name() != "yahoo" {
		t.Fatalf("got name %q, want yahoo", f.Name())
	}

	cfg.Cache.Disabled = true
	f, err = New(cfg)
	if err != nil {
		t.Fatalf("New(yahoo, cache off): %v", err)
	}
	if _, ok := f.(*YahooFetcher); !ok {
		t.Fatalf("got %T, want bare *YahooFetcher", f)
	}

	cfg.DataSource.Provider = "bloomberg"
	if _, err := New(cfg); err == nil {
		t.Fatal("expected an error for an unknown provider")
	}
}

func TestMockFetcher_IsDeterministic(t *testing.T) {
	m := &MockFetcher{}
	ctx := context.Background()

	a, err := m.FetchBars(ctx, "AAPL", model.Interval1Day, 40)
	if err != nil {
		t.Fatalf("FetchBars: %v", err)
	}
	b, _ := m.FetchBars(ctx, "AAPL", model.Interval1Day, 40)

	if a.Len() != 40 || b.Len() != 40 {
		t.Fatalf("got %d and %d bars, want 40", a.Len(), b.Len())
	}
	if a.Points[0].Close != b.Points[0].Close || a.Last().Close != b.Last().Close {
		t.Fatal("repeated calls produced different series")
	}
	if !a.Points[0].Time.Before(a.Last().Time) {
		t.Fatal("bars are not chronological")
	}

	other, _ := m.FetchBars(ctx, "TSLA", model.Interval1Day, 40)
	if other.Points[0].Close == a.Points[0].Close {
		t.Fatal("different symbols should map to different price bases")
	}
}

func TestMockFetcher_HonorsOverrides(t *testing.T) {
	fixed := model.Series{
		Symbol:   "AAPL",
		Interval: model.Interval1Day,
		Points:   []model.PricePoint{{Close: 42}},
	}
	m := &MockFetcher{
		Bars:  map[model.Interval]model.Series{model.Interval1Day: fixed},
		Stats: &model.QuoteStats{Symbol: "AAPL", Price: 42},
	}

	s, err := m.FetchBars(context.Background(), "AAPL", model.Interval1Day, 40)
	if err != nil {
		t.Fatalf("FetchBars: %v", err)
	}
	if s.Len() != 1 || s.Points[0].Close != 42 {
		t.Fatalf("override ignored: %+v", s.Points)
	}

	q, err := m.FetchQuote(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("FetchQuote: %v", err)
	}
	if q.Price != 42 {
		t.Fatalf("got quote price %v, want 42", q.Price)
	}
}
