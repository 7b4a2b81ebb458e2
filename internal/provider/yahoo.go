package provider

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/quote"

	"SignalScout/internal/model"
)

// YahooFetcher implements Fetcher on the Yahoo Finance public API.
type YahooFetcher struct {
	SymbolMap map[string]string // maps internal symbol to Yahoo ticker
}

// NewYahooFetcher creates a new Yahoo Finance fetcher.
func NewYahooFetcher() *YahooFetcher {
	return &YahooFetcher{
		SymbolMap: map[string]string{
			"SPX500": "^GSPC",
			"SPX":    "^GSPC",
			"SP500":  "^GSPC",
		},
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

func (f *YahooFetcher) yahooSymbol(symbol string) string {
	if mapped, ok := f.SymbolMap[symbol]; ok {
		return mapped
	}
	return symbol
}

// yahooIntervals lists the bar durations Yahoo serves natively. Four-hour
// and weekly bars are not among them and get resampled from 1h and 1d.
var yahooIntervals = map[model.Interval]datetime.Interval{
	model.Interval1Min:   datetime.OneMin,
	model.Interval5Min:   datetime.FiveMins,
	model.Interval15Min:  datetime.FifteenMins,
	model.Interval30Min:  datetime.ThirtyMins,
	model.Interval1Hour:  datetime.OneHour,
	model.Interval1Day:   datetime.OneDay,
	model.Interval1Month: datetime.OneMonth,
}

// intervalSpans sizes the calendar window needed per bar, padded for
// weekends, holidays and the overnight close.
var intervalSpans = map[model.Interval]time.Duration{
	model.Interval1Min:   4 * time.Minute,
	model.Interval5Min:   20 * time.Minute,
	model.Interval15Min:  time.Hour,
	model.Interval30Min:  2 * time.Hour,
	model.Interval1Hour:  4 * time.Hour,
	model.Interval1Day:   36 * time.Hour,
	model.Interval1Month: 32 * 24 * time.Hour,
}

func (f *YahooFetcher) FetchBars(ctx context.Context, symbol string, interval model.Interval, lookback int) (model.Series, error) {
	if err := ctx.Err(); err != nil {
		return model.Series{}, err
	}

	switch interval {
	case model.Interval4Hour:
		hourly, err := f.FetchBars(ctx, symbol, model.Interval1Hour, lookback*4)
		if err != nil {
			return model.Series{}, err
		}
		return trim(ResampleHours(hourly, 4), lookback), nil
	case model.Interval1Week:
		daily, err := f.FetchBars(ctx, symbol, model.Interval1Day, lookback*7)
		if err != nil {
			return model.Series{}, err
		}
		return trim(ResampleWeekly(daily), lookback), nil
	}

	native, ok := yahooIntervals[interval]
	if !ok {
		return model.Series{}, fmt.Errorf("yahoo: unsupported interval %s", interval)
	}

	end := time.Now()
	start := end.Add(-time.Duration(lookback) * intervalSpans[interval])
	params := &chart.Params{
		Symbol:   f.yahooSymbol(symbol),
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: native,
	}

	pts := make([]model.PricePoint, 0, lookback)
	iter := chart.Get(params)
	for iter.Next() {
		b := iter.Bar()
		p := model.PricePoint{
			Time:   time.Unix(int64(b.Timestamp), 0),
			Open:   b.Open.InexactFloat64(),
			High:   b.High.InexactFloat64(),
			Low:    b.Low.InexactFloat64(),
			Close:  b.Close.InexactFloat64(),
			Volume: float64(b.Volume),
		}
		if p.Open == 0 && p.High == 0 && p.Low == 0 && p.Close == 0 {
			continue // null bars on holidays
		}
		pts = append(pts, p)
	}
	if err := iter.Err(); err != nil {
		return model.Series{}, fmt.Errorf("yahoo chart %s: %w", symbol, err)
	}
	if len(pts) == 0 {
		return model.Series{}, fmt.Errorf("yahoo: no data for %s", symbol)
	}

	sort.Slice(pts, func(i, j int) bool { return pts[i].Time.Before(pts[j].Time) })
	return trim(model.Series{Symbol: symbol, Interval: interval, Points: pts}, lookback), nil
}

// FetchQuote maps the Yahoo quote to screening stats. Yahoo does not
// publish float or short interest, so those stay zero (unreported).
func (f *YahooFetcher) FetchQuote(ctx context.Context, symbol string) (*model.QuoteStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	q, err := quote.Get(f.yahooSymbol(symbol))
	if err != nil {
		return nil, fmt.Errorf("yahoo quote %s: %w", symbol, err)
	}

	stats := &model.QuoteStats{
		Symbol:    symbol,
		Price:     q.RegularMarketPrice,
		PrevClose: q.RegularMarketPreviousClose,
		ChangePct: q.RegularMarketChangePercent,
		Volume:    float64(q.RegularMarketVolume),
		AvgVolume: float64(q.AverageDailyVolume3Month),
	}
	if stats.AvgVolume > 0 {
		stats.RelVolume = stats.Volume / stats.AvgVolume
	}
	return stats, nil
}

// trim keeps the most recent lookback bars.
func trim(s model.Series, lookback int) model.Series {
	if len(s.Points) > lookback {
		s.Points = s.Points[len(s.Points)-lookback:]
	}
	return s
}
