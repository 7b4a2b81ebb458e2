package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"SignalScout/internal/model"
	"SignalScout/internal/platform/httpx"
)

// RESTFetcher implements Fetcher against a generic bars/quote REST API.
// Unlike Yahoo it reports float and short interest, which feed the
// squeeze screens.
type RESTFetcher struct {
	BaseURL string
	APIKey  string
	Client  *httpx.Client
}

// NewRESTFetcher creates a fetcher for the configured REST endpoint.
func NewRESTFetcher(baseURL, apiKey string, client *httpx.Client) *RESTFetcher {
	return &RESTFetcher{BaseURL: baseURL, APIKey: apiKey, Client: client}
}

func (f *RESTFetcher) Name() string { return "rest" }

// restBar is the expected JSON shape of one bar. Prices decode as
// decimals so feeds that quote them as strings still parse.
type restBar struct {
	Timestamp int64           `json:"timestamp"`
	Open      decimal.Decimal `json:"open"`
	High      decimal.Decimal `json:"high"`
	Low       decimal.Decimal `json:"low"`
	Close     decimal.Decimal `json:"close"`
	Volume    float64         `json:"volume"`
}

// restQuote is the expected JSON shape of the quote endpoint.
type restQuote struct {
	Price         decimal.Decimal `json:"price"`
	PrevClose     decimal.Decimal `json:"prev_close"`
	ChangePct     float64         `json:"change_pct"`
	Volume        float64         `json:"volume"`
	AvgVolume     float64         `json:"avg_volume"`
	FloatShares   float64         `json:"float_shares"`
	ShortPctFloat float64         `json:"short_pct_float"`
	DaysToCover   float64         `json:"days_to_cover"`
}

func (f *RESTFetcher) FetchBars(ctx context.Context, symbol string, interval model.Interval, lookback int) (model.Series, error) {
	endpoint := fmt.Sprintf("%s/api/v1/bars?symbol=%s&interval=%s&limit=%d",
		f.BaseURL, url.QueryEscape(symbol), interval, lookback)

	pts, err := f.fetchBars(ctx, endpoint)
	if err != nil {
		// Not every backend serves 4h or weekly bars; build them from
		// the base interval instead.
		switch interval {
		case model.Interval4Hour:
			hourly, hourlyErr := f.FetchBars(ctx, symbol, model.Interval1Hour, lookback*4)
			if hourlyErr != nil {
				return model.Series{}, fmt.Errorf("4h fetch failed: %w; 1h fallback also failed: %w", err, hourlyErr)
			}
			return trim(ResampleHours(hourly, 4), lookback), nil
		case model.Interval1Week:
			daily, dailyErr := f.FetchBars(ctx, symbol, model.Interval1Day, lookback*7)
			if dailyErr != nil {
				return model.Series{}, fmt.Errorf("weekly fetch failed: %w; daily fallback also failed: %w", err, dailyErr)
			}
			return trim(ResampleWeekly(daily), lookback), nil
		}
		return model.Series{}, err
	}

	return trim(model.Series{Symbol: symbol, Interval: interval, Points: pts}, lookback), nil
}

func (f *RESTFetcher) FetchQuote(ctx context.Context, symbol string) (*model.QuoteStats, error) {
	endpoint := fmt.Sprintf("%s/api/v1/quote?symbol=%s", f.BaseURL, url.QueryEscape(symbol))
	req, err := f.newRequest(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	resp, err := f.Client.DoRequest(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("fetch quote: %w", err)
	}
	defer resp.Body.Close()

	var rq restQuote
	if err := json.NewDecoder(resp.Body).Decode(&rq); err != nil {
		return nil, fmt.Errorf("decode quote: %w", err)
	}

	stats := &model.QuoteStats{
		Symbol:        symbol,
		Price:         rq.Price.InexactFloat64(),
		PrevClose:     rq.PrevClose.InexactFloat64(),
		ChangePct:     rq.ChangePct,
		Volume:        rq.Volume,
		AvgVolume:     rq.AvgVolume,
		FloatShares:   rq.FloatShares,
		ShortPctFloat: rq.ShortPctFloat,
		DaysToCover:   rq.DaysToCover,
	}
	if stats.AvgVolume > 0 {
		stats.RelVolume = stats.Volume / stats.AvgVolume
	}
	return stats, nil
}

func (f *RESTFetcher) fetchBars(ctx context.Context, endpoint string) ([]model.PricePoint, error) {
	req, err := f.newRequest(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	resp, err := f.Client.DoRequest(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("fetch bars: %w", err)
	}
	defer resp.Body.Close()

	var raw []restBar
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode bars: %w", err)
	}

	pts := make([]model.PricePoint, len(raw))
	for i, rb := range raw {
		pts[i] = model.PricePoint{
			Time:   time.Unix(rb.Timestamp, 0),
			Open:   rb.Open.InexactFloat64(),
			High:   rb.High.InexactFloat64(),
			Low:    rb.Low.InexactFloat64(),
			Close:  rb.Close.InexactFloat64(),
			Volume: rb.Volume,
		}
	}
	sort.Slice(pts, func(i, j int) bool { return pts[i].Time.Before(pts[j].Time) })
	return pts, nil
}

func (f *RESTFetcher) newRequest(ctx context.Context, endpoint string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}
	return req, nil
}
