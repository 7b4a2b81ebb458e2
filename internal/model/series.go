package model

import (
	"fmt"
	"time"
)

// Interval is the bar duration of a price series.
type Interval string

const (
	Interval1Min   Interval = "1m"
	Interval5Min   Interval = "5m"
	Interval15Min  Interval = "15m"
	Interval30Min  Interval = "30m"
	Interval1Hour  Interval = "1h"
	Interval4Hour  Interval = "4h"
	Interval1Day   Interval = "1d"
	Interval1Week  Interval = "1wk"
	Interval1Month Interval = "1mo"
)

// ParseInterval maps a config string to a known interval.
func ParseInterval(s string) (Interval, error) {
	switch iv := Interval(s); iv {
	case Interval1Min, Interval5Min, Interval15Min, Interval30Min,
		Interval1Hour, Interval4Hour, Interval1Day, Interval1Week, Interval1Month:
		return iv, nil
	}
	return "", &ConfigurationError{Field: "interval", Reason: fmt.Sprintf("unknown interval %q", s)}
}

// PricePoint is a single OHLCV bar. Volume may be zero when the feed
// does not report it.
type PricePoint struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Series is an ordered run of bars for one symbol at one interval.
// Timestamps are strictly increasing; gaps are tolerated.
type Series struct {
	Symbol   string
	Interval Interval
	Points   []PricePoint
}

// Len reports the number of bars.
func (s Series) Len() int { return len(s.Points) }

// Last returns the most recent bar.
func (s Series) Last() PricePoint { return s.Points[len(s.Points)-1] }
