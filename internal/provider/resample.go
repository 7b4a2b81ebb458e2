package provider

import (
	"fmt"
	"time"

	"SignalScout/internal/model"
)

// ResampleHours folds intraday bars into buckets of the given width,
// aligned to the clock. Open takes the first bar, Close the last, High
// and Low the extremes, Volume the sum.
func ResampleHours(s model.Series, hours int) model.Series {
	out := model.Series{Symbol: s.Symbol, Interval: bucketInterval(hours), Points: nil}
	if len(s.Points) == 0 {
		return out
	}

	width := time.Duration(hours) * time.Hour
	var bucket model.PricePoint
	var bucketKey time.Time
	var open bool

	for _, p := range s.Points {
		key := p.Time.Truncate(width)
		if !open {
			bucket, bucketKey, open = startBucket(p, key), key, true
			continue
		}
		if !key.Equal(bucketKey) {
			out.Points = append(out.Points, bucket)
			bucket, bucketKey = startBucket(p, key), key
			continue
		}
		mergeBar(&bucket, p)
	}
	out.Points = append(out.Points, bucket)
	return out
}

// ResampleWeekly folds daily bars into ISO-week bars.
func ResampleWeekly(s model.Series) model.Series {
	out := model.Series{Symbol: s.Symbol, Interval: model.Interval1Week, Points: nil}
	if len(s.Points) == 0 {
		return out
	}

	var bucket model.PricePoint
	var bucketKey int
	var open bool

	for _, p := range s.Points {
		year, week := p.Time.ISOWeek()
		key := year*100 + week
		if !open {
			bucket, bucketKey, open = startBucket(p, p.Time), key, true
			continue
		}
		if key != bucketKey {
			out.Points = append(out.Points, bucket)
			bucket, bucketKey = startBucket(p, p.Time), key
			continue
		}
		mergeBar(&bucket, p)
	}
	out.Points = append(out.Points, bucket)
	return out
}

func startBucket(p model.PricePoint, at time.Time) model.PricePoint {
	return model.PricePoint{
		Time:   at,
		Open:   p.Open,
		High:   p.High,
		Low:    p.Low,
		Close:  p.Close,
		Volume: p.Volume,
	}
}

func mergeBar(bucket *model.PricePoint, p model.PricePoint) {
	if p.High > bucket.High {
		bucket.High = p.High
	}
	if p.Low < bucket.Low {
		bucket.Low = p.Low
	}
	bucket.Close = p.Close
	bucket.Volume += p.Volume
}

func bucketInterval(hours int) model.Interval {
	switch hours {
	case 1:
		return model.Interval1Hour
	case 4:
		return model.Interval4Hour
	default:
		return model.Interval(fmt.Sprintf("%dh", hours))
	}
}
