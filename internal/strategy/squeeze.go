package strategy

import (
	"fmt"
	"math"
	"sort"

	"SignalScout/internal/calculator"
	"SignalScout/internal/model"
)

// squeezeMinBars is the floor below which the volume profile is noise.
const squeezeMinBars = 10

// ScoreSqueeze rates how tightly a symbol is coiled around its
// high-volume price levels. Five additive sub-scores capped at
// 30/20/20/15/15; the clamp in NewScoreBreakdown keeps a maxed run at
// exactly 100.
func ScoreSqueeze(s model.Series, p SqueezeParams) (model.ScoreBreakdown, error) {
	pts := s.Points
	if len(pts) < squeezeMinBars {
		return model.ScoreBreakdown{}, &model.InsufficientHistoryError{
			Op: "squeeze score", Need: squeezeMinBars, Got: len(pts),
		}
	}

	current := pts[len(pts)-1].Close
	levels := keyLevels(volumeProfile(pts, p.ProfileBins), current)
	stored := levels
	if len(stored) > 5 {
		stored = stored[:5]
	}

	bullish := current > sessionOpen(pts, p.OpenLookback)
	hi, lo, err := calculator.CalculateRange(pts, p.SessionBars)
	if err != nil {
		return model.ScoreBreakdown{}, err
	}

	factors := []model.Factor{
		scoreVolumeClusters(levels, current, p),
		scoreUnusualVolume(pts, p),
		scoreConsolidation(bullish, hi, lo, current, p),
		scoreSqueezeRange(stored, current, p),
		scoreGapFill(pts, bullish, p),
	}
	return model.NewScoreBreakdown(SignalGradeScale, factors), nil
}

// profileLevel is one volume-profile bucket.
type profileLevel struct {
	price  float64
	volume float64
}

// volumeProfile buckets closes into equal-width price bins and sums
// traded volume per bin; a bin's price is its mean close. A flat price
// range yields no profile.
func volumeProfile(pts []model.PricePoint, bins int) []profileLevel {
	minC, maxC := pts[0].Close, pts[0].Close
	for _, b := range pts[1:] {
		if b.Close < minC {
			minC = b.Close
		}
		if b.Close > maxC {
			maxC = b.Close
		}
	}
	if maxC == minC {
		return nil
	}
	binSize := (maxC - minC) / float64(bins)

	// the top close lands one past the last regular bin
	volume := make([]float64, bins+1)
	closeSum := make([]float64, bins+1)
	count := make([]int, bins+1)
	for _, b := range pts {
		idx := int((b.Close - minC) / binSize)
		if idx > bins {
			idx = bins
		}
		volume[idx] += b.Volume
		closeSum[idx] += b.Close
		count[idx]++
	}

	profile := make([]profileLevel, 0, bins+1)
	for i := range volume {
		if count[i] == 0 {
			continue
		}
		profile = append(profile, profileLevel{
			price:  closeSum[i] / float64(count[i]),
			volume: volume[i],
		})
	}
	return profile
}

// keyLevels returns up to the ten highest-volume profile prices,
// ordered nearest to the current price first.
func keyLevels(profile []profileLevel, current float64) []float64 {
	if len(profile) == 0 {
		return nil
	}
	byVol := make([]profileLevel, len(profile))
	copy(byVol, profile)
	sort.SliceStable(byVol, func(i, j int) bool { return byVol[i].volume > byVol[j].volume })
	if len(byVol) > 10 {
		byVol = byVol[:10]
	}
	levels := make([]float64, len(byVol))
	for i, l := range byVol {
		levels[i] = l.price
	}
	sort.SliceStable(levels, func(i, j int) bool {
		return math.Abs(levels[i]-current) < math.Abs(levels[j]-current)
	})
	return levels
}

// sessionOpen is the open N bars back, or the first open on a short
// series. Against the last close it sets the session bias.
func sessionOpen(pts []model.PricePoint, lookback int) float64 {
	if len(pts) >= lookback {
		return pts[len(pts)-lookback].Open
	}
	return pts[0].Open
}

// scoreVolumeClusters awards 30 when one of the three nearest key
// levels sits within the cluster proximity, 20 when the closest level
// is merely within the key-level distance.
func scoreVolumeClusters(levels []float64, current float64, p SqueezeParams) model.Factor {
	top := levels
	if len(top) > 3 {
		top = top[:3]
	}
	for _, l := range top {
		if math.Abs(l-current)/current < p.ClusterProximityPct/100 {
			return model.Factor{
				Name:   "volume_clusters",
				Points: 30,
				Detail: fmt.Sprintf("active cluster at %.2f", l),
			}
		}
	}
	if len(levels) > 0 {
		dist := math.Abs(levels[0]-current) / current * 100
		if dist < p.KeyLevelPct {
			return model.Factor{
				Name:   "volume_clusters",
				Points: 20,
				Detail: fmt.Sprintf("nearest level %.2f, %.1f%% away", levels[0], dist),
			}
		}
	}
	return model.Factor{Name: "volume_clusters", Points: 0, Detail: "no level nearby"}
}

// scoreUnusualVolume counts bars whose volume exceeds the sample mean
// by the configured number of standard deviations, keeping only the
// five most recent events.
func scoreUnusualVolume(pts []model.PricePoint, p SqueezeParams) model.Factor {
	vols := make([]float64, len(pts))
	for i, b := range pts {
		vols[i] = b.Volume
	}
	m := mean(vols)
	sd := sampleStd(vols, m)

	events := 0
	if sd > 0 {
		threshold := m + p.UnusualVolumeSigma*sd
		for _, v := range vols {
			if v > threshold {
				events++
			}
		}
		if events > 5 {
			events = 5
		}
	}

	var points float64
	switch {
	case events >= 3:
		points = 20
	case events >= 1:
		points = 10
	}
	return model.Factor{
		Name:   "unusual_volume",
		Points: points,
		Detail: fmt.Sprintf("%d spike bars", events),
	}
}

// scoreConsolidation rewards a bullish session coiled into a tight range.
func scoreConsolidation(bullish bool, hi, lo, current float64, p SqueezeParams) model.Factor {
	if !bullish {
		return model.Factor{Name: "consolidation", Points: 0, Detail: "bearish session"}
	}
	rangePct := (hi - lo) / current * 100
	var points float64
	switch {
	case rangePct < p.TightRangePct:
		points = 20
	case rangePct < p.LooseRangePct:
		points = 10
	}
	return model.Factor{
		Name:   "consolidation",
		Points: points,
		Detail: fmt.Sprintf("%.1f%% session range", rangePct),
	}
}

// scoreSqueezeRange rewards price pinched between key levels on both
// sides. Needs at least three stored levels with support and resistance.
func scoreSqueezeRange(stored []float64, current float64, p SqueezeParams) model.Factor {
	if len(stored) < 3 {
		return model.Factor{Name: "squeeze_range", Points: 0, Detail: "too few levels"}
	}
	resistance := math.Inf(1)
	support := math.Inf(-1)
	for _, l := range stored {
		if l > current && l < resistance {
			resistance = l
		}
		if l < current && l > support {
			support = l
		}
	}
	if math.IsInf(resistance, 1) || math.IsInf(support, -1) {
		return model.Factor{Name: "squeeze_range", Points: 0, Detail: "levels on one side only"}
	}
	squeezePct := (resistance - support) / current * 100
	var points float64
	switch {
	case squeezePct < p.SqueezeRangePct:
		points = 15
	case squeezePct < p.LooseSqueezePct:
		points = 8
	}
	return model.Factor{
		Name:   "squeeze_range",
		Points: points,
		Detail: fmt.Sprintf("%.1f%% between %.2f and %.2f", squeezePct, support, resistance),
	}
}

// scoreGapFill rewards a bullish bias with an unfilled gap to trade
// into; a gap down scores higher than a gap up.
func scoreGapFill(pts []model.PricePoint, bullish bool, p SqueezeParams) model.Factor {
	gapUp, found := lastGap(pts, p.GapPct)
	if !found {
		return model.Factor{Name: "gap_fill", Points: 0, Detail: "no open gap"}
	}
	var points float64
	var detail string
	switch {
	case !gapUp && bullish:
		points = 15
		detail = "gap down below a bullish session"
	case gapUp && bullish:
		points = 8
		detail = "gap up below a bullish session"
	default:
		detail = "gap without bullish bias"
	}
	return model.Factor{Name: "gap_fill", Points: points, Detail: detail}
}

// lastGap reports the direction of the most recent open/close gap
// larger than thresholdPct.
func lastGap(pts []model.PricePoint, thresholdPct float64) (gapUp, found bool) {
	for i := 1; i < len(pts); i++ {
		prevClose := pts[i-1].Close
		gapPct := math.Abs(pts[i].Open-prevClose) / prevClose * 100
		if gapPct > thresholdPct {
			gapUp = pts[i].Open > prevClose
			found = true
		}
	}
	return gapUp, found
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sampleStd is the n-1 standard deviation; zero when fewer than two values.
func sampleStd(values []float64, m float64) float64 {
	if len(values) < 2 {
		return 0
	}
	var sum float64
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}
