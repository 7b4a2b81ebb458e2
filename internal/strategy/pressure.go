package strategy

import (
	"fmt"

	"SignalScout/internal/calculator"
	"SignalScout/internal/model"
)

// catalystRelVol is the volume multiple treated as evidence of news.
const catalystRelVol = 3.0

// ScorePressure rates a short-squeeze setup from screener stats plus
// the daily series. Factor bands are fixed policy; PressureParams only
// shapes the price-range factor and the upstream screen.
func ScorePressure(stats model.QuoteStats, s model.Series, p PressureParams) model.PressureReport {
	price := stats.Price
	if price == 0 && s.Len() > 0 {
		price = s.Last().Close
	}

	breakingHigh := false
	if s.Len() > 0 {
		hi, _, err := calculator.CalculateRange(s.Points, 20)
		if err == nil && hi > 0 {
			breakingHigh = price >= hi*0.98
		}
	}

	streak := consecutiveVolumeDays(s.Points, 3)

	factors := []model.Factor{
		scorePressureFloat(stats.FloatShares),
		scoreShortInterest(stats.ShortPctFloat),
		scorePressureRelVol(stats.RelVolume),
		scorePressurePrice(price, p),
		scoreBreakout(breakingHigh),
		scoreDaysToCover(stats.DaysToCover),
		scoreCatalyst(stats.RelVolume),
		scoreVolumeStreak(streak),
	}
	breakdown := model.NewScoreBreakdown(PressureGradeScale, factors)

	return model.PressureReport{
		Breakdown:           breakdown,
		Quality:             setupQuality(breakdown.Total),
		ReverseSplitSuspect: detectReverseSplit(s.Points),
	}
}

// setupQuality mirrors the pressure grade bands with plain words.
func setupQuality(total float64) model.SetupQuality {
	switch {
	case total >= 90:
		return model.QualityExcellent
	case total >= 80:
		return model.QualityStrong
	case total >= 70:
		return model.QualityGood
	case total >= 60:
		return model.QualityMarginal
	default:
		return model.QualityWeak
	}
}

// scorePressureFloat pays the most for the thinnest floats. An unknown
// float takes the bottom band, the same treatment a huge float gets.
func scorePressureFloat(floatShares float64) model.Factor {
	if floatShares <= 0 {
		return model.Factor{Name: "float", Points: 5, Detail: "float unknown"}
	}
	var points float64
	switch {
	case floatShares < 1_000_000:
		points = 25
	case floatShares < 2_000_000:
		points = 20
	case floatShares < 5_000_000:
		points = 15
	case floatShares < 10_000_000:
		points = 10
	default:
		points = 5
	}
	return model.Factor{
		Name:   "float",
		Points: points,
		Detail: fmt.Sprintf("%.1fM shares", floatShares/1e6),
	}
}

// scoreShortInterest rewards crowded shorts.
func scoreShortInterest(shortPct float64) model.Factor {
	var points float64
	switch {
	case shortPct > 40:
		points = 25
	case shortPct > 30:
		points = 20
	case shortPct > 20:
		points = 15
	case shortPct > 10:
		points = 10
	default:
		points = 5
	}
	return model.Factor{
		Name:   "short_interest",
		Points: points,
		Detail: fmt.Sprintf("%.1f%% of float", shortPct),
	}
}

// scorePressureRelVol rewards volume far above the trailing baseline.
func scorePressureRelVol(relVol float64) model.Factor {
	var points float64
	switch {
	case relVol > 10:
		points = 25
	case relVol > 7:
		points = 20
	case relVol > 5:
		points = 15
	case relVol > 3:
		points = 10
	default:
		points = 5
	}
	return model.Factor{
		Name:   "relative_volume",
		Points: points,
		Detail: fmt.Sprintf("%.1fx average", relVol),
	}
}

// scorePressurePrice pays full points inside the configured band,
// less below it, least above it.
func scorePressurePrice(price float64, p PressureParams) model.Factor {
	var points float64
	var detail string
	switch {
	case price >= p.MinPrice && price <= p.MaxPrice:
		points = 10
		detail = fmt.Sprintf("$%.2f in band", price)
	case price < p.MinPrice:
		points = 5
		detail = fmt.Sprintf("$%.2f below band", price)
	default:
		points = 3
		detail = fmt.Sprintf("$%.2f above band", price)
	}
	return model.Factor{Name: "price_range", Points: points, Detail: detail}
}

// scoreBreakout pays when price presses its 20-bar high.
func scoreBreakout(breaking bool) model.Factor {
	if breaking {
		return model.Factor{Name: "breakout", Points: 10, Detail: "within 2% of 20-bar high"}
	}
	return model.Factor{Name: "breakout", Points: 0, Detail: "below 20-bar high"}
}

// scoreDaysToCover rewards shorts that take days to unwind.
func scoreDaysToCover(dtc float64) model.Factor {
	var points float64
	switch {
	case dtc > 5:
		points = 10
	case dtc > 3:
		points = 5
	}
	return model.Factor{
		Name:   "days_to_cover",
		Points: points,
		Detail: fmt.Sprintf("%.1f days", dtc),
	}
}

// scoreCatalyst treats a volume spike as a news proxy, nothing more.
func scoreCatalyst(relVol float64) model.Factor {
	if relVol > catalystRelVol {
		return model.Factor{Name: "catalyst", Points: 5, Detail: "volume spike implies catalyst"}
	}
	return model.Factor{Name: "catalyst", Points: 0, Detail: "no volume spike"}
}

// scoreVolumeStreak pays for back-to-back heavy-volume sessions.
func scoreVolumeStreak(streak int) model.Factor {
	if streak >= 2 {
		return model.Factor{
			Name:   "volume_streak",
			Points: 5,
			Detail: fmt.Sprintf("%d consecutive heavy days", streak),
		}
	}
	return model.Factor{Name: "volume_streak", Points: 0, Detail: "no streak"}
}

// consecutiveVolumeDays counts, from the most recent bar backward
// through a small window, how many bars ran above twice the 20-bar
// average volume.
func consecutiveVolumeDays(pts []model.PricePoint, window int) int {
	if len(pts) < window {
		return 0
	}
	tail := pts
	if len(tail) > 20 {
		tail = tail[len(tail)-20:]
	}
	var sum float64
	for _, b := range tail {
		sum += b.Volume
	}
	avg := sum / float64(len(tail))
	if avg == 0 {
		return 0
	}

	count := 0
	for i := len(pts) - 1; i >= len(pts)-window; i-- {
		if pts[i].Volume > avg*2 {
			count++
		} else {
			break
		}
	}
	return count
}

// detectReverseSplit looks for the split signature inside the last 30
// bars: a one-day price jump above 400% paired with volume cut in half.
func detectReverseSplit(pts []model.PricePoint) bool {
	if len(pts) < 40 {
		return false
	}
	for i := len(pts) - 30; i < len(pts); i++ {
		prev := pts[i-1]
		if prev.Close == 0 || prev.Volume == 0 {
			continue
		}
		priceChange := (pts[i].Close - prev.Close) / prev.Close
		volumeChange := (pts[i].Volume - prev.Volume) / prev.Volume
		if priceChange > 4.0 && volumeChange < -0.5 {
			return true
		}
	}
	return false
}
