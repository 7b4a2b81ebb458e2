package strategy

import (
	"fmt"

	"SignalScout/internal/model"
)

// ScoreMomentum checks the five momentum pillars and grades setup
// quality. A candidate short of MinPillars keeps its breakdown but is
// reported as not qualified, so consumers show "no setup" instead of a
// weak number.
func ScoreMomentum(stats model.QuoteStats, p MomentumParams) model.MomentumScore {
	floatM := stats.FloatShares / 1e6

	changeOK := stats.ChangePct >= p.MinChangePct
	relVolOK := stats.RelVolume >= p.MinRelVolume
	floatOK := stats.FloatShares > 0 && floatM < p.MaxFloatM
	priceOK := stats.Price >= p.MinPrice && stats.Price <= p.MaxPrice
	// Catalyst is inferred, not fetched: a large move on heavy volume
	// stands in for a confirmed news event.
	catalystOK := changeOK && relVolOK

	met := 0
	for _, ok := range []bool{changeOK, relVolOK, floatOK, priceOK, catalystOK} {
		if ok {
			met++
		}
	}

	factors := []model.Factor{
		scoreChangePct(stats.ChangePct),
		scoreRelVolume(stats.RelVolume),
		scoreFloatSize(stats.FloatShares, floatM),
		scorePriceBand(stats.Price),
		scoreMomentumBonus(stats.ChangePct, stats.RelVolume),
	}

	return model.MomentumScore{
		Breakdown:     model.NewScoreBreakdown(SignalGradeScale, factors),
		PillarsMet:    met,
		PillarsNeeded: p.MinPillars,
		Qualified:     met >= p.MinPillars,
	}
}

// scoreChangePct rewards the size of the intraday move.
func scoreChangePct(changePct float64) model.Factor {
	var points float64
	switch {
	case changePct >= 50:
		points = 30
	case changePct >= 25:
		points = 25
	case changePct >= 15:
		points = 20
	default:
		points = 15
	}
	return model.Factor{
		Name:   "change",
		Points: points,
		Detail: fmt.Sprintf("%+.1f%% on the day", changePct),
	}
}

// scoreRelVolume rewards volume against the trailing baseline.
func scoreRelVolume(relVol float64) model.Factor {
	var points float64
	switch {
	case relVol >= 20:
		points = 30
	case relVol >= 10:
		points = 25
	case relVol >= 7:
		points = 20
	default:
		points = 15
	}
	return model.Factor{
		Name:   "relative_volume",
		Points: points,
		Detail: fmt.Sprintf("%.1fx average", relVol),
	}
}

// scoreFloatSize rewards thin floats; an unknown float earns nothing.
func scoreFloatSize(floatShares, floatM float64) model.Factor {
	if floatShares <= 0 {
		return model.Factor{Name: "float", Points: 0, Detail: "float unknown"}
	}
	var points float64
	switch {
	case floatM < 1:
		points = 20
	case floatM < 5:
		points = 15
	case floatM < 10:
		points = 10
	case floatM < 20:
		points = 5
	default:
		points = 0
	}
	return model.Factor{
		Name:   "float",
		Points: points,
		Detail: fmt.Sprintf("%.1fM shares", floatM),
	}
}

// scorePriceBand rewards the runnable price range.
func scorePriceBand(price float64) model.Factor {
	var points float64
	switch {
	case price >= 5 && price <= 15:
		points = 10
	case price >= 3 && price <= 20:
		points = 5
	default:
		points = 0
	}
	return model.Factor{
		Name:   "price_band",
		Points: points,
		Detail: fmt.Sprintf("$%.2f", price),
	}
}

// scoreMomentumBonus pays extra when move and volume spike together.
func scoreMomentumBonus(changePct, relVol float64) model.Factor {
	var points float64
	var detail string
	switch {
	case changePct >= 20 && relVol >= 10:
		points = 10
		detail = "move and volume both extreme"
	case changePct >= 15 && relVol >= 7:
		points = 5
		detail = "move and volume both elevated"
	default:
		points = 0
		detail = "no combined spike"
	}
	return model.Factor{Name: "momentum_bonus", Points: points, Detail: detail}
}
