package screener

import (
	"fmt"

	"SignalScout/internal/model"
	"SignalScout/internal/strategy"
)

// rejectPressure applies the cheap quote-only screen ahead of the bar
// fetch. An empty reason means the symbol goes through.
func rejectPressure(stats model.QuoteStats, p strategy.PressureParams) string {
	switch {
	case stats.Price < p.MinPrice:
		return fmt.Sprintf("price $%.2f below $%.2f floor", stats.Price, p.MinPrice)
	case stats.Price > p.MaxPrice:
		return fmt.Sprintf("price $%.2f above $%.2f ceiling", stats.Price, p.MaxPrice)
	case stats.Volume < p.MinVolume:
		return fmt.Sprintf("volume %.0f below %.0f floor", stats.Volume, p.MinVolume)
	case stats.FloatShares < p.MinFloatShares:
		return "float too thin to trade"
	case stats.FloatShares > p.MaxFloatShares:
		return fmt.Sprintf("float %.1fM above %.1fM cap", stats.FloatShares/1e6, p.MaxFloatShares/1e6)
	case stats.ShortPctFloat < p.MinShortPct:
		return fmt.Sprintf("short interest %.1f%% below %.1f%% floor", stats.ShortPctFloat, p.MinShortPct)
	case stats.RelVolume < p.MinRelVolume:
		return fmt.Sprintf("relative volume %.1fx below %.1fx floor", stats.RelVolume, p.MinRelVolume)
	}
	return ""
}
