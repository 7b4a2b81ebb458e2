package model

// QuoteStats carries screener-level numbers that cannot be derived
// from the bar series itself. Zero values mean the feed did not
// report the field.
type QuoteStats struct {
	Symbol        string
	Price         float64
	PrevClose     float64
	ChangePct     float64
	Volume        float64
	AvgVolume     float64
	RelVolume     float64
	FloatShares   float64
	ShortPctFloat float64
	DaysToCover   float64
}

// AnalysisInput bundles everything one analysis call consumes.
// Timeframes are optional confirmation series for the same symbol;
// Stats is optional and enables momentum and pressure scoring.
type AnalysisInput struct {
	Primary    Series
	Timeframes []Series
	Stats      *QuoteStats
}
