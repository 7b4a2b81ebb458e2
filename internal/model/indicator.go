package model

// BandMethod selects how the band engine builds its envelope.
type BandMethod string

const (
	BandVWAP   BandMethod = "VWAP"
	BandSMAATR BandMethod = "SMA_ATR"
)

// BandZone classifies the last close against the band envelope.
type BandZone string

const (
	ZoneBelowBands BandZone = "BELOW_BANDS"
	ZoneLowerBand  BandZone = "LOWER_BAND"
	ZoneNearCenter BandZone = "NEAR_CENTER"
	ZoneUpperBand  BandZone = "UPPER_BAND"
	ZoneAboveBands BandZone = "ABOVE_BANDS"
)

// BandResult is the envelope snapshot at the most recent bar.
// UpperBands and LowerBands hold absolute price levels ordered by
// distance from the center, nearest first.
type BandResult struct {
	Method     BandMethod
	Center     float64
	UpperBands []float64
	LowerBands []float64
	Zone       BandZone
}

// TrendState is a directional reading from a single indicator.
type TrendState string

const (
	TrendBullish TrendState = "BULLISH"
	TrendBearish TrendState = "BEARISH"
	TrendNeutral TrendState = "NEUTRAL"
)

// CrossoverState reports whether two lines crossed on the last bar.
type CrossoverState string

const (
	CrossBullish CrossoverState = "BULLISH"
	CrossBearish CrossoverState = "BEARISH"
	CrossNone    CrossoverState = "NONE"
)

// PartialFlags marks indicators the engine could not compute because
// the series is shorter than their lookback. A set flag means the
// matching fields in OscillatorResult are unset and must not be scored.
type PartialFlags struct {
	MACD       bool
	RSI        bool
	SuperTrend bool
	EMA        bool
}

// Any reports whether at least one indicator is missing.
func (p PartialFlags) Any() bool {
	return p.MACD || p.RSI || p.SuperTrend || p.EMA
}

// OscillatorResult holds the momentum indicator snapshot at the most
// recent bar.
type OscillatorResult struct {
	MACDLine   float64
	SignalLine float64
	Histogram  float64
	MACDTrend  TrendState     // sign of the current histogram
	MACDCross  CrossoverState // histogram sign flip across the last two bars

	RSI float64

	SuperTrend      TrendState // bullish or bearish, never neutral
	SuperTrendValue float64

	EMAFast  float64
	EMASlow  float64
	EMATrend TrendState

	Partial PartialFlags
}

// TimeframeTrend is one timeframe's verdict inside an MTF check.
type TimeframeTrend struct {
	Interval Interval
	Trend    TrendState
}

// MTFBias summarizes directional agreement across timeframes.
type MTFBias string

const (
	MTFUnanimousBullish MTFBias = "UNANIMOUS_BULLISH"
	MTFUnanimousBearish MTFBias = "UNANIMOUS_BEARISH"
	MTFMixed            MTFBias = "MIXED"
)

// MTFResult aggregates the per-timeframe trend checks.
type MTFResult struct {
	Trends       []TimeframeTrend
	BullishCount int
	Bias         MTFBias
}
