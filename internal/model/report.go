package model

// Report is the full output of one analysis call. MTF, Momentum and
// Pressure are nil when the caller did not supply the inputs they need.
type Report struct {
	Symbol    string
	Interval  Interval
	LastClose float64
	HasVolume bool

	Bands      BandResult
	Oscillator OscillatorResult
	MTF        *MTFResult

	Signal   ScoreBreakdown
	Squeeze  ScoreBreakdown
	Momentum *MomentumScore
	Pressure *PressureReport

	Recommendation Recommendation

	Warnings []string
}
