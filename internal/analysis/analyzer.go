package analysis

import (
	"SignalScout/internal/model"
	"SignalScout/internal/strategy"
)

// Params configures every stage of one analysis. All fields are read
// only; a single Params value can serve any number of concurrent
// analyses.
type Params struct {
	MinPoints  int
	TrendEMA   int
	Bands      BandParams
	Oscillator OscillatorParams
	Momentum   strategy.MomentumParams
	Squeeze    strategy.SqueezeParams
	Pressure   strategy.PressureParams
	Trade      strategy.TradeParams
}

// DefaultParams covers the band window plus one bar so the envelope
// always has data to work with.
func DefaultParams() Params {
	return Params{
		MinPoints:  21,
		TrendEMA:   20,
		Bands:      DefaultBandParams(),
		Oscillator: DefaultOscillatorParams(),
		Momentum:   strategy.DefaultMomentumParams(),
		Squeeze:    strategy.DefaultSqueezeParams(),
		Pressure:   strategy.DefaultPressureParams(),
		Trade:      strategy.DefaultTradeParams(),
	}
}

// Validate runs every stage's parameter check.
func (p Params) Validate() error {
	if p.MinPoints < 2 {
		return &model.ConfigurationError{Field: "min_points", Reason: "need at least 2 bars"}
	}
	if p.TrendEMA <= 0 {
		return &model.ConfigurationError{Field: "trend_ema", Reason: "must be positive"}
	}
	if err := p.Bands.Validate(); err != nil {
		return err
	}
	if err := p.Oscillator.Validate(); err != nil {
		return err
	}
	if err := p.Momentum.Validate(); err != nil {
		return err
	}
	if err := p.Squeeze.Validate(); err != nil {
		return err
	}
	if err := p.Pressure.Validate(); err != nil {
		return err
	}
	return p.Trade.Validate()
}

// Analyzer runs the full pipeline: validate, bands, oscillators,
// timeframe aggregation, scoring, recommendation. One call per symbol,
// no state shared between calls.
type Analyzer struct {
	params Params
}

// New validates the configuration once so Analyze never has to.
func New(params Params) (*Analyzer, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Analyzer{params: params}, nil
}

// Params returns the active configuration.
func (a *Analyzer) Params() Params { return a.params }

// Analyze produces the full report for one input. Validation failures
// abort before any indicator runs; per-indicator shortfalls downgrade
// to partial flags and warnings.
func (a *Analyzer) Analyze(input model.AnalysisInput) (*model.Report, error) {
	s := input.Primary
	hasVolume, err := ValidateSeries(s, a.params.MinPoints)
	if err != nil {
		return nil, err
	}

	bands, err := ComputeBands(s, hasVolume, a.params.Bands)
	if err != nil {
		return nil, err
	}
	osc, err := ComputeOscillators(s, a.params.Oscillator)
	if err != nil {
		return nil, err
	}
	mtf := AggregateTimeframes(input.Timeframes, a.params.TrendEMA)

	lastClose := s.Last().Close
	report := &model.Report{
		Symbol:     s.Symbol,
		Interval:   s.Interval,
		LastClose:  lastClose,
		HasVolume:  hasVolume,
		Bands:      bands,
		Oscillator: osc,
		MTF:        mtf,
	}

	report.Signal = strategy.ScoreSignal(bands, osc, mtf, lastClose)

	squeezeSkipped := ""
	squeeze, err := strategy.ScoreSqueeze(s, a.params.Squeeze)
	switch {
	case isInsufficient(err):
		squeezeSkipped = "squeeze score skipped: " + err.Error()
	case err != nil:
		return nil, err
	default:
		report.Squeeze = squeeze
	}

	if input.Stats != nil {
		momentum := strategy.ScoreMomentum(*input.Stats, a.params.Momentum)
		report.Momentum = &momentum
		pressure := strategy.ScorePressure(*input.Stats, s, a.params.Pressure)
		report.Pressure = &pressure
	}

	report.Recommendation = strategy.BuildRecommendation(bands, osc, mtf, lastClose, a.params.Trade)
	report.Warnings = collectWarnings(report, squeezeSkipped)

	return report, nil
}

// collectWarnings assembles user-facing caveats in a fixed order so
// identical inputs produce identical reports.
func collectWarnings(r *model.Report, squeezeSkipped string) []string {
	var warnings []string
	if r.Oscillator.Partial.MACD {
		warnings = append(warnings, "MACD unavailable: series shorter than slow+signal lookback")
	}
	if r.Oscillator.Partial.RSI {
		warnings = append(warnings, "RSI unavailable: series shorter than period+1")
	}
	if r.Oscillator.Partial.SuperTrend {
		warnings = append(warnings, "SuperTrend unavailable: series shorter than ATR period")
	}
	if r.Oscillator.Partial.EMA {
		warnings = append(warnings, "EMA pair unavailable: series shorter than slow period")
	}
	if squeezeSkipped != "" {
		warnings = append(warnings, squeezeSkipped)
	}
	if r.MTF != nil {
		for _, tf := range r.MTF.Trends {
			if tf.Trend == model.TrendNeutral {
				warnings = append(warnings, "timeframe "+string(tf.Interval)+" inconclusive")
			}
		}
	}
	if r.Pressure != nil && r.Pressure.ReverseSplitSuspect {
		warnings = append(warnings, "price pattern suggests a recent reverse split")
	}
	return warnings
}
