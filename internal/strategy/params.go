package strategy

import "SignalScout/internal/model"

// SignalGradeScale bands the composite signal score.
var SignalGradeScale = model.GradeScale{A: 90, B: 75, C: 50, D: 25}

// PressureGradeScale bands the squeeze-pressure score.
var PressureGradeScale = model.GradeScale{A: 90, B: 80, C: 70, D: 60}

// MomentumParams sets the five pillar thresholds and how many pillars
// a candidate must clear to qualify.
type MomentumParams struct {
	MinChangePct float64
	MinRelVolume float64
	MaxFloatM    float64
	MinPrice     float64
	MaxPrice     float64
	MinPillars   int
}

// DefaultMomentumParams returns the stock momentum-scan thresholds.
func DefaultMomentumParams() MomentumParams {
	return MomentumParams{
		MinChangePct: 10.0,
		MinRelVolume: 5.0,
		MaxFloatM:    20.0,
		MinPrice:     2.0,
		MaxPrice:     20.0,
		MinPillars:   3,
	}
}

// Validate rejects pillar thresholds that cannot be met.
func (p MomentumParams) Validate() error {
	if p.MinPillars < 1 || p.MinPillars > 5 {
		return &model.ConfigurationError{Field: "min_pillars", Reason: "must be between 1 and 5"}
	}
	if p.MinPrice < 0 || p.MaxPrice <= p.MinPrice {
		return &model.ConfigurationError{Field: "price_band", Reason: "max price must exceed min price"}
	}
	if p.MinRelVolume <= 0 {
		return &model.ConfigurationError{Field: "min_rel_volume", Reason: "must be positive"}
	}
	return nil
}

// SqueezeParams tunes the volume-profile squeeze score.
type SqueezeParams struct {
	ProfileBins         int
	ClusterProximityPct float64
	KeyLevelPct         float64
	UnusualVolumeSigma  float64
	TightRangePct       float64
	LooseRangePct       float64
	SqueezeRangePct     float64
	LooseSqueezePct     float64
	GapPct              float64
	SessionBars         int
	OpenLookback        int
}

// DefaultSqueezeParams returns the stock squeeze-score thresholds.
func DefaultSqueezeParams() SqueezeParams {
	return SqueezeParams{
		ProfileBins:         20,
		ClusterProximityPct: 0.5,
		KeyLevelPct:         2.0,
		UnusualVolumeSigma:  2.0,
		TightRangePct:       3.0,
		LooseRangePct:       5.0,
		SqueezeRangePct:     5.0,
		LooseSqueezePct:     10.0,
		GapPct:              1.0,
		SessionBars:         24,
		OpenLookback:        5,
	}
}

// Validate rejects bin and threshold values the profile math cannot use.
func (p SqueezeParams) Validate() error {
	if p.ProfileBins < 2 {
		return &model.ConfigurationError{Field: "profile_bins", Reason: "need at least 2 bins"}
	}
	if p.SessionBars < 2 {
		return &model.ConfigurationError{Field: "session_bars", Reason: "need at least 2 bars"}
	}
	if p.TightRangePct >= p.LooseRangePct {
		return &model.ConfigurationError{Field: "range_pct", Reason: "tight threshold must be below loose threshold"}
	}
	if p.SqueezeRangePct >= p.LooseSqueezePct {
		return &model.ConfigurationError{Field: "squeeze_pct", Reason: "tight threshold must be below loose threshold"}
	}
	return nil
}

// PressureParams holds the screen floors for the squeeze-pressure scan.
// The score bands themselves are fixed policy, not tunable.
type PressureParams struct {
	MinFloatShares float64
	MaxFloatShares float64
	MinPrice       float64
	MaxPrice       float64
	MinRelVolume   float64
	MinShortPct    float64
	MinVolume      float64
}

// DefaultPressureParams returns the stock squeeze-pressure screen.
func DefaultPressureParams() PressureParams {
	return PressureParams{
		MinFloatShares: 100_000,
		MaxFloatShares: 5_000_000,
		MinPrice:       5.0,
		MaxPrice:       20.0,
		MinRelVolume:   3.0,
		MinShortPct:    15.0,
		MinVolume:      500_000,
	}
}

// Validate rejects a screen no symbol could pass.
func (p PressureParams) Validate() error {
	if p.MaxFloatShares <= p.MinFloatShares {
		return &model.ConfigurationError{Field: "float_band", Reason: "max float must exceed min float"}
	}
	if p.MinPrice < 0 || p.MaxPrice <= p.MinPrice {
		return &model.ConfigurationError{Field: "price_band", Reason: "max price must exceed min price"}
	}
	return nil
}

// TradeParams shapes the emitted trade plan.
type TradeParams struct {
	RiskReward      float64
	StopFallbackPct float64
}

// DefaultTradeParams returns a 3:1 plan with a 2% emergency stop.
func DefaultTradeParams() TradeParams {
	return TradeParams{RiskReward: 3.0, StopFallbackPct: 2.0}
}

// Validate rejects ratios that would invert the plan.
func (p TradeParams) Validate() error {
	if p.RiskReward <= 0 {
		return &model.ConfigurationError{Field: "risk_reward", Reason: "must be positive"}
	}
	if p.StopFallbackPct <= 0 || p.StopFallbackPct >= 100 {
		return &model.ConfigurationError{Field: "stop_fallback_pct", Reason: "must be between 0 and 100"}
	}
	return nil
}
