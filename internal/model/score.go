package model

// Factor is a single named contribution to an additive score.
type Factor struct {
	Name   string
	Points float64
	Detail string
}

// GradeScale maps total-score thresholds to letter grades.
type GradeScale struct {
	A float64
	B float64
	C float64
	D float64
}

// Grade returns the letter for a total under this scale.
func (g GradeScale) Grade(total float64) string {
	switch {
	case total >= g.A:
		return "A"
	case total >= g.B:
		return "B"
	case total >= g.C:
		return "C"
	case total >= g.D:
		return "D"
	default:
		return "F"
	}
}

// ScoreBreakdown is an additive score with per-factor attribution.
type ScoreBreakdown struct {
	Total   float64
	Grade   string
	Factors []Factor
}

// NewScoreBreakdown sums the factor points, clamps the total to
// [0, 100] and grades it. Clamping happens here only, never per factor.
func NewScoreBreakdown(scale GradeScale, factors []Factor) ScoreBreakdown {
	var total float64
	for _, f := range factors {
		total += f.Points
	}
	if total > 100 {
		total = 100
	}
	if total < 0 {
		total = 0
	}
	return ScoreBreakdown{
		Total:   total,
		Grade:   scale.Grade(total),
		Factors: factors,
	}
}

// MomentumScore is the five-pillar momentum verdict for one candidate.
type MomentumScore struct {
	Breakdown     ScoreBreakdown
	PillarsMet    int
	PillarsNeeded int
	Qualified     bool
}

// SetupQuality labels how clean a squeeze-pressure setup is.
type SetupQuality string

const (
	QualityExcellent SetupQuality = "EXCELLENT"
	QualityStrong    SetupQuality = "STRONG"
	QualityGood      SetupQuality = "GOOD"
	QualityMarginal  SetupQuality = "MARGINAL"
	QualityWeak      SetupQuality = "WEAK"
)

// PressureReport is the squeeze-pressure verdict for one candidate.
type PressureReport struct {
	Breakdown           ScoreBreakdown
	Quality             SetupQuality
	ReverseSplitSuspect bool
}
