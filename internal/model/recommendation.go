package model

// Direction is the terminal outcome of the recommendation builder.
type Direction string

const (
	DirectionLong  Direction = "LONG"
	DirectionShort Direction = "SHORT"
	DirectionNone  Direction = "NONE"
)

// Strength grades how much confirmation backs a recommendation.
type Strength string

const (
	StrengthStrong   Strength = "STRONG"
	StrengthModerate Strength = "MODERATE"
	StrengthWeak     Strength = "WEAK"
)

// Recommendation is the trade plan produced by one analysis call.
// Constructed once, never mutated. Price fields are zero when
// Direction is DirectionNone.
type Recommendation struct {
	Direction       Direction
	Strength        Strength
	Entry           float64
	Stop            float64
	Target          float64
	RiskAmount      float64
	RewardAmount    float64
	RiskRewardRatio float64
}
