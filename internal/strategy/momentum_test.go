package strategy

import (
	"testing"

	"SignalScout/internal/model"
)

func TestScoreMomentum_TextbookRunner(t *testing.T) {
	// +12% on 6x volume with a 15M float at $8 clears every pillar
	stats := model.QuoteStats{
		Symbol:      "RUNR",
		Price:       8.0,
		ChangePct:   12.0,
		RelVolume:   6.0,
		FloatShares: 15_000_000,
	}
	got := ScoreMomentum(stats, DefaultMomentumParams())

	if got.PillarsMet != 5 {
		t.Errorf("expected 5 pillars met, got %d", got.PillarsMet)
	}
	if !got.Qualified {
		t.Error("expected a qualifying setup")
	}
	// 15 (change) + 15 (relvol) + 5 (float <20M) + 10 (price 5-15) + 0 (no bonus)
	if got.Breakdown.Total != 45 {
		t.Errorf("expected quality score 45, got %.0f", got.Breakdown.Total)
	}
	if len(got.Breakdown.Factors) != 5 {
		t.Fatalf("expected 5 factors, got %d", len(got.Breakdown.Factors))
	}
}

func TestScoreMomentum_BelowPillarFloor(t *testing.T) {
	// only the price pillar holds: 1 of 5 is not a setup
	stats := model.QuoteStats{
		Symbol:      "SLOW",
		Price:       8.0,
		ChangePct:   2.0,
		RelVolume:   1.2,
		FloatShares: 80_000_000,
	}
	got := ScoreMomentum(stats, DefaultMomentumParams())

	if got.PillarsMet != 1 {
		t.Errorf("expected 1 pillar met, got %d", got.PillarsMet)
	}
	if got.Qualified {
		t.Error("expected no qualifying setup below the pillar floor")
	}
}

func TestScoreMomentum_CatalystNeedsBothSpikes(t *testing.T) {
	// big move on thin volume: catalyst pillar must not fire
	stats := model.QuoteStats{
		Symbol:      "FAKE",
		Price:       8.0,
		ChangePct:   30.0,
		RelVolume:   1.5,
		FloatShares: 4_000_000,
	}
	got := ScoreMomentum(stats, DefaultMomentumParams())

	// change, float, price hold; relvol and catalyst do not
	if got.PillarsMet != 3 {
		t.Errorf("expected 3 pillars met, got %d", got.PillarsMet)
	}
}

func TestScoreMomentum_UnknownFloat(t *testing.T) {
	stats := model.QuoteStats{
		Symbol:    "NOFL",
		Price:     8.0,
		ChangePct: 12.0,
		RelVolume: 6.0,
	}
	got := ScoreMomentum(stats, DefaultMomentumParams())

	for _, f := range got.Breakdown.Factors {
		if f.Name == "float" && f.Points != 0 {
			t.Errorf("unknown float should earn 0 points, got %.0f", f.Points)
		}
	}
	// change, relvol, price, catalyst still hold
	if got.PillarsMet != 4 {
		t.Errorf("expected 4 pillars met without float data, got %d", got.PillarsMet)
	}
}

func TestScoreMomentum_QualityBands(t *testing.T) {
	tests := []struct {
		name      string
		changePct float64
		relVol    float64
		floatSh   float64
		price     float64
		total     float64
	}{
		// 30 + 30 + 20 + 10 + 10 = 100, the ceiling
		{"maxed", 60, 25, 900_000, 10, 100},
		// 25 + 25 + 15 + 10 + 10 = 85
		{"strong", 30, 12, 3_000_000, 10, 85},
		// 15 + 15 + 0 + 0 + 0 = 30
		{"weak", 5, 2, 50_000_000, 1, 30},
	}
	for _, tt := range tests {
		stats := model.QuoteStats{
			Price:       tt.price,
			ChangePct:   tt.changePct,
			RelVolume:   tt.relVol,
			FloatShares: tt.floatSh,
		}
		got := ScoreMomentum(stats, DefaultMomentumParams())
		if got.Breakdown.Total != tt.total {
			t.Errorf("%s: expected total %.0f, got %.0f", tt.name, tt.total, got.Breakdown.Total)
		}
	}
}

func TestMomentumParams_Validate(t *testing.T) {
	p := DefaultMomentumParams()
	if err := p.Validate(); err != nil {
		t.Fatalf("default params should validate: %v", err)
	}

	p.MinPillars = 6
	if err := p.Validate(); err == nil {
		t.Error("expected error for min_pillars above 5")
	}

	p = DefaultMomentumParams()
	p.MaxPrice = p.MinPrice
	if err := p.Validate(); err == nil {
		t.Error("expected error for inverted price band")
	}
}
