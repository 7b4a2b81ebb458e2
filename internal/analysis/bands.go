package analysis

import (
	"SignalScout/internal/calculator"
	"SignalScout/internal/model"
)

// BandParams configures the band engine. An empty Method lets the
// volume check pick between VWAP and SMA+ATR.
type BandParams struct {
	Method      model.BandMethod
	Window      int
	SigmaLevels []float64
	ATRLevels   []float64
}

// DefaultBandParams uses a 20-bar window with 2σ/3σ VWAP bands and
// 1x/2x ATR bands.
func DefaultBandParams() BandParams {
	return BandParams{
		Window:      20,
		SigmaLevels: []float64{2, 3},
		ATRLevels:   []float64{1, 2},
	}
}

// Validate rejects windows and band ladders the math cannot use.
func (p BandParams) Validate() error {
	if p.Method != "" && p.Method != model.BandVWAP && p.Method != model.BandSMAATR {
		return &model.ConfigurationError{Field: "band_method", Reason: "must be empty, VWAP or SMA_ATR"}
	}
	if p.Window <= 1 {
		return &model.ConfigurationError{Field: "band_window", Reason: "must be above 1"}
	}
	for name, levels := range map[string][]float64{"sigma_levels": p.SigmaLevels, "atr_levels": p.ATRLevels} {
		if len(levels) == 0 {
			return &model.ConfigurationError{Field: name, Reason: "need at least one level"}
		}
		prev := 0.0
		for _, l := range levels {
			if l <= prev {
				return &model.ConfigurationError{Field: name, Reason: "levels must be positive and ascending"}
			}
			prev = l
		}
	}
	return nil
}

// ComputeBands builds the envelope for the most recent bar. VWAP bands
// need real traded volume; without it the SMA center with ATR
// dispersion gives the analogous envelope.
func ComputeBands(s model.Series, hasVolume bool, p BandParams) (model.BandResult, error) {
	method := p.Method
	if method == "" {
		if hasVolume {
			method = model.BandVWAP
		} else {
			method = model.BandSMAATR
		}
	}

	var center, dispersion float64
	var levels []float64
	switch method {
	case model.BandVWAP:
		vwap, sigma, err := calculator.CalculateVWAP(s.Points)
		if err != nil {
			return model.BandResult{}, err
		}
		center, dispersion, levels = vwap, sigma, p.SigmaLevels
	default:
		sma, err := calculator.CalculateSMA(closeColumn(s), p.Window)
		if err != nil {
			return model.BandResult{}, err
		}
		atr, err := calculator.CalculateATR(s.Points, p.Window)
		if err != nil {
			return model.BandResult{}, err
		}
		center, dispersion, levels = sma, atr, p.ATRLevels
	}

	upper := make([]float64, len(levels))
	lower := make([]float64, len(levels))
	for i, l := range levels {
		upper[i] = center + l*dispersion
		lower[i] = center - l*dispersion
	}

	return model.BandResult{
		Method:     method,
		Center:     center,
		UpperBands: upper,
		LowerBands: lower,
		Zone:       classifyZone(s.Last().Close, upper, lower),
	}, nil
}

// classifyZone places a close into one of five zones: above all bands,
// inside the upper ladder, around the center, inside the lower ladder,
// below all bands.
func classifyZone(close float64, upper, lower []float64) model.BandZone {
	innerU, outerU := upper[0], upper[len(upper)-1]
	innerL, outerL := lower[0], lower[len(lower)-1]
	switch {
	case close > outerU:
		return model.ZoneAboveBands
	case close > innerU:
		return model.ZoneUpperBand
	case close < outerL:
		return model.ZoneBelowBands
	case close < innerL:
		return model.ZoneLowerBand
	default:
		return model.ZoneNearCenter
	}
}

func closeColumn(s model.Series) []float64 {
	closes := make([]float64, s.Len())
	for i, b := range s.Points {
		closes[i] = b.Close
	}
	return closes
}
