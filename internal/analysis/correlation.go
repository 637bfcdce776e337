package analysis

import (
	"math"

	"github.com/ashik160799-create/Gold-XAU-USD/internal/market"
)

// Companions holds whatever cross-asset series were available this request.
// Any of the fields may be nil; a missing companion simply skips its
// adjustment.
type Companions struct {
	DollarIndex *market.Series
	Oil         *market.Series
	Yield       *market.Series
}

// Assessment is the correlation adjuster's verdict
type Assessment struct {
	// Violations names companions whose last move broke the expected
	// relationship with gold
	Violations []string

	// ShockLock is set on an outsized single-step dollar-index move and
	// forces the decision to WAIT regardless of score
	ShockLock bool
}

// Adjuster checks gold's last move against its companion assets. The
// relationships are loose heuristics, not statistically fit: the dollar
// index and the 10-year yield move inverse to gold, oil moves with it.
type Adjuster struct {
	// DXYShockThreshold is the absolute single-candle close change that
	// counts as a volatility shock
	DXYShockThreshold float64
}

// NewAdjuster creates an adjuster with the standard shock threshold
func NewAdjuster() *Adjuster {
	return &Adjuster{DXYShockThreshold: 0.15}
}

// Assess compares the asset's last candle direction with each available
// companion
func (a *Adjuster) Assess(asset market.Candle, companions Companions) Assessment {
	var out Assessment

	assetDir := direction(asset)
	if assetDir != 0 {
		checks := []struct {
			series  *market.Series
			name    string
			inverse bool
		}{
			{companions.DollarIndex, "dollar index", true},
			{companions.Yield, "10-year yield", true},
			{companions.Oil, "oil", false},
		}
		for _, chk := range checks {
			if chk.series.Len() == 0 {
				continue
			}
			compDir := direction(chk.series.Last())
			if compDir == 0 {
				continue
			}
			broken := (chk.inverse && compDir == assetDir) ||
				(!chk.inverse && compDir != assetDir)
			if broken {
				out.Violations = append(out.Violations, chk.name)
			}
		}
	}

	// The shock check is independent of direction agreement
	if dxy := companions.DollarIndex; dxy.Len() >= 2 {
		candles := dxy.Candles
		step := math.Abs(candles[len(candles)-1].Close - candles[len(candles)-2].Close)
		if step > a.DXYShockThreshold {
			out.ShockLock = true
		}
	}

	return out
}

// direction is the sign of a candle's body: +1 up, -1 down, 0 flat
func direction(c market.Candle) int {
	switch {
	case c.Close > c.Open:
		return 1
	case c.Close < c.Open:
		return -1
	default:
		return 0
	}
}
