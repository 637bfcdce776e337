package scoring

import "fmt"

// Action is the final trading decision for one timeframe
type Action string

const (
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
	ActionWait Action = "WAIT"
)

// Trend is a coarse direction used by trend layering and HTF confirmation
type Trend string

const (
	TrendBullish Trend = "bullish"
	TrendBearish Trend = "bearish"
	TrendNeutral Trend = "neutral"
)

// FactorKind tags one contribution to the score
type FactorKind string

const (
	FactorTrend          FactorKind = "trend"
	FactorMomentum       FactorKind = "momentum"
	FactorAcceleration   FactorKind = "acceleration"
	FactorVolatilityTrap FactorKind = "volatility_trap"
	FactorWickAnomaly    FactorKind = "wick_anomaly"
	FactorLiquidityGrab  FactorKind = "liquidity_grab"
	FactorVolumeSpike    FactorKind = "volume_spike"
	FactorCorrelation    FactorKind = "correlation"
	FactorHTF            FactorKind = "htf"
	FactorSession        FactorKind = "session"
	FactorData           FactorKind = "data"
)

// Factor is one tagged contribution to the decision. Additive factors carry
// their point contribution in Weight; scaling factors carry the multiplier,
// which the Detail text makes explicit. Factors stay structured through the
// whole pipeline and are rendered to text only at the output boundary.
type Factor struct {
	Kind      FactorKind `json:"kind"`
	Direction Trend      `json:"direction"`
	Weight    float64    `json:"weight"`
	Detail    string     `json:"detail"`
}

// String renders the factor for human-readable reason lists
func (f Factor) String() string {
	return fmt.Sprintf("%s %s: %s", f.Kind, f.Direction, f.Detail)
}
