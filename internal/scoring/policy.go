package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/ashik160799-create/Gold-XAU-USD/internal/anomaly"
	"github.com/ashik160799-create/Gold-XAU-USD/internal/indicators"
	"github.com/ashik160799-create/Gold-XAU-USD/internal/market"
)

// Weights holds every fixed constant of the decision policy. The engine
// never adapts these at runtime.
type Weights struct {
	TrendFull     float64 // all three EMA pairs agree
	TrendMajority float64 // two of three agree
	TrendWeak     float64 // single-pair lean

	MomentumFull     float64 // RSI, stochastic and MACD agree
	MomentumMajority float64 // two of three agree

	Acceleration float64

	WickAnomaly   float64
	LiquidityGrab float64
	VolumeSpike   float64

	CorrelationDamp float64 // per broken companion relationship

	HTFBoost        float64
	HTFConflictDamp float64
	HTFNeutralDamp  float64

	TrapBodyATR float64 // candle body beyond this many ATRs forces WAIT

	RSIBullish      float64
	RSIBearish      float64
	StochOverbought float64
	StochOversold   float64

	BuyThreshold     float64
	SellThreshold    float64
	StrongConfidence float64 // next-candle prediction and wide-bracket tier

	StopATR         float64
	TargetATR       float64
	StrongStopATR   float64
	StrongTargetATR float64
}

// DefaultWeights returns the production constants
func DefaultWeights() Weights {
	return Weights{
		TrendFull:     20,
		TrendMajority: 12,
		TrendWeak:     4,

		MomentumFull:     15,
		MomentumMajority: 8,

		Acceleration: 5,

		WickAnomaly:   10,
		LiquidityGrab: 8,
		VolumeSpike:   10,

		CorrelationDamp: 0.65,

		HTFBoost:        10,
		HTFConflictDamp: 0.4,
		HTFNeutralDamp:  0.85,

		TrapBodyATR: 3.0,

		RSIBullish:      55,
		RSIBearish:      45,
		StochOverbought: 80,
		StochOversold:   20,

		BuyThreshold:     65,
		SellThreshold:    35,
		StrongConfidence: 70,

		StopATR:         1.5,
		TargetATR:       3.0,
		StrongStopATR:   2.0,
		StrongTargetATR: 4.5,
	}
}

// Input is everything the policy needs for one decision. It is assembled by
// the analysis engine; the policy itself holds no state and reads nothing
// else, so identical inputs always produce identical outcomes.
type Input struct {
	Last market.Candle
	Snap indicators.Snapshot

	Wick   anomaly.WickFlag
	Grab   anomaly.GrabFlag
	Volume anomaly.VolumeFlag

	// Companion relationships that broke, by display name, plus the hard
	// shock lock from the strongest companion
	CorrelationViolations []string
	CorrelationLock       bool

	HTF Trend // neutral when the higher timeframe is short or missing

	SessionName       string
	SessionMultiplier float64 // <= 0 means no session weighting
}

// Outcome is the single decision for one timeframe
type Outcome struct {
	Action     Action
	Confidence float64 // always in [0, 100]
	NextCandle Action
	Factors    []Factor
	Locked     bool
}

// Policy reduces an Input to one Outcome using fixed weights
type Policy struct {
	w Weights
}

// NewPolicy creates a policy with the given weights
func NewPolicy(w Weights) *Policy {
	return &Policy{w: w}
}

// Weights exposes the active constants, used by the trade guide builder
func (p *Policy) Weights() Weights {
	return p.w
}

// Evaluate runs the scoring pipeline. The running score starts at 0
// (neutral) and each stage adds or scales it; the final confidence is
// 50 + score clamped to [0, 100].
func (p *Policy) Evaluate(in Input) Outcome {
	var (
		score   float64
		factors []Factor
		locked  bool
	)

	trendDir, trendScore, trendFactor := p.trendLayering(in.Snap)
	if trendFactor != nil {
		score += trendScore
		factors = append(factors, *trendFactor)
	}

	momScore, momFactor := p.momentumTrio(in.Snap)
	if momFactor != nil {
		score += momScore
		factors = append(factors, *momFactor)
	}

	if f := p.acceleration(in.Snap, trendDir); f != nil {
		score += f.Weight
		factors = append(factors, *f)
	}

	// A body several ATRs wide is a suspected news spike whose direction is
	// unreliable. It wipes the score and locks the decision to WAIT before
	// any further adjustment can run.
	if trapped, f := p.volatilityTrap(in.Last, in.Snap); trapped {
		return p.finalize(0, true, append(factors, *f), in)
	}

	score, factors = p.anomalies(in, score, factors)
	score, factors, locked = p.correlation(in, score, factors)
	score, factors = p.higherTimeframe(in, score, factors)
	score, factors = p.sessionWeighting(in, score, factors)

	return p.finalize(score, locked, factors, in)
}

func (p *Policy) finalize(score float64, locked bool, factors []Factor, in Input) Outcome {
	confidence := clamp(50+score, 0, 100)

	action := ActionWait
	switch {
	case locked:
		action = ActionWait
	case confidence >= p.w.BuyThreshold:
		action = ActionBuy
	case confidence <= p.w.SellThreshold:
		action = ActionSell
	}

	next := ActionWait
	if !locked {
		if confidence > p.w.StrongConfidence {
			next = ActionBuy
		} else if confidence < 100-p.w.StrongConfidence {
			next = ActionSell
		}
	}

	return Outcome{
		Action:     action,
		Confidence: confidence,
		NextCandle: next,
		Factors:    factors,
		Locked:     locked,
	}
}

// trendLayering compares the EMA ladder pairwise: short/medium, medium/long,
// long/very-long. Pairs with an undefined side are dropped, which naturally
// downgrades the bonus tier on short histories.
func (p *Policy) trendLayering(snap indicators.Snapshot) (Trend, float64, *Factor) {
	pairs := [][2]indicators.Value{
		{snap.EMAShort, snap.EMAMedium},
		{snap.EMAMedium, snap.EMALong},
		{snap.EMALong, snap.EMAVeryLong},
	}

	var bull, bear int
	for _, pair := range pairs {
		if pair[0].GreaterThan(pair[1]) {
			bull++
		} else if pair[0].LessThan(pair[1]) {
			bear++
		}
	}

	var (
		dir    Trend
		points float64
		count  int
	)
	switch {
	case bull > bear:
		dir, count = TrendBullish, bull
		points = p.trendPoints(bull)
	case bear > bull:
		dir, count = TrendBearish, bear
		points = -p.trendPoints(bear)
	default:
		return TrendNeutral, 0, nil
	}

	return dir, points, &Factor{
		Kind:      FactorTrend,
		Direction: dir,
		Weight:    points,
		Detail:    fmt.Sprintf("%d of 3 EMA layers aligned %s", count, dir),
	}
}

func (p *Policy) trendPoints(aligned int) float64 {
	switch aligned {
	case 3:
		return p.w.TrendFull
	case 2:
		return p.w.TrendMajority
	default:
		return p.w.TrendWeak
	}
}

// momentumTrio takes a majority vote across RSI, stochastic and MACD.
// Undefined indicators abstain; the stochastic abstains when already
// overbought or oversold.
func (p *Policy) momentumTrio(snap indicators.Snapshot) (float64, *Factor) {
	var bull, bear int

	if snap.RSI.Defined() {
		switch {
		case snap.RSI.Float() > p.w.RSIBullish:
			bull++
		case snap.RSI.Float() < p.w.RSIBearish:
			bear++
		}
	}

	if snap.StochK.Defined() && snap.StochD.Defined() {
		k := snap.StochK.Float()
		switch {
		case snap.StochK.GreaterThan(snap.StochD) && k < p.w.StochOverbought:
			bull++
		case snap.StochK.LessThan(snap.StochD) && k > p.w.StochOversold:
			bear++
		}
	}

	if snap.MACD.Defined() && snap.MACDSignal.Defined() {
		if snap.MACD.GreaterThan(snap.MACDSignal) {
			bull++
		} else if snap.MACD.LessThan(snap.MACDSignal) {
			bear++
		}
	}

	var (
		dir    Trend
		points float64
		votes  int
	)
	switch {
	case bull >= 2 && bull > bear:
		dir, votes = TrendBullish, bull
		points = p.momentumPoints(bull)
	case bear >= 2 && bear > bull:
		dir, votes = TrendBearish, bear
		points = -p.momentumPoints(bear)
	default:
		return 0, nil
	}

	return points, &Factor{
		Kind:      FactorMomentum,
		Direction: dir,
		Weight:    points,
		Detail:    fmt.Sprintf("%d of 3 momentum signals %s", votes, dir),
	}
}

func (p *Policy) momentumPoints(votes int) float64 {
	if votes >= 3 {
		return p.w.MomentumFull
	}
	return p.w.MomentumMajority
}

// acceleration adds a small bonus when price acceleration agrees with the
// trend direction. Disagreement is ignored, not penalized.
func (p *Policy) acceleration(snap indicators.Snapshot, trendDir Trend) *Factor {
	if !snap.DeltaOfDelta.Defined() || trendDir == TrendNeutral {
		return nil
	}

	dod := snap.DeltaOfDelta.Float()
	if trendDir == TrendBullish && dod > 0 {
		return &Factor{
			Kind: FactorAcceleration, Direction: TrendBullish,
			Weight: p.w.Acceleration, Detail: "price acceleration confirms the uptrend",
		}
	}
	if trendDir == TrendBearish && dod < 0 {
		return &Factor{
			Kind: FactorAcceleration, Direction: TrendBearish,
			Weight: -p.w.Acceleration, Detail: "price acceleration confirms the downtrend",
		}
	}
	return nil
}

func (p *Policy) volatilityTrap(last market.Candle, snap indicators.Snapshot) (bool, *Factor) {
	if !snap.ATR.Defined() || snap.ATR.Float() <= 0 {
		return false, nil
	}

	body := math.Abs(last.Body())
	limit := p.w.TrapBodyATR * snap.ATR.Float()
	if body <= limit {
		return false, nil
	}

	return true, &Factor{
		Kind:      FactorVolatilityTrap,
		Direction: TrendNeutral,
		Detail: fmt.Sprintf("candle body %.2f exceeds %.1fx ATR, suspected news spike",
			body, p.w.TrapBodyATR),
	}
}

func (p *Policy) anomalies(in Input, score float64, factors []Factor) (float64, []Factor) {
	switch in.Wick {
	case anomaly.WickBullishRejection:
		score += p.w.WickAnomaly
		factors = append(factors, Factor{
			Kind: FactorWickAnomaly, Direction: TrendBullish,
			Weight: p.w.WickAnomaly, Detail: "abnormal lower wick, sellers rejected",
		})
	case anomaly.WickBearishRejection:
		score -= p.w.WickAnomaly
		factors = append(factors, Factor{
			Kind: FactorWickAnomaly, Direction: TrendBearish,
			Weight: -p.w.WickAnomaly, Detail: "abnormal upper wick, buyers rejected",
		})
	}

	switch in.Grab {
	case anomaly.GrabBullish:
		score += p.w.LiquidityGrab
		factors = append(factors, Factor{
			Kind: FactorLiquidityGrab, Direction: TrendBullish,
			Weight: p.w.LiquidityGrab, Detail: "stop-hunt below the prior low reversed",
		})
	case anomaly.GrabBearish:
		score -= p.w.LiquidityGrab
		factors = append(factors, Factor{
			Kind: FactorLiquidityGrab, Direction: TrendBearish,
			Weight: -p.w.LiquidityGrab, Detail: "failed breakout above the prior high",
		})
	}

	switch in.Volume {
	case anomaly.VolumeBullishSpike:
		score += p.w.VolumeSpike
		factors = append(factors, Factor{
			Kind: FactorVolumeSpike, Direction: TrendBullish,
			Weight: p.w.VolumeSpike, Detail: "volume spike behind the up move",
		})
	case anomaly.VolumeBearishSpike:
		score -= p.w.VolumeSpike
		factors = append(factors, Factor{
			Kind: FactorVolumeSpike, Direction: TrendBearish,
			Weight: -p.w.VolumeSpike, Detail: "volume spike behind the down move",
		})
	}

	return score, factors
}

func (p *Policy) correlation(in Input, score float64, factors []Factor) (float64, []Factor, bool) {
	for _, name := range in.CorrelationViolations {
		score *= p.w.CorrelationDamp
		factors = append(factors, Factor{
			Kind: FactorCorrelation, Direction: TrendNeutral,
			Weight: p.w.CorrelationDamp,
			Detail: fmt.Sprintf("%s broke its expected relationship, score scaled by %.2f",
				name, p.w.CorrelationDamp),
		})
	}

	if in.CorrelationLock {
		factors = append(factors, Factor{
			Kind: FactorCorrelation, Direction: TrendNeutral,
			Detail: "dollar index shock, decision locked to WAIT",
		})
		return score, factors, true
	}
	return score, factors, false
}

func (p *Policy) higherTimeframe(in Input, score float64, factors []Factor) (float64, []Factor) {
	switch {
	case in.HTF == TrendNeutral:
		score *= p.w.HTFNeutralDamp
		factors = append(factors, Factor{
			Kind: FactorHTF, Direction: TrendNeutral,
			Weight: p.w.HTFNeutralDamp,
			Detail: "higher timeframe undecided, score dampened",
		})
	case agreesWith(in.HTF, score):
		boost := p.w.HTFBoost
		if in.HTF == TrendBearish {
			boost = -boost
		}
		score += boost
		factors = append(factors, Factor{
			Kind: FactorHTF, Direction: in.HTF,
			Weight: boost,
			Detail: fmt.Sprintf("higher timeframe confirms the %s bias", in.HTF),
		})
	default:
		// Conflict penalizes confidence hard but never flips the sign
		score *= p.w.HTFConflictDamp
		factors = append(factors, Factor{
			Kind: FactorHTF, Direction: in.HTF,
			Weight: p.w.HTFConflictDamp,
			Detail: fmt.Sprintf("higher timeframe is %s against this signal", in.HTF),
		})
	}
	return score, factors
}

func agreesWith(htf Trend, score float64) bool {
	return (htf == TrendBullish && score > 0) || (htf == TrendBearish && score < 0)
}

func (p *Policy) sessionWeighting(in Input, score float64, factors []Factor) (float64, []Factor) {
	if in.SessionMultiplier <= 0 || in.SessionMultiplier == 1 {
		return score, factors
	}

	score *= in.SessionMultiplier
	factors = append(factors, Factor{
		Kind: FactorSession, Direction: TrendNeutral,
		Weight: in.SessionMultiplier,
		Detail: fmt.Sprintf("%s session, signal weighted x%.1f",
			strings.TrimSpace(in.SessionName), in.SessionMultiplier),
	})
	return score, factors
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
