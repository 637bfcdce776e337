package anomaly

import (
	"github.com/ashik160799-create/Gold-XAU-USD/internal/indicators"
	"github.com/ashik160799-create/Gold-XAU-USD/internal/market"
)

// WickFlag marks an abnormal rejection wick on the current candle
type WickFlag string

// GrabFlag marks a liquidity-sweep candle (stop-hunt through a recent
// swing level that fails to hold)
type GrabFlag string

// VolumeFlag marks a volume spike confirming the candle's direction
type VolumeFlag string

const (
	WickNone             WickFlag = "none"
	WickBullishRejection WickFlag = "bullish_rejection"
	WickBearishRejection WickFlag = "bearish_rejection"

	GrabNone    GrabFlag = "none"
	GrabBullish GrabFlag = "bullish_grab"
	GrabBearish GrabFlag = "bearish_grab"

	VolumeNone         VolumeFlag = "none"
	VolumeBullishSpike VolumeFlag = "bullish_spike"
	VolumeBearishSpike VolumeFlag = "bearish_spike"
)

// Report carries the anomaly dimensions. They are orthogonal: a candle can
// be flagged on any combination of them.
type Report struct {
	Wick   WickFlag
	Grab   GrabFlag
	Volume VolumeFlag
}

// Detector flags abnormal wicks and liquidity grabs against a candle series
type Detector struct {
	wickRatio    float64 // current wick vs trailing mean wick
	wickATRFloor float64 // current wick vs ATR, filters noise on quiet charts
	wickLookback int
	wickMinBars  int
	grabLookback int
	grabMinBars  int
	volumeRatio  float64 // current volume vs trailing mean volume
	volLookback  int
	volMinBars   int
}

// NewDetector creates a detector with the standard thresholds
func NewDetector() *Detector {
	return &Detector{
		wickRatio:    2.5,
		wickATRFloor: 0.5,
		wickLookback: 10,
		wickMinBars:  15,
		grabLookback: 3,
		grabMinBars:  5,
		volumeRatio:  1.5,
		volLookback:  20,
		volMinBars:   21,
	}
}

// Detect evaluates the last candle of the series. Series too short for a
// given check simply report no flag for it.
func (d *Detector) Detect(s *market.Series, atr indicators.Value) Report {
	return Report{
		Wick:   d.detectWick(s, atr),
		Grab:   d.detectGrab(s),
		Volume: d.detectVolume(s),
	}
}

func (d *Detector) detectWick(s *market.Series, atr indicators.Value) WickFlag {
	if s.Len() < d.wickMinBars || !atr.Defined() {
		return WickNone
	}

	candles := s.Candles
	n := len(candles)
	cur := candles[n-1]

	// Trailing means exclude the candle under test
	var upperSum, lowerSum float64
	for i := n - 1 - d.wickLookback; i < n-1; i++ {
		upperSum += candles[i].UpperWick()
		lowerSum += candles[i].LowerWick()
	}
	meanUpper := upperSum / float64(d.wickLookback)
	meanLower := lowerSum / float64(d.wickLookback)
	atrFloor := d.wickATRFloor * atr.Float()

	if cur.UpperWick() > d.wickRatio*meanUpper && cur.UpperWick() > atrFloor {
		return WickBearishRejection
	}
	if cur.LowerWick() > d.wickRatio*meanLower && cur.LowerWick() > atrFloor {
		return WickBullishRejection
	}
	return WickNone
}

func (d *Detector) detectGrab(s *market.Series) GrabFlag {
	if s.Len() < d.grabMinBars {
		return GrabNone
	}

	candles := s.Candles
	n := len(candles)
	cur := candles[n-1]

	priorHigh := candles[n-2].High
	priorLow := candles[n-2].Low
	for i := n - 1 - d.grabLookback; i < n-1; i++ {
		if candles[i].High > priorHigh {
			priorHigh = candles[i].High
		}
		if candles[i].Low < priorLow {
			priorLow = candles[i].Low
		}
	}

	// Failed breakout: the wick sweeps the level but the close gives it back
	if cur.High > priorHigh && cur.Close < priorHigh && cur.IsBearish() {
		return GrabBearish
	}
	if cur.Low < priorLow && cur.Close > priorLow && cur.IsBullish() {
		return GrabBullish
	}
	return GrabNone
}

// detectVolume flags participation spikes: volume well above its trailing
// mean confirms the direction the candle moved in. Flat candles and dead
// charts report nothing.
func (d *Detector) detectVolume(s *market.Series) VolumeFlag {
	if s.Len() < d.volMinBars {
		return VolumeNone
	}

	candles := s.Candles
	n := len(candles)
	cur := candles[n-1]

	// Trailing mean excludes the candle under test
	var sum float64
	for i := n - 1 - d.volLookback; i < n-1; i++ {
		sum += candles[i].Volume
	}
	mean := sum / float64(d.volLookback)
	if mean <= 0 || cur.Volume <= d.volumeRatio*mean {
		return VolumeNone
	}

	switch {
	case cur.IsBullish():
		return VolumeBullishSpike
	case cur.IsBearish():
		return VolumeBearishSpike
	default:
		return VolumeNone
	}
}
