package indicators

import (
	"math"

	"github.com/ashik160799-create/Gold-XAU-USD/internal/market"
)

// Indicator periods. The EMA ladder runs short to very-long and is compared
// pairwise by the scoring policy.
const (
	PeriodEMAShort    = 9
	PeriodEMAMedium   = 21
	PeriodEMALong     = 50
	PeriodEMAVeryLong = 200

	PeriodRSI        = 14
	PeriodMACDFast   = 12
	PeriodMACDSlow   = 26
	PeriodMACDSignal = 9
	PeriodStoch      = 14
	PeriodStochD     = 3
	PeriodATR        = 14
	PeriodVWAP       = 30
)

// Snapshot holds every indicator for the last candle of a series. Each field
// is optional: a window longer than the available history leaves the field
// undefined rather than defaulting it to a number.
type Snapshot struct {
	EMAShort    Value
	EMAMedium   Value
	EMALong     Value
	EMAVeryLong Value

	RSI Value

	MACD       Value
	MACDSignal Value
	MACDHist   Value

	StochK Value
	StochD Value

	ATR  Value
	VWAP Value

	Delta        Value
	DeltaOfDelta Value
}

// Compute derives a full Snapshot from a series. It recomputes everything
// from scratch on every call and retains no state between calls, so two
// calls over the same series produce identical snapshots.
func Compute(s *market.Series) Snapshot {
	if s.Len() == 0 {
		return Snapshot{}
	}

	closes := s.Closes()
	candles := s.Candles

	var snap Snapshot
	snap.EMAShort = emaLast(closes, PeriodEMAShort)
	snap.EMAMedium = emaLast(closes, PeriodEMAMedium)
	snap.EMALong = emaLast(closes, PeriodEMALong)
	snap.EMAVeryLong = emaLast(closes, PeriodEMAVeryLong)

	snap.RSI = rsi(closes, PeriodRSI)
	snap.MACD, snap.MACDSignal, snap.MACDHist = macd(closes)
	snap.StochK, snap.StochD = stochastic(candles)
	snap.ATR = atr(candles, PeriodATR)
	snap.VWAP = vwap(candles, PeriodVWAP)
	snap.Delta, snap.DeltaOfDelta = deltas(closes)

	return snap
}

// emaSeries returns the EMA sequence for the given period, seeded with the
// SMA of the first period values. Entries before index period-1 are not
// meaningful. Returns nil when fewer than period values exist.
func emaSeries(values []float64, period int) []float64 {
	if len(values) < period {
		return nil
	}

	out := make([]float64, len(values))
	sum := 0.0
	for i := 0; i < period; i++ {
		sum += values[i]
	}
	out[period-1] = sum / float64(period)

	k := 2.0 / float64(period+1)
	for i := period; i < len(values); i++ {
		out[i] = values[i]*k + out[i-1]*(1-k)
	}
	return out
}

func emaLast(values []float64, period int) Value {
	series := emaSeries(values, period)
	if series == nil {
		return None()
	}
	return Some(series[len(series)-1])
}

// rsi uses simple trailing-window averages of gains and losses (Cutler's
// method). A flat window resolves to the neutral 50, and a loss-free window
// to 100, so the result is always a real number in [0, 100].
func rsi(closes []float64, period int) Value {
	if len(closes) < period+1 {
		return None()
	}

	var gain, loss float64
	for i := len(closes) - period; i < len(closes); i++ {
		d := closes[i] - closes[i-1]
		if d > 0 {
			gain += d
		} else {
			loss -= d
		}
	}
	avgGain := gain / float64(period)
	avgLoss := loss / float64(period)

	switch {
	case avgGain == 0 && avgLoss == 0:
		return Some(50)
	case avgLoss == 0:
		return Some(100)
	}
	rs := avgGain / avgLoss
	return Some(100 - 100/(1+rs))
}

func macd(closes []float64) (line, signal, hist Value) {
	fast := emaSeries(closes, PeriodMACDFast)
	slow := emaSeries(closes, PeriodMACDSlow)
	if slow == nil {
		return None(), None(), None()
	}

	// MACD points exist from the first index where the slow EMA is seeded
	start := PeriodMACDSlow - 1
	points := make([]float64, 0, len(closes)-start)
	for i := start; i < len(closes); i++ {
		points = append(points, fast[i]-slow[i])
	}
	line = Some(points[len(points)-1])

	sig := emaSeries(points, PeriodMACDSignal)
	if sig == nil {
		return line, None(), None()
	}
	s := sig[len(sig)-1]
	return line, Some(s), Some(line.Float() - s)
}

func stochastic(candles []market.Candle) (k, d Value) {
	if len(candles) < PeriodStoch {
		return None(), None()
	}

	// %K for the window ending at index end; a zero-range (flat) window is
	// treated as neutral 50 rather than dividing by zero
	kAt := func(end int) float64 {
		lo := math.Inf(1)
		hi := math.Inf(-1)
		for i := end - PeriodStoch + 1; i <= end; i++ {
			lo = math.Min(lo, candles[i].Low)
			hi = math.Max(hi, candles[i].High)
		}
		if hi == lo {
			return 50
		}
		return 100 * (candles[end].Close - lo) / (hi - lo)
	}

	last := len(candles) - 1
	k = Some(kAt(last))

	if len(candles) < PeriodStoch+PeriodStochD-1 {
		return k, None()
	}
	sum := 0.0
	for i := 0; i < PeriodStochD; i++ {
		sum += kAt(last - i)
	}
	return k, Some(sum / PeriodStochD)
}

// atr is a simple rolling mean of the true range over the trailing period
// (not Wilder smoothing). Needs period+1 candles for the first previous
// close.
func atr(candles []market.Candle, period int) Value {
	if len(candles) < period+1 {
		return None()
	}

	sum := 0.0
	for i := len(candles) - period; i < len(candles); i++ {
		sum += trueRange(candles[i], candles[i-1])
	}
	return Some(sum / float64(period))
}

func trueRange(c, prev market.Candle) float64 {
	tr := c.High - c.Low
	tr = math.Max(tr, math.Abs(c.High-prev.Close))
	return math.Max(tr, math.Abs(c.Low-prev.Close))
}

func vwap(candles []market.Candle, period int) Value {
	if len(candles) < period {
		return None()
	}

	var pv, vol float64
	for i := len(candles) - period; i < len(candles); i++ {
		c := candles[i]
		typical := (c.High + c.Low + c.Close) / 3
		pv += typical * c.Volume
		vol += c.Volume
	}
	if vol == 0 {
		return None()
	}
	return Some(pv / vol)
}

func deltas(closes []float64) (delta, deltaOfDelta Value) {
	n := len(closes)
	if n < 2 {
		return None(), None()
	}
	d := closes[n-1] - closes[n-2]
	delta = Some(d)

	if n < 3 {
		return delta, None()
	}
	prev := closes[n-2] - closes[n-3]
	return delta, Some(d - prev)
}
