package indicators

import (
	"math"
	"testing"
	"time"

	"github.com/ashik160799-create/Gold-XAU-USD/internal/market"
)

func flatSeries(n int, price float64) *market.Series {
	candles := make([]market.Candle, n)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range candles {
		candles[i] = market.Candle{
			Time:   start.Add(time.Duration(i) * time.Hour),
			Open:   price,
			High:   price,
			Low:    price,
			Close:  price,
			Volume: 1000,
		}
	}
	return &market.Series{Timeframe: market.TF1h, Candles: candles}
}

func risingSeries(n int) *market.Series {
	candles := make([]market.Candle, n)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range candles {
		close := 100 + float64(i)*0.5
		open := close - 0.4
		candles[i] = market.Candle{
			Time:   start.Add(time.Duration(i) * time.Hour),
			Open:   open,
			High:   close + 0.1,
			Low:    open - 0.1,
			Close:  close,
			Volume: 1000,
		}
	}
	return &market.Series{Timeframe: market.TF1h, Candles: candles}
}

func TestFlatSeriesNeutral(t *testing.T) {
	snap := Compute(flatSeries(250, 2000))

	if !snap.RSI.Defined() || snap.RSI.Float() != 50 {
		t.Errorf("flat series RSI should be neutral 50, got %+v", snap.RSI)
	}
	if !snap.EMAShort.Defined() || math.Abs(snap.EMAShort.Float()-2000) > 1e-9 {
		t.Errorf("flat series EMA should equal the close, got %v", snap.EMAShort.Float())
	}
	if !snap.EMAVeryLong.Defined() || math.Abs(snap.EMAVeryLong.Float()-2000) > 1e-9 {
		t.Errorf("flat series EMA200 should equal the close, got %v", snap.EMAVeryLong.Float())
	}
	if !snap.ATR.Defined() || snap.ATR.Float() != 0 {
		t.Errorf("flat series ATR should be 0, got %+v", snap.ATR)
	}
	if !snap.StochK.Defined() || snap.StochK.Float() != 50 {
		t.Errorf("flat window stochastic should resolve to neutral 50, got %+v", snap.StochK)
	}
	if !snap.VWAP.Defined() || math.Abs(snap.VWAP.Float()-2000) > 1e-9 {
		t.Errorf("flat series VWAP should equal the close, got %v", snap.VWAP.Float())
	}
	if snap.MACDHist.Float() != 0 {
		t.Errorf("flat series MACD histogram should be 0, got %v", snap.MACDHist.Float())
	}
	if snap.Delta.Float() != 0 || snap.DeltaOfDelta.Float() != 0 {
		t.Error("flat series should have zero delta and acceleration")
	}
}

func TestRisingSeriesBullish(t *testing.T) {
	snap := Compute(risingSeries(260))

	if snap.RSI.Float() != 100 {
		t.Errorf("loss-free window should give RSI 100, got %v", snap.RSI.Float())
	}
	if !snap.EMAShort.GreaterThan(snap.EMAMedium) ||
		!snap.EMAMedium.GreaterThan(snap.EMALong) ||
		!snap.EMALong.GreaterThan(snap.EMAVeryLong) {
		t.Error("rising series should order EMAs short > medium > long > very-long")
	}
	if !snap.MACD.GreaterThan(snap.MACDSignal) {
		t.Error("rising series should hold MACD above its signal line")
	}
	if snap.StochK.Float() < 90 {
		t.Errorf("rising series %%K should be near the top of the range, got %v", snap.StochK.Float())
	}
	if !snap.ATR.Defined() || snap.ATR.Float() <= 0 {
		t.Errorf("rising series ATR should be positive, got %+v", snap.ATR)
	}
	if snap.Delta.Float() <= 0 {
		t.Errorf("rising series delta should be positive, got %v", snap.Delta.Float())
	}
	if math.Abs(snap.DeltaOfDelta.Float()) > 1e-9 {
		t.Errorf("linear rise should have zero acceleration, got %v", snap.DeltaOfDelta.Float())
	}
}

func TestShortHistoryUndefined(t *testing.T) {
	snap := Compute(flatSeries(5, 2000))

	if snap.EMAShort.Defined() {
		t.Error("EMA9 should be undefined with 5 candles")
	}
	if snap.RSI.Defined() {
		t.Error("RSI14 should be undefined with 5 candles")
	}
	if snap.ATR.Defined() {
		t.Error("ATR14 should be undefined with 5 candles")
	}
	if snap.MACD.Defined() {
		t.Error("MACD should be undefined with 5 candles")
	}
	if !snap.Delta.Defined() {
		t.Error("delta only needs 2 closes")
	}
}

func TestPartialWarmup(t *testing.T) {
	snap := Compute(flatSeries(100, 2000))

	if !snap.EMALong.Defined() {
		t.Error("EMA50 should be defined with 100 candles")
	}
	if snap.EMAVeryLong.Defined() {
		t.Error("EMA200 must stay undefined until 200 candles exist")
	}
}

func TestEMASeedIsSMA(t *testing.T) {
	closes := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	got := emaLast(closes, 9)
	if !got.Defined() || math.Abs(got.Float()-5) > 1e-9 {
		t.Errorf("EMA at exactly period closes should equal the SMA seed 5, got %+v", got)
	}
}

func TestRSILossOnly(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100 - float64(i)
	}
	got := rsi(closes, PeriodRSI)
	if got.Float() != 0 {
		t.Errorf("gain-free window should give RSI 0, got %v", got.Float())
	}
}

func TestVWAPZeroVolumeUndefined(t *testing.T) {
	s := flatSeries(40, 2000)
	for i := range s.Candles {
		s.Candles[i].Volume = 0
	}
	snap := Compute(s)
	if snap.VWAP.Defined() {
		t.Error("VWAP should be undefined when the window has no volume")
	}
}

func TestComputeIsStateless(t *testing.T) {
	s := risingSeries(220)
	a := Compute(s)
	b := Compute(s)
	if a != b {
		t.Error("recomputing the same series must give an identical snapshot")
	}
}
