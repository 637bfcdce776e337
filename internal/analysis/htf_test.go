package analysis

import (
	"testing"
	"time"

	"github.com/ashik160799-create/Gold-XAU-USD/internal/market"
	"github.com/ashik160799-create/Gold-XAU-USD/internal/scoring"
)

func trendSeries(t *testing.T, n int, step float64) *market.Series {
	t.Helper()
	base := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	candles := make([]market.Candle, n)
	price := 2000.0
	for i := range candles {
		next := price + step
		candles[i] = market.Candle{
			Time:   base.Add(time.Duration(i) * time.Hour),
			Open:   price,
			High:   max(price, next) + 0.5,
			Low:    min(price, next) - 0.5,
			Close:  next,
			Volume: 1000,
		}
		price = next
	}
	s, err := market.NewSeries(market.TF4h, candles)
	if err != nil {
		t.Fatalf("NewSeries: %v", err)
	}
	return s
}

func TestHigherTimeframeMap(t *testing.T) {
	tests := []struct {
		tf     market.Timeframe
		want   market.Timeframe
		hasHTF bool
	}{
		{market.TF1m, market.TF15m, true},
		{market.TF5m, market.TF1h, true},
		{market.TF15m, market.TF4h, true},
		{market.TF1h, market.TF4h, true},
		{market.TF2h, market.TF1d, true},
		{market.TF4h, market.TF1d, true},
		{market.TF1d, market.TF1wk, true},
		{market.TF1wk, "", false},
	}
	for _, tt := range tests {
		got, ok := HigherTimeframe(tt.tf)
		if ok != tt.hasHTF || got != tt.want {
			t.Errorf("HigherTimeframe(%s) = (%s, %v), want (%s, %v)",
				tt.tf, got, ok, tt.want, tt.hasHTF)
		}
	}
}

func TestHTFTrendDirections(t *testing.T) {
	if got := HTFTrend(trendSeries(t, 60, 1.0)); got != scoring.TrendBullish {
		t.Errorf("rising series trend = %s, want %s", got, scoring.TrendBullish)
	}
	if got := HTFTrend(trendSeries(t, 60, -1.0)); got != scoring.TrendBearish {
		t.Errorf("falling series trend = %s, want %s", got, scoring.TrendBearish)
	}
}

func TestHTFTrendNeutralOnThinData(t *testing.T) {
	if got := HTFTrend(nil); got != scoring.TrendNeutral {
		t.Errorf("nil series trend = %s, want neutral", got)
	}
	if got := HTFTrend(trendSeries(t, 20, 1.0)); got != scoring.TrendNeutral {
		t.Errorf("short series trend = %s, want neutral", got)
	}
}
