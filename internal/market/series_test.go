package market

import (
	"testing"
	"time"
)

func TestNewSeriesRejectsBadData(t *testing.T) {
	base := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	good := Candle{Time: base, Open: 2000, High: 2001, Low: 1999, Close: 2000.5, Volume: 100}

	tests := []struct {
		name    string
		candles []Candle
		wantErr bool
	}{
		{"valid pair", []Candle{good, {Time: base.Add(time.Minute), Open: 2000.5, High: 2002, Low: 2000, Close: 2001, Volume: 50}}, false},
		{"empty", nil, false},
		{"duplicate timestamp", []Candle{good, good}, true},
		{"out of order", []Candle{{Time: base.Add(time.Minute), Open: 2000, High: 2001, Low: 1999, Close: 2000, Volume: 10}, good}, true},
		{"negative volume", []Candle{{Time: base, Open: 2000, High: 2001, Low: 1999, Close: 2000, Volume: -1}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSeries(TF1m, tt.candles)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewSeries err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSeriesLenNilSafe(t *testing.T) {
	var s *Series
	if s.Len() != 0 {
		t.Fatal("nil series must report zero length")
	}
}

func TestCandleGeometry(t *testing.T) {
	c := Candle{Open: 2000, High: 2010, Low: 1995, Close: 2004, Volume: 1}

	if got := c.Body(); got != 4 {
		t.Errorf("Body() = %v, want 4", got)
	}
	if got := c.UpperWick(); got != 6 {
		t.Errorf("UpperWick() = %v, want 6", got)
	}
	if got := c.LowerWick(); got != 5 {
		t.Errorf("LowerWick() = %v, want 5", got)
	}
	if !c.IsBullish() || c.IsBearish() {
		t.Error("candle closing above its open must be bullish")
	}

	down := Candle{Open: 2004, High: 2010, Low: 1995, Close: 2000}
	if got := down.Body(); got != -4 {
		t.Errorf("Body() = %v, want -4", got)
	}
	if !down.IsBearish() {
		t.Error("candle closing below its open must be bearish")
	}
}

func TestParseTimeframe(t *testing.T) {
	for _, tf := range AllTimeframes {
		got, err := ParseTimeframe(string(tf))
		if err != nil || got != tf {
			t.Errorf("ParseTimeframe(%s) = (%s, %v)", tf, got, err)
		}
	}
	if _, err := ParseTimeframe("3h"); err == nil {
		t.Error("unknown timeframe must be rejected")
	}
}
