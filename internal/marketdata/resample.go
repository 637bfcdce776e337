package marketdata

import (
	"time"

	"github.com/ashik160799-create/Gold-XAU-USD/internal/market"
)

// Resample aggregates candles into fixed buckets of the given width: first
// open, max high, min low, last close, summed volume. Input must be in
// chronological order; the output keeps it.
func Resample(candles []market.Candle, bucket time.Duration) []market.Candle {
	if len(candles) == 0 || bucket <= 0 {
		return candles
	}

	var out []market.Candle
	for _, c := range candles {
		start := c.Time.Truncate(bucket)

		if len(out) == 0 || !out[len(out)-1].Time.Equal(start) {
			merged := c
			merged.Time = start
			out = append(out, merged)
			continue
		}

		last := &out[len(out)-1]
		if c.High > last.High {
			last.High = c.High
		}
		if c.Low < last.Low {
			last.Low = c.Low
		}
		last.Close = c.Close
		last.Volume += c.Volume
	}
	return out
}
