package market

import "fmt"

// MinEvalCandles is the minimum history length required before any
// evaluation is attempted on a series.
const MinEvalCandles = 50

// Series is an ordered candle history for one (asset, timeframe) pair.
// Timestamps are strictly increasing with no duplicates.
type Series struct {
	Timeframe Timeframe
	Candles   []Candle
}

// NewSeries builds a validated series from ordered candles
func NewSeries(tf Timeframe, candles []Candle) (*Series, error) {
	s := &Series{Timeframe: tf, Candles: candles}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks timestamp ordering and volume sanity
func (s *Series) Validate() error {
	for i, c := range s.Candles {
		if c.Volume < 0 {
			return fmt.Errorf("series %s: negative volume at index %d", s.Timeframe, i)
		}
		if i > 0 && !c.Time.After(s.Candles[i-1].Time) {
			return fmt.Errorf("series %s: non-increasing timestamp at index %d", s.Timeframe, i)
		}
	}
	return nil
}

// Len returns the number of candles in the series
func (s *Series) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Candles)
}

// Last returns the most recent candle. The series must be non-empty.
func (s *Series) Last() Candle {
	return s.Candles[len(s.Candles)-1]
}

// Closes returns the close prices in order
func (s *Series) Closes() []float64 {
	closes := make([]float64, len(s.Candles))
	for i, c := range s.Candles {
		closes[i] = c.Close
	}
	return closes
}
