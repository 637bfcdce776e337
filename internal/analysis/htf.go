package analysis

import (
	"github.com/ashik160799-create/Gold-XAU-USD/internal/indicators"
	"github.com/ashik160799-create/Gold-XAU-USD/internal/market"
	"github.com/ashik160799-create/Gold-XAU-USD/internal/scoring"
)

// htfMap designates the confirming higher timeframe for each chart. The
// weekly chart has nothing above it.
var htfMap = map[market.Timeframe]market.Timeframe{
	market.TF1m:  market.TF15m,
	market.TF5m:  market.TF1h,
	market.TF15m: market.TF4h,
	market.TF1h:  market.TF4h,
	market.TF2h:  market.TF1d,
	market.TF4h:  market.TF1d,
	market.TF1d:  market.TF1wk,
}

// HigherTimeframe returns the designated confirming timeframe, if any
func HigherTimeframe(tf market.Timeframe) (market.Timeframe, bool) {
	higher, ok := htfMap[tf]
	return higher, ok
}

// HTFTrend classifies the higher timeframe by its close against EMA50.
// A nil or short series is neutral, never an error.
func HTFTrend(s *market.Series) scoring.Trend {
	if s.Len() < indicators.PeriodEMALong {
		return scoring.TrendNeutral
	}

	snap := indicators.Compute(s)
	if !snap.EMALong.Defined() {
		return scoring.TrendNeutral
	}

	close := s.Last().Close
	switch {
	case close > snap.EMALong.Float():
		return scoring.TrendBullish
	case close < snap.EMALong.Float():
		return scoring.TrendBearish
	default:
		return scoring.TrendNeutral
	}
}
