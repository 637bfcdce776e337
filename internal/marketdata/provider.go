package marketdata

import (
	"context"
	"errors"

	"github.com/ashik160799-create/Gold-XAU-USD/internal/market"
)

var (
	// ErrNoData means the source answered but returned no usable candles
	ErrNoData = errors.New("marketdata: no candles returned")

	// ErrAllSourcesFailed means every symbol in an instrument's fallback
	// chain failed
	ErrAllSourcesFailed = errors.New("marketdata: all sources failed")
)

// Provider fetches candle history for one symbol and timeframe. The lookback
// depth is chosen by the provider so longer windows always have room to warm
// up their indicators.
type Provider interface {
	Candles(ctx context.Context, symbol string, tf market.Timeframe) ([]market.Candle, error)
}

// Instrument is a tradeable series with a prioritized list of source
// symbols. Fetching walks the list in order and the first success wins.
type Instrument struct {
	Key     string
	Name    string
	Symbols []string
}

var (
	// Gold is the target asset
	Gold = Instrument{Key: "gold", Name: "Gold", Symbols: []string{"GC=F", "XAUUSD=X"}}

	// DollarIndex is the strongest inverse companion
	DollarIndex = Instrument{Key: "dxy", Name: "Dollar Index", Symbols: []string{"DX-Y.NYB", "DX=F"}}

	// CrudeOil tends to move with gold
	CrudeOil = Instrument{Key: "oil", Name: "Crude Oil", Symbols: []string{"CL=F", "BZ=F"}}

	// TreasuryYield is the 10-year yield, inverse to gold
	TreasuryYield = Instrument{Key: "yield", Name: "10Y Yield", Symbols: []string{"^TNX"}}
)

// CompanionTimeframe is the fixed reference timeframe companion series are
// fetched at, independent of the timeframe under analysis
const CompanionTimeframe = market.TF1h
