package analysis

import (
	"time"

	"github.com/google/uuid"

	"github.com/ashik160799-create/Gold-XAU-USD/internal/market"
	"github.com/ashik160799-create/Gold-XAU-USD/internal/scoring"
	"github.com/ashik160799-create/Gold-XAU-USD/internal/session"
)

// Result is the complete decision for one timeframe. It is immutable once
// returned and never persisted.
type Result struct {
	Timeframe  market.Timeframe
	Action     scoring.Action
	Confidence float64
	Factors    []scoring.Factor
	Guide      *scoring.TradeGuide
	NextCandle scoring.Action
	LastPrice  float64
}

// Batch bundles the results of one evaluation request across all
// timeframes, in the canonical timeframe order.
type Batch struct {
	ID          uuid.UUID
	GeneratedAt time.Time
	Session     session.Profile
	Results     []Result
}
