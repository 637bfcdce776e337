package analysis

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ashik160799-create/Gold-XAU-USD/internal/anomaly"
	"github.com/ashik160799-create/Gold-XAU-USD/internal/indicators"
	"github.com/ashik160799-create/Gold-XAU-USD/internal/market"
	"github.com/ashik160799-create/Gold-XAU-USD/internal/metrics"
	"github.com/ashik160799-create/Gold-XAU-USD/internal/scoring"
	"github.com/ashik160799-create/Gold-XAU-USD/internal/session"
)

// BatchInput carries everything one evaluation request needs. The series
// map is read-only during evaluation; the engine holds no state between
// requests.
type BatchInput struct {
	Series     map[market.Timeframe]*market.Series
	Companions Companions
	Session    session.Profile
}

// decisionPolicy is what the engine needs from the scoring side
type decisionPolicy interface {
	Evaluate(scoring.Input) scoring.Outcome
	Weights() scoring.Weights
}

// Engine runs the full per-timeframe pipeline: indicators, anomalies,
// correlation, higher-timeframe confirmation, scoring and the trade guide
type Engine struct {
	policy   decisionPolicy
	detector *anomaly.Detector
	adjuster *Adjuster
	metrics  *metrics.Metrics
	logger   zerolog.Logger
}

// NewEngine wires the evaluation pipeline
func NewEngine(policy *scoring.Policy, m *metrics.Metrics, logger zerolog.Logger) *Engine {
	return &Engine{
		policy:   policy,
		detector: anomaly.NewDetector(),
		adjuster: NewAdjuster(),
		metrics:  m,
		logger:   logger,
	}
}

// EvaluateAll evaluates every timeframe independently and in parallel.
// A failure in one timeframe never aborts the others.
func (e *Engine) EvaluateAll(in BatchInput) *Batch {
	started := time.Now()

	results := make([]Result, len(market.AllTimeframes))
	var wg sync.WaitGroup
	for i, tf := range market.AllTimeframes {
		wg.Add(1)
		go func(i int, tf market.Timeframe) {
			defer wg.Done()
			results[i] = e.Evaluate(tf, in)
		}(i, tf)
	}
	wg.Wait()

	for _, r := range results {
		e.metrics.EvaluationsTotal.WithLabelValues(string(r.Timeframe), string(r.Action)).Inc()
	}
	e.metrics.EvaluationDur.Observe(time.Since(started).Seconds())

	return &Batch{
		ID:          uuid.New(),
		GeneratedAt: started.UTC(),
		Session:     in.Session,
		Results:     results,
	}
}

// Evaluate produces the decision for a single timeframe. Any panic inside
// the pipeline degrades this timeframe to an offline WAIT instead of
// escaping the evaluation boundary.
func (e *Engine) Evaluate(tf market.Timeframe, in BatchInput) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error().
				Str("timeframe", string(tf)).
				Interface("panic", r).
				Msg("evaluation failed, degrading to WAIT")
			result = waitResult(tf, "analysis error, data feed offline")
		}
	}()

	s := in.Series[tf]
	if s.Len() == 0 {
		return waitResult(tf, "data feed offline")
	}
	if s.Len() < market.MinEvalCandles {
		return waitResult(tf, fmt.Sprintf("insufficient data: %d of %d candles",
			s.Len(), market.MinEvalCandles))
	}

	snap := indicators.Compute(s)
	report := e.detector.Detect(s, snap.ATR)
	assessment := e.adjuster.Assess(s.Last(), in.Companions)

	htf := scoring.TrendNeutral
	if higher, ok := HigherTimeframe(tf); ok {
		htf = HTFTrend(in.Series[higher])
	}

	outcome := e.policy.Evaluate(scoring.Input{
		Last:                  s.Last(),
		Snap:                  snap,
		Wick:                  report.Wick,
		Grab:                  report.Grab,
		Volume:                report.Volume,
		CorrelationViolations: assessment.Violations,
		CorrelationLock:       assessment.ShockLock,
		HTF:                   htf,
		SessionName:           in.Session.Name,
		SessionMultiplier:     in.Session.Multiplier,
	})

	return Result{
		Timeframe:  tf,
		Action:     outcome.Action,
		Confidence: outcome.Confidence,
		Factors:    outcome.Factors,
		Guide:      scoring.BuildGuide(outcome.Action, outcome.Confidence, s.Last().Close, snap.ATR, e.policy.Weights()),
		NextCandle: outcome.NextCandle,
		LastPrice:  s.Last().Close,
	}
}

func waitResult(tf market.Timeframe, reason string) Result {
	return Result{
		Timeframe:  tf,
		Action:     scoring.ActionWait,
		Confidence: 50,
		NextCandle: scoring.ActionWait,
		Factors: []scoring.Factor{{
			Kind:      scoring.FactorData,
			Direction: scoring.TrendNeutral,
			Detail:    reason,
		}},
	}
}
