package analysis

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ashik160799-create/Gold-XAU-USD/internal/market"
	"github.com/ashik160799-create/Gold-XAU-USD/internal/marketdata"
	"github.com/ashik160799-create/Gold-XAU-USD/internal/session"
)

// Service fetches market data and runs the engine over it. It is the only
// place where the blocking data boundary meets the pure evaluation core.
type Service struct {
	data   *marketdata.Service
	engine *Engine
	now    func() time.Time
	logger zerolog.Logger
}

// NewService wires the data layer to the engine. now is injectable for
// session tests; pass nil for the wall clock.
func NewService(data *marketdata.Service, engine *Engine, now func() time.Time, logger zerolog.Logger) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{data: data, engine: engine, now: now, logger: logger}
}

// Analyze evaluates all timeframes. Fetch failures leave the timeframe out
// of the input map and surface downstream as offline WAIT placeholders; the
// batch itself always comes back.
func (s *Service) Analyze(ctx context.Context) (*Batch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	in := BatchInput{
		Series:  s.fetchGold(ctx, market.AllTimeframes),
		Session: session.ProfileAt(s.now()),
	}
	in.Companions = s.fetchCompanions(ctx)

	return s.engine.EvaluateAll(in), nil
}

// AnalyzeTimeframe evaluates one timeframe, fetching only the series it
// needs: the target, its designated higher timeframe, and the companions
func (s *Service) AnalyzeTimeframe(ctx context.Context, tf market.Timeframe) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	wanted := []market.Timeframe{tf}
	if higher, ok := HigherTimeframe(tf); ok {
		wanted = append(wanted, higher)
	}

	in := BatchInput{
		Series:     s.fetchGold(ctx, wanted),
		Companions: s.fetchCompanions(ctx),
		Session:    session.ProfileAt(s.now()),
	}

	result := s.engine.Evaluate(tf, in)
	return &result, nil
}

func (s *Service) fetchGold(ctx context.Context, timeframes []market.Timeframe) map[market.Timeframe]*market.Series {
	out := make(map[market.Timeframe]*market.Series, len(timeframes))

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, tf := range timeframes {
		wg.Add(1)
		go func(tf market.Timeframe) {
			defer wg.Done()
			series, err := s.data.Series(ctx, marketdata.Gold, tf)
			if err != nil {
				s.logger.Warn().Err(err).Str("timeframe", string(tf)).Msg("gold series unavailable")
				return
			}
			mu.Lock()
			out[tf] = series
			mu.Unlock()
		}(tf)
	}
	wg.Wait()

	return out
}

// fetchCompanions fetches the cross-asset series at the fixed reference
// timeframe. Each is optional: a failed fetch just disables that
// adjustment.
func (s *Service) fetchCompanions(ctx context.Context) Companions {
	var (
		out Companions
		wg  sync.WaitGroup
	)

	fetch := func(inst marketdata.Instrument, dst **market.Series) {
		defer wg.Done()
		series, err := s.data.Series(ctx, inst, marketdata.CompanionTimeframe)
		if err != nil {
			s.logger.Debug().Err(err).Str("instrument", inst.Key).Msg("companion unavailable, adjustment skipped")
			return
		}
		*dst = series
	}

	wg.Add(3)
	go fetch(marketdata.DollarIndex, &out.DollarIndex)
	go fetch(marketdata.CrudeOil, &out.Oil)
	go fetch(marketdata.TreasuryYield, &out.Yield)
	wg.Wait()

	return out
}
