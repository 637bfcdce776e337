package marketdata

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ashik160799-create/Gold-XAU-USD/internal/market"
	"github.com/ashik160799-create/Gold-XAU-USD/internal/metrics"
)

// Service resolves an instrument to a candle series: cache first, then the
// instrument's source symbols in priority order, first success wins.
type Service struct {
	provider Provider
	cache    Cache
	metrics  *metrics.Metrics
	logger   zerolog.Logger
}

// NewService wires a provider with a cache
func NewService(provider Provider, cache Cache, m *metrics.Metrics, logger zerolog.Logger) *Service {
	return &Service{
		provider: provider,
		cache:    cache,
		metrics:  m,
		logger:   logger,
	}
}

// Series fetches a validated candle series for the instrument at the given
// timeframe. It returns ErrAllSourcesFailed (wrapped) when no source in the
// chain could deliver.
func (s *Service) Series(ctx context.Context, inst Instrument, tf market.Timeframe) (*market.Series, error) {
	key := fmt.Sprintf("%s:%s", inst.Key, tf)

	if candles, ok := s.cache.Get(ctx, key); ok {
		s.metrics.CacheHits.Inc()
		return &market.Series{Timeframe: tf, Candles: candles}, nil
	}
	s.metrics.CacheMisses.Inc()

	for _, symbol := range inst.Symbols {
		candles, err := s.provider.Candles(ctx, symbol, tf)
		if err != nil {
			s.metrics.ProviderRequests.WithLabelValues(inst.Key, "error").Inc()
			s.logger.Warn().Err(err).
				Str("instrument", inst.Key).
				Str("symbol", symbol).
				Str("timeframe", string(tf)).
				Msg("source failed, trying next")
			continue
		}

		series := &market.Series{Timeframe: tf, Candles: candles}
		if err := series.Validate(); err != nil {
			s.metrics.ProviderRequests.WithLabelValues(inst.Key, "invalid").Inc()
			s.logger.Warn().Err(err).Str("symbol", symbol).Msg("rejecting malformed series")
			continue
		}

		s.metrics.ProviderRequests.WithLabelValues(inst.Key, "ok").Inc()
		s.cache.Set(ctx, key, candles, cacheTTL(tf))
		return series, nil
	}

	return nil, fmt.Errorf("%s %s: %w", inst.Key, tf, ErrAllSourcesFailed)
}
