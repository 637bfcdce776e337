package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus instruments for the analysis engine
type Metrics struct {
	EvaluationsTotal *prometheus.CounterVec // labels: timeframe, action
	EvaluationDur    prometheus.Histogram
	ProviderRequests *prometheus.CounterVec // labels: instrument, outcome
	CacheHits        prometheus.Counter
	CacheMisses      prometheus.Counter
	WSClients        prometheus.Gauge

	registry *prometheus.Registry
}

// New creates and registers all metrics on a private registry
func New() *Metrics {
	m := &Metrics{
		EvaluationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "analysis_evaluations_total",
			Help: "Completed per-timeframe evaluations by resulting action.",
		}, []string{"timeframe", "action"}),
		EvaluationDur: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "analysis_evaluation_duration_seconds",
			Help:    "Wall time of a full multi-timeframe evaluation batch.",
			Buckets: prometheus.DefBuckets,
		}),
		ProviderRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "marketdata_provider_requests_total",
			Help: "Upstream candle fetches by instrument and outcome.",
		}, []string{"instrument", "outcome"}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "marketdata_cache_hits_total",
			Help: "Candle cache hits.",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "marketdata_cache_misses_total",
			Help: "Candle cache misses.",
		}),
		WSClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ws_connected_clients",
			Help: "Currently connected websocket clients.",
		}),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.EvaluationsTotal,
		m.EvaluationDur,
		m.ProviderRequests,
		m.CacheHits,
		m.CacheMisses,
		m.WSClients,
		collectors.NewGoCollector(),
	)
	return m
}

// Handler exposes the registry for the /metrics endpoint
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
