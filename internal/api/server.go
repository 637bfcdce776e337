package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appconfig "github.com/ashik160799-create/Gold-XAU-USD/config"
	"github.com/ashik160799-create/Gold-XAU-USD/internal/analysis"
	"github.com/ashik160799-create/Gold-XAU-USD/internal/market"
	"github.com/ashik160799-create/Gold-XAU-USD/internal/metrics"
)

// AnalysisService is what the HTTP layer needs from the analysis side
type AnalysisService interface {
	Analyze(ctx context.Context) (*analysis.Batch, error)
	AnalyzeTimeframe(ctx context.Context, tf market.Timeframe) (*analysis.Result, error)
}

// Server is the HTTP API server
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	analysis   AnalysisService
	hub        *WSHub
	metrics    *metrics.Metrics
	logger     zerolog.Logger
	stream     appconfig.StreamConfig
}

// NewServer builds the router and wires all routes
func NewServer(cfg appconfig.ServerConfig, stream appconfig.StreamConfig, svc AnalysisService, m *metrics.Metrics, logger zerolog.Logger) *Server {
	if cfg.ProductionMode {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type"}
	corsConfig.ExposeHeaders = []string{"Content-Length"}
	router.Use(cors.New(corsConfig))

	s := &Server{
		router:   router,
		analysis: svc,
		hub:      NewWSHub(m, logger),
		metrics:  m,
		logger:   logger,
		stream:   stream,
		httpServer: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	api := s.router.Group("/api")
	{
		api.GET("/analysis", s.handleAnalysis)
		api.GET("/analysis/:timeframe", s.handleAnalysisTimeframe)
		api.GET("/timeframes", s.handleTimeframes)
	}

	s.router.GET("/ws", s.handleWebSocket)
}

// Start runs the websocket hub, the periodic broadcast loop and the HTTP
// listener. It blocks until the listener stops.
func (s *Server) Start(ctx context.Context) error {
	go s.hub.Run(ctx)
	go s.broadcastLoop(ctx)

	s.logger.Info().Str("addr", s.httpServer.Addr).Msg("http server listening")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the HTTP listener
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("shutting down http server")
	return s.httpServer.Shutdown(ctx)
}

// Router exposes the gin engine for tests
func (s *Server) Router() http.Handler {
	return s.router
}
