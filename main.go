package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	appconfig "github.com/ashik160799-create/Gold-XAU-USD/config"
	"github.com/ashik160799-create/Gold-XAU-USD/internal/analysis"
	"github.com/ashik160799-create/Gold-XAU-USD/internal/api"
	"github.com/ashik160799-create/Gold-XAU-USD/internal/logging"
	"github.com/ashik160799-create/Gold-XAU-USD/internal/marketdata"
	"github.com/ashik160799-create/Gold-XAU-USD/internal/metrics"
	"github.com/ashik160799-create/Gold-XAU-USD/internal/scoring"
)

func main() {
	cfg := appconfig.Load()
	logger := logging.New(cfg.Logging.Level, cfg.Logging.Pretty)
	m := metrics.New()

	var cache marketdata.Cache
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := client.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			logger.Warn().Err(err).Msg("redis unreachable, falling back to in-process cache")
			cache = marketdata.NewMemoryCache()
		} else {
			logger.Info().Str("addr", cfg.Redis.Addr).Msg("using redis candle cache")
			cache = marketdata.NewRedisCache(client, logging.Component(logger, "redis-cache"))
		}
	} else {
		cache = marketdata.NewMemoryCache()
	}

	provider := marketdata.NewYahooClient(
		cfg.MarketData.BaseURL,
		cfg.MarketData.UserAgent,
		cfg.MarketData.RequestTimeout,
		logging.Component(logger, "yahoo"),
	)
	data := marketdata.NewService(provider, cache, m, logging.Component(logger, "marketdata"))

	engine := analysis.NewEngine(
		scoring.NewPolicy(scoring.DefaultWeights()),
		m,
		logging.Component(logger, "engine"),
	)
	svc := analysis.NewService(data, engine, nil, logging.Component(logger, "analysis"))

	server := api.NewServer(cfg.Server, cfg.Stream, svc, m, logging.Component(logger, "api"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start(ctx)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-errCh:
		if err != nil {
			logger.Error().Err(err).Msg("server stopped")
		}
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown error")
	}
	logger.Info().Msg("shutdown complete")
}
