package marketdata

import (
	"context"
	"sync"
	"time"

	"github.com/ashik160799-create/Gold-XAU-USD/internal/market"
)

// Cache stores fetched candle histories for a short, timeframe-dependent
// TTL. Only upstream market data is cached, never analysis results.
type Cache interface {
	Get(ctx context.Context, key string) ([]market.Candle, bool)
	Set(ctx context.Context, key string, candles []market.Candle, ttl time.Duration)
}

// cacheTTL scales the freshness window with the timeframe: a 1-minute chart
// goes stale in seconds, a daily chart can live for hours
func cacheTTL(tf market.Timeframe) time.Duration {
	switch tf {
	case market.TF1m:
		return 30 * time.Second
	case market.TF5m:
		return 2 * time.Minute
	case market.TF15m:
		return 5 * time.Minute
	case market.TF1h, market.TF2h:
		return 30 * time.Minute
	case market.TF4h:
		return 2 * time.Hour
	case market.TF1d:
		return 12 * time.Hour
	case market.TF1wk:
		return 24 * time.Hour
	default:
		return time.Minute
	}
}

// MemoryCache is the default in-process cache
type MemoryCache struct {
	mu   sync.RWMutex
	data map[string]memoryEntry
}

type memoryEntry struct {
	candles   []market.Candle
	expiresAt time.Time
}

// NewMemoryCache creates an empty in-process cache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{data: make(map[string]memoryEntry)}
}

// Get retrieves cached candles if present and not expired
func (c *MemoryCache) Get(_ context.Context, key string) ([]market.Candle, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.data[key]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.candles, true
}

// Set stores candles with an expiration
func (c *MemoryCache) Set(_ context.Context, key string, candles []market.Candle, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = memoryEntry{candles: candles, expiresAt: time.Now().Add(ttl)}
}
