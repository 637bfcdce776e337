package marketdata

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ashik160799-create/Gold-XAU-USD/internal/market"
)

// RedisCache shares the candle cache between instances. Failures degrade to
// a miss; the fetch path never depends on Redis being up.
type RedisCache struct {
	client *redis.Client
	logger zerolog.Logger
}

// NewRedisCache connects a cache to an existing Redis client
func NewRedisCache(client *redis.Client, logger zerolog.Logger) *RedisCache {
	return &RedisCache{client: client, logger: logger}
}

const redisKeyPrefix = "candles:"

// Get retrieves cached candles from Redis
func (c *RedisCache) Get(ctx context.Context, key string) ([]market.Candle, bool) {
	raw, err := c.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn().Err(err).Str("key", key).Msg("redis cache read failed")
		}
		return nil, false
	}

	var candles []market.Candle
	if err := json.Unmarshal(raw, &candles); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("corrupt cache entry dropped")
		c.client.Del(ctx, redisKeyPrefix+key)
		return nil, false
	}
	return candles, true
}

// Set stores candles in Redis with the given TTL
func (c *RedisCache) Set(ctx context.Context, key string, candles []market.Candle, ttl time.Duration) {
	raw, err := json.Marshal(candles)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("cache marshal failed")
		return
	}
	if err := c.client.Set(ctx, redisKeyPrefix+key, raw, ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("redis cache write failed")
	}
}
