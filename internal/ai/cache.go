package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ResponseCache stores normalized decomposition results in Redis keyed by a
// hash of the request. A nil *ResponseCache is a valid no-op cache.
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewResponseCache creates a new ResponseCache.
func NewResponseCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *ResponseCache {
	return &ResponseCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Get looks up a cached value for the request. Cache errors are swallowed:
// a broken cache must never fail a decomposition.
func (c *ResponseCache) Get(ctx context.Context, keyPrefix string, request interface{}, value interface{}) bool {
	if c == nil {
		return false
	}
	key, err := cacheKey(keyPrefix, request)
	if err != nil {
		return false
	}

	data, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("Failed to read AI cache", zap.Error(err))
		}
		return false
	}

	if err := json.Unmarshal([]byte(data), value); err != nil {
		c.logger.Warn("Failed to decode cached AI response", zap.Error(err))
		return false
	}

	c.logger.Debug("AI cache hit", zap.String("key", key))
	return true
}

// Set stores a value for the request with the cache TTL.
func (c *ResponseCache) Set(ctx context.Context, keyPrefix string, request interface{}, value interface{}) {
	if c == nil {
		return
	}
	key, err := cacheKey(keyPrefix, request)
	if err != nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("Failed to encode AI response for cache", zap.Error(err))
		return
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("Failed to write AI cache", zap.Error(err))
	}
}

// cacheKey derives a stable key from the JSON form of the request.
func cacheKey(prefix string, request interface{}) (string, error) {
	data, err := json.Marshal(request)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(sum[:])[:16]), nil
}
