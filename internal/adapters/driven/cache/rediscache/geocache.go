// Package rediscache provides a geocode cache shared between processes,
// backed by redis.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
	"github.com/jana0025/IR-PROJECT/internal/core/ports/driven"
	"github.com/jana0025/IR-PROJECT/internal/logger"
)

// Ensure GeocodeCache implements the interface.
var _ driven.GeocodeCache = (*GeocodeCache)(nil)

// DefaultPrefix namespaces cache keys.
const DefaultPrefix = "smartdocs:geocode:"

// scanBatch is the SCAN count hint used by Len.
const scanBatch = 500

// client is the subset of the redis API the cache uses.
type client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
	Ping(ctx context.Context) *redis.StatusCmd
}

// GeocodeCache stores lookup results as JSON values without expiry.
// Redis failures degrade to cache misses and dropped writes.
type GeocodeCache struct {
	client client
	prefix string
	closer func() error
}

// New connects to addr. The connection is checked with PING.
func New(ctx context.Context, addr, prefix string) (*GeocodeCache, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	c := newCache(rdb, prefix)
	c.closer = rdb.Close
	return c, nil
}

func newCache(c client, prefix string) *GeocodeCache {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &GeocodeCache{client: c, prefix: prefix}
}

// Get returns the cached result for key.
func (c *GeocodeCache) Get(ctx context.Context, key string) (domain.GeocodeResult, bool) {
	val, err := c.client.Get(ctx, c.prefix+key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Debug("geocode cache get %q: %v", key, err)
		}
		return domain.GeocodeResult{}, false
	}

	var result domain.GeocodeResult
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		logger.Debug("geocode cache entry %q is corrupt: %v", key, err)
		return domain.GeocodeResult{}, false
	}
	return result, true
}

// Put stores result under key.
func (c *GeocodeCache) Put(ctx context.Context, key string, result domain.GeocodeResult) {
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.prefix+key, data, 0).Err(); err != nil {
		logger.Debug("geocode cache put %q: %v", key, err)
	}
}

// Len counts the keys under the prefix. Returns 0 when redis is unreachable.
func (c *GeocodeCache) Len(ctx context.Context) int {
	var (
		cursor uint64
		total  int
	)
	for {
		keys, next, err := c.client.Scan(ctx, cursor, c.prefix+"*", scanBatch).Result()
		if err != nil {
			logger.Debug("geocode cache scan: %v", err)
			return total
		}
		total += len(keys)
		if next == 0 {
			return total
		}
		cursor = next
	}
}

// Ping checks that redis is reachable.
func (c *GeocodeCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the connection pool.
func (c *GeocodeCache) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer()
}
