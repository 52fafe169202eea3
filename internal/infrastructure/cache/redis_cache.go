package cache

import (
	"context"
	"errors"
	"time"

	"travel_backoffice/internal/config"
	"travel_backoffice/internal/infrastructure/metrics"
	"travel_backoffice/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const (
	keyNamespace  = "travel_backoffice:"
	scanBatchSize = 100
)

// RedisCache stores entries under the travel_backoffice: namespace with a fixed TTL.
type RedisCache struct {
	client  redis.UniversalClient
	ttl     time.Duration
	metrics *metrics.Metrics
}

var _ interfaces.ICache = (*RedisCache)(nil)

func NewRedisClient(cfg config.CacheConfig) redis.UniversalClient {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

func NewRedisCache(client redis.UniversalClient, ttl time.Duration, m *metrics.Metrics) *RedisCache {
	return &RedisCache{client: client, ttl: ttl, metrics: m}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := c.client.Get(ctx, keyNamespace+key).Bytes()
	if errors.Is(err, redis.Nil) {
		c.metrics.RecordCacheLookup("miss")
		return nil, false, nil
	}
	if err != nil {
		c.metrics.RecordCacheLookup("error")
		return nil, false, err
	}
	c.metrics.RecordCacheLookup("hit")
	return v, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte) error {
	return c.client.Set(ctx, keyNamespace+key, value, c.ttl).Err()
}

// DeleteByPrefix walks matching keys with SCAN and deletes them in batches.
func (c *RedisCache) DeleteByPrefix(ctx context.Context, prefix string) error {
	iter := c.client.Scan(ctx, 0, keyNamespace+prefix+"*", scanBatchSize).Iterator()
	batch := make([]string, 0, scanBatchSize)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == scanBatchSize {
			if err := c.client.Del(ctx, batch...).Err(); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(batch) > 0 {
		return c.client.Del(ctx, batch...).Err()
	}
	return nil
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
