package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisOption configures a Redis cache.
type RedisOption func(*redisConfig)

type redisConfig struct {
	namespace string
	ttl       time.Duration
}

// WithNamespace prefixes every key with "<ns>:". Clear only touches keys in
// the namespace when one is set.
func WithNamespace(ns string) RedisOption {
	return func(c *redisConfig) { c.namespace = ns }
}

// WithRedisTTL sets the TTL used when Set is called with zero. Default one hour.
func WithRedisTTL(d time.Duration) RedisOption {
	return func(c *redisConfig) { c.ttl = d }
}

// Redis stores encoded values in a Redis server. The client lifecycle is
// owned by the caller.
type Redis[V any] struct {
	client redis.UniversalClient
	codec  Codec[V]
	cfg    redisConfig
}

// NewRedis creates a Redis cache. A nil codec means JSON.
func NewRedis[V any](client redis.UniversalClient, codec Codec[V], opts ...RedisOption) *Redis[V] {
	cfg := redisConfig{ttl: time.Hour}
	for _, opt := range opts {
		opt(&cfg)
	}
	if codec == nil {
		codec = JSON[V]{}
	}
	return &Redis[V]{client: client, codec: codec, cfg: cfg}
}

func (r *Redis[V]) Get(ctx context.Context, key string) (V, error) {
	var zero V

	raw, err := r.client.Get(ctx, r.key(key)).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return zero, ErrNotFound
	case err != nil:
		return zero, err
	}

	return r.codec.Decode(raw)
}

func (r *Redis[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) error {
	raw, err := r.codec.Encode(value)
	if err != nil {
		return err
	}

	switch {
	case ttl == 0:
		ttl = r.cfg.ttl
	case ttl < 0:
		ttl = 0 // redis: no expiry
	}

	return r.client.Set(ctx, r.key(key), raw, ttl).Err()
}

func (r *Redis[V]) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.key(key)).Err()
}

// Clear removes the namespace with SCAN, or flushes the database when no
// namespace is configured.
func (r *Redis[V]) Clear(ctx context.Context) error {
	if r.cfg.namespace == "" {
		return r.client.FlushDB(ctx).Err()
	}

	iter := r.client.Scan(ctx, 0, r.cfg.namespace+":*", 100).Iterator()
	batch := make([]string, 0, 100)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == cap(batch) {
			if err := r.client.Del(ctx, batch...).Err(); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(batch) > 0 {
		return r.client.Del(ctx, batch...).Err()
	}
	return nil
}

// Close does nothing; see NewRedis.
func (r *Redis[V]) Close() error { return nil }

func (r *Redis[V]) key(k string) string {
	if r.cfg.namespace == "" {
		return k
	}
	return r.cfg.namespace + ":" + k
}

var _ Cache[string] = (*Redis[string])(nil)
