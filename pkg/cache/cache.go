package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache is a generic key-value store with per-entry TTL.
type Cache[V any] interface {
	// Get returns ErrNotFound for missing or expired keys.
	Get(ctx context.Context, key string) (V, error)
	Set(ctx context.Context, key string, value V, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Close() error
}

// Codec converts values to bytes for backends that store raw data.
type Codec[V any] interface {
	Encode(v V) ([]byte, error)
	Decode(data []byte) (V, error)
}

// JSON is the default Codec.
type JSON[V any] struct{}

func (JSON[V]) Encode(v V) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Join(ErrMarshal, err)
	}
	return data, nil
}

func (JSON[V]) Decode(data []byte) (V, error) {
	var v V
	if err := json.Unmarshal(data, &v); err != nil {
		return v, errors.Join(ErrUnmarshal, err)
	}
	return v, nil
}

var flights singleflight.Group

type flightResult[V any] struct {
	value V
	ttl   time.Duration
}

// GetOrSet returns the cached value for key or computes it with fn.
// Concurrent callers that miss on the same key share a single fn call.
// Nothing is cached when fn fails. A failed Set is ignored; the computed
// value is still returned.
func GetOrSet[V any](ctx context.Context, c Cache[V], key string, fn func(context.Context) (V, time.Duration, error)) (V, error) {
	if v, err := c.Get(ctx, key); err == nil {
		return v, nil
	}

	// Flights are per cache instance; backends are pointers.
	res, err, _ := flights.Do(fmt.Sprintf("%T|%p|%s", c, c, key), func() (any, error) {
		v, ttl, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		_ = c.Set(ctx, key, v, ttl)
		return flightResult[V]{value: v, ttl: ttl}, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}

	r, ok := res.(flightResult[V])
	if !ok {
		var zero V
		return zero, fmt.Errorf("cache: unexpected flight result %T", res)
	}
	return r.value, nil
}
