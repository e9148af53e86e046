package redis

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/turbohomes/website/pkg/logger"
)

type Option func(*options)

type options struct {
	poolSize      int
	retryAttempts int
	retryInterval time.Duration
	dialTimeout   time.Duration
	ioTimeout     time.Duration
	logger        *slog.Logger
}

func defaultOptions() *options {
	return &options{
		poolSize:      10,
		retryAttempts: 3,
		retryInterval: 2 * time.Second,
		dialTimeout:   5 * time.Second,
		ioTimeout:     time.Second,
		logger:        logger.NewNope(),
	}
}

// WithPoolSize sets the maximum number of connections. Default: 10.
func WithPoolSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.poolSize = n
		}
	}
}

// WithRetry sets how many times Open pings before giving up. The wait
// before attempt n is n times interval. Default: 3 attempts, 2s.
func WithRetry(attempts int, interval time.Duration) Option {
	return func(o *options) {
		o.retryAttempts = attempts
		o.retryInterval = interval
	}
}

// WithTimeouts sets the dial and read/write timeouts.
// Cache lookups sit on the request path, so reads default to one second.
func WithTimeouts(dial, io time.Duration) Option {
	return func(o *options) {
		if dial > 0 {
			o.dialTimeout = dial
		}
		if io > 0 {
			o.ioTimeout = io
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Open connects to a redis:// or rediss:// URL and pings until the server
// answers or the attempts run out.
func Open(ctx context.Context, url string, opts ...Option) (redis.UniversalClient, error) {
	if url == "" {
		return nil, ErrNoURL
	}
	if !strings.HasPrefix(url, "redis://") && !strings.HasPrefix(url, "rediss://") {
		return nil, fmt.Errorf("%w: unsupported scheme", ErrInvalidURL)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	ro, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Join(ErrInvalidURL, err)
	}
	ro.PoolSize = o.poolSize
	ro.DialTimeout = o.dialTimeout
	ro.ReadTimeout = o.ioTimeout
	ro.WriteTimeout = o.ioTimeout

	var lastErr error
	for i := range max(o.retryAttempts, 1) {
		if i > 0 {
			if err := wait(ctx, time.Duration(i)*o.retryInterval); err != nil {
				return nil, errors.Join(ErrUnreachable, err)
			}
		}

		client := redis.NewClient(ro)
		if lastErr = client.Ping(ctx).Err(); lastErr == nil {
			return client, nil
		}
		_ = client.Close()

		o.logger.WarnContext(ctx, "redis ping failed",
			slog.Int("attempt", i+1),
			slog.String("addr", ro.Addr),
			slog.Any("error", lastErr),
		)
	}

	return nil, errors.Join(ErrUnreachable, lastErr)
}

// Healthcheck returns a readiness check that pings client.
func Healthcheck(client redis.UniversalClient) func(context.Context) error {
	return func(ctx context.Context) error {
		if client == nil {
			return ErrNotReady
		}
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrNotReady, err)
		}
		return nil
	}
}

// Shutdown returns a shutdown hook that closes client.
func Shutdown(client io.Closer) func(context.Context) error {
	return func(context.Context) error {
		return client.Close()
	}
}

func wait(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
