package health

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	defaultTimeout = 5 * time.Second

	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// CheckFunc reports whether a dependency is usable.
type CheckFunc func(ctx context.Context) error

// Checks maps check names to functions.
type Checks map[string]CheckFunc

// Response is the JSON body of a probe.
type Response struct {
	Checks map[string]Check `json:"checks,omitempty"`
	Status string           `json:"status"`
}

// Check is the outcome of one named check.
type Check struct {
	Status   string `json:"status"`
	Error    string `json:"error,omitempty"`
	Duration string `json:"duration"`
}

type config struct {
	logger  *slog.Logger
	timeout time.Duration
}

type Option func(*config)

// WithTimeout bounds all checks of one probe together.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger logs failing checks at warn level.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		timeout: defaultTimeout,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Run executes checks in parallel. The returned error joins every failure
// and wraps ErrCheckFailed, or ErrCheckTimeout when the deadline passed.
func Run(ctx context.Context, checks Checks, opts ...Option) (*Response, error) {
	return run(ctx, checks, newConfig(opts...))
}

func run(ctx context.Context, checks Checks, cfg *config) (*Response, error) {
	resp := &Response{Status: StatusHealthy}
	if len(checks) == 0 {
		return resp, nil
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	var (
		mu   sync.Mutex
		errs []error
		g    errgroup.Group
	)
	resp.Checks = make(map[string]Check, len(checks))

	for name, check := range checks {
		g.Go(func() error {
			start := time.Now()
			err := check(ctx)
			if err != nil && ctx.Err() != nil {
				err = fmt.Errorf("%w: %w", ErrCheckTimeout, err)
			}

			result := Check{Status: StatusHealthy, Duration: time.Since(start).Round(time.Millisecond).String()}
			if err != nil {
				result.Status = StatusUnhealthy
				result.Error = err.Error()
				cfg.logger.WarnContext(ctx, "health check failed",
					slog.String("check", name),
					slog.String("error", err.Error()),
				)
			}

			mu.Lock()
			defer mu.Unlock()
			resp.Checks[name] = result
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", name, err))
			}
			return nil
		})
	}
	_ = g.Wait()

	if len(errs) > 0 {
		resp.Status = StatusUnhealthy
		return resp, fmt.Errorf("%w: %w", ErrCheckFailed, errors.Join(errs...))
	}
	return resp, nil
}
