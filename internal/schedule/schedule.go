// Package schedule rebuilds and republishes the site on a cron spec, so the
// footer year and the sitemap lastmod stay current without a deploy.
package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/turbohomes/website/pkg/logger"
)

var ErrInvalidSpec = errors.New("schedule: invalid cron spec")

// Job is one rebuild. Its error is logged; the schedule keeps running.
type Job func(ctx context.Context) error

type Scheduler struct {
	cron    *cron.Cron
	job     Job
	logger  *slog.Logger
	timeout time.Duration

	ctx    context.Context
	cancel context.CancelFunc
}

type Option func(*Scheduler)

func WithLogger(l *slog.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTimeout bounds a single run. Zero means no limit.
func WithTimeout(d time.Duration) Option {
	return func(s *Scheduler) { s.timeout = d }
}

// New parses spec in standard five-field or descriptor form ("@daily",
// "@every 6h") and registers job. Overlapping runs are skipped.
func New(spec string, job Job, opts ...Option) (*Scheduler, error) {
	sched, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidSpec, spec, err)
	}

	s := &Scheduler{job: job, logger: logger.NewNope()}
	for _, opt := range opts {
		opt(s)
	}
	s.ctx, s.cancel = context.WithCancel(context.Background())

	cl := cronLogger{s.logger}
	s.cron = cron.New(
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)
	s.cron.Schedule(sched, cron.FuncJob(func() { _ = s.Run(s.ctx) }))
	return s, nil
}

// Run executes the job once, logging the outcome.
func (s *Scheduler) Run(ctx context.Context) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	s.logger.InfoContext(ctx, "rebuild started")
	if err := s.job(ctx); err != nil {
		s.logger.ErrorContext(ctx, "rebuild failed",
			slog.Duration("took", time.Since(start)),
			slog.Any("error", err),
		)
		return err
	}
	s.logger.InfoContext(ctx, "rebuild finished", slog.Duration("took", time.Since(start)))
	return nil
}

// Next reports when the job runs next. It is zero before Start.
func (s *Scheduler) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

// Start runs the schedule in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// StartFunc returns a startup hook.
func (s *Scheduler) StartFunc() func(context.Context) error {
	return func(context.Context) error {
		s.Start()
		return nil
	}
}

// Stop cancels a running job and waits for it until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.cancel()

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown returns a shutdown hook.
func (s *Scheduler) Shutdown() func(context.Context) error {
	return s.Stop
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	l *slog.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...any) {
	c.l.Debug("cron: "+msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...any) {
	c.l.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
