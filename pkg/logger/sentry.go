package logger

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	// MinLevel is the lowest level forwarded as a Sentry log. Errors always
	// create issues.
	MinLevel    slog.Level
}

// NewWithSentry logs to the configured handler and to Sentry. Without a DSN,
// or when the SDK fails to start, it behaves like New.
func NewWithSentry(cfg Config, sc SentryConfig, extractors ...ContextExtractor) *slog.Logger {
	local := cfg.handler()

	if sc.DSN == "" {
		return slog.New(NewLogHandlerDecorator(local, extractors...))
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         sc.DSN,
		Environment: sc.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(local).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(NewLogHandlerDecorator(local, extractors...))
	}

	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if sc.MinLevel >= slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	remote := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())

	return slog.New(NewLogHandlerDecorator(newMultiHandler(local, remote), extractors...))
}

// Flush waits up to the context deadline for queued Sentry events. It is
// safe to call when Sentry was never initialized.
func Flush(ctx context.Context) error {
	timeout := defaultFlushTimeout
	if d, ok := ctx.Deadline(); ok {
		timeout = timeUntil(d)
	}
	sentry.Flush(timeout)
	return nil
}
