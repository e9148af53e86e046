package logger

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

const defaultFlushTimeout = 2 * time.Second

var timeUntil = time.Until

// Component tags every entry of l with component=name.
func Component(l *slog.Logger, name string) *slog.Logger {
	return l.With(slog.String("component", name))
}

// Extractor returns a ContextExtractor that logs the string or fmt.Stringer
// stored under key as attr.
func Extractor(attr string, key any) ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		var s string
		switch v := ctx.Value(key).(type) {
		case string:
			s = v
		case fmt.Stringer:
			s = v.String()
		}
		if s == "" {
			return slog.Attr{}, false
		}
		return slog.String(attr, s), true
	}
}
