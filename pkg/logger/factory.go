package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config selects the handler and level of a logger.
type Config struct {
	// Level is one of debug, info, warn, error. Defaults to info.
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	// Format is json or text. Defaults to json.
	Format string `env:"LOG_FORMAT" envDefault:"json"`

	// Output defaults to os.Stdout.
	Output io.Writer
}

// New creates a logger with optional context extractors.
func New(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	return slog.New(NewLogHandlerDecorator(cfg.handler(), extractors...))
}

// ParseLevel maps a level name to a slog.Level. Unknown names are info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (cfg Config) handler() slog.Handler {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	if strings.EqualFold(cfg.Format, "text") {
		return slog.NewTextHandler(out, opts)
	}
	return slog.NewJSONHandler(out, opts)
}
