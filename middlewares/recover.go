package middlewares

import (
	"runtime"

	"github.com/turbohomes/website/internal"
)

// DefaultStackSize is the default maximum stack trace size in bytes.
const DefaultStackSize = 4096

type RecoverConfig struct {
	StackSize         int
	DisablePrintStack bool
}

type RecoverOption func(*RecoverConfig)

func WithRecoverStackSize(size int) RecoverOption {
	return func(cfg *RecoverConfig) {
		cfg.StackSize = size
	}
}

// WithRecoverDisablePrintStack drops the stack from logs and from the
// returned PanicError.
func WithRecoverDisablePrintStack() RecoverOption {
	return func(cfg *RecoverConfig) {
		cfg.DisablePrintStack = true
	}
}

// Recover logs panics and returns them as *PanicError.
func Recover(opts ...RecoverOption) internal.Middleware {
	cfg := &RecoverConfig{StackSize: DefaultStackSize}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				pe := &PanicError{Path: c.Request().URL.Path, Value: r}
				if cfg.DisablePrintStack {
					c.LogError("panic recovered", "panic", r, "path", pe.Path)
					err = pe
					return
				}

				pe.Stack = make([]byte, cfg.StackSize)
				pe.Stack = pe.Stack[:runtime.Stack(pe.Stack, false)]
				c.LogError("panic recovered", "panic", r, "path", pe.Path, "stack", string(pe.Stack))
				err = pe
			}()

			return next(c)
		}
	}
}
