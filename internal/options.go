package internal

import (
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/turbohomes/website/pkg/cookie"
	"github.com/turbohomes/website/pkg/health"
	"github.com/turbohomes/website/pkg/logger"
)

// Option configures the application.
type Option func(*App)

// WithMiddleware adds page middleware, applied in the order given.
func WithMiddleware(mw ...Middleware) Option {
	return func(a *App) {
		a.middlewares = append(a.middlewares, mw...)
	}
}

// WithHandlers registers handlers that declare routes.
func WithHandlers(h ...Handler) Option {
	return func(a *App) {
		a.handlers = append(a.handlers, h...)
	}
}

// WithRedirectSlashes answers paths with a trailing slash by a 301 to the
// path without it, so "/es/" and "/es" are one page.
func WithRedirectSlashes() Option {
	return func(a *App) {
		a.redirectSlashes = true
	}
}

// WithMount attaches a plain handler, such as the metrics endpoint, outside
// the page middleware.
func WithMount(pattern string, h http.Handler) Option {
	return func(a *App) {
		if h != nil {
			a.mounts = append(a.mounts, mount{handler: h, pattern: pattern})
		}
	}
}

// WithStaticFiles serves subDir of fsys under pattern. Directory listings are
// disabled.
//
//	//go:embed static
//	var assets embed.FS
//
//	internal.WithStaticFiles("/static/", assets, "static")
func WithStaticFiles(pattern string, fsys fs.FS, subDir string) Option {
	return func(a *App) {
		sub, err := fs.Sub(fsys, subDir)
		if err != nil {
			panic(err)
		}

		files := http.StripPrefix(strings.TrimSuffix(pattern, "/"), http.FileServerFS(sub))
		h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasSuffix(r.URL.Path, "/") {
				http.NotFound(w, r)
				return
			}
			w.Header().Set("Cache-Control", "public, max-age=3600")
			w.Header().Set("X-Content-Type-Options", "nosniff")
			files.ServeHTTP(w, r)
		})

		a.mounts = append(a.mounts, mount{handler: h, pattern: pattern})
	}
}

// WithErrorHandler sets the handler for errors returned from handlers.
func WithErrorHandler(h ErrorHandler) Option {
	return func(a *App) {
		a.errorHandler = h
	}
}

// WithNotFoundHandler sets the handler for unmatched routes.
func WithNotFoundHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.notFoundHandler = h
	}
}

// WithMethodNotAllowedHandler sets the 405 handler.
func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.methodNotAllowedHandler = h
	}
}

// WithHealthChecks enables /health/live and /health/ready.
//
//	internal.WithHealthChecks(
//	    internal.WithReadinessCheck("redis", redis.Healthcheck(client)),
//	)
func WithHealthChecks(opts ...HealthOption) Option {
	return func(a *App) {
		cfg := &healthConfig{
			livenessPath:  defaultLivenessPath,
			readinessPath: defaultReadinessPath,
			checks:        make(health.Checks),
		}
		for _, opt := range opts {
			opt(cfg)
		}
		a.healthConfig = cfg
	}
}

// WithLogger builds a JSON logger tagged with component and the given
// extractors.
func WithLogger(component string, extractors ...logger.ContextExtractor) Option {
	return func(a *App) {
		a.logger = logger.New(logger.Config{}, extractors...).With("component", component)
	}
}

// WithCustomLogger sets a prepared logger.
func WithCustomLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithCookieOptions configures the cookie manager.
func WithCookieOptions(opts ...cookie.Option) Option {
	return func(a *App) {
		a.cookieManager = cookie.New(opts...)
	}
}
