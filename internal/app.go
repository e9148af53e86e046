package internal

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/turbohomes/website/pkg/cookie"
	"github.com/turbohomes/website/pkg/health"
	"github.com/turbohomes/website/pkg/logger"
)

// Server timeouts.
const (
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 30 * time.Second
	defaultIdleTimeout       = 120 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultMaxHeaderBytes    = 1 << 20
	defaultShutdownTimeout   = 30 * time.Second
)

// App owns the router and the server lifecycle. It is immutable after New.
type App struct {
	router                  chi.Router
	errorHandler            ErrorHandler
	notFoundHandler         HandlerFunc
	methodNotAllowedHandler HandlerFunc
	healthConfig            *healthConfig
	logger                  *slog.Logger
	cookieManager           *cookie.Manager
	middlewares             []Middleware
	handlers                []Handler
	mounts                  []mount
	redirectSlashes         bool
}

// mount is a plain http.Handler attached under a pattern, outside the page
// middleware stack.
type mount struct {
	handler http.Handler
	pattern string
}

// New builds an App.
//
//	app := internal.New(
//	    internal.WithMiddleware(middlewares.RequestID(), middlewares.Locale(loader)),
//	    internal.WithHandlers(handlers.New(catalog, table, cfg)),
//	)
func New(opts ...Option) *App {
	a := &App{
		router:        chi.NewRouter(),
		logger:        logger.NewNope(),
		cookieManager: cookie.New(),
	}

	for _, opt := range opts {
		opt(a)
	}

	a.setupRoutes()
	return a
}

// Router returns the underlying chi router.
func (a *App) Router() chi.Router {
	return a.router
}

// ServeHTTP lets the App be driven directly, as the static export does.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

// Logger returns the app logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Run serves on addr until SIGINT or SIGTERM, then shuts down gracefully.
func (a *App) Run(addr string, opts ...RunOption) error {
	cfg := buildRunConfig(opts...)
	cfg.fill(a.logger)
	return cfg.serve(cfg.server(addr, a.router))
}

func (a *App) setupRoutes() {
	// chi requires mux middleware before any route.
	if a.redirectSlashes {
		a.router.Use(middleware.RedirectSlashes)
	}

	// chi calls these outside any group, so the page middleware is applied
	// by hand to give them a locale.
	if a.notFoundHandler != nil {
		a.router.NotFound(a.wrapHandler(a.chain(a.notFoundHandler)))
	}
	if a.methodNotAllowedHandler != nil {
		a.router.MethodNotAllowed(a.wrapHandler(a.chain(a.methodNotAllowedHandler)))
	}

	// Probes and mounts are registered on a group without the page
	// middleware, so they are never redirected or cached.
	a.router.Group(func(r chi.Router) {
		if a.healthConfig != nil {
			r.Get(a.healthConfig.livenessPath, health.LivenessHandler())
			r.Get(a.healthConfig.readinessPath, health.ReadinessHandler(a.healthConfig.checks,
				health.WithLogger(a.logger),
			))
		}
		for _, m := range a.mounts {
			r.Mount(m.pattern, m.handler)
		}
	})

	a.router.Group(func(r chi.Router) {
		for _, mw := range a.middlewares {
			r.Use(a.adaptMiddleware(mw))
		}
		ra := &routerAdapter{router: r, app: a}
		for _, h := range a.handlers {
			h.Routes(ra)
		}
	})
}

// chain applies the global middleware to h, first listed outermost.
func (a *App) chain(h HandlerFunc) HandlerFunc {
	for i := len(a.middlewares) - 1; i >= 0; i-- {
		h = a.middlewares[i](h)
	}
	return h
}

func (a *App) wrapHandler(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := newContext(w, r, a)
		if err := h(c); err != nil {
			a.handleError(c, err)
		}
	}
}

func (a *App) handleError(c Context, err error) {
	if c.Written() {
		a.logger.WarnContext(c, "error after response was written", slog.Any("error", err))
		return
	}
	if a.errorHandler != nil {
		if herr := a.errorHandler(c, err); herr != nil {
			a.logger.ErrorContext(c, "error handler failed", slog.Any("error", herr))
		}
		return
	}
	http.Error(c.Response(), http.StatusText(StatusOf(err)), StatusOf(err))
}

type healthConfig struct {
	checks        health.Checks
	livenessPath  string
	readinessPath string
}

const (
	defaultLivenessPath  = "/health/live"
	defaultReadinessPath = "/health/ready"
)

// HealthOption configures the probe endpoints.
type HealthOption func(*healthConfig)

// WithLivenessPath overrides "/health/live".
func WithLivenessPath(path string) HealthOption {
	return func(c *healthConfig) {
		if path != "" {
			c.livenessPath = path
		}
	}
}

// WithReadinessPath overrides "/health/ready".
func WithReadinessPath(path string) HealthOption {
	return func(c *healthConfig) {
		if path != "" {
			c.readinessPath = path
		}
	}
}

// WithReadinessCheck adds a named readiness check.
//
//	internal.WithReadinessCheck("redis", redis.Healthcheck(client))
func WithReadinessCheck(name string, fn func(context.Context) error) HealthOption {
	return func(c *healthConfig) {
		if fn != nil {
			c.checks[name] = fn
		}
	}
}
