package website

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/turbohomes/website/internal"
	"github.com/turbohomes/website/internal/config"
	"github.com/turbohomes/website/internal/content"
	"github.com/turbohomes/website/internal/dictionaries"
	"github.com/turbohomes/website/internal/export"
	"github.com/turbohomes/website/internal/handlers"
	"github.com/turbohomes/website/internal/metrics"
	"github.com/turbohomes/website/internal/publish"
	"github.com/turbohomes/website/internal/routes"
	"github.com/turbohomes/website/internal/schedule"
	"github.com/turbohomes/website/middlewares"
	"github.com/turbohomes/website/pkg/cache"
	"github.com/turbohomes/website/pkg/i18n"
	"github.com/turbohomes/website/pkg/logger"
	"github.com/turbohomes/website/pkg/redis"
	"github.com/turbohomes/website/pkg/storage"
)

const (
	// RebuildTimeout bounds one scheduled export and publish.
	RebuildTimeout = 10 * time.Minute

	pageCacheNamespace = "site:page"
	pageCacheCapacity  = 2048
)

// Site is the assembled site. It is safe for concurrent use once built.
type Site struct {
	cfg      *config.Config
	logger   *slog.Logger
	now      func() time.Time
	catalog  *content.Catalog
	assets   fs.FS
	uploader publish.Uploader

	loader  *i18n.Loader
	table   *routes.Table
	pages   *handlers.Pages
	metrics *metrics.Collector
	redis   goredis.UniversalClient
	app     *internal.App

	closers []func(context.Context) error
}

// New builds a Site from cfg. It connects to Redis when REDIS_URL is set.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (_ *Site, err error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	s := &Site{cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	defer func() {
		if err != nil {
			_ = s.Close(context.Background())
		}
	}()

	if s.logger == nil {
		s.logger = logger.NewWithSentry(cfg.Logger(), cfg.Sentry(),
			middlewares.RequestIDExtractor(),
			middlewares.LocaleExtractor(),
		)
		s.onClose(logger.Flush)
	}
	if s.catalog == nil {
		s.catalog = content.Default()
	}
	if s.assets == nil {
		if s.assets, err = fs.Sub(Assets, AssetsDir); err != nil {
			return nil, err
		}
	}

	s.loader, err = i18n.NewLoader(dictionaries.FS, i18n.WithLogger(logger.Component(s.logger, "i18n")))
	if err != nil {
		return nil, fmt.Errorf("website: dictionaries: %w", err)
	}
	s.onClose(func(context.Context) error { return s.loader.Close() })

	contact, err := routes.ContactSlugs(ctx, s.loader)
	if err != nil {
		return nil, fmt.Errorf("website: %w", err)
	}
	if s.table, err = routes.Enumerate(s.catalog, contact); err != nil {
		return nil, fmt.Errorf("website: %w", err)
	}

	s.metrics = metrics.New()
	s.pages = handlers.New(s.catalog, s.table, s.loader,
		handlers.WithBaseURL(cfg.BaseURL),
		handlers.WithClock(s.now),
	)

	mw := []internal.Middleware{
		middlewares.RequestID(),
		middlewares.Metrics(s.metrics),
		middlewares.Locale(s.loader),
		middlewares.Recover(),
	}
	store, err := s.pageCache(ctx)
	if err != nil {
		return nil, err
	}
	if store != nil {
		mw = append(mw, middlewares.PageCache(store, cfg.PageCacheTTL,
			middlewares.WithCacheObserver(s.metrics.ObserveCache),
			middlewares.WithCacheQuery(routes.InquiryQuery()...),
		))
	}

	var checks []internal.HealthOption
	if s.redis != nil {
		checks = append(checks, internal.WithReadinessCheck("redis", redis.Healthcheck(s.redis)))
	}

	s.app = internal.New(
		internal.WithCustomLogger(logger.Component(s.logger, "web")),
		internal.WithRedirectSlashes(),
		internal.WithMiddleware(mw...),
		internal.WithHandlers(s.pages),
		internal.WithNotFoundHandler(s.pages.NotFound),
		internal.WithMethodNotAllowedHandler(s.pages.MethodNotAllowed),
		internal.WithErrorHandler(s.pages.Error),
		internal.WithStaticFiles("/static/", s.assets, "."),
		internal.WithMount("/metrics", s.metrics.Handler()),
		internal.WithHealthChecks(checks...),
	)
	return s, nil
}

// pageCache returns nil when PAGE_CACHE_TTL is zero.
func (s *Site) pageCache(ctx context.Context) (cache.Cache[middlewares.CachedPage], error) {
	ttl := s.cfg.PageCacheTTL
	if ttl <= 0 {
		return nil, nil
	}

	if s.cfg.RedisURL == "" {
		mem := cache.NewMemory[middlewares.CachedPage](
			cache.WithTTL(ttl),
			cache.WithCapacity(pageCacheCapacity),
		)
		s.onClose(func(context.Context) error { return mem.Close() })
		return mem, nil
	}

	client, err := redis.Open(ctx, s.cfg.RedisURL, redis.WithLogger(logger.Component(s.logger, "redis")))
	if err != nil {
		return nil, fmt.Errorf("website: page cache: %w", err)
	}
	s.redis = client
	s.onClose(redis.Shutdown(client))
	return cache.NewRedis[middlewares.CachedPage](client, nil,
		cache.WithNamespace(pageCacheNamespace),
		cache.WithRedisTTL(ttl),
	), nil
}

func (s *Site) onClose(fn func(context.Context) error) {
	s.closers = append(s.closers, fn)
}

// Handler serves the site.
func (s *Site) Handler() http.Handler { return s.app }

// Routes returns every enumerated page in table order.
func (s *Site) Routes() []routes.Route { return s.table.Routes() }

func (s *Site) Logger() *slog.Logger { return s.logger }

func (s *Site) Metrics() *metrics.Collector { return s.metrics }

// Exporter renders the site through Handler, assets included.
func (s *Site) Exporter(opts ...export.Option) *export.Exporter {
	base := []export.Option{
		export.WithLogger(logger.Component(s.logger, "export")),
		export.WithObserver(s.metrics),
		export.WithAssets("/static/", s.assets),
	}
	return export.New(s.app, s.table, append(base, opts...)...)
}

// Export writes the site to dir. With prune, files of earlier exports that
// no longer exist are removed.
func (s *Site) Export(ctx context.Context, dir string, prune bool) (*export.Manifest, error) {
	var opts []export.Option
	if prune {
		opts = append(opts, export.WithPruneStale())
	}
	return s.Exporter(opts...).Export(ctx, dir)
}

// Publish exports to dir and uploads the result. With prune, stale local
// files and stale bucket objects under the prefix are deleted.
func (s *Site) Publish(ctx context.Context, dir string, prune bool) (*publish.Report, error) {
	up, err := s.bucket()
	if err != nil {
		return nil, err
	}
	if _, err := s.Export(ctx, dir, prune); err != nil {
		return nil, err
	}

	return publish.New(up,
		publish.WithPrefix(s.cfg.S3.Prefix),
		publish.WithConcurrency(s.cfg.S3.Concurrency),
		publish.WithPrune(prune),
		publish.WithLogger(logger.Component(s.logger, "publish")),
	).Publish(ctx, dir)
}

// Rebuild is the scheduled job: export to EXPORT_DIR and publish.
func (s *Site) Rebuild(ctx context.Context) error {
	_, err := s.Publish(ctx, s.cfg.ExportDir, false)
	return err
}

func (s *Site) bucket() (publish.Uploader, error) {
	if s.uploader != nil {
		return s.uploader, nil
	}
	if err := s.cfg.RequireStorage(); err != nil {
		return nil, errors.Join(ErrNoUploader, err)
	}
	st, err := storage.New(s.cfg.Storage())
	if err != nil {
		return nil, err
	}
	s.uploader = st
	return st, nil
}

// Serve runs the HTTP server until ctx is cancelled or the process gets
// SIGINT or SIGTERM. With REBUILD_SCHEDULE set it also runs the rebuild
// schedule. Resources are released on shutdown.
func (s *Site) Serve(ctx context.Context, addr string) error {
	opts := []internal.RunOption{
		internal.WithContext(ctx),
		internal.Logger(logger.Component(s.logger, "server")),
		internal.ShutdownTimeout(s.cfg.ShutdownTimeout),
	}

	if spec := s.cfg.RebuildSchedule; spec != "" {
		if _, err := s.bucket(); err != nil {
			return errors.Join(ErrScheduleWithout, err)
		}
		sched, err := schedule.New(spec, s.Rebuild,
			schedule.WithLogger(logger.Component(s.logger, "schedule")),
			schedule.WithTimeout(RebuildTimeout),
		)
		if err != nil {
			return err
		}
		opts = append(opts,
			internal.StartupHook(sched.StartFunc()),
			internal.ShutdownHook(sched.Shutdown()),
		)
	}

	closers := s.closers
	s.closers = nil
	for i := len(closers) - 1; i >= 0; i-- {
		opts = append(opts, internal.ShutdownHook(closers[i]))
	}

	return s.app.Run(addr, opts...)
}

// Close releases what New opened, most recent first. Serve does this on
// shutdown; commands that do not serve call Close.
func (s *Site) Close(ctx context.Context) error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i](ctx))
	}
	s.closers = nil
	return errors.Join(errs...)
}
