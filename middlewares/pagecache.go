package middlewares

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/turbohomes/website/internal"
	"github.com/turbohomes/website/pkg/cache"
)

// CachedPage is a stored response.
type CachedPage struct {
	Body        []byte `json:"body"`
	ContentType string `json:"content_type"`
	Language    string `json:"language"`
}

// Page cache events.
const (
	CacheHit  = "hit"
	CacheMiss = "miss"
)

type pageCacheConfig struct {
	observe func(event string)
	query   []string
}

type PageCacheOption func(*pageCacheConfig)

// WithCacheObserver is called with CacheHit or CacheMiss for every GET.
func WithCacheObserver(fn func(event string)) PageCacheOption {
	return func(cfg *pageCacheConfig) {
		if fn != nil {
			cfg.observe = fn
		}
	}
}

// WithCacheQuery names the query parameters that change a page. They become
// part of the cache key; all other parameters are ignored.
func WithCacheQuery(params ...string) PageCacheOption {
	return func(cfg *pageCacheConfig) {
		cfg.query = append(cfg.query, params...)
	}
}

// PageCache serves successful GET responses from store. Only 200 responses
// are stored; X-Cache reports HIT or MISS. A store failure is logged and the
// page is rendered as usual.
func PageCache(store cache.Cache[CachedPage], ttl time.Duration, opts ...PageCacheOption) internal.Middleware {
	cfg := &pageCacheConfig{observe: func(string) {}}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			r := c.Request()
			if r.Method != http.MethodGet {
				return next(c)
			}

			key := cfg.key(c)
			if page, err := store.Get(c, key); err == nil {
				cfg.observe(CacheHit)
				c.SetHeader("X-Cache", "HIT")
				if page.Language != "" {
					c.SetHeader("Content-Language", page.Language)
				}
				return c.Blob(http.StatusOK, page.ContentType, page.Body)
			}

			cfg.observe(CacheMiss)
			rw := c.ResponseWriter()
			rw.Capture()
			rw.OnBeforeWrite(func() {
				rw.Header().Set("X-Cache", "MISS")
			})

			if err := next(c); err != nil {
				return err
			}
			if rw.Status() != http.StatusOK {
				return nil
			}

			page := CachedPage{
				Body:        append([]byte(nil), rw.Body()...),
				ContentType: rw.Header().Get("Content-Type"),
				Language:    rw.Header().Get("Content-Language"),
			}
			if err := store.Set(c, key, page, ttl); err != nil {
				c.LogWarn("page cache store failed", "key", key, "error", err)
			}
			return nil
		}
	}
}

// key is the locale and path plus the WithCacheQuery parameters present on
// the request, in option order.
func (cfg *pageCacheConfig) key(c internal.Context) string {
	r := c.Request()
	var b strings.Builder
	b.WriteString(c.Locale().String())
	b.WriteByte(' ')
	b.WriteString(r.URL.Path)

	q := r.URL.Query()
	sep := byte('?')
	for _, name := range cfg.query {
		if !q.Has(name) {
			continue
		}
		b.WriteByte(sep)
		b.WriteString(url.QueryEscape(name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(q.Get(name)))
		sep = '&'
	}
	return b.String()
}
