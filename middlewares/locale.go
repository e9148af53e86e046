package middlewares

import (
	"net/http"
	"slices"
	"strings"

	"github.com/turbohomes/website/internal"
	"github.com/turbohomes/website/pkg/cookie"
	"github.com/turbohomes/website/pkg/i18n"
	"github.com/turbohomes/website/pkg/locale"
	"github.com/turbohomes/website/pkg/logger"
)

// DefaultLocaleCookie remembers an explicit ?lang= choice.
const DefaultLocaleCookie = "lang"

// DefaultLocaleExclusions are path prefixes that are never redirected to a
// locale. Entries ending in "/" match the prefix; others match exactly or as
// a directory.
var DefaultLocaleExclusions = []string{
	"/health",
	"/metrics",
	"/static",
	"/sitemap.xml",
	"/robots.txt",
	"/favicon.ico",
}

// LocaleConfig configures the Locale middleware.
type LocaleConfig struct {
	Extractor  internal.Extractor
	CookieName string
	Exclusions []string

	extractorSet bool
}

type LocaleOption func(*LocaleConfig)

// WithLocaleExtractor replaces the chain used to pick the redirect target.
// A chain that finds nothing falls back to the default locale.
func WithLocaleExtractor(ext internal.Extractor) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.Extractor = ext
		cfg.extractorSet = true
	}
}

func WithLocaleCookie(name string) LocaleOption {
	return func(cfg *LocaleConfig) {
		if name != "" {
			cfg.CookieName = name
		}
	}
}

// WithLocaleExclusions adds paths that are served without a locale prefix.
func WithLocaleExclusions(paths ...string) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.Exclusions = append(cfg.Exclusions, paths...)
	}
}

// Locale resolves the request locale.
//
// A path without a locale prefix, other than "/" and the exclusions, is
// redirected with 307 to the same path under the negotiated locale. Every
// other request gets the locale of its prefix, or the default locale, and
// the matching translator.
func Locale(loader *i18n.Loader, opts ...LocaleOption) internal.Middleware {
	cfg := &LocaleConfig{
		CookieName: DefaultLocaleCookie,
		Exclusions: slices.Clone(DefaultLocaleExclusions),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if !cfg.extractorSet {
		cfg.Extractor = internal.NewExtractor(
			internal.FromQuery("lang"),
			internal.FromCookie(cfg.CookieName),
			internal.FromAcceptLanguage(),
		)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			r := c.Request()
			path := r.URL.Path

			if q := c.Query("lang"); locale.IsSupported(q) {
				c.SetCookie(cfg.CookieName, q, cookie.OneYear)
			}

			l, prefixed := locale.FromPath(path)
			if !prefixed {
				if path != "/" && !excluded(path, cfg.Exclusions) {
					target, ok := cfg.Extractor.ExtractLocale(c)
					if !ok {
						target = locale.Default
					}
					url := locale.Localize(path, target)
					if r.URL.RawQuery != "" {
						url += "?" + r.URL.RawQuery
					}
					return c.Redirect(http.StatusTemporaryRedirect, url)
				}
				l = locale.Default
			}

			c.Set(internal.LocaleKey{}, l)
			c.Set(internal.TranslatorKey{}, loader.Translator(c, l))
			c.SetHeader("Content-Language", l.String())

			return next(c)
		}
	}
}

// LocaleExtractor adds locale to log entries.
func LocaleExtractor() logger.ContextExtractor {
	return logger.Extractor("locale", internal.LocaleKey{})
}

func excluded(path string, exclusions []string) bool {
	for _, p := range exclusions {
		if strings.HasSuffix(p, "/") {
			if strings.HasPrefix(path, p) {
				return true
			}
			continue
		}
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}
