// Package middlewares provides the page middleware of the site.
//
// # Locale
//
// Locale redirects unprefixed paths to the visitor's language and stores
// the request locale and translator in the context:
//
//	app := internal.New(
//	    internal.WithMiddleware(middlewares.Locale(loader)),
//	)
//
// The redirect target is chosen from ?lang=, then the lang cookie, then
// Accept-Language. A ?lang= choice is remembered in the cookie.
//
// # Request ID
//
// RequestID reuses an upstream X-Request-ID or generates a UUID. Pair it with
// RequestIDExtractor so every log entry carries request_id:
//
//	log := logger.New(cfg.Log, middlewares.RequestIDExtractor(), middlewares.LocaleExtractor())
//
// # Recover
//
// Recover turns panics into *PanicError values for the error handler.
//
// # Metrics and page cache
//
// Metrics reports every request to an Observer by chi route pattern.
// PageCache stores successful GET responses per locale and path.
//
// # Recommended Order
//
// Recover goes after Locale so that the error page of a panic is rendered
// in the request locale:
//
//	internal.WithMiddleware(
//	    middlewares.RequestID(),
//	    middlewares.Metrics(collector),
//	    middlewares.Locale(loader),
//	    middlewares.Recover(),
//	    middlewares.PageCache(pages, cfg.PageCacheTTL),
//	)
package middlewares
