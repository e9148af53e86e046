// Package internal is the HTTP layer of the site: an App that owns a chi
// router and the server lifecycle, a request Context with locale-aware
// helpers, and the error type handlers return.
//
// Handlers declare routes on a Router and return errors instead of writing
// failure responses themselves:
//
//	func (h *Pages) Routes(r internal.Router) {
//	    r.GET("/{lang}", h.home)
//	}
//
//	func (h *Pages) home(c internal.Context) error {
//	    return c.Render(http.StatusOK, views.Home(h.catalog, c.Translator()))
//	}
//
// The App is assembled once with options:
//
//	app := internal.New(
//	    internal.WithMiddleware(middlewares.RequestID(), middlewares.Locale(loader)),
//	    internal.WithHandlers(pages),
//	    internal.WithNotFoundHandler(pages.NotFound),
//	    internal.WithErrorHandler(pages.Error),
//	    internal.WithHealthChecks(),
//	)
//
// Health probes, mounts such as /metrics, and static files sit outside the
// page middleware. The not-found handler runs the page middleware so that
// error pages are localized.
//
// App implements http.Handler, which lets the static exporter render every
// page in-process without a listener.
package internal
