package middlewares

import (
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/turbohomes/website/internal"
)

// UnmatchedRoute labels requests that matched no route pattern. Raw paths
// are never used as labels.
const UnmatchedRoute = "unmatched"

// Observer receives one call per finished request.
type Observer interface {
	ObserveRequest(route, method string, status int, d time.Duration)
}

// Metrics reports each request to obs under its chi route pattern.
func Metrics(obs Observer) internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			start := time.Now()
			err := next(c)

			status := c.ResponseWriter().Status()
			if err != nil && !c.Written() {
				status = internal.StatusOf(err)
			}
			obs.ObserveRequest(routePattern(c), c.Request().Method, status, time.Since(start))

			return err
		}
	}
}

func routePattern(c internal.Context) string {
	rctx := chi.RouteContext(c.Request().Context())
	if rctx == nil {
		return UnmatchedRoute
	}
	if p := rctx.RoutePattern(); p != "" {
		return p
	}
	return UnmatchedRoute
}
