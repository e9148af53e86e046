package internal_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turbohomes/website/internal"
)

type routesFunc func(r internal.Router)

func (f routesFunc) Routes(r internal.Router) { f(r) }

type traceKey struct{}

func tracing(name string) internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			prev, _ := c.Get(traceKey{}).(string)
			c.Set(traceKey{}, prev+name)
			return next(c)
		}
	}
}

func serve(app *internal.App, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestApp_MiddlewareOrderAndValues(t *testing.T) {
	t.Parallel()

	app := internal.New(
		internal.WithMiddleware(tracing("a"), tracing("b")),
		internal.WithHandlers(routesFunc(func(r internal.Router) {
			r.GET("/trace", func(c internal.Context) error {
				return c.String(http.StatusOK, internal.ContextValue[string](c, traceKey{}))
			}, tracing("c"), tracing("d"))
		})),
	)

	w := serve(app, http.MethodGet, "/trace")
	assert.Equal(t, "abcd", w.Body.String())
}

func TestApp_ErrorHandler(t *testing.T) {
	t.Parallel()

	var seen error
	app := internal.New(
		internal.WithErrorHandler(func(c internal.Context, err error) error {
			seen = err
			return c.String(internal.StatusOf(err), "handled")
		}),
		internal.WithHandlers(routesFunc(func(r internal.Router) {
			r.GET("/missing", func(c internal.Context) error {
				return internal.ErrNotFound("no such page")
			})
			r.GET("/boom", func(c internal.Context) error {
				return errors.New("boom")
			})
			r.GET("/late", func(c internal.Context) error {
				_ = c.String(http.StatusOK, "partial")
				return errors.New("after write")
			})
		})),
	)

	w := serve(app, http.MethodGet, "/missing")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "handled", w.Body.String())
	assert.True(t, internal.IsHTTPError(seen))

	w = serve(app, http.MethodGet, "/boom")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = serve(app, http.MethodGet, "/late")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "partial", w.Body.String())
}

func TestApp_DefaultErrorResponse(t *testing.T) {
	t.Parallel()

	app := internal.New(internal.WithHandlers(routesFunc(func(r internal.Router) {
		r.GET("/missing", func(c internal.Context) error {
			return internal.ErrNotFound("x")
		})
	})))

	w := serve(app, http.MethodGet, "/missing")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApp_NotFoundRunsMiddleware(t *testing.T) {
	t.Parallel()

	app := internal.New(
		internal.WithMiddleware(tracing("mw")),
		internal.WithNotFoundHandler(func(c internal.Context) error {
			return c.String(http.StatusNotFound, "nf:"+internal.ContextValue[string](c, traceKey{}))
		}),
		internal.WithMethodNotAllowedHandler(func(c internal.Context) error {
			return c.String(http.StatusMethodNotAllowed, "nope")
		}),
		internal.WithHandlers(routesFunc(func(r internal.Router) {
			r.GET("/only-get", func(c internal.Context) error { return c.NoContent(http.StatusOK) })
		})),
	)

	w := serve(app, http.MethodGet, "/nowhere")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "nf:mw", w.Body.String())

	w = serve(app, http.MethodPost, "/only-get")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestApp_RedirectSlashes(t *testing.T) {
	t.Parallel()

	app := internal.New(
		internal.WithRedirectSlashes(),
		internal.WithHandlers(routesFunc(func(r internal.Router) {
			r.GET("/", func(c internal.Context) error { return c.String(http.StatusOK, "root") })
			r.GET("/es/blog", func(c internal.Context) error { return c.String(http.StatusOK, "blog") })
		})),
	)

	tests := []struct {
		target   string
		location string
	}{
		{"/es/blog/", "/es/blog"},
		{"/es/blog/?lang=en", "/es/blog?lang=en"},
		{"//evil.example/", "/evil.example"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			t.Parallel()

			w := serve(app, http.MethodGet, tt.target)
			assert.Equal(t, http.StatusMovedPermanently, w.Code)
			assert.Equal(t, tt.location, w.Header().Get("Location"))
		})
	}

	assert.Equal(t, "root", serve(app, http.MethodGet, "/").Body.String())
	assert.Equal(t, "blog", serve(app, http.MethodGet, "/es/blog").Body.String())
}

func TestApp_MountsSkipPageMiddleware(t *testing.T) {
	t.Parallel()

	blocked := func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			return c.String(http.StatusTeapot, "blocked")
		}
	}

	app := internal.New(
		internal.WithMiddleware(blocked),
		internal.WithHealthChecks(
			internal.WithReadinessCheck("ok", func(context.Context) error { return nil }),
		),
		internal.WithMount("/metrics", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("metrics"))
		})),
		internal.WithStaticFiles("/static/", fstest.MapFS{
			"assets/site.css": {Data: []byte("body{}")},
		}, "assets"),
		internal.WithHandlers(routesFunc(func(r internal.Router) {
			r.GET("/page", func(c internal.Context) error { return c.NoContent(http.StatusOK) })
		})),
	)

	assert.Equal(t, http.StatusTeapot, serve(app, http.MethodGet, "/page").Code)
	assert.Equal(t, "OK", serve(app, http.MethodGet, "/health/live").Body.String())
	assert.Equal(t, http.StatusOK, serve(app, http.MethodGet, "/health/ready").Code)
	assert.Equal(t, "metrics", serve(app, http.MethodGet, "/metrics").Body.String())

	w := serve(app, http.MethodGet, "/static/site.css")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "body{}", w.Body.String())
	assert.Equal(t, "public, max-age=3600", w.Header().Get("Cache-Control"))

	assert.Equal(t, http.StatusNotFound, serve(app, http.MethodGet, "/static/").Code)
}

func TestApp_Run(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	started := make(chan struct{})
	var stopped bool

	app := internal.New()
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Run("127.0.0.1:0",
			internal.WithContext(ctx),
			internal.ShutdownTimeout(time.Second),
			internal.StartupHook(func(context.Context) error {
				close(started)
				return nil
			}),
			internal.ShutdownHook(func(context.Context) error {
				stopped = true
				return nil
			}),
		)
	}()

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("startup hook did not run")
	}
	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
		assert.True(t, stopped)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestApp_RunStartupFailure(t *testing.T) {
	t.Parallel()

	err := internal.New().Run("127.0.0.1:0", internal.StartupHook(func(context.Context) error {
		return errors.New("no dictionaries")
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no dictionaries")
}
