package middlewares_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/turbohomes/website/internal"
	"github.com/turbohomes/website/pkg/i18n"
)

// routes registers fn on the patterns the site uses.
type routes struct {
	fn internal.HandlerFunc
}

func (h routes) Routes(r internal.Router) {
	r.GET("/", h.fn)
	r.GET("/sitemap.xml", h.fn)
	r.GET("/{lang}", h.fn)
	r.GET("/{lang}/{slug}", h.fn)
}

func newApp(fn internal.HandlerFunc, mw ...internal.Middleware) *internal.App {
	return internal.New(
		internal.WithMiddleware(mw...),
		internal.WithHandlers(routes{fn: fn}),
		internal.WithNotFoundHandler(func(c internal.Context) error {
			return c.String(http.StatusNotFound, "not found "+c.Locale().String())
		}),
	)
}

func do(app http.Handler, r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	app.ServeHTTP(w, r)
	return w
}

func get(app http.Handler, target string) *httptest.ResponseRecorder {
	return do(app, httptest.NewRequest(http.MethodGet, target, nil))
}

func newLoader(t *testing.T) *i18n.Loader {
	t.Helper()

	ld, err := i18n.NewLoader(fstest.MapFS{
		"en.yaml": {Data: []byte("greeting: Hello\n")},
		"es.yaml": {Data: []byte("greeting: Hola\n")},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = ld.Close() })
	return ld
}

type page string

func (p page) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(p))
	return err
}
