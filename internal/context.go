package internal

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/turbohomes/website/pkg/cookie"
	"github.com/turbohomes/website/pkg/i18n"
	"github.com/turbohomes/website/pkg/locale"
)

// TranslatorKey is the context key holding the request's *i18n.Translator.
type TranslatorKey struct{}

// LocaleKey is the context key holding the request's locale.Locale.
type LocaleKey struct{}

// Component is anything that renders HTML. templ.Component satisfies it.
type Component interface {
	Render(ctx context.Context, w io.Writer) error
}

// Context gives handlers access to the request, the response and the
// per-request locale. It is also a context.Context backed by the request.
type Context interface {
	context.Context

	Request() *http.Request
	Response() http.ResponseWriter
	Context() context.Context

	// Param returns a URL parameter, or "".
	Param(name string) string

	// Query returns a query parameter, or "".
	Query(name string) string

	// QueryDefault returns a query parameter or defaultValue when it is empty.
	QueryDefault(name, defaultValue string) string

	// Header returns a request header.
	Header(name string) string

	// SetHeader sets a response header.
	SetHeader(name, value string)

	// Render writes component as text/html with the given status.
	Render(code int, component Component) error

	// Blob writes raw bytes with a content type.
	Blob(code int, contentType string, b []byte) error

	String(code int, s string) error
	NoContent(code int) error
	Redirect(code int, url string) error

	// Error builds an HTTPError to return from the handler.
	Error(code int, message string, opts ...HTTPErrorOption) *HTTPError

	// Written reports whether the header was sent.
	Written() bool

	// ResponseWriter exposes the status recording writer.
	ResponseWriter() *ResponseWriter

	Logger() *slog.Logger
	LogDebug(msg string, attrs ...any)
	LogInfo(msg string, attrs ...any)
	LogWarn(msg string, attrs ...any)
	LogError(msg string, attrs ...any)

	// Set stores a value in the request context, visible to later handlers.
	Set(key, value any)
	Get(key any) any

	Cookie(name string) (string, error)
	SetCookie(name, value string, maxAge int)
	DeleteCookie(name string)

	// Locale returns the request locale, or locale.Default before the
	// locale middleware has run.
	Locale() locale.Locale

	// Translator returns the request translator, or nil.
	Translator() *i18n.Translator

	// T translates key. Without a translator it returns key.
	T(key string, placeholders ...i18n.M) string

	// Tn translates a plural key. Without a translator it returns key.
	Tn(key string, n int, placeholders ...i18n.M) string

	FormatDate(t time.Time) string
	FormatNumber(n int64) string
}

type requestContext struct {
	request        *http.Request
	responseWriter *ResponseWriter
	logger         *slog.Logger
	cookieManager  *cookie.Manager
}

func newContext(w http.ResponseWriter, r *http.Request, app *App) *requestContext {
	return &requestContext{
		request:        r,
		responseWriter: wrapResponse(w),
		logger:         app.logger,
		cookieManager:  app.cookieManager,
	}
}

func (c *requestContext) Request() *http.Request {
	return c.request
}

func (c *requestContext) Response() http.ResponseWriter {
	return c.responseWriter
}

func (c *requestContext) Context() context.Context {
	return c.request.Context()
}

func (c *requestContext) Deadline() (time.Time, bool) {
	return c.request.Context().Deadline()
}

func (c *requestContext) Done() <-chan struct{} {
	return c.request.Context().Done()
}

func (c *requestContext) Err() error {
	return c.request.Context().Err()
}

func (c *requestContext) Value(key any) any {
	return c.request.Context().Value(key)
}

func (c *requestContext) Param(name string) string {
	return chi.URLParam(c.request, name)
}

func (c *requestContext) Query(name string) string {
	return c.request.URL.Query().Get(name)
}

func (c *requestContext) QueryDefault(name, defaultValue string) string {
	if v := c.Query(name); v != "" {
		return v
	}
	return defaultValue
}

func (c *requestContext) Header(name string) string {
	return c.request.Header.Get(name)
}

func (c *requestContext) SetHeader(name, value string) {
	c.responseWriter.Header().Set(name, value)
}

func (c *requestContext) Render(code int, component Component) error {
	c.responseWriter.Header().Set("Content-Type", "text/html; charset=utf-8")
	c.responseWriter.WriteHeader(code)
	if c.request.Method == http.MethodHead {
		return nil
	}
	return component.Render(c.request.Context(), c.responseWriter)
}

func (c *requestContext) Blob(code int, contentType string, b []byte) error {
	c.responseWriter.Header().Set("Content-Type", contentType)
	c.responseWriter.WriteHeader(code)
	if c.request.Method == http.MethodHead {
		return nil
	}
	_, err := c.responseWriter.Write(b)
	return err
}

func (c *requestContext) String(code int, s string) error {
	return c.Blob(code, "text/plain; charset=utf-8", []byte(s))
}

func (c *requestContext) NoContent(code int) error {
	c.responseWriter.WriteHeader(code)
	return nil
}

func (c *requestContext) Redirect(code int, url string) error {
	http.Redirect(c.responseWriter, c.request, url, code)
	return nil
}

func (c *requestContext) Error(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(code, message, opts...)
}

func (c *requestContext) Written() bool {
	return c.responseWriter.Written()
}

func (c *requestContext) ResponseWriter() *ResponseWriter {
	return c.responseWriter
}

func (c *requestContext) Logger() *slog.Logger {
	return c.logger
}

func (c *requestContext) LogDebug(msg string, attrs ...any) {
	c.logger.DebugContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogInfo(msg string, attrs ...any) {
	c.logger.InfoContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogWarn(msg string, attrs ...any) {
	c.logger.WarnContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogError(msg string, attrs ...any) {
	c.logger.ErrorContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) Set(key, value any) {
	ctx := context.WithValue(c.request.Context(), key, value)
	c.request = c.request.WithContext(ctx)
}

func (c *requestContext) Get(key any) any {
	return c.request.Context().Value(key)
}

func (c *requestContext) Cookie(name string) (string, error) {
	return c.cookieManager.Get(c.request, name)
}

func (c *requestContext) SetCookie(name, value string, maxAge int) {
	c.cookieManager.Set(c.responseWriter, name, value, maxAge)
}

func (c *requestContext) DeleteCookie(name string) {
	c.cookieManager.Delete(c.responseWriter, name)
}

func (c *requestContext) Locale() locale.Locale {
	if l, ok := c.Get(LocaleKey{}).(locale.Locale); ok {
		return l
	}
	return locale.Default
}

func (c *requestContext) Translator() *i18n.Translator {
	if tr, ok := c.Get(TranslatorKey{}).(*i18n.Translator); ok {
		return tr
	}
	return nil
}

func (c *requestContext) T(key string, placeholders ...i18n.M) string {
	if tr := c.Translator(); tr != nil {
		return tr.T(key, placeholders...)
	}
	return key
}

func (c *requestContext) Tn(key string, n int, placeholders ...i18n.M) string {
	if tr := c.Translator(); tr != nil {
		return tr.Tn(key, n, placeholders...)
	}
	return key
}

func (c *requestContext) FormatDate(t time.Time) string {
	if tr := c.Translator(); tr != nil {
		return tr.FormatDate(t)
	}
	return i18n.FormatFor(c.Locale()).FormatDate(t)
}

func (c *requestContext) FormatNumber(n int64) string {
	if tr := c.Translator(); tr != nil {
		return tr.FormatNumber(n)
	}
	return i18n.FormatFor(c.Locale()).FormatNumber(n)
}
