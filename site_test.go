package website_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	website "github.com/turbohomes/website"
	"github.com/turbohomes/website/internal/config"
	"github.com/turbohomes/website/pkg/logger"
	"github.com/turbohomes/website/pkg/storage"
)

var fixedNow = time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)

func newConfig(t *testing.T, vars map[string]string) *config.Config {
	t.Helper()
	cfg, err := config.LoadFrom(vars)
	require.NoError(t, err)
	return cfg
}

func newSite(t *testing.T, cfg *config.Config, opts ...website.Option) *website.Site {
	t.Helper()

	opts = append([]website.Option{
		website.WithLogger(logger.NewNope()),
		website.WithClock(func() time.Time { return fixedNow }),
	}, opts...)
	s, err := website.New(context.Background(), cfg, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

type fakeUploader struct {
	mu   sync.Mutex
	keys map[string]storage.Object
}

func (f *fakeUploader) Put(_ context.Context, obj storage.Object, body io.ReadSeeker) error {
	if _, err := io.Copy(io.Discard, body); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keys[obj.Key] = obj
	return nil
}

func (f *fakeUploader) List(context.Context, string) ([]storage.Object, error) { return nil, nil }

func (f *fakeUploader) Delete(context.Context, string) error { return nil }

func TestNew_NilConfig(t *testing.T) {
	t.Parallel()

	_, err := website.New(context.Background(), nil)
	assert.ErrorIs(t, err, website.ErrNilConfig)
}

func TestSite_ServesPages(t *testing.T) {
	t.Parallel()

	s := newSite(t, newConfig(t, map[string]string{"BASE_URL": "https://example.test"}))
	h := s.Handler()

	w := get(h, "/en")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `<link rel="canonical" href="https://example.test/en">`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "en", w.Header().Get("Content-Language"))
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))

	w = get(h, "/en")
	assert.Equal(t, "HIT", w.Header().Get("X-Cache"))

	w = get(h, "/es/no-existe")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `<html lang="es">`)

	for target, location := range map[string]string{"/es/": "/es", "/es/blog/": "/es/blog"} {
		w = get(h, target)
		assert.Equal(t, http.StatusMovedPermanently, w.Code, target)
		assert.Equal(t, location, w.Header().Get("Location"), target)
	}

	assert.NotEmpty(t, s.Routes())
}

func TestSite_Infrastructure(t *testing.T) {
	t.Parallel()

	s := newSite(t, newConfig(t, nil))
	h := s.Handler()

	get(h, "/en")

	w := get(h, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `site_http_requests_total{method="GET",route="/{lang}",status="200"} 1`)
	assert.Contains(t, w.Body.String(), `site_page_cache_events_total{event="miss"} 1`)

	assert.Equal(t, http.StatusOK, get(h, "/health/live").Code)
	assert.Equal(t, http.StatusOK, get(h, "/health/ready").Code)

	w = get(h, "/static/site.css")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/css")
	assert.Empty(t, w.Header().Get("X-Cache"))
}

func TestSite_PageCacheDisabled(t *testing.T) {
	t.Parallel()

	s := newSite(t, newConfig(t, map[string]string{"PAGE_CACHE_TTL": "0s"}))
	w := get(s.Handler(), "/en")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("X-Cache"))
}

func TestSite_RedisPageCache(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	s := newSite(t, newConfig(t, map[string]string{"REDIS_URL": "redis://" + mr.Addr()}))
	h := s.Handler()

	assert.Equal(t, "MISS", get(h, "/es").Header().Get("X-Cache"))
	assert.Equal(t, "HIT", get(h, "/es").Header().Get("X-Cache"))

	keys := mr.Keys()
	require.Len(t, keys, 1)
	assert.True(t, strings.HasPrefix(keys[0], "site:page:"), keys[0])

	assert.Equal(t, http.StatusOK, get(h, "/health/ready").Code)
	mr.SetError("LOADING")
	assert.Equal(t, http.StatusServiceUnavailable, get(h, "/health/ready").Code)
}

func TestSite_RedisUnavailable(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	_, err := website.New(ctx, newConfig(t, map[string]string{"REDIS_URL": "redis://" + addr}),
		website.WithLogger(logger.NewNope()),
	)
	assert.Error(t, err)
}

func TestSite_Export(t *testing.T) {
	t.Parallel()

	s := newSite(t, newConfig(t, nil))
	dir := t.TempDir()

	m, err := s.Export(context.Background(), dir, false)
	require.NoError(t, err)
	assert.Len(t, m.Files, len(s.Routes())+5)
	assert.FileExists(t, filepath.Join(dir, "en", "index.html"))
	assert.FileExists(t, filepath.Join(dir, "static", "site.css"))

	body, err := os.ReadFile(filepath.Join(dir, "en", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(body), "2026")

	w := get(s.Handler(), "/metrics")
	assert.Contains(t, w.Body.String(), `site_exports_total{result="success"} 1`)
}

func TestSite_Publish(t *testing.T) {
	t.Parallel()

	up := &fakeUploader{keys: make(map[string]storage.Object)}
	s := newSite(t, newConfig(t, map[string]string{"S3_PREFIX": "www"}), website.WithUploader(up))

	report, err := s.Publish(context.Background(), t.TempDir(), true)
	require.NoError(t, err)
	assert.Equal(t, len(s.Routes())+5, report.Uploaded)
	assert.Contains(t, up.keys, "www/index.html")
	assert.Contains(t, up.keys, "www/static/site.css")
	assert.Equal(t, "public, max-age=300", up.keys["www/en/index.html"].CacheControl)
}

func TestSite_PublishWithoutStorage(t *testing.T) {
	t.Parallel()

	s := newSite(t, newConfig(t, nil))
	_, err := s.Publish(context.Background(), t.TempDir(), false)
	assert.ErrorIs(t, err, website.ErrNoUploader)
	assert.ErrorIs(t, err, config.ErrStorageRequired)
}

func TestSite_Serve(t *testing.T) {
	t.Parallel()

	s := newSite(t, newConfig(t, map[string]string{"SHUTDOWN_TIMEOUT": "2s"}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestSite_ServeScheduleNeedsStorage(t *testing.T) {
	t.Parallel()

	s := newSite(t, newConfig(t, map[string]string{"REBUILD_SCHEDULE": "@daily"}))
	err := s.Serve(context.Background(), "127.0.0.1:0")
	assert.ErrorIs(t, err, website.ErrScheduleWithout)
}
