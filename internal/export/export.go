// Package export renders every route of the site to static files.
//
// Pages are produced by the same http.Handler that serves them, so an
// exported file is byte-for-byte what a visitor of the running server gets.
// A static host answers "/es/" from es/index.html; the server redirects it
// to "/es".
package export

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/natefinch/atomic"

	"github.com/turbohomes/website/internal/routes"
	"github.com/turbohomes/website/pkg/locale"
	"github.com/turbohomes/website/pkg/logger"
)

// Well-known output files.
const (
	IndexFile    = "index.html"
	NotFoundFile = "404.html"
	SitemapFile  = "sitemap.xml"
	RobotsFile   = "robots.txt"
)

// Observer records each export run.
type Observer interface {
	ObserveExport(err error, d time.Duration)
}

// File is one written file.
type File struct {
	// Path is relative to the export directory, with forward slashes.
	Path        string `json:"path"`
	Route       string `json:"route"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
	SHA256      string `json:"sha256"`
}

// Manifest lists the files of one export in write order.
type Manifest struct {
	Generated time.Time `json:"generated"`
	Files     []File    `json:"files"`
}

// Has reports whether the manifest lists rel.
func (m *Manifest) Has(rel string) bool {
	for _, f := range m.Files {
		if f.Path == rel {
			return true
		}
	}
	return false
}

// Exporter writes the site to a directory.
type Exporter struct {
	handler    http.Handler
	table      *routes.Table
	logger     *slog.Logger
	observer   Observer
	notFound   string
	pruneStale bool
	now        func() time.Time

	assetPrefix string
	assets      fs.FS
}

type Option func(*Exporter)

func WithLogger(l *slog.Logger) Option {
	return func(e *Exporter) {
		if l != nil {
			e.logger = l
		}
	}
}

func WithObserver(o Observer) Option {
	return func(e *Exporter) { e.observer = o }
}

// WithNotFoundPath sets the path rendered into 404.html. It must not match
// any page.
func WithNotFoundPath(p string) Option {
	return func(e *Exporter) {
		if p != "" {
			e.notFound = p
		}
	}
}

// WithAssets exports every file of fsys, fetched through the handler under
// urlPrefix (for example "/static/").
func WithAssets(urlPrefix string, fsys fs.FS) Option {
	return func(e *Exporter) {
		e.assetPrefix = "/" + strings.Trim(urlPrefix, "/") + "/"
		e.assets = fsys
	}
}

// WithPruneStale removes files left in the directory by earlier exports.
func WithPruneStale() Option {
	return func(e *Exporter) { e.pruneStale = true }
}

func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		if now != nil {
			e.now = now
		}
	}
}

// New creates an Exporter that renders table's routes through h.
func New(h http.Handler, table *routes.Table, opts ...Option) *Exporter {
	e := &Exporter{
		handler:  h,
		table:    table,
		logger:   logger.NewNope(),
		notFound: "/" + locale.Default.String() + "/404",
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type target struct {
	route  string
	file   string
	status int
}

// targets lists what to render: "/", every route, the not-found page, the
// sitemap, robots.txt and the assets.
func (e *Exporter) targets() ([]target, error) {
	out := make([]target, 0, e.table.Len()+4)
	out = append(out, target{route: "/", file: IndexFile, status: http.StatusOK})
	for _, r := range e.table.Routes() {
		out = append(out, target{route: r.Path, file: FileFor(r.Path), status: http.StatusOK})
	}
	out = append(out,
		target{route: e.notFound, file: NotFoundFile, status: http.StatusNotFound},
		target{route: "/" + SitemapFile, file: SitemapFile, status: http.StatusOK},
		target{route: "/" + RobotsFile, file: RobotsFile, status: http.StatusOK},
	)

	if e.assets == nil {
		return out, nil
	}
	err := fs.WalkDir(e.assets, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		route := e.assetPrefix + p
		out = append(out, target{route: route, file: strings.TrimPrefix(route, "/"), status: http.StatusOK})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("export: assets: %w", err)
	}
	return out, nil
}

// FileFor maps a route path to its file: "/" is index.html and "/en/blog"
// is en/blog/index.html.
func FileFor(route string) string {
	p := strings.Trim(path.Clean("/"+route), "/")
	if p == "" {
		return IndexFile
	}
	return p + "/" + IndexFile
}

// Export renders every target into dir. Any response other than the
// expected status aborts the export.
func (e *Exporter) Export(ctx context.Context, dir string) (_ *Manifest, err error) {
	if dir == "" {
		return nil, ErrNoDir
	}

	start := e.now()
	defer func() {
		if e.observer != nil {
			e.observer.ObserveExport(err, time.Since(start))
		}
	}()

	targets, err := e.targets()
	if err != nil {
		return nil, err
	}

	m := &Manifest{Generated: start.UTC()}
	for _, t := range targets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		f, err := e.render(ctx, dir, t)
		if err != nil {
			return nil, err
		}
		m.Files = append(m.Files, f)
	}

	if e.pruneStale {
		if err := prune(dir, m, e.logger); err != nil {
			return nil, err
		}
	}

	e.logger.InfoContext(ctx, "export finished",
		slog.String("dir", dir),
		slog.Int("files", len(m.Files)),
		slog.Duration("took", time.Since(start)),
	)
	return m, nil
}

func (e *Exporter) render(ctx context.Context, dir string, t target) (File, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.route, nil)
	if err != nil {
		return File{}, fmt.Errorf("export: request %s: %w", t.route, err)
	}

	w := newBuffer()
	e.handler.ServeHTTP(w, req)
	if w.status != t.status {
		return File{}, fmt.Errorf("%w: %q returned %d, want %d", ErrUnexpectedStatus, t.route, w.status, t.status)
	}

	dst := filepath.Join(dir, filepath.FromSlash(t.file))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return File{}, fmt.Errorf("export: %s: %w", t.route, err)
	}
	if err := atomic.WriteFile(dst, bytes.NewReader(w.body.Bytes())); err != nil {
		return File{}, fmt.Errorf("export: write %s: %w", t.file, err)
	}

	sum := sha256.Sum256(w.body.Bytes())
	return File{
		Path:        t.file,
		Route:       t.route,
		Size:        int64(w.body.Len()),
		ContentType: w.header.Get("Content-Type"),
		SHA256:      hex.EncodeToString(sum[:]),
	}, nil
}

// prune deletes regular files under dir that m does not list, then any
// directories left empty.
func prune(dir string, m *Manifest, log *slog.Logger) error {
	var dirs []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		if d.IsDir() {
			if rel != "." {
				dirs = append(dirs, p)
			}
			return nil
		}
		if m.Has(filepath.ToSlash(rel)) {
			return nil
		}
		log.Info("removing stale file", slog.String("path", rel))
		return os.Remove(p)
	})
	if err != nil {
		return fmt.Errorf("export: prune: %w", err)
	}

	// Deepest first, so parents empty out before they are checked.
	for i := len(dirs) - 1; i >= 0; i-- {
		if entries, err := os.ReadDir(dirs[i]); err == nil && len(entries) == 0 {
			_ = os.Remove(dirs[i])
		}
	}
	return nil
}
