package website

import (
	"io/fs"
	"log/slog"
	"time"

	"github.com/turbohomes/website/internal/content"
	"github.com/turbohomes/website/internal/publish"
)

type Option func(*Site)

// WithLogger replaces the logger built from config.
func WithLogger(l *slog.Logger) Option {
	return func(s *Site) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock fixes the time used for the footer year and sitemap lastmod.
func WithClock(now func() time.Time) Option {
	return func(s *Site) {
		if now != nil {
			s.now = now
		}
	}
}

// WithCatalog replaces the built-in content.
func WithCatalog(cat *content.Catalog) Option {
	return func(s *Site) {
		if cat != nil {
			s.catalog = cat
		}
	}
}

// WithUploader replaces the S3 uploader built from config.
func WithUploader(up publish.Uploader) Option {
	return func(s *Site) { s.uploader = up }
}

// WithAssets replaces the embedded static files. fsys is served as is
// under /static/.
func WithAssets(fsys fs.FS) Option {
	return func(s *Site) {
		if fsys != nil {
			s.assets = fsys
		}
	}
}
