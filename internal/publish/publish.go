// Package publish uploads an exported site to object storage.
//
// Keys mirror the export layout under an optional prefix, so a bucket with
// static website hosting and index document "index.html" serves the same
// URLs as the server.
package publish

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/turbohomes/website/pkg/logger"
	"github.com/turbohomes/website/pkg/storage"
)

// Cache-control values per file class.
const (
	CacheControlHTML  = "public, max-age=300"
	CacheControlOther = "public, max-age=3600"
)

const DefaultConcurrency = 8

// Uploader is the bucket side of a publish.
type Uploader interface {
	Put(ctx context.Context, obj storage.Object, body io.ReadSeeker) error
	List(ctx context.Context, prefix string) ([]storage.Object, error)
	Delete(ctx context.Context, key string) error
}

// Report counts what a publish did.
type Report struct {
	Uploaded int
	Deleted  int
	Bytes    int64
	Took     time.Duration
}

type Publisher struct {
	uploader    Uploader
	prefix      string
	concurrency int
	prune       bool
	logger      *slog.Logger
}

type Option func(*Publisher)

// WithPrefix places every key under prefix. Slashes around it are trimmed.
func WithPrefix(prefix string) Option {
	return func(p *Publisher) { p.prefix = strings.Trim(prefix, "/") }
}

// WithConcurrency limits parallel uploads and deletes. Values below one
// are ignored.
func WithConcurrency(n int) Option {
	return func(p *Publisher) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// WithPrune deletes objects under the prefix that the export no longer has.
func WithPrune(enabled bool) Option {
	return func(p *Publisher) { p.prune = enabled }
}

func WithLogger(l *slog.Logger) Option {
	return func(p *Publisher) {
		if l != nil {
			p.logger = l
		}
	}
}

func New(up Uploader, opts ...Option) *Publisher {
	p := &Publisher{
		uploader:    up,
		concurrency: DefaultConcurrency,
		logger:      logger.NewNope(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Key returns the object key for a file path relative to the export dir.
func (p *Publisher) Key(rel string) string {
	rel = filepath.ToSlash(rel)
	if p.prefix == "" {
		return rel
	}
	return p.prefix + "/" + rel
}

// CacheControl returns the cache-control header for a file.
func CacheControl(name string) string {
	if strings.EqualFold(path.Ext(name), ".html") {
		return CacheControlHTML
	}
	return CacheControlOther
}

// Publish uploads every regular file under dir. The first failure cancels
// the remaining uploads.
func (p *Publisher) Publish(ctx context.Context, dir string) (*Report, error) {
	if p.uploader == nil {
		return nil, ErrNoUploader
	}
	if dir == "" {
		return nil, ErrNoDir
	}

	start := time.Now()
	files, err := collect(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyDir, dir)
	}

	var uploaded, bytes atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)
	for _, rel := range files {
		g.Go(func() error {
			n, err := p.upload(gctx, dir, rel)
			if err != nil {
				return err
			}
			uploaded.Add(1)
			bytes.Add(n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Uploaded: int(uploaded.Load()), Bytes: bytes.Load()}
	if p.prune {
		deleted, err := p.pruneStale(ctx, files)
		if err != nil {
			return nil, err
		}
		report.Deleted = deleted
	}
	report.Took = time.Since(start)

	p.logger.InfoContext(ctx, "publish finished",
		slog.String("prefix", p.prefix),
		slog.Int("uploaded", report.Uploaded),
		slog.Int("deleted", report.Deleted),
		slog.Int64("bytes", report.Bytes),
		slog.Duration("took", report.Took),
	)
	return report, nil
}

func (p *Publisher) upload(ctx context.Context, dir, rel string) (int64, error) {
	f, err := os.Open(filepath.Join(dir, filepath.FromSlash(rel)))
	if err != nil {
		return 0, fmt.Errorf("publish: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, fmt.Errorf("publish: %w", err)
	}

	obj := storage.Object{
		Key:          p.Key(rel),
		Size:         info.Size(),
		ContentType:  storage.ContentType(rel),
		CacheControl: CacheControl(rel),
	}
	if err := p.uploader.Put(ctx, obj, f); err != nil {
		return 0, fmt.Errorf("publish: upload %s: %w", obj.Key, err)
	}
	p.logger.DebugContext(ctx, "uploaded", slog.String("key", obj.Key), slog.Int64("size", obj.Size))
	return obj.Size, nil
}

// pruneStale deletes objects under the prefix that are not in files.
func (p *Publisher) pruneStale(ctx context.Context, files []string) (int, error) {
	listPrefix := ""
	if p.prefix != "" {
		listPrefix = p.prefix + "/"
	}
	existing, err := p.uploader.List(ctx, listPrefix)
	if err != nil {
		return 0, fmt.Errorf("publish: list %q: %w", listPrefix, err)
	}

	keep := make(map[string]struct{}, len(files))
	for _, rel := range files {
		keep[p.Key(rel)] = struct{}{}
	}

	var deleted atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)
	for _, obj := range existing {
		if _, ok := keep[obj.Key]; ok {
			continue
		}
		g.Go(func() error {
			if err := p.uploader.Delete(gctx, obj.Key); err != nil {
				return fmt.Errorf("publish: delete %s: %w", obj.Key, err)
			}
			p.logger.InfoContext(gctx, "deleted stale object", slog.String("key", obj.Key))
			deleted.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return int(deleted.Load()), nil
}

// collect lists regular files under dir as slash-separated relative paths.
func collect(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("publish: walk %s: %w", dir, err)
	}
	return files, nil
}
