package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/turbohomes/website/pkg/cache"
	"github.com/turbohomes/website/pkg/locale"
)

// Loader reads dictionaries from a filesystem on first use and keeps them
// for the life of the process.
type Loader struct {
	fsys      fs.FS
	cache     cache.Cache[*Dictionary]
	logger    *slog.Logger
	onMissing func(locale.Locale, string)
	fallback  *Dictionary
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLogger sets the logger used for load failures and missing keys.
func WithLogger(l *slog.Logger) LoaderOption {
	return func(ld *Loader) {
		if l != nil {
			ld.logger = l
		}
	}
}

// WithMissingKeyHandler replaces the default handler, which logs at debug level.
func WithMissingKeyHandler(fn func(locale.Locale, string)) LoaderOption {
	return func(ld *Loader) { ld.onMissing = fn }
}

// WithCache overrides the dictionary cache.
func WithCache(c cache.Cache[*Dictionary]) LoaderOption {
	return func(ld *Loader) {
		if c != nil {
			ld.cache = c
		}
	}
}

// NewLoader creates a Loader over fsys, which must hold "<locale>.yaml"
// files at its root. The default locale is loaded eagerly and its failure is
// returned.
func NewLoader(fsys fs.FS, opts ...LoaderOption) (*Loader, error) {
	ld := &Loader{
		fsys:   fsys,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(ld)
	}
	if ld.cache == nil {
		ld.cache = cache.NewMemory[*Dictionary](cache.WithSweepInterval(0))
	}
	if ld.onMissing == nil {
		ld.onMissing = func(l locale.Locale, key string) {
			ld.logger.Debug("missing translation", slog.String("locale", l.String()), slog.String("key", key))
		}
	}

	def, err := ld.read(locale.Default)
	if err != nil {
		return nil, fmt.Errorf("i18n: load default dictionary: %w", err)
	}
	ld.fallback = def
	if err := ld.cache.Set(context.Background(), string(locale.Default), def, -1); err != nil {
		return nil, err
	}

	return ld, nil
}

// Dictionary returns the dictionary for l. It never fails: on error the
// default dictionary is returned and the failure is logged.
func (ld *Loader) Dictionary(ctx context.Context, l locale.Locale) *Dictionary {
	if !l.Valid() {
		return ld.fallback
	}

	d, err := cache.GetOrSet(ctx, ld.cache, string(l), func(context.Context) (*Dictionary, time.Duration, error) {
		d, err := ld.read(l)
		if err != nil {
			ld.logger.ErrorContext(ctx, "dictionary load failed, using default",
				slog.String("locale", l.String()),
				slog.Any("error", err),
			)
			return ld.fallback, -1, nil
		}
		return d, -1, nil
	})
	if err != nil || d == nil {
		return ld.fallback
	}
	return d
}

// Translator returns a Translator for l.
func (ld *Loader) Translator(ctx context.Context, l locale.Locale) *Translator {
	return NewTranslator(ld.Dictionary(ctx, l), ld.fallback, ld.onMissing)
}

// Default returns the default-locale dictionary.
func (ld *Loader) Default() *Dictionary { return ld.fallback }

// Preload loads every supported locale so that failures surface at startup
// in logs rather than on the first request.
func (ld *Loader) Preload(ctx context.Context) {
	for _, l := range locale.All() {
		ld.Dictionary(ctx, l)
	}
}

// Close releases the dictionary cache.
func (ld *Loader) Close() error { return ld.cache.Close() }

func (ld *Loader) read(l locale.Locale) (*Dictionary, error) {
	for _, ext := range []string{".yaml", ".yml"} {
		data, err := fs.ReadFile(ld.fsys, string(l)+ext)
		if err == nil {
			return ParseYAML(l, data)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidFile, l, err)
		}
	}
	return nil, fmt.Errorf("%w: no dictionary file for %s", ErrInvalidFile, l)
}
