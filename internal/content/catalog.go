package content

import (
	"fmt"
	"io/fs"
	"slices"
	"sync"

	"github.com/turbohomes/website/pkg/locale"
	"github.com/turbohomes/website/pkg/slug"
)

// Reserved are first path segments that routes own; no service may use them.
var Reserved = []string{"blog", "sitemap.xml", "robots.txt", "health", "metrics", "static"}

// Catalog is the validated, read-only set of content tables.
type Catalog struct {
	services  []Service
	locations []Location
	posts     []Post

	serviceIdx  index
	locationIdx index
	postIdx     index
}

// index maps locale and slug to a table position.
type index map[locale.Locale]map[string]int

func (ix index) find(l locale.Locale, s string) (int, bool) {
	i, ok := ix[l][s]
	return i, ok
}

// findAny looks s up in l first, then in the other locales.
func (ix index) findAny(l locale.Locale, s string) (int, locale.Locale, bool) {
	if i, ok := ix.find(l, s); ok {
		return i, l, true
	}
	for _, other := range locale.All() {
		if i, ok := ix.find(other, s); ok {
			return i, other, true
		}
	}
	return 0, "", false
}

// Option configures New.
type Option func(*options)

type options struct {
	posts     fs.FS
	services  []Service
	locations []Location
}

// WithPosts reads posts from fsys instead of the embedded files.
func WithPosts(fsys fs.FS) Option {
	return func(o *options) { o.posts = fsys }
}

// WithServices replaces the built-in service table.
func WithServices(s ...Service) Option {
	return func(o *options) { o.services = s }
}

// WithLocations replaces the built-in location table.
func WithLocations(l ...Location) Option {
	return func(o *options) { o.locations = l }
}

// New builds and validates a catalog.
func New(opts ...Option) (*Catalog, error) {
	o := options{services: services, locations: locations}
	for _, opt := range opts {
		opt(&o)
	}
	if o.posts == nil {
		o.posts = embeddedPosts()
	}

	posts, err := LoadPosts(o.posts)
	if err != nil {
		return nil, err
	}

	c := &Catalog{services: o.services, locations: o.locations, posts: posts}

	if c.serviceIdx, err = buildIndex("service", c.services, func(s Service) (string, locale.Localized[string], locale.Localized[string]) {
		return s.ID, s.Slug, s.Name
	}); err != nil {
		return nil, err
	}
	if c.locationIdx, err = buildIndex("location", c.locations, func(l Location) (string, locale.Localized[string], locale.Localized[string]) {
		return l.ID, l.Slug, l.Name
	}); err != nil {
		return nil, err
	}
	if c.postIdx, err = buildIndex("post", c.posts, func(p Post) (string, locale.Localized[string], locale.Localized[string]) {
		return p.ID, p.Slug, p.Title
	}); err != nil {
		return nil, err
	}

	for _, s := range c.services {
		var reserved error
		s.Slug.Each(func(l locale.Locale, v string) {
			for _, r := range Reserved {
				if v == r && reserved == nil {
					reserved = fmt.Errorf("%w: service %s uses %q in %s", ErrReservedSlug, s.ID, v, l)
				}
			}
		})
		if reserved != nil {
			return nil, reserved
		}
	}

	return c, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog built from the built-in tables. It panics if
// they fail validation, which a test guards against.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := New()
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

func buildIndex[T any](kind string, rows []T, key func(T) (id string, slugs, names locale.Localized[string])) (index, error) {
	ix := make(index)
	ids := make(map[string]bool, len(rows))

	for _, l := range locale.All() {
		ix[l] = make(map[string]int, len(rows))
	}

	for i, row := range rows {
		id, slugs, names := key(row)
		if id == "" {
			return nil, fmt.Errorf("%w: %s #%d has no id", ErrEmptyField, kind, i)
		}
		if ids[id] {
			return nil, fmt.Errorf("%w: %s id %q", ErrDuplicateSlug, kind, id)
		}
		ids[id] = true

		for _, l := range locale.All() {
			s := slugs.In(l)
			if !slug.Valid(s) {
				return nil, fmt.Errorf("%w: %s %s has %q in %s", ErrInvalidSlug, kind, id, s, l)
			}
			if names.In(l) == "" {
				return nil, fmt.Errorf("%w: %s %s has no name in %s", ErrEmptyField, kind, id, l)
			}
			if j, dup := ix[l][s]; dup {
				return nil, fmt.Errorf("%w: %s %q used twice in %s (#%d and #%d)", ErrDuplicateSlug, kind, s, l, j, i)
			}
			ix[l][s] = i
		}
	}

	return ix, nil
}

// Services returns the services in display order.
func (c *Catalog) Services() []Service { return c.services }

// FeaturedServices returns at most n services from the front of the table.
func (c *Catalog) FeaturedServices(n int) []Service {
	return c.services[:min(n, len(c.services))]
}

// Locations returns the locations in display order.
func (c *Catalog) Locations() []Location { return c.locations }

// Posts returns posts newest first.
func (c *Catalog) Posts() []Post { return c.posts }

// Service looks up a service by its slug in l.
func (c *Catalog) Service(l locale.Locale, s string) (Service, bool) {
	i, ok := c.serviceIdx.find(l, s)
	if !ok {
		return Service{}, false
	}
	return c.services[i], true
}

// ServiceAnyLocale is like Service but also matches slugs of other locales,
// reporting which locale the slug belongs to.
func (c *Catalog) ServiceAnyLocale(l locale.Locale, s string) (Service, locale.Locale, bool) {
	i, found, ok := c.serviceIdx.findAny(l, s)
	if !ok {
		return Service{}, "", false
	}
	return c.services[i], found, true
}

func (c *Catalog) Location(l locale.Locale, s string) (Location, bool) {
	i, ok := c.locationIdx.find(l, s)
	if !ok {
		return Location{}, false
	}
	return c.locations[i], true
}

func (c *Catalog) LocationAnyLocale(l locale.Locale, s string) (Location, locale.Locale, bool) {
	i, found, ok := c.locationIdx.findAny(l, s)
	if !ok {
		return Location{}, "", false
	}
	return c.locations[i], found, true
}

func (c *Catalog) Post(l locale.Locale, s string) (Post, bool) {
	i, ok := c.postIdx.find(l, s)
	if !ok {
		return Post{}, false
	}
	return c.posts[i], true
}

func (c *Catalog) PostAnyLocale(l locale.Locale, s string) (Post, locale.Locale, bool) {
	i, found, ok := c.postIdx.findAny(l, s)
	if !ok {
		return Post{}, "", false
	}
	return c.posts[i], found, true
}

// ServiceByID finds a service by its stable ID.
func (c *Catalog) ServiceByID(id string) (Service, bool) {
	i := slices.IndexFunc(c.services, func(s Service) bool { return s.ID == id })
	if i < 0 {
		return Service{}, false
	}
	return c.services[i], true
}

// LocationByID finds a location by its stable ID.
func (c *Catalog) LocationByID(id string) (Location, bool) {
	i := slices.IndexFunc(c.locations, func(l Location) bool { return l.ID == id })
	if i < 0 {
		return Location{}, false
	}
	return c.locations[i], true
}
