package routes

import (
	"context"
	"fmt"

	"github.com/turbohomes/website/internal/content"
	"github.com/turbohomes/website/pkg/i18n"
	"github.com/turbohomes/website/pkg/locale"
	"github.com/turbohomes/website/pkg/slug"
)

// Kind names a page template.
type Kind string

const (
	KindHome            Kind = "home"
	KindContact         Kind = "contact"
	KindBlogIndex       Kind = "blog_index"
	KindBlogPost        Kind = "blog_post"
	KindService         Kind = "service"
	KindServiceLocation Kind = "service_location"
)

// BlogSegment is the path segment of the blog in every locale.
const BlogSegment = "blog"

// ContactSlugKey is the dictionary key holding the contact page slug.
const ContactSlugKey = "contact_page.slug"

// Route is one page in one locale.
type Route struct {
	Locale locale.Locale
	Kind   Kind
	// ID identifies the page across locales, e.g. "service/probate-sales".
	ID         string
	Path       string
	Alternates map[locale.Locale]string
}

// Table is the full list of routes in enumeration order.
type Table struct {
	routes []Route
	byPath map[string]int
}

// Routes returns every route.
func (t *Table) Routes() []Route { return t.routes }

// Len returns the number of routes.
func (t *Table) Len() int { return len(t.routes) }

// Lookup finds the route served at path.
func (t *Table) Lookup(path string) (Route, bool) {
	i, ok := t.byPath[path]
	if !ok {
		return Route{}, false
	}
	return t.routes[i], true
}

// ContactSlugs reads the contact slug of every locale from the dictionaries.
func ContactSlugs(ctx context.Context, ld *i18n.Loader) (locale.Localized[string], error) {
	m := make(map[locale.Locale]string)
	for _, l := range locale.All() {
		m[l] = ld.Translator(ctx, l).T(ContactSlugKey)
	}
	return locale.FromMap(m)
}

// Enumerate builds the route table. The order is home, contact and blog index
// per locale, then services, service-location pairs and posts, each per
// locale.
func Enumerate(cat *content.Catalog, contact locale.Localized[string]) (*Table, error) {
	if err := checkContact(cat, contact); err != nil {
		return nil, err
	}

	b := &builder{byPath: make(map[string]int)}

	for _, l := range locale.All() {
		b.add(l, KindHome, "home", func(l locale.Locale) string { return Home(l) })
		b.add(l, KindContact, "contact", func(l locale.Locale) string { return Contact(l, contact.In(l)) })
		b.add(l, KindBlogIndex, "blog", func(l locale.Locale) string { return BlogIndex(l) })
	}

	for _, l := range locale.All() {
		for _, s := range cat.Services() {
			b.add(l, KindService, "service/"+s.ID, func(l locale.Locale) string { return Service(l, s) })
		}
	}

	for _, l := range locale.All() {
		for _, s := range cat.Services() {
			for _, loc := range cat.Locations() {
				b.add(l, KindServiceLocation, "service/"+s.ID+"/"+loc.ID, func(l locale.Locale) string {
					return ServiceLocation(l, s, loc)
				})
			}
		}
	}

	for _, l := range locale.All() {
		for _, p := range cat.Posts() {
			b.add(l, KindBlogPost, "post/"+p.ID, func(l locale.Locale) string { return Post(l, p) })
		}
	}

	if b.err != nil {
		return nil, b.err
	}
	return &Table{routes: b.routes, byPath: b.byPath}, nil
}

type builder struct {
	routes []Route
	byPath map[string]int
	err    error
}

func (b *builder) add(l locale.Locale, kind Kind, id string, path func(locale.Locale) string) {
	if b.err != nil {
		return
	}

	r := Route{
		Locale:     l,
		Kind:       kind,
		ID:         id,
		Path:       path(l),
		Alternates: make(map[locale.Locale]string, len(locale.All())),
	}
	for _, alt := range locale.All() {
		r.Alternates[alt] = path(alt)
	}

	if j, dup := b.byPath[r.Path]; dup {
		b.err = fmt.Errorf("%w: %s is both %s and %s", ErrDuplicatePath, r.Path, b.routes[j].ID, id)
		return
	}
	b.byPath[r.Path] = len(b.routes)
	b.routes = append(b.routes, r)
}

// checkContact rejects contact slugs that are malformed or taken by a
// service in the same locale.
func checkContact(cat *content.Catalog, contact locale.Localized[string]) error {
	var err error
	contact.Each(func(l locale.Locale, s string) {
		if err != nil {
			return
		}
		if !slug.Valid(s) || s == BlogSegment {
			err = fmt.Errorf("%w: contact slug %q in %s", ErrSlugConflict, s, l)
			return
		}
		if svc, ok := cat.Service(l, s); ok {
			err = fmt.Errorf("%w: contact slug %q is used by service %s in %s", ErrSlugConflict, s, svc.ID, l)
		}
	})
	return err
}
