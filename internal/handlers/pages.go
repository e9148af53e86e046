package handlers

import (
	"net/http"
	"path"
	"time"

	"github.com/turbohomes/website/internal"
	"github.com/turbohomes/website/internal/content"
	"github.com/turbohomes/website/internal/routes"
	"github.com/turbohomes/website/internal/views"
	"github.com/turbohomes/website/pkg/i18n"
	"github.com/turbohomes/website/pkg/locale"
)

// DefaultBaseURL is used for absolute links when none is configured.
const DefaultBaseURL = "https://www.turbohomes.com"

// Pages renders every page of the site.
type Pages struct {
	catalog *content.Catalog
	table   *routes.Table
	loader  *i18n.Loader
	contact map[locale.Locale]string
	company content.Company
	baseURL string
	now     func() time.Time
}

// Option configures Pages.
type Option func(*Pages)

// WithBaseURL sets the origin of canonical, hreflang and sitemap URLs.
func WithBaseURL(u string) Option {
	return func(p *Pages) {
		if u != "" {
			p.baseURL = u
		}
	}
}

// WithClock sets the time source of the footer year and sitemap lastmod.
func WithClock(now func() time.Time) Option {
	return func(p *Pages) {
		if now != nil {
			p.now = now
		}
	}
}

func WithCompany(c content.Company) Option {
	return func(p *Pages) { p.company = c }
}

// New builds the page handlers over a table enumerated from cat. loader
// supplies translators when the locale middleware did not run.
func New(cat *content.Catalog, table *routes.Table, loader *i18n.Loader, opts ...Option) *Pages {
	p := &Pages{
		catalog: cat,
		table:   table,
		loader:  loader,
		contact: contactSlugs(table),
		company: content.TurboHomes,
		baseURL: DefaultBaseURL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Routes implements internal.Handler.
func (h *Pages) Routes(r internal.Router) {
	page := func(pattern string, fn internal.HandlerFunc) {
		r.GET(pattern, fn)
		r.HEAD(pattern, fn)
	}

	page("/", h.root)
	page("/sitemap.xml", h.sitemap)
	page("/robots.txt", h.robots)
	page("/{lang}", h.home)
	page("/{lang}/"+routes.BlogSegment, h.blogIndex)
	page("/{lang}/"+routes.BlogSegment+"/{slug}", h.blogPost)
	page("/{lang}/{slug}", h.contactOrService)
	page("/{lang}/{service}/{location}", h.serviceLocation)
}

// NotFound renders the localized 404 page. Use it with
// internal.WithNotFoundHandler.
func (h *Pages) NotFound(c internal.Context) error {
	return c.Render(http.StatusNotFound, views.NotFound(h.page(c, "")))
}

// MethodNotAllowed answers non-GET requests to page routes.
func (h *Pages) MethodNotAllowed(c internal.Context) error {
	c.SetHeader("Allow", "GET, HEAD")
	return internal.ErrMethodNotAllowed("method not allowed")
}

// Error renders handler errors. Not-found errors get the 404 page; every
// other error is logged and gets the error page with its status.
func (h *Pages) Error(c internal.Context, err error) error {
	status := internal.StatusOf(err)
	if status == http.StatusNotFound {
		return h.NotFound(c)
	}
	if status >= http.StatusInternalServerError {
		c.LogError("page failed", "path", c.Request().URL.Path, "error", err)
	}
	return c.Render(status, views.Error(h.page(c, "")))
}

// page describes the request for the views. canonical is the route path of
// the page, or "" for pages outside the route table.
func (h *Pages) page(c internal.Context, canonical string) views.Page {
	l := c.Locale()
	tr := c.Translator()
	if tr == nil {
		tr = h.loader.Translator(c, l)
	}

	p := views.Page{
		Locale:  l,
		T:       tr,
		BaseURL: h.baseURL,
		Path:    c.Request().URL.Path,
		Nav:     views.NavFor(l, h.catalog, h.contact[l]),
		Year:    h.now().Year(),
	}
	if route, ok := h.table.Lookup(canonical); ok {
		p.Canonical = route.Path
		p.Alternates = route.Alternates
	}
	return p
}

// contactSlugs reads the contact slug of each locale off the table.
func contactSlugs(table *routes.Table) map[locale.Locale]string {
	out := make(map[locale.Locale]string, len(locale.All()))
	for _, r := range table.Routes() {
		if r.Kind == routes.KindContact {
			for l, p := range r.Alternates {
				out[l] = path.Base(p)
			}
			break
		}
	}
	return out
}

// requestLocale validates the {lang} segment.
func requestLocale(c internal.Context) (locale.Locale, error) {
	l, err := locale.Parse(c.Param("lang"))
	if err != nil || l != c.Locale() {
		return "", internal.ErrNotFound("unknown locale")
	}
	return l, nil
}

// moved redirects to the canonical path of a page found under a slug of
// another locale. The query string is kept.
func moved(c internal.Context, path string) error {
	if q := c.Request().URL.RawQuery; q != "" {
		path += "?" + q
	}
	return c.Redirect(http.StatusMovedPermanently, path)
}
