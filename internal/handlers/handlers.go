package handlers

import (
	"net/http"

	"github.com/turbohomes/website/internal"
	"github.com/turbohomes/website/internal/routes"
	"github.com/turbohomes/website/internal/views"
	"github.com/turbohomes/website/pkg/locale"
)

// root serves the default-locale home page at "/". Its canonical URL is the
// prefixed home.
func (h *Pages) root(c internal.Context) error {
	return c.Render(http.StatusOK, views.Home(h.page(c, routes.Home(c.Locale())), h.catalog))
}

func (h *Pages) home(c internal.Context) error {
	l, err := requestLocale(c)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, views.Home(h.page(c, routes.Home(l)), h.catalog))
}

func (h *Pages) blogIndex(c internal.Context) error {
	l, err := requestLocale(c)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, views.BlogIndex(h.page(c, routes.BlogIndex(l)), h.catalog.Posts()))
}

func (h *Pages) blogPost(c internal.Context) error {
	l, err := requestLocale(c)
	if err != nil {
		return err
	}

	post, found, ok := h.catalog.PostAnyLocale(l, c.Param("slug"))
	if !ok {
		return internal.ErrNotFound("post not found")
	}
	if found != l {
		return moved(c, routes.Post(l, post))
	}
	return c.Render(http.StatusOK, views.BlogPost(h.page(c, routes.Post(l, post)), post))
}

// contactOrService serves /{lang}/{slug}: the contact page when slug is the
// locale's contact slug, otherwise a service page.
func (h *Pages) contactOrService(c internal.Context) error {
	l, err := requestLocale(c)
	if err != nil {
		return err
	}
	slug := c.Param("slug")

	if slug == h.contact[l] {
		return h.contactPage(c, l)
	}
	for _, other := range locale.All() {
		if other != l && slug == h.contact[other] {
			return moved(c, routes.Contact(l, h.contact[l]))
		}
	}

	s, found, ok := h.catalog.ServiceAnyLocale(l, slug)
	if !ok {
		return internal.ErrNotFound("service not found")
	}
	if found != l {
		return moved(c, routes.Service(l, s))
	}
	return c.Render(http.StatusOK, views.Service(h.page(c, routes.Service(l, s)), s, h.catalog.Locations()))
}

func (h *Pages) contactPage(c internal.Context, l locale.Locale) error {
	var inquiry *views.Inquiry
	s, okS := h.catalog.ServiceByID(c.Query(routes.QueryService))
	loc, okL := h.catalog.LocationByID(c.Query(routes.QueryLocation))
	if okS && okL {
		inquiry = &views.Inquiry{Service: s, Location: loc}
	}

	p := h.page(c, routes.Contact(l, h.contact[l]))
	return c.Render(http.StatusOK, views.Contact(p, h.company, inquiry))
}

func (h *Pages) serviceLocation(c internal.Context) error {
	l, err := requestLocale(c)
	if err != nil {
		return err
	}

	s, sl, ok := h.catalog.ServiceAnyLocale(l, c.Param("service"))
	if !ok {
		return internal.ErrNotFound("service not found")
	}
	loc, ll, ok := h.catalog.LocationAnyLocale(l, c.Param("location"))
	if !ok {
		return internal.ErrNotFound("location not found")
	}
	if sl != l || ll != l {
		return moved(c, routes.ServiceLocation(l, s, loc))
	}

	path := routes.ServiceLocation(l, s, loc)
	return c.Render(http.StatusOK, views.ServiceLocation(h.page(c, path), s, loc))
}

func (h *Pages) sitemap(c internal.Context) error {
	body, err := routes.Sitemap(h.table.Routes(), h.baseURL, h.now())
	if err != nil {
		return internal.ErrInternal("sitemap", internal.WithError(err))
	}
	return c.Blob(http.StatusOK, "application/xml; charset=utf-8", body)
}

func (h *Pages) robots(c internal.Context) error {
	return c.Blob(http.StatusOK, "text/plain; charset=utf-8", routes.Robots(h.baseURL))
}
