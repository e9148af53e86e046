package views

import (
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/turbohomes/website/internal/content"
	"github.com/turbohomes/website/internal/routes"
	"github.com/turbohomes/website/pkg/i18n"
	"github.com/turbohomes/website/pkg/locale"
)

// Stylesheet is the path of the site stylesheet.
const Stylesheet = "/static/site.css"

// Page describes the request a page is rendered for.
type Page struct {
	Locale locale.Locale
	T      *i18n.Translator

	// BaseURL is the absolute origin used for canonical and hreflang links.
	BaseURL string
	// Path is the request path; the locale switcher localizes it when the
	// page has no alternate for a locale. Error pages switch to the home page.
	Path       string
	Canonical  string
	Alternates map[locale.Locale]string

	Nav  Nav
	Year int

	title       string
	description string
	keywords    []string
	noIndex     bool
}

// Nav holds the header links of one locale.
type Nav struct {
	Home     string
	Services string
	Blog     string
	Contact  string
}

// NavFor builds the header links. Services points at the first service.
func NavFor(l locale.Locale, cat *content.Catalog, contactSlug string) Nav {
	n := Nav{
		Home:    routes.Home(l),
		Blog:    routes.BlogIndex(l),
		Contact: routes.Contact(l, contactSlug),
	}
	if s := cat.FeaturedServices(1); len(s) > 0 {
		n.Services = routes.Service(l, s[0])
	}
	return n
}

func (p Page) withMeta(title, description string, keywords []string) Page {
	p.title = title
	p.description = description
	p.keywords = keywords
	return p
}

func (p Page) t(key string, m ...i18n.M) string {
	return p.T.T(key, m...)
}

func (p Page) absolute(path string) string {
	return strings.TrimSuffix(p.BaseURL, "/") + path
}

// switchTarget is where the switcher sends a visitor who picks l.
func (p Page) switchTarget(l locale.Locale) string {
	if p.noIndex {
		return routes.Home(l)
	}
	if alt, ok := p.Alternates[l]; ok {
		return alt
	}
	return locale.Localize(p.Path, l)
}

// Layout wraps body in the document shell: head metadata, header with
// navigation and locale switcher, and footer.
func Layout(p Page, body templ.Component) templ.Component {
	return render(func(h *html) {
		title := p.title
		if title == "" {
			title = p.t("site.default_title")
		}
		description := p.description
		if description == "" {
			description = p.t("site.default_description")
		}

		h.raw("<!DOCTYPE html>")
		h.open("html", "lang", p.Locale.String())
		h.raw("<head>")
		h.raw(`<meta charset="utf-8">`, `<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.elem("title", title)
		h.open("meta", "name", "description", "content", description)
		if len(p.keywords) > 0 {
			h.open("meta", "name", "keywords", "content", strings.Join(p.keywords, ", "))
		}
		if p.noIndex {
			h.open("meta", "name", "robots", "content", "noindex")
		} else {
			writeAlternates(h, p)
		}
		h.open("link", "rel", "stylesheet", "href", Stylesheet)
		h.raw("</head>")

		h.raw("<body>")
		h.link("#content", p.t("site.skip_to_content"), "class", "skip-link")
		writeHeader(h, p)
		h.open("main", "id", "content")
		h.component(body)
		h.close("main")
		writeFooter(h, p)
		h.raw("</body></html>")
	})
}

func writeAlternates(h *html, p Page) {
	if p.Canonical != "" {
		h.open("link", "rel", "canonical", "href", p.absolute(p.Canonical))
	}
	if len(p.Alternates) == 0 {
		return
	}
	for _, l := range locale.All() {
		if alt, ok := p.Alternates[l]; ok {
			h.open("link", "rel", "alternate", "hreflang", l.String(), "href", p.absolute(alt))
		}
	}
	if alt, ok := p.Alternates[locale.Default]; ok {
		h.open("link", "rel", "alternate", "hreflang", "x-default", "href", p.absolute(alt))
	}
}

func writeHeader(h *html, p Page) {
	h.raw("<header>")
	h.link(p.Nav.Home, p.t("site.name"), "class", "brand")

	h.open("nav", "aria-label", p.t("navigation.label"))
	h.raw("<ul>")
	for _, item := range []struct{ href, key string }{
		{p.Nav.Home, "navigation.home"},
		{p.Nav.Services, "navigation.services"},
		{p.Nav.Blog, "navigation.blog"},
		{p.Nav.Contact, "navigation.contact"},
	} {
		if item.href == "" {
			continue
		}
		h.raw("<li>")
		h.link(item.href, p.t(item.key))
		h.raw("</li>")
	}
	h.raw("</ul>")
	h.close("nav")

	writeSwitcher(h, p)
	h.raw("</header>")
}

func writeSwitcher(h *html, p Page) {
	h.open("nav", "class", "locale-switcher", "aria-label", p.t("switcher.label"))
	h.raw("<ul>")
	for _, l := range locale.All() {
		attrs := []string{"hreflang", l.String(), "lang", l.String()}
		if l == p.Locale {
			attrs = append(attrs, "aria-current", "true")
		}
		h.raw("<li>")
		h.link(p.switchTarget(l), p.t("switcher."+l.String()), attrs...)
		h.raw("</li>")
	}
	h.raw("</ul>")
	h.close("nav")
}

func writeFooter(h *html, p Page) {
	h.raw("<footer>")
	h.elem("p", p.t("footer.copyright", i18n.M{"year": strconv.Itoa(p.Year)}))
	h.elem("p", p.t("footer.realtor_info"))
	h.raw("</footer>")
}
