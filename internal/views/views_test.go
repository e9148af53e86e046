package views_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turbohomes/website/internal/content"
	"github.com/turbohomes/website/internal/dictionaries"
	"github.com/turbohomes/website/internal/views"
	"github.com/turbohomes/website/pkg/i18n"
	"github.com/turbohomes/website/pkg/locale"
)

func newPage(t *testing.T, l locale.Locale, path string, alternates map[locale.Locale]string) views.Page {
	t.Helper()

	ld, err := i18n.NewLoader(dictionaries.FS)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ld.Close() })

	tr := ld.Translator(context.Background(), l)
	return views.Page{
		Locale:     l,
		T:          tr,
		BaseURL:    "https://www.turbohomes.com",
		Path:       path,
		Canonical:  path,
		Alternates: alternates,
		Nav:        views.NavFor(l, content.Default(), tr.T("contact_page.slug")),
		Year:       2026,
	}
}

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()

	var b strings.Builder
	require.NoError(t, c.Render(context.Background(), &b))
	return b.String()
}

func service(t *testing.T, id string) content.Service {
	t.Helper()
	for _, s := range content.Default().Services() {
		if s.ID == id {
			return s
		}
	}
	t.Fatalf("no service %q", id)
	return content.Service{}
}

func location(t *testing.T, id string) content.Location {
	t.Helper()
	for _, l := range content.Default().Locations() {
		if l.ID == id {
			return l
		}
	}
	t.Fatalf("no location %q", id)
	return content.Location{}
}

func TestLayout(t *testing.T) {
	t.Parallel()

	alts := map[locale.Locale]string{locale.EN: "/en/contact", locale.ES: "/es/contacto"}
	got := renderString(t, views.Contact(newPage(t, locale.ES, "/es/contacto", alts), content.TurboHomes, nil))

	assert.True(t, strings.HasPrefix(got, `<!DOCTYPE html><html lang="es">`))
	assert.Contains(t, got, `<link rel="canonical" href="https://www.turbohomes.com/es/contacto">`)
	assert.Contains(t, got, `<link rel="alternate" hreflang="en" href="https://www.turbohomes.com/en/contact">`)
	assert.Contains(t, got, `<link rel="alternate" hreflang="es" href="https://www.turbohomes.com/es/contacto">`)
	assert.Contains(t, got, `<link rel="alternate" hreflang="x-default" href="https://www.turbohomes.com/en/contact">`)

	t.Run("navigation", func(t *testing.T) {
		t.Parallel()
		assert.Contains(t, got, `<a href="/es">Inicio</a>`)
		assert.Contains(t, got, `<a href="/es/asistencia-ejecucion-hipotecaria">Servicios</a>`)
		assert.Contains(t, got, `<a href="/es/blog">Blog</a>`)
		assert.Contains(t, got, `<a href="/es/contacto">Contacto</a>`)
	})

	t.Run("switcher uses alternates", func(t *testing.T) {
		t.Parallel()
		assert.Contains(t, got, `<a href="/en/contact" hreflang="en" lang="en">English</a>`)
		assert.Contains(t, got, `<a href="/es/contacto" hreflang="es" lang="es" aria-current="true">Español</a>`)
	})

	t.Run("footer", func(t *testing.T) {
		t.Parallel()
		assert.Contains(t, got, "© 2026 TurboHomes. Todos los derechos reservados.")
		assert.Contains(t, got, "DRE: 02156944")
	})
}

func TestLayout_SwitcherLocalizesPathWithoutAlternates(t *testing.T) {
	t.Parallel()

	got := renderString(t, views.Service(newPage(t, locale.ES, "/es/ventas-testamentarias", nil), service(t, "probate-sales"), nil))
	assert.Contains(t, got, `<a href="/en/ventas-testamentarias" hreflang="en" lang="en">`)
}

func TestNotFound_SwitcherLinksHome(t *testing.T) {
	t.Parallel()

	for _, page := range []templ.Component{
		views.NotFound(newPage(t, locale.ES, "/es/no-existe", nil)),
		views.Error(newPage(t, locale.ES, "/es/no-existe", nil)),
	} {
		got := renderString(t, page)
		assert.Contains(t, got, `<a href="/en" hreflang="en" lang="en">`)
		assert.Contains(t, got, `<a href="/es" hreflang="es" lang="es" aria-current="true">`)
		assert.NotContains(t, got, "no-existe")
		assert.Contains(t, got, `<meta name="robots" content="noindex">`)
		assert.NotContains(t, got, `rel="canonical"`)
	}
}

func TestHome(t *testing.T) {
	t.Parallel()

	got := renderString(t, views.Home(newPage(t, locale.EN, "/en", nil), content.Default()))

	assert.Contains(t, got, "<title>TurboHomes - Sell Your Home Fast for Cash</title>")
	assert.Contains(t, got, "Sell Your Home Fast, Hassle-Free")
	assert.Contains(t, got, `<a href="/en/foreclosure-assistance" class="button button-outline">Learn More</a>`)
	assert.Contains(t, got, `<a href="/en/cash-home-sales" class="button button-outline">`)
	assert.NotContains(t, got, `href="/en/probate-sales" class="button button-outline"`, "only three services are featured")
	assert.Contains(t, got, `<a href="/en/foreclosure-assistance/elk-grove-ca">Elk Grove, CA</a>`)
	assert.Equal(t, 3, strings.Count(got, `<span class="step-number">`))
}

func TestService(t *testing.T) {
	t.Parallel()

	s := service(t, "probate-sales")
	got := renderString(t, views.Service(newPage(t, locale.EN, "/en/probate-sales", nil), s, content.Default().Locations()))

	assert.Contains(t, got, "<title>Probate Sales | TurboHomes</title>")
	assert.Contains(t, got, `<meta name="keywords" content="`)
	assert.Contains(t, got, "Our Process for Probate Sales")
	assert.Contains(t, got, "situation within days")
	assert.Equal(t, 9, strings.Count(got, `href="/en/probate-sales/`))
}

func TestServiceLocation(t *testing.T) {
	t.Parallel()

	s, loc := service(t, "probate-sales"), location(t, "elk-grove-ca")

	t.Run("english", func(t *testing.T) {
		t.Parallel()
		got := renderString(t, views.ServiceLocation(newPage(t, locale.EN, "/en/probate-sales/elk-grove-ca", nil), s, loc))

		assert.Contains(t, got, "<title>Probate Sales in Elk Grove, CA | TurboHomes</title>")
		assert.Contains(t, got, "<h1>Probate Sales in Elk Grove, CA</h1>")
		assert.Contains(t, got, "Local Elk Grove, CA Expertise")
		assert.Contains(t, got, `href="/en/contact?location=elk-grove-ca&amp;service=probate-sales"`)
		assert.Contains(t, got, "probate sales Elk Grove, CA")
	})

	t.Run("spanish", func(t *testing.T) {
		t.Parallel()
		got := renderString(t, views.ServiceLocation(newPage(t, locale.ES, "/es/x", nil), s, loc))
		assert.Contains(t, got, `href="/es/contacto?location=elk-grove-ca&amp;service=probate-sales"`)
		assert.NotContains(t, got, "Key Benefits")
	})
}

func TestInquiryLink(t *testing.T) {
	t.Parallel()

	got := views.InquiryLink("/es/contacto", service(t, "short-sales"), location(t, "galt-ca"))
	assert.Equal(t, "/es/contacto?location=galt-ca&service=short-sales", got)
}

func TestContact(t *testing.T) {
	t.Parallel()

	p := newPage(t, locale.EN, "/en/contact", nil)

	got := renderString(t, views.Contact(p, content.TurboHomes, nil))
	assert.Contains(t, got, `<a href="tel:9166903334">916-690-3334</a>`)
	assert.Contains(t, got, `target="_blank" rel="noopener noreferrer"`)
	assert.NotContains(t, got, `class="inquiry"`)

	got = renderString(t, views.Contact(p, content.TurboHomes, &views.Inquiry{
		Service:  service(t, "probate-sales"),
		Location: location(t, "elk-grove-ca"),
	}))
	assert.Contains(t, got, "You asked about Probate Sales in Elk Grove, CA.")
}

func TestBlogIndex(t *testing.T) {
	t.Parallel()

	posts := content.Default().Posts()

	got := renderString(t, views.BlogIndex(newPage(t, locale.ES, "/es/blog", nil), posts))
	assert.Contains(t, got, "<title>Blog | TurboHomes</title>")
	assert.Contains(t, got, "3 artículos")
	assert.Contains(t, got, `<a href="/es/blog/proceso-venta-corta-explicado">`)
	assert.Contains(t, got, `<time datetime="2025-03-31">Publicado el 31 de marzo de 2025</time>`)

	empty := renderString(t, views.BlogIndex(newPage(t, locale.EN, "/en/blog", nil), nil))
	assert.Contains(t, empty, "No blog posts found.")
	assert.Contains(t, empty, "No articles yet")
}

func TestBlogPost(t *testing.T) {
	t.Parallel()

	post := content.Default().Posts()[0]
	got := renderString(t, views.BlogPost(newPage(t, locale.EN, "/en/blog/x", nil), post))

	assert.Contains(t, got, "<title>"+templ.EscapeString(post.Title.In(locale.EN))+" | Blog | TurboHomes</title>")
	assert.Contains(t, got, post.HTML.In(locale.EN), "body is not escaped")
	assert.Contains(t, got, `<a href="/en/blog" class="back">`)
}

func TestErrorPages(t *testing.T) {
	t.Parallel()

	nf := renderString(t, views.NotFound(newPage(t, locale.ES, "/es/x", nil)))
	assert.Contains(t, nf, "<html lang=\"es\">")
	assert.NotContains(t, nf, "Page not found")

	e := renderString(t, views.Error(newPage(t, locale.EN, "/en", nil)))
	assert.Contains(t, e, "Something went wrong")
}

func TestEscaping(t *testing.T) {
	t.Parallel()

	post := content.Post{
		ID:      "x",
		Date:    time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		Slug:    locale.Text("x", "x"),
		Title:   locale.Text("<script>alert(1)</script>", "x"),
		Excerpt: locale.Text(`"quoted"`, "x"),
		HTML:    locale.Text("<p>ok</p>", "x"),
	}
	got := renderString(t, views.BlogIndex(newPage(t, locale.EN, "/en/blog", nil), []content.Post{post}))
	assert.NotContains(t, got, "<script>")
	assert.Contains(t, got, "&lt;script&gt;")
	assert.Contains(t, got, "&#34;quoted&#34;")
}
