package views

import (
	"github.com/a-h/templ"

	"github.com/turbohomes/website/internal/content"
	"github.com/turbohomes/website/internal/routes"
	"github.com/turbohomes/website/pkg/i18n"
)

// BlogIndex lists posts newest first.
func BlogIndex(p Page, posts []content.Post) templ.Component {
	p = p.withMeta(p.t("blog.title"), p.t("blog.description"), nil)
	l := p.Locale

	return Layout(p, render(func(h *html) {
		h.elem("h1", p.t("blog.heading"))
		h.elem("p", p.T.Tn("blog.count", len(posts)), "class", "post-count")

		if len(posts) == 0 {
			h.elem("p", p.t("blog.empty"), "class", "empty")
			return
		}

		h.raw(`<div class="cards">`)
		for _, post := range posts {
			href := routes.Post(l, post)
			h.raw(`<article class="card">`)
			h.raw("<h2>")
			h.link(href, post.Title.In(l))
			h.raw("</h2>")
			writePublished(h, p, post)
			h.elem("p", post.Excerpt.In(l))
			h.link(href, p.t("blog.read_more"), "class", "button button-outline")
			h.raw("</article>")
		}
		h.raw("</div>")
	}))
}

// BlogPost renders one article.
func BlogPost(p Page, post content.Post) templ.Component {
	l := p.Locale
	p = p.withMeta(p.t("blog.post_title", i18n.M{"title": post.Title.In(l)}), post.Excerpt.In(l), nil)

	return Layout(p, render(func(h *html) {
		h.raw("<article>")
		h.elem("h1", post.Title.In(l))
		writePublished(h, p, post)
		h.raw(`<div class="prose">`)
		h.component(templ.Raw(post.HTML.In(l)))
		h.raw("</div>")
		h.raw("</article>")
		h.link(p.Nav.Blog, p.t("blog.back"), "class", "back")
	}))
}

func writePublished(h *html, p Page, post content.Post) {
	h.raw("<p>")
	h.open("time", "datetime", post.Date.Format("2006-01-02"))
	h.text(p.t("blog.published_on", i18n.M{"date": p.T.FormatDate(post.Date)}))
	h.close("time")
	h.raw("</p>")
}
