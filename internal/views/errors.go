package views

import "github.com/a-h/templ"

// NotFound is the localized 404 page.
func NotFound(p Page) templ.Component {
	p = p.withMeta(p.t("not_found.title"), p.t("not_found.text"), nil)
	p.noIndex = true

	return Layout(p, render(func(h *html) {
		h.open("section", "class", "error-page")
		h.elem("h1", p.t("not_found.heading"))
		h.elem("p", p.t("not_found.text"))
		h.link(p.Nav.Home, p.t("not_found.home_link"), "class", "button")
		h.close("section")
	}))
}

// Error is shown for failures other than a missing page.
func Error(p Page) templ.Component {
	p = p.withMeta(p.t("error_page.title"), p.t("error_page.text"), nil)
	p.noIndex = true

	return Layout(p, render(func(h *html) {
		h.open("section", "class", "error-page")
		h.elem("h1", p.t("error_page.heading"))
		h.elem("p", p.t("error_page.text"))
		h.link(p.Nav.Home, p.t("not_found.home_link"), "class", "button")
		h.close("section")
	}))
}
