package views

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/turbohomes/website/internal/content"
	"github.com/turbohomes/website/internal/routes"
)

// FeaturedCount is how many services the home page lists.
const FeaturedCount = 3

var homeSteps = []string{"contact", "offer", "close"}

// Home renders the landing page.
func Home(p Page, cat *content.Catalog) templ.Component {
	p = p.withMeta(p.t("homepage.title"), p.t("homepage.description"), nil)
	l := p.Locale

	return Layout(p, render(func(h *html) {
		h.open("section", "class", "hero")
		h.elem("h1", p.t("homepage.hero_title"))
		h.elem("p", p.t("homepage.hero_subtitle"))
		h.link(p.Nav.Contact, p.t("homepage.cta_button"), "class", "button button-accent")
		h.close("section")

		h.section("services", p.t("homepage.services_heading"), func() {
			h.raw(`<div class="cards">`)
			for _, s := range cat.FeaturedServices(FeaturedCount) {
				h.raw(`<article class="card">`)
				h.elem("h3", s.Name.In(l))
				h.elem("p", s.Description.In(l))
				h.link(routes.Service(l, s), p.t("homepage.learn_more"), "class", "button button-outline")
				h.raw("</article>")
			}
			h.raw("</div>")
		})

		h.section("how-it-works", p.t("homepage.how_heading"), func() {
			h.raw(`<ol class="steps">`)
			for i, step := range homeSteps {
				h.raw("<li>")
				h.elem("span", strconv.Itoa(i+1), "class", "step-number")
				h.elem("h3", p.t("homepage.steps."+step+".title"))
				h.elem("p", p.t("homepage.steps."+step+".text"))
				h.raw("</li>")
			}
			h.raw("</ol>")
		})

		h.section("service-areas", p.t("homepage.areas_heading"), func() {
			first := cat.FeaturedServices(1)
			h.raw(`<ul class="areas">`)
			for _, loc := range cat.Locations() {
				h.raw("<li>")
				if len(first) > 0 {
					h.link(routes.ServiceLocation(l, first[0], loc), loc.Name.In(l))
				} else {
					h.text(loc.Name.In(l))
				}
				h.raw("</li>")
			}
			h.raw("</ul>")
		})

		h.open("section", "id", "cta", "class", "cta")
		h.elem("h2", p.t("homepage.cta_heading"))
		h.elem("p", p.t("homepage.cta_text"))
		h.link(p.Nav.Contact, p.t("homepage.cta_button"), "class", "button button-accent")
		h.close("section")
	}))
}
