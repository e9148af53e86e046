package views

import (
	"net/url"
	"strings"

	"github.com/a-h/templ"

	"github.com/turbohomes/website/internal/content"
	"github.com/turbohomes/website/internal/routes"
	"github.com/turbohomes/website/pkg/i18n"
)

var serviceBenefits = []string{"speed", "repairs", "certainty", "timeline"}

var (
	locationBenefits = []string{"expertise", "transparent", "closing"}
	locationConcerns = []string{"relocation", "repairs", "foreclosure", "inherited"}
)

// Service renders a service page with links to every location.
func Service(p Page, s content.Service, locations []content.Location) templ.Component {
	l := p.Locale
	name := s.Name.In(l)
	m := i18n.M{"service": name, "service_lower": strings.ToLower(name)}

	p = p.withMeta(p.t("service_page.title", m), s.Description.In(l), s.Keywords.In(l))

	return Layout(p, render(func(h *html) {
		h.open("section", "class", "hero")
		h.elem("h1", name)
		h.elem("p", s.Description.In(l))
		h.close("section")

		h.section("benefits", p.t("service_page.benefits_heading"), func() {
			h.raw("<ul>")
			for _, b := range serviceBenefits {
				h.elem("li", p.t("service_page.benefits."+b, m))
			}
			h.raw("</ul>")
		})

		h.section("process", p.t("service_page.process_heading", m), func() {
			h.elem("p", p.t("service_page.process_text", m))
			h.raw(`<ol class="steps">`)
			for _, step := range homeSteps {
				h.raw("<li>")
				h.elem("h3", p.t("homepage.steps."+step+".title"))
				h.elem("p", p.t("homepage.steps."+step+".text"))
				h.raw("</li>")
			}
			h.raw("</ol>")
		})

		h.section("areas", p.t("service_page.areas_heading"), func() {
			h.elem("p", p.t("service_page.areas_text", m))
			h.raw(`<ul class="areas">`)
			for _, loc := range locations {
				h.raw("<li>")
				h.link(routes.ServiceLocation(l, s, loc), loc.Name.In(l))
				h.raw("</li>")
			}
			h.raw("</ul>")
		})

		h.open("section", "id", "cta", "class", "cta")
		h.elem("h2", p.t("service_page.cta_heading"))
		h.elem("p", p.t("service_page.cta_text", m))
		h.link(p.Nav.Contact, p.t("homepage.cta_button"), "class", "button button-accent")
		h.close("section")
	}))
}

// ServiceLocation renders the page for a service in one city.
func ServiceLocation(p Page, s content.Service, loc content.Location) templ.Component {
	l := p.Locale
	name := s.Name.In(l)
	m := i18n.M{
		"service":       name,
		"service_lower": strings.ToLower(name),
		"location":      loc.Name.In(l),
	}

	p = p.withMeta(
		p.t("location_page.title", m),
		p.t("location_page.description", m),
		content.ServiceLocationKeywords(l, s, loc),
	)
	contact := InquiryLink(p.Nav.Contact, s, loc)

	return Layout(p, render(func(h *html) {
		h.open("section", "class", "hero")
		h.elem("h1", p.t("location_page.hero_title", m))
		h.elem("p", p.t("location_page.hero_text", m))
		h.link(contact, p.t("location_page.hero_cta", m), "class", "button button-accent")
		h.close("section")

		h.section("benefits", p.t("location_page.benefits_heading", m), func() {
			h.raw(`<div class="cards">`)
			for _, b := range locationBenefits {
				h.raw(`<article class="card">`)
				h.elem("h3", p.t("location_page.benefits."+b+".title", m))
				h.elem("p", p.t("location_page.benefits."+b+".text", m))
				h.raw("</article>")
			}
			h.raw("</div>")
		})

		h.section("process", p.t("location_page.process_heading", m), func() {
			h.raw(`<ol class="steps">`)
			for _, step := range homeSteps {
				h.raw("<li>")
				h.elem("h3", p.t("location_page.process."+step+".title", m))
				h.elem("p", p.t("location_page.process."+step+".text", m))
				h.raw("</li>")
			}
			h.raw("</ol>")
		})

		h.section("concerns", p.t("location_page.concerns_heading", m), func() {
			h.raw("<ul>")
			for _, c := range locationConcerns {
				h.elem("li", p.t("location_page.concerns."+c, m))
			}
			h.raw("</ul>")
		})

		h.section("testimonial", p.t("location_page.testimonial_heading", m), func() {
			h.raw("<figure>")
			h.open("blockquote")
			h.elem("p", p.t("location_page.testimonial_quote", m))
			h.close("blockquote")
			h.elem("figcaption", p.t("location_page.testimonial_author", m))
			h.raw("</figure>")
		})

		h.section("guarantee", p.t("location_page.guarantee_heading", m), func() {
			h.elem("p", p.t("location_page.guarantee_text", m))
			h.link(contact, p.t("location_page.guarantee_cta", m), "class", "button")
		})

		h.open("section", "id", "cta", "class", "cta")
		h.elem("h2", p.t("location_page.final_heading", m))
		h.elem("p", p.t("location_page.final_text", m))
		h.link(contact, p.t("location_page.final_cta", m), "class", "button button-accent")
		h.close("section")
	}))
}

// InquiryLink points at the contact page with the service and location
// preselected.
func InquiryLink(contactPath string, s content.Service, loc content.Location) string {
	q := url.Values{}
	q.Set(routes.QueryService, s.ID)
	q.Set(routes.QueryLocation, loc.ID)
	return contactPath + "?" + q.Encode()
}
