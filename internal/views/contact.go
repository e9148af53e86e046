package views

import (
	"strings"

	"github.com/a-h/templ"

	"github.com/turbohomes/website/internal/content"
	"github.com/turbohomes/website/pkg/i18n"
)

// Inquiry is the service and location a visitor came from.
type Inquiry struct {
	Service  content.Service
	Location content.Location
}

// Contact renders the contact details and the booking link. A non-nil
// inquiry adds a note naming the service and city.
func Contact(p Page, company content.Company, inquiry *Inquiry) templ.Component {
	p = p.withMeta(p.t("contact_page.title"), p.t("contact_page.description"), nil)

	return Layout(p, render(func(h *html) {
		h.elem("h1", p.t("contact_page.heading"))

		if inquiry != nil {
			h.elem("p", p.t("contact_page.inquiry", i18n.M{
				"service":  inquiry.Service.Name.In(p.Locale),
				"location": inquiry.Location.Name.In(p.Locale),
			}), "class", "inquiry")
		}

		h.section("details", p.t("contact_page.details_heading"), func() {
			h.raw("<dl>")
			h.elem("dt", p.t("contact_page.phone"))
			h.raw("<dd>")
			h.link("tel:"+strings.ReplaceAll(company.Phone, "-", ""), company.Phone)
			h.raw("</dd>")
			h.elem("dt", p.t("contact_page.email"))
			h.raw("<dd>")
			h.link("mailto:"+company.Email, company.Email)
			h.raw("</dd>")
			h.elem("dt", p.t("contact_page.address"))
			h.elem("dd", company.Address)
			h.raw("</dl>")
		})

		h.section("schedule", p.t("contact_page.schedule_heading"), func() {
			h.elem("p", p.t("contact_page.schedule_text"))
			h.link(company.Calendar, p.t("contact_page.schedule_cta"),
				"class", "button button-accent", "target", "_blank", "rel", "noopener noreferrer")
		})
	}))
}
