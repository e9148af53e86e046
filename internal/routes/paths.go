package routes

import (
	"github.com/turbohomes/website/internal/content"
	"github.com/turbohomes/website/pkg/locale"
)

// Query parameters of the contact page that preselect an inquiry.
const (
	QueryService  = "service"
	QueryLocation = "location"
)

// InquiryQuery lists the query parameters that change a rendered page.
func InquiryQuery() []string {
	return []string{QueryService, QueryLocation}
}

func Home(l locale.Locale) string {
	return "/" + l.String()
}

func Contact(l locale.Locale, slug string) string {
	return "/" + l.String() + "/" + slug
}

func BlogIndex(l locale.Locale) string {
	return "/" + l.String() + "/" + BlogSegment
}

func Post(l locale.Locale, p content.Post) string {
	return BlogIndex(l) + "/" + p.Slug.In(l)
}

func Service(l locale.Locale, s content.Service) string {
	return "/" + l.String() + "/" + s.Slug.In(l)
}

func ServiceLocation(l locale.Locale, s content.Service, loc content.Location) string {
	return Service(l, s) + "/" + loc.Slug.In(l)
}
