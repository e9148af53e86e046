package content

import (
	"time"

	"github.com/turbohomes/website/pkg/locale"
)

// Service is a kind of sale TurboHomes handles.
type Service struct {
	ID          string
	Name        locale.Localized[string]
	Slug        locale.Localized[string]
	Description locale.Localized[string]
	Keywords    locale.Localized[[]string]
}

// Location is a city the business serves.
type Location struct {
	ID       string
	Name     locale.Localized[string]
	Slug     locale.Localized[string]
	County   locale.Localized[string]
	Keywords locale.Localized[[]string]
}

// Post is a blog article. HTML is sanitized.
type Post struct {
	ID      string
	Date    time.Time
	Slug    locale.Localized[string]
	Title   locale.Localized[string]
	Excerpt locale.Localized[string]
	HTML    locale.Localized[string]
}

// Company holds the contact details shown on the site.
type Company struct {
	Name     string
	Phone    string
	Email    string
	Address  string
	License  string
	Calendar string
}

// TurboHomes is the business behind the site.
var TurboHomes = Company{
	Name:     "TurboHomes",
	Phone:    "916-690-3334",
	Email:    "ravneel_pratap@live.com",
	Address:  "2603 Camino Ramon, Suite 200, San Ramon, CA 94583",
	License:  "REALTOR® | DRE: 02156944 | eXp Realty of California Inc",
	Calendar: "https://calendar.google.com/calendar/u/0/appointments/schedules/AcZssZ3KpegfmjkBxjxd4uh0ieqeODnYQhNAfBLY8gC_auvKZJ5o5pZQrhykBzLJV701dpDRSQw1hcsQ",
}
