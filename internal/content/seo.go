package content

import "github.com/turbohomes/website/pkg/locale"

// ServiceLocationKeywords combines service and location keywords for the
// service-in-city page of l.
func ServiceLocationKeywords(l locale.Locale, s Service, loc Location) []string {
	service := s.Name.In(l)
	city := loc.Name.In(l)

	sk := s.Keywords.In(l)
	lk := loc.Keywords.In(l)

	out := make([]string, 0, len(sk)+len(lk)+3)
	for _, k := range sk {
		out = append(out, k+" "+city)
	}
	for _, k := range lk {
		out = append(out, service+" "+k)
	}
	return append(out, service, city, TurboHomes.Name+" "+city)
}
