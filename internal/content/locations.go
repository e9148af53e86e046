package content

import (
	"strings"

	"github.com/turbohomes/website/pkg/locale"
	"github.com/turbohomes/website/pkg/slug"
)

var (
	sacramentoCounty = locale.Text("Sacramento County", "Condado de Sacramento")
	placerCounty     = locale.Text("Placer County", "Condado de Placer")
	sanJoaquinCounty = locale.Text("San Joaquin County", "Condado de San Joaquin")
)

var keywordPatterns = locale.New(
	[]string{"sell house %s", "cash offer %s", "buy my house %s", "fast sale %s"},
	[]string{"vender casa %s", "oferta efectivo %s", "comprar mi casa %s", "venta rápida %s"},
)

var locations = []Location{
	city("Elk Grove", sacramentoCounty),
	city("Sacramento", sacramentoCounty),
	city("Rancho Cordova", sacramentoCounty),
	city("Folsom", sacramentoCounty),
	city("Roseville", placerCounty),
	city("Citrus Heights", sacramentoCounty),
	city("Galt", sacramentoCounty),
	city("Lodi", sanJoaquinCounty),
	city("Stockton", sanJoaquinCounty),
}

// city builds a California location. City names and slugs read the same in
// every locale; keywords use the bare city name.
func city(name string, county locale.Localized[string]) Location {
	full := name + ", CA"
	s := slug.Make(full)

	return Location{
		ID:     s,
		Name:   locale.Text(full, full),
		Slug:   locale.Text(s, s),
		County: county,
		Keywords: locale.New(
			expand(keywordPatterns.In(locale.EN), name),
			expand(keywordPatterns.In(locale.ES), name),
		),
	}
}

func expand(patterns []string, name string) []string {
	out := make([]string, len(patterns))
	for i, p := range patterns {
		out[i] = strings.Replace(p, "%s", name, 1)
	}
	return out
}
