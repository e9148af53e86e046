package i18n

import (
	"fmt"
	"strings"
)

// M holds placeholder values.
type M map[string]any

// ReplacePlaceholders substitutes {{name}} placeholders with values from m.
// Unknown placeholders are left as is.
func ReplacePlaceholders(template string, m M) string {
	if len(m) == 0 || !strings.Contains(template, "{{") {
		return template
	}

	pairs := make([]string, 0, len(m)*2)
	for k, v := range m {
		pairs = append(pairs, "{{"+k+"}}", fmt.Sprint(v))
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

func merge(ms []M) M {
	switch len(ms) {
	case 0:
		return nil
	case 1:
		return ms[0]
	}
	out := make(M)
	for _, m := range ms {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}
