package locale

import (
	"fmt"
	"strings"
)

// Locale is a supported site locale tag.
type Locale string

const (
	EN Locale = "en"
	ES Locale = "es"

	// Default is served at "/" and used whenever negotiation has no match.
	Default = EN
)

var all = []Locale{EN, ES}

// All returns the supported locales in declaration order, Default first.
func All() []Locale {
	out := make([]Locale, len(all))
	copy(out, all)
	return out
}

// String implements fmt.Stringer.
func (l Locale) String() string { return string(l) }

// IsDefault reports whether l is the default locale.
func (l Locale) IsDefault() bool { return l == Default }

// Valid reports whether l is one of the supported locales.
func (l Locale) Valid() bool {
	for _, s := range all {
		if s == l {
			return true
		}
	}
	return false
}

// IsSupported reports whether s names a supported locale exactly.
func IsSupported(s string) bool {
	return Locale(s).Valid()
}

// Parse resolves s to a supported locale. Matching is case-insensitive and
// region subtags are ignored, so "ES-mx" parses to ES.
func Parse(s string) (Locale, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmpty
	}

	base, _, _ := strings.Cut(strings.ToLower(s), "-")
	base, _, _ = strings.Cut(base, "_")

	if l := Locale(base); l.Valid() {
		return l, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupported, s)
}

// MustParse is like Parse but panics on error. For use with constants.
func MustParse(s string) Locale {
	l, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return l
}
