package i18n

import "github.com/turbohomes/website/pkg/locale"

// PluralRule maps a count to a CLDR plural category.
type PluralRule func(n int) string

const (
	PluralZero  = "zero"
	PluralOne   = "one"
	PluralMany  = "many"
	PluralOther = "other"
)

// EnglishPluralRule: zero (0), one (1), other.
// CLDR has no zero category for English; it is kept so that empty states can
// be worded separately.
func EnglishPluralRule(n int) string {
	switch abs(n) {
	case 0:
		return PluralZero
	case 1:
		return PluralOne
	default:
		return PluralOther
	}
}

// SpanishPluralRule: zero (0), one (1), many (multiples of a million), other.
func SpanishPluralRule(n int) string {
	a := abs(n)
	switch {
	case a == 0:
		return PluralZero
	case a == 1:
		return PluralOne
	case a >= 1_000_000 && a%1_000_000 == 0:
		return PluralMany
	default:
		return PluralOther
	}
}

// PluralRuleFor returns the rule for l.
func PluralRuleFor(l locale.Locale) PluralRule {
	if l == locale.ES {
		return SpanishPluralRule
	}
	return EnglishPluralRule
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
