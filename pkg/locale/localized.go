package locale

import "fmt"

// Localized holds one value per supported locale. It is built positionally,
// so a value cannot exist without an entry for every locale.
type Localized[T any] struct {
	en T
	es T
}

// New returns a Localized with a value for each supported locale.
func New[T any](en, es T) Localized[T] {
	return Localized[T]{en: en, es: es}
}

// Text is New for strings, the common case in content tables.
func Text(en, es string) Localized[string] {
	return New(en, es)
}

// In returns the value for l. Unsupported locales get the Default value.
func (v Localized[T]) In(l Locale) T {
	switch l {
	case ES:
		return v.es
	default:
		return v.en
	}
}

// Each calls fn for every locale in All order.
func (v Localized[T]) Each(fn func(Locale, T)) {
	for _, l := range all {
		fn(l, v.In(l))
	}
}

// FromMap builds a Localized from m. Every supported locale must be present.
func FromMap[T any](m map[Locale]T) (Localized[T], error) {
	for _, l := range all {
		if _, ok := m[l]; !ok {
			return Localized[T]{}, fmt.Errorf("%w: %s", ErrMissing, l)
		}
	}
	return New(m[EN], m[ES]), nil
}
