package i18n

import (
	"time"

	"github.com/turbohomes/website/pkg/locale"
)

// Translator resolves messages for one locale, consulting the default
// dictionary for keys the locale lacks.
type Translator struct {
	dict      *Dictionary
	fallback  *Dictionary
	onMissing func(l locale.Locale, key string)
}

// NewTranslator binds dict and fallback. Either may be the same dictionary.
func NewTranslator(dict, fallback *Dictionary, onMissing func(locale.Locale, string)) *Translator {
	if dict == nil {
		panic("i18n: dictionary is not provided")
	}
	if fallback == nil {
		fallback = dict
	}
	return &Translator{dict: dict, fallback: fallback, onMissing: onMissing}
}

// Locale returns the translator's locale. When a locale's dictionary failed
// to load this is the default locale.
func (t *Translator) Locale() locale.Locale { return t.dict.locale }

// Has reports whether key resolves without reaching the key itself.
func (t *Translator) Has(key string) bool {
	_, ok := t.lookup(key)
	return ok
}

// T returns the message for key with placeholders replaced.
func (t *Translator) T(key string, placeholders ...M) string {
	msg, ok := t.lookup(key)
	if !ok {
		t.missing(key)
		return key
	}
	return ReplacePlaceholders(msg, merge(placeholders))
}

// Tn returns the plural form of key for n. The {{count}} placeholder is set
// to n unless provided.
func (t *Translator) Tn(key string, n int, placeholders ...M) string {
	msg, ok := t.plural(t.dict, key, n)
	if !ok && t.fallback != t.dict {
		msg, ok = t.plural(t.fallback, key, n)
	}
	if !ok {
		t.missing(key)
		return key
	}

	values := M{"count": t.dict.format.FormatNumber(int64(n))}
	for k, v := range merge(placeholders) {
		values[k] = v
	}
	return ReplacePlaceholders(msg, values)
}

// FormatDate formats d with the locale's date conventions.
func (t *Translator) FormatDate(d time.Time) string {
	return t.dict.format.FormatDate(d)
}

// FormatNumber formats n with the locale's thousand separator.
func (t *Translator) FormatNumber(n int64) string {
	return t.dict.format.FormatNumber(n)
}

func (t *Translator) lookup(key string) (string, bool) {
	if msg, ok := t.dict.Lookup(key); ok {
		return msg, true
	}
	if t.fallback != t.dict {
		return t.fallback.Lookup(key)
	}
	return "", false
}

func (t *Translator) plural(d *Dictionary, key string, n int) (string, bool) {
	form := d.plural(n)
	if msg, ok := d.Lookup(key + "." + form); ok {
		return msg, true
	}
	if form != PluralOther {
		return d.Lookup(key + "." + PluralOther)
	}
	return "", false
}

func (t *Translator) missing(key string) {
	if t.onMissing != nil {
		t.onMissing(t.dict.locale, key)
	}
}
