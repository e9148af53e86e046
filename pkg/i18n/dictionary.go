package i18n

import (
	"fmt"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/turbohomes/website/pkg/locale"
)

// Dictionary is the flattened message table of one locale.
type Dictionary struct {
	locale  locale.Locale
	entries map[string]string
	plural  PluralRule
	format  *LocaleFormat
}

// NewDictionary flattens tree into a Dictionary for l.
func NewDictionary(l locale.Locale, tree map[string]any) (*Dictionary, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, l)
	}

	entries := make(map[string]string)
	flatten(entries, "", tree)
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyDictionary, l)
	}

	return &Dictionary{
		locale:  l,
		entries: entries,
		plural:  PluralRuleFor(l),
		format:  FormatFor(l),
	}, nil
}

// ParseYAML decodes a YAML document into a Dictionary for l.
func ParseYAML(l locale.Locale, data []byte) (*Dictionary, error) {
	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrInvalidFile, l, err)
	}
	return NewDictionary(l, tree)
}

func (d *Dictionary) Locale() locale.Locale { return d.locale }

// Lookup returns the raw message for key.
func (d *Dictionary) Lookup(key string) (string, bool) {
	s, ok := d.entries[key]
	return s, ok
}

// Keys returns every key in sorted order.
func (d *Dictionary) Keys() []string {
	return slices.Sorted(maps.Keys(d.entries))
}

func (d *Dictionary) Len() int { return len(d.entries) }

func flatten(dst map[string]string, prefix string, tree map[string]any) {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case map[string]any:
			flatten(dst, key, val)
		case string:
			dst[key] = val
		case nil:
			dst[key] = ""
		default:
			dst[key] = fmt.Sprint(val)
		}
	}
}
