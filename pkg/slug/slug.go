package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const separator = '-'

// Letters that do not decompose into a base letter plus combining mark.
var foldings = map[rune]string{
	'ß': "s",
	'æ': "a", 'Æ': "a",
	'œ': "o", 'Œ': "o",
	'ø': "o", 'Ø': "o",
	'ł': "l", 'Ł': "l",
	'đ': "d", 'Đ': "d",
}

// Option configures Make.
type Option func(*options)

type options struct {
	maxLength int
}

// MaxLength caps the slug length in bytes. The cut happens at a separator
// when one exists inside the limit. Zero means no limit.
func MaxLength(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxLength = n
		}
	}
}

// Make converts s into a lowercase ASCII slug.
func Make(s string, opts ...Option) string {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	s = fold(s)

	var b strings.Builder
	b.Grow(len(s))
	pending := false

	for _, r := range s {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			if pending && b.Len() > 0 {
				b.WriteRune(separator)
			}
			pending = false
			b.WriteRune(unicode.ToLower(r))
		default:
			pending = true
		}
	}

	out := b.String()
	if o.maxLength > 0 && len(out) > o.maxLength {
		cut := out[:o.maxLength]
		if out[o.maxLength] != separator {
			if i := strings.LastIndexByte(cut, separator); i > 0 {
				cut = cut[:i]
			}
		}
		out = strings.TrimRight(cut, string(separator))
	}

	return out
}

// Valid reports whether s is non-empty and already canonical.
func Valid(s string) bool {
	return s != "" && Make(s) == s
}

func fold(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if f, ok := foldings[r]; ok {
			b.WriteString(f)
			continue
		}
		b.WriteRune(r)
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, b.String())
	if err != nil {
		return b.String()
	}
	return out
}
