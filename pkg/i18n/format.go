package i18n

import (
	"strconv"
	"strings"
	"time"

	"github.com/turbohomes/website/pkg/locale"
)

// LocaleFormat holds number and date conventions for a locale.
type LocaleFormat struct {
	thousandSeparator string
	dateLayout        string
	months            [12]string
}

// LocaleFormatOption configures a LocaleFormat.
type LocaleFormatOption func(*LocaleFormat)

// NewLocaleFormat returns US English conventions adjusted by opts.
func NewLocaleFormat(opts ...LocaleFormatOption) *LocaleFormat {
	f := &LocaleFormat{
		thousandSeparator: ",",
		dateLayout:        "January 2, 2006",
	}
	for i := range f.months {
		f.months[i] = time.Month(i + 1).String()
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func WithThousandSeparator(s string) LocaleFormatOption {
	return func(f *LocaleFormat) { f.thousandSeparator = s }
}

// WithDateLayout sets a time layout. Use "January" for the month name so
// WithMonthNames can translate it.
func WithDateLayout(layout string) LocaleFormatOption {
	return func(f *LocaleFormat) { f.dateLayout = layout }
}

func WithMonthNames(names [12]string) LocaleFormatOption {
	return func(f *LocaleFormat) { f.months = names }
}

// FormatDate renders t with the date layout and localized month names.
func (f *LocaleFormat) FormatDate(t time.Time) string {
	out := t.Format(f.dateLayout)
	if en := t.Month().String(); f.months[t.Month()-1] != en {
		out = strings.Replace(out, en, f.months[t.Month()-1], 1)
	}
	return out
}

// FormatNumber renders an integer with thousand separators.
func (f *LocaleFormat) FormatNumber(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteString(f.thousandSeparator)
		}
		b.WriteRune(r)
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// FormatEnUS is the format for English pages.
func FormatEnUS() *LocaleFormat {
	return NewLocaleFormat()
}

// FormatEs is the format for Spanish pages.
func FormatEs() *LocaleFormat {
	return NewLocaleFormat(
		WithThousandSeparator("."),
		WithDateLayout("2 de January de 2006"),
		WithMonthNames([12]string{
			"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
		}),
	)
}

// FormatFor returns the predefined format for l.
func FormatFor(l locale.Locale) *LocaleFormat {
	if l == locale.ES {
		return FormatEs()
	}
	return FormatEnUS()
}
