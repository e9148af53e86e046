package internal

import "github.com/turbohomes/website/pkg/locale"

// ExtractorSource extracts a value from the request.
// Returns the value and true if found, or ("", false) if not present.
type ExtractorSource = func(Context) (string, bool)

// Extractor tries multiple sources in order and returns the first match.
type Extractor struct {
	sources []ExtractorSource
}

func NewExtractor(sources ...ExtractorSource) Extractor {
	return Extractor{sources: sources}
}

// Extract returns the first non-empty value.
func (e Extractor) Extract(c Context) (string, bool) {
	for _, src := range e.sources {
		if v, ok := src(c); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// ExtractLocale returns the first value that names a supported locale.
// Sources holding unsupported values are skipped rather than ending the
// search.
func (e Extractor) ExtractLocale(c Context) (locale.Locale, bool) {
	for _, src := range e.sources {
		v, ok := src(c)
		if !ok || v == "" {
			continue
		}
		if l, err := locale.Parse(v); err == nil {
			return l, true
		}
	}
	return "", false
}

func FromHeader(name string) ExtractorSource {
	return func(c Context) (string, bool) {
		v := c.Header(name)
		return v, v != ""
	}
}

func FromQuery(name string) ExtractorSource {
	return func(c Context) (string, bool) {
		v := c.Query(name)
		return v, v != ""
	}
}

func FromCookie(name string) ExtractorSource {
	return func(c Context) (string, bool) {
		v, err := c.Cookie(name)
		if err != nil || v == "" {
			return "", false
		}
		return v, true
	}
}

func FromParam(name string) ExtractorSource {
	return func(c Context) (string, bool) {
		v := c.Param(name)
		return v, v != ""
	}
}

// FromPathLocale reads the locale prefix of the request path.
func FromPathLocale() ExtractorSource {
	return func(c Context) (string, bool) {
		l, ok := locale.FromPath(c.Request().URL.Path)
		return l.String(), ok
	}
}

// FromAcceptLanguage negotiates Accept-Language against the supported
// locales. It always succeeds, so put it last.
func FromAcceptLanguage() ExtractorSource {
	return func(c Context) (string, bool) {
		return locale.NegotiateHeaders(c.Request().Header).String(), true
	}
}
