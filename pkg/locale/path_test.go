package locale_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/turbohomes/website/pkg/locale"
)

func TestLocalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path   string
		target locale.Locale
		want   string
	}{
		{path: "/", target: locale.EN, want: "/"},
		{path: "/", target: locale.ES, want: "/es"},
		{path: "", target: locale.ES, want: "/es"},
		{path: "/es", target: locale.EN, want: "/"},
		{path: "/en", target: locale.EN, want: "/"},
		{path: "/en", target: locale.ES, want: "/es"},
		{path: "/es/", target: locale.EN, want: "/"},
		{path: "/es/contact", target: locale.EN, want: "/en/contact"},
		{path: "/en/contact", target: locale.ES, want: "/es/contact"},
		{path: "/foreclosure-assistance", target: locale.ES, want: "/es/foreclosure-assistance"},
		{path: "/blog", target: locale.EN, want: "/en/blog"},
		{path: "/es/blog/post-one", target: locale.EN, want: "/en/blog/post-one"},
		{path: "//es//blog//", target: locale.EN, want: "/en/blog"},
		{path: "/es/contacto?service=x&location=y", target: locale.EN, want: "/en/contacto?service=x&location=y"},
		{path: "/?a=1", target: locale.ES, want: "/es?a=1"},
		{path: "/es#top", target: locale.EN, want: "/#top"},
	}

	for _, tt := range tests {
		t.Run(tt.path+"->"+string(tt.target), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, locale.Localize(tt.path, tt.target))
		})
	}
}

func TestLocalize_Properties(t *testing.T) {
	t.Parallel()

	paths := []string{
		"/", "/en", "/es", "/en/contact", "/es/contacto", "/blog",
		"/en/short-sales/elk-grove-ca", "/es/blog/proceso-venta-corta-explicado",
		"/unknown/deep/path",
	}

	for _, p := range paths {
		for _, l := range locale.All() {
			once := locale.Localize(p, l)

			assert.Equal(t, once, locale.Localize(once, l), "idempotent for %s -> %s", p, l)

			if got, ok := locale.FromPath(once); ok {
				assert.Equal(t, l, got)
			} else {
				assert.Equal(t, "/", once, "only the collapsed root has no locale segment")
				assert.True(t, l.IsDefault())
			}

			if _, ok := locale.FromPath(p); ok && countSegments(p) > 1 {
				assert.Equal(t, countSegments(p), countSegments(once), "segment count for %s -> %s", p, l)
			}
		}
	}
}

func TestFromPath(t *testing.T) {
	t.Parallel()

	l, ok := locale.FromPath("/es/blog")
	assert.True(t, ok)
	assert.Equal(t, locale.ES, l)

	l, ok = locale.FromPath("/en?x=1")
	assert.True(t, ok)
	assert.Equal(t, locale.EN, l)

	_, ok = locale.FromPath("/")
	assert.False(t, ok)

	_, ok = locale.FromPath("/espanol")
	assert.False(t, ok)
}

func TestHasPrefix(t *testing.T) {
	t.Parallel()

	assert.True(t, locale.HasPrefix("/en"))
	assert.True(t, locale.HasPrefix("/es/contacto"))
	assert.False(t, locale.HasPrefix("/"))
	assert.False(t, locale.HasPrefix("/english"))
	assert.False(t, locale.HasPrefix("/blog/en"))
}

func TestStripPrefix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/", locale.StripPrefix("/es"))
	assert.Equal(t, "/contacto", locale.StripPrefix("/es/contacto"))
	assert.Equal(t, "/blog", locale.StripPrefix("/blog"))
	assert.Equal(t, "/english", locale.StripPrefix("/english"))
}

func countSegments(p string) int {
	n := 0
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			n++
		}
	}
	return n
}
