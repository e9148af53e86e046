package locale_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/turbohomes/website/pkg/locale"
)

func TestNegotiate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   locale.Locale
	}{
		{name: "empty header", header: "", want: locale.EN},
		{name: "whitespace", header: "   ", want: locale.EN},
		{name: "spanish", header: "es", want: locale.ES},
		{name: "regional spanish", header: "es-MX,es;q=0.9", want: locale.ES},
		{name: "regional english", header: "en-GB", want: locale.EN},
		{name: "weighted prefers spanish", header: "en;q=0.3,es;q=0.8", want: locale.ES},
		{name: "unsupported first", header: "fr-CH,fr;q=0.9,es;q=0.8", want: locale.ES},
		{name: "q zero is ignored", header: "es;q=0,en;q=0.5", want: locale.EN},
		{name: "only q zero", header: "es;q=0", want: locale.EN},
		{name: "unsupported only", header: "de-DE,de;q=0.9", want: locale.EN},
		{name: "malformed", header: ";;;q=abc,,", want: locale.EN},
		{name: "garbage", header: "\x00\x01", want: locale.EN},
		{name: "bad entry skipped", header: "es;q=0.9, x_@@bad", want: locale.ES},
		{name: "bad weight skipped", header: "en;q=abc, es;q=0.4", want: locale.ES},
		{name: "skipped entries keep weight order", header: "x_@@bad, en;q=0.2, es;q=0.7", want: locale.ES},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, locale.Negotiate(tt.header))
		})
	}
}

func TestNegotiate_AlwaysSupported(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"*",
		"es-419",
		"zh-Hant-TW;q=0.9",
		"en;q=1.5",
		strings.Repeat("es,", 3000),
		strings.Repeat("x", 10000),
	}

	for _, in := range inputs {
		got := locale.Negotiate(in)
		assert.True(t, got.Valid(), "Negotiate(%.20q) = %q", in, got)
	}
}

func TestNegotiate_OversizedHeaderKeepsCompleteEntries(t *testing.T) {
	t.Parallel()

	header := "es," + strings.Repeat("en;q=0.1,", 1000)
	assert.Equal(t, locale.ES, locale.Negotiate(header))
}

func TestNegotiateHeaders(t *testing.T) {
	t.Parallel()

	h := http.Header{}
	assert.Equal(t, locale.EN, locale.NegotiateHeaders(h))

	h.Set("Accept-Language", "es-ES")
	assert.Equal(t, locale.ES, locale.NegotiateHeaders(h))
}
