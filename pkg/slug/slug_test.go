package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/turbohomes/website/pkg/slug"
)

func TestMake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		opts     []slug.Option
		expected string
	}{
		{name: "simple text", input: "Hello World", expected: "hello-world"},
		{name: "punctuation", input: "Short Sales, Explained!", expected: "short-sales-explained"},
		{name: "numbers", input: "Suite 200", expected: "suite-200"},
		{name: "multiple spaces", input: "Too    Many   Spaces", expected: "too-many-spaces"},
		{name: "leading and trailing", input: "  Trim Me  ", expected: "trim-me"},
		{name: "empty", input: "", expected: ""},
		{name: "only symbols", input: "!@#$%^&*()", expected: ""},
		{name: "spanish diacritics", input: "Asistencia de Ejecución Hipotecaria", expected: "asistencia-de-ejecucion-hipotecaria"},
		{name: "enye", input: "Niño año", expected: "nino-ano"},
		{name: "german sharp s", input: "Straße", expected: "strase"},
		{name: "ligatures", input: "Æsop œuvre", expected: "asop-ouvre"},
		{name: "city with state", input: "Elk Grove, CA", expected: "elk-grove-ca"},
		{name: "existing dashes", input: "Too---Many---Dashes", expected: "too-many-dashes"},
		{name: "emoji", input: "Hello 😀 World", expected: "hello-world"},
		{name: "max length cuts at separator", input: "Cut off cleanly", opts: []slug.Option{slug.MaxLength(9)}, expected: "cut-off"},
		{name: "max length on boundary", input: "Cut off cleanly", opts: []slug.Option{slug.MaxLength(7)}, expected: "cut-off"},
		{name: "max length single word", input: "Foreclosure", opts: []slug.Option{slug.MaxLength(4)}, expected: "fore"},
		{name: "zero max length", input: "No limit here", opts: []slug.Option{slug.MaxLength(0)}, expected: "no-limit-here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, slug.Make(tt.input, tt.opts...))
		})
	}
}

func TestValid(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"elk-grove-ca", "short-sales", "ventas-casas-efectivo", "a", "2025"} {
		assert.True(t, slug.Valid(s), s)
	}

	for _, s := range []string{"", "Elk-Grove", "venta-rápida", "double--dash", "-lead", "trail-", "with space", "a/b"} {
		assert.False(t, slug.Valid(s), s)
	}
}
