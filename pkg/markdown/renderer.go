package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Renderer converts Markdown to HTML. It is safe for concurrent use.
type Renderer struct {
	md goldmark.Markdown
}

// Option configures a Renderer.
type Option func(*[]goldmark.Option)

// WithHeadingIDs generates id attributes on headings so articles can be
// linked by section.
func WithHeadingIDs() Option {
	return func(opts *[]goldmark.Option) {
		*opts = append(*opts, goldmark.WithParserOptions(parser.WithAutoHeadingID()))
	}
}

// New returns a Renderer with GitHub-flavoured Markdown and typographic
// punctuation enabled.
func New(opts ...Option) *Renderer {
	gm := []goldmark.Option{
		goldmark.WithExtensions(extension.GFM, extension.Typographer),
	}
	for _, opt := range opts {
		opt(&gm)
	}
	return &Renderer{md: goldmark.New(gm...)}
}

// Render converts src to HTML.
func (r *Renderer) Render(src []byte) (string, error) {
	var buf bytes.Buffer
	buf.Grow(len(src) * 2)
	if err := r.md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return buf.String(), nil
}
