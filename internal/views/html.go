package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// html writes markup and remembers the first write error.
type html struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newHTML(ctx context.Context, w io.Writer) *html {
	return &html{ctx: ctx, w: w}
}

func (h *html) raw(parts ...string) {
	for _, p := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, p)
	}
}

func (h *html) text(s string) {
	h.raw(templ.EscapeString(s))
}

// open writes a start tag. attrs are name, value pairs; an empty value
// writes a bare attribute name.
func (h *html) open(tag string, attrs ...string) {
	h.raw("<", tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		if attrs[i+1] == "" {
			h.raw(" ", attrs[i])
			continue
		}
		h.raw(" ", attrs[i], `="`, templ.EscapeString(attrs[i+1]), `"`)
	}
	h.raw(">")
}

func (h *html) close(tag string) {
	h.raw("</", tag, ">")
}

// elem writes a complete element with escaped text content.
func (h *html) elem(tag, text string, attrs ...string) {
	h.open(tag, attrs...)
	h.text(text)
	h.close(tag)
}

func (h *html) link(href, text string, attrs ...string) {
	h.elem("a", text, append([]string{"href", href}, attrs...)...)
}

func (h *html) component(c templ.Component) {
	if h.err != nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

// section wraps fn in <section id=...> with a heading.
func (h *html) section(id, heading string, fn func()) {
	h.open("section", "id", id)
	if heading != "" {
		h.elem("h2", heading)
	}
	fn()
	h.close("section")
}

// render adapts a body writer into a component.
func render(fn func(h *html)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(ctx, w)
		fn(h)
		return h.err
	})
}
