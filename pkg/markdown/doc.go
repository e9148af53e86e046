// Package markdown parses Markdown documents with YAML frontmatter and
// renders their bodies to HTML with goldmark.
//
//	var meta struct {
//		Title string    `yaml:"title"`
//		Date  time.Time `yaml:"date"`
//	}
//	body, err := markdown.Parse(src, &meta)
//	html, err := markdown.New().Render(body)
//
// Rendered HTML is not sanitized; pass it through pkg/sanitizer before
// serving.
package markdown
