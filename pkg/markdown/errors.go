package markdown

import "errors"

var (
	ErrInvalidFrontmatter = errors.New("markdown: invalid frontmatter")
	ErrMissingFrontmatter = errors.New("markdown: missing frontmatter")
	ErrRenderFailed       = errors.New("markdown: render failed")
)
