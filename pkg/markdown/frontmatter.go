package markdown

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

var delimiter = []byte("---")

// Split separates a leading "---" delimited frontmatter block from the body.
// A document without frontmatter returns a nil head and the whole input.
func Split(src []byte) (head, body []byte, err error) {
	src = bytes.TrimPrefix(src, []byte("\xef\xbb\xbf"))
	if !bytes.HasPrefix(src, delimiter) {
		return nil, src, nil
	}

	rest := bytes.TrimLeft(src[len(delimiter):], " \t")
	switch {
	case bytes.HasPrefix(rest, []byte("\r\n")):
		rest = rest[2:]
	case bytes.HasPrefix(rest, []byte("\n")):
		rest = rest[1:]
	default:
		return nil, nil, fmt.Errorf("%w: opening delimiter must be on its own line", ErrInvalidFrontmatter)
	}

	// closing delimiter at the start of a line
	end := -1
	if bytes.HasPrefix(rest, delimiter) {
		end = 0
	} else if i := bytes.Index(rest, append([]byte("\n"), delimiter...)); i >= 0 {
		end = i + 1
	}
	if end < 0 {
		return nil, nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}

	head = rest[:end]
	body = rest[end+len(delimiter):]
	body = bytes.TrimPrefix(body, []byte("\r"))
	body = bytes.TrimPrefix(body, []byte("\n"))

	return head, body, nil
}

// Parse decodes the frontmatter of src into meta and returns the body.
// The frontmatter block is required.
func Parse(src []byte, meta any) ([]byte, error) {
	head, body, err := Split(src)
	if err != nil {
		return nil, err
	}
	if head == nil {
		return nil, ErrMissingFrontmatter
	}

	if err := yaml.Unmarshal(head, meta); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
	}
	return body, nil
}
