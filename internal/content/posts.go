package content

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/turbohomes/website/pkg/locale"
	"github.com/turbohomes/website/pkg/markdown"
	"github.com/turbohomes/website/pkg/sanitizer"
)

//go:embed posts/*.md
var postFiles embed.FS

type postMeta struct {
	Slug    string    `yaml:"slug"`
	Title   string    `yaml:"title"`
	Date    time.Time `yaml:"date"`
	Excerpt string    `yaml:"excerpt"`
}

type postVariant struct {
	meta postMeta
	html string
}

// LoadPosts reads "<id>.<locale>.md" files from fsys root. Every post must
// exist in every locale with the same date. Posts are returned newest first.
func LoadPosts(fsys fs.FS) ([]Post, error) {
	files, err := fs.Glob(fsys, "*.md")
	if err != nil {
		return nil, fmt.Errorf("content: list posts: %w", err)
	}

	md := markdown.New(markdown.WithHeadingIDs())
	variants := make(map[string]map[locale.Locale]postVariant)
	var order []string

	for _, name := range files {
		id, l, err := splitPostName(name)
		if err != nil {
			return nil, err
		}

		v, err := readPost(fsys, name, md)
		if err != nil {
			return nil, err
		}

		if _, ok := variants[id]; !ok {
			variants[id] = make(map[locale.Locale]postVariant)
			order = append(order, id)
		}
		variants[id][l] = v
	}

	posts := make([]Post, 0, len(order))
	for _, id := range order {
		p, err := assemblePost(id, variants[id])
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}

	slices.SortStableFunc(posts, func(a, b Post) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	return posts, nil
}

func splitPostName(name string) (string, locale.Locale, error) {
	base := strings.TrimSuffix(path.Base(name), ".md")
	i := strings.LastIndexByte(base, '.')
	if i <= 0 {
		return "", "", fmt.Errorf("%w: %s: file name must be <id>.<locale>.md", ErrInvalidPost, name)
	}

	l, err := locale.Parse(base[i+1:])
	if err != nil || string(l) != base[i+1:] {
		return "", "", fmt.Errorf("%w: %s: unknown locale %q", ErrInvalidPost, name, base[i+1:])
	}
	return base[:i], l, nil
}

func readPost(fsys fs.FS, name string, md *markdown.Renderer) (postVariant, error) {
	src, err := fs.ReadFile(fsys, name)
	if err != nil {
		return postVariant{}, fmt.Errorf("content: read %s: %w", name, err)
	}

	var meta postMeta
	body, err := markdown.Parse(src, &meta)
	if err != nil {
		return postVariant{}, fmt.Errorf("%w: %s: %w", ErrInvalidPost, name, err)
	}

	html, err := md.Render(body)
	if err != nil {
		return postVariant{}, fmt.Errorf("%w: %s: %w", ErrInvalidPost, name, err)
	}

	return postVariant{meta: meta, html: sanitizer.Article(html)}, nil
}

func assemblePost(id string, byLocale map[locale.Locale]postVariant) (Post, error) {
	pick := func(f func(postVariant) string) (locale.Localized[string], error) {
		m := make(map[locale.Locale]string, len(byLocale))
		for l, v := range byLocale {
			m[l] = f(v)
		}
		return locale.FromMap(m)
	}

	slugs, err := pick(func(v postVariant) string { return v.meta.Slug })
	if err != nil {
		return Post{}, fmt.Errorf("%w: %s: %w", ErrInvalidPost, id, err)
	}
	titles, _ := pick(func(v postVariant) string { return v.meta.Title })
	excerpts, _ := pick(func(v postVariant) string { return v.meta.Excerpt })
	bodies, _ := pick(func(v postVariant) string { return v.html })

	date := byLocale[locale.Default].meta.Date
	if date.IsZero() {
		return Post{}, fmt.Errorf("%w: %s: missing date", ErrInvalidPost, id)
	}
	for l, v := range byLocale {
		if !v.meta.Date.Equal(date) {
			return Post{}, fmt.Errorf("%w: %s: %s date %s differs from %s", ErrInvalidPost, id, l,
				v.meta.Date.Format(time.DateOnly), date.Format(time.DateOnly))
		}
	}

	return Post{
		ID:      id,
		Date:    date,
		Slug:    slugs,
		Title:   titles,
		Excerpt: excerpts,
		HTML:    bodies,
	}, nil
}

func embeddedPosts() fs.FS {
	sub, err := fs.Sub(postFiles, "posts")
	if err != nil {
		panic(err)
	}
	return sub
}
