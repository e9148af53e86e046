package content_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turbohomes/website/internal/content"
	"github.com/turbohomes/website/pkg/locale"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	c := content.Default()
	assert.Len(t, c.Services(), 7)
	assert.Len(t, c.Locations(), 9)
	assert.Len(t, c.Posts(), 3)
	assert.Same(t, c, content.Default())
}

func TestCatalog_Lookups(t *testing.T) {
	t.Parallel()

	c := content.Default()

	t.Run("service by localized slug", func(t *testing.T) {
		t.Parallel()

		s, ok := c.Service(locale.ES, "asistencia-ejecucion-hipotecaria")
		require.True(t, ok)
		assert.Equal(t, "foreclosure-assistance", s.ID)

		_, ok = c.Service(locale.EN, "asistencia-ejecucion-hipotecaria")
		assert.False(t, ok)
	})

	t.Run("service from other locale", func(t *testing.T) {
		t.Parallel()

		s, found, ok := c.ServiceAnyLocale(locale.EN, "asistencia-ejecucion-hipotecaria")
		require.True(t, ok)
		assert.Equal(t, "foreclosure-assistance", s.ID)
		assert.Equal(t, locale.ES, found)
	})

	t.Run("location", func(t *testing.T) {
		t.Parallel()

		l, ok := c.Location(locale.ES, "elk-grove-ca")
		require.True(t, ok)
		assert.Equal(t, "Elk Grove, CA", l.Name.In(locale.ES))
	})

	t.Run("post", func(t *testing.T) {
		t.Parallel()

		p, ok := c.Post(locale.EN, "short-sale-process-explained")
		require.True(t, ok)
		assert.Equal(t, "proceso-venta-corta-explicado", p.Slug.In(locale.ES))
		assert.Contains(t, p.HTML.In(locale.EN), "<ol>")
		assert.NotContains(t, p.HTML.In(locale.EN), "<script")

		_, found, ok := c.PostAnyLocale(locale.EN, "proceso-venta-corta-explicado")
		require.True(t, ok)
		assert.Equal(t, locale.ES, found)
	})

	t.Run("unknown slug", func(t *testing.T) {
		t.Parallel()

		_, ok := c.Service(locale.EN, "nope")
		assert.False(t, ok)
		_, _, ok = c.LocationAnyLocale(locale.EN, "nope")
		assert.False(t, ok)
		_, ok = c.Post(locale.ES, "")
		assert.False(t, ok)
	})
}

func TestCatalog_FeaturedServices(t *testing.T) {
	t.Parallel()

	c := content.Default()
	assert.Len(t, c.FeaturedServices(4), 4)
	assert.Len(t, c.FeaturedServices(100), 7)
	assert.Equal(t, c.Services()[0].ID, c.FeaturedServices(1)[0].ID)
}

func TestCatalog_ByID(t *testing.T) {
	t.Parallel()

	c := content.Default()

	s, ok := c.ServiceByID("short-sales")
	require.True(t, ok)
	assert.Equal(t, "Short Sales", s.Name.In(locale.EN))

	loc, ok := c.LocationByID("stockton-ca")
	require.True(t, ok)
	assert.Equal(t, "Stockton, CA", loc.Name.In(locale.ES))

	_, ok = c.ServiceByID("short-sale")
	assert.False(t, ok)
	_, ok = c.LocationByID("")
	assert.False(t, ok)
}

func TestCatalog_SlugsUniquePerLocale(t *testing.T) {
	t.Parallel()

	c := content.Default()
	for _, l := range locale.All() {
		seen := map[string]bool{}
		for _, s := range c.Services() {
			assert.False(t, seen[s.Slug.In(l)], "duplicate service slug %s", s.Slug.In(l))
			seen[s.Slug.In(l)] = true
		}
	}
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	valid := content.Service{
		ID:   "a",
		Name: locale.Text("A", "A"),
		Slug: locale.Text("a", "a-es"),
	}

	tests := []struct {
		name     string
		services []content.Service
		want     error
	}{
		{
			name: "duplicate slug",
			services: []content.Service{valid, {
				ID: "b", Name: locale.Text("B", "B"), Slug: locale.Text("a", "b-es"),
			}},
			want: content.ErrDuplicateSlug,
		},
		{
			name: "duplicate id",
			services: []content.Service{valid, {
				ID: "a", Name: locale.Text("B", "B"), Slug: locale.Text("b", "b-es"),
			}},
			want: content.ErrDuplicateSlug,
		},
		{
			name: "invalid slug",
			services: []content.Service{{
				ID: "a", Name: locale.Text("A", "A"), Slug: locale.Text("Not A Slug", "a"),
			}},
			want: content.ErrInvalidSlug,
		},
		{
			name: "empty name",
			services: []content.Service{{
				ID: "a", Name: locale.Text("A", ""), Slug: locale.Text("a", "a"),
			}},
			want: content.ErrEmptyField,
		},
		{
			name: "reserved slug",
			services: []content.Service{{
				ID: "a", Name: locale.Text("A", "A"), Slug: locale.Text("a", "blog"),
			}},
			want: content.ErrReservedSlug,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := content.New(content.WithServices(tt.services...))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("same slug in two locales is fine", func(t *testing.T) {
		t.Parallel()

		_, err := content.New(content.WithServices(content.Service{
			ID: "a", Name: locale.Text("A", "A"), Slug: locale.Text("same", "same"),
		}))
		assert.NoError(t, err)
	})
}

func post(slug, date string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte("---\nslug: " + slug + "\ntitle: T\ndate: " + date + "\nexcerpt: E\n---\nBody\n")}
}

func TestLoadPosts(t *testing.T) {
	t.Parallel()

	t.Run("sorted newest first", func(t *testing.T) {
		t.Parallel()

		posts, err := content.LoadPosts(fstest.MapFS{
			"old.en.md": post("old", "2024-01-01"),
			"old.es.md": post("viejo", "2024-01-01"),
			"new.en.md": post("new", "2025-06-01"),
			"new.es.md": post("nuevo", "2025-06-01"),
		})
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, "new", posts[0].ID)
		assert.Equal(t, "viejo", posts[1].Slug.In(locale.ES))
		assert.Equal(t, "<p>Body</p>\n", posts[1].HTML.In(locale.EN))
	})

	tests := []struct {
		name  string
		files fstest.MapFS
	}{
		{"missing locale", fstest.MapFS{"a.en.md": post("a", "2025-01-01")}},
		{"unknown locale", fstest.MapFS{"a.fr.md": post("a", "2025-01-01")}},
		{"no locale in name", fstest.MapFS{"a.md": post("a", "2025-01-01")}},
		{"dates differ", fstest.MapFS{
			"a.en.md": post("a", "2025-01-01"),
			"a.es.md": post("a-es", "2025-01-02"),
		}},
		{"no frontmatter", fstest.MapFS{
			"a.en.md": {Data: []byte("just text")},
			"a.es.md": post("a", "2025-01-01"),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := content.LoadPosts(tt.files)
			assert.ErrorIs(t, err, content.ErrInvalidPost)
		})
	}
}

func TestServiceLocationKeywords(t *testing.T) {
	t.Parallel()

	c := content.Default()
	s, _ := c.Service(locale.EN, "probate-sales")
	l, _ := c.Location(locale.EN, "elk-grove-ca")

	kw := content.ServiceLocationKeywords(locale.EN, s, l)
	assert.Contains(t, kw, "Probate Sales")
	assert.Contains(t, kw, "Elk Grove, CA")
	assert.Contains(t, kw, "TurboHomes Elk Grove, CA")
	assert.Equal(t, s.Keywords.In(locale.EN)[0]+" Elk Grove, CA", kw[0])
}
