package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turbohomes/website/pkg/cookie"
)

func TestManager_Get(t *testing.T) {
	t.Parallel()

	m := cookie.New()

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		_, err := m.Get(r, "lang")
		assert.ErrorIs(t, err, cookie.ErrNotFound)
	})

	t.Run("present", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "lang", Value: "es"})
		v, err := m.Get(r, "lang")
		require.NoError(t, err)
		assert.Equal(t, "es", v)
	})
}

func TestManager_Set(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		opts  []cookie.Option
		check func(t *testing.T, c *http.Cookie)
	}{
		{
			name: "defaults",
			check: func(t *testing.T, c *http.Cookie) {
				assert.Equal(t, "/", c.Path)
				assert.True(t, c.HttpOnly)
				assert.False(t, c.Secure)
				assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
			},
		},
		{
			name: "custom",
			opts: []cookie.Option{
				cookie.WithSecure(true),
				cookie.WithHTTPOnly(false),
				cookie.WithPath("/es"),
				cookie.WithDomain("example.com"),
				cookie.WithSameSite(http.SameSiteStrictMode),
			},
			check: func(t *testing.T, c *http.Cookie) {
				assert.Equal(t, "/es", c.Path)
				assert.False(t, c.HttpOnly)
				assert.True(t, c.Secure)
				assert.Equal(t, "example.com", c.Domain)
				assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			cookie.New(tt.opts...).Set(w, "lang", "es", cookie.OneYear)

			cookies := w.Result().Cookies()
			require.Len(t, cookies, 1)
			assert.Equal(t, "lang", cookies[0].Name)
			assert.Equal(t, "es", cookies[0].Value)
			assert.Equal(t, cookie.OneYear, cookies[0].MaxAge)
			tt.check(t, cookies[0])
		})
	}
}

func TestManager_Delete(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	cookie.New().Delete(w, "lang")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "", cookies[0].Value)
	assert.Less(t, cookies[0].MaxAge, 0)
}
