package cookie

import (
	"errors"
	"net/http"
)

var ErrNotFound = errors.New("cookie: not found")

// OneYear is a max-age for long lived preferences.
const OneYear = 365 * 24 * 60 * 60

// Manager creates cookies with consistent attributes.
type Manager struct {
	domain   string
	path     string
	secure   bool
	httpOnly bool
	sameSite http.SameSite
}

type Option func(*Manager)

// New returns a Manager with Path "/", HttpOnly and SameSite=Lax.
func New(opts ...Option) *Manager {
	m := &Manager{
		path:     "/",
		httpOnly: true,
		sameSite: http.SameSiteLaxMode,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func WithDomain(domain string) Option {
	return func(m *Manager) { m.domain = domain }
}

func WithPath(path string) Option {
	return func(m *Manager) {
		if path != "" {
			m.path = path
		}
	}
}

func WithSecure(secure bool) Option {
	return func(m *Manager) { m.secure = secure }
}

func WithHTTPOnly(httpOnly bool) Option {
	return func(m *Manager) { m.httpOnly = httpOnly }
}

func WithSameSite(ss http.SameSite) Option {
	return func(m *Manager) { m.sameSite = ss }
}

// Get returns the value of the named cookie, or ErrNotFound.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrNotFound
		}
		return "", err
	}
	return c.Value, nil
}

// Set writes a cookie. A maxAge of zero makes it a session cookie.
func (m *Manager) Set(w http.ResponseWriter, name, value string, maxAge int) {
	http.SetCookie(w, m.cookie(name, value, maxAge))
}

// Delete expires the named cookie.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, m.cookie(name, "", -1))
}

func (m *Manager) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     m.path,
		Domain:   m.domain,
		MaxAge:   maxAge,
		Secure:   m.secure,
		HttpOnly: m.httpOnly,
		SameSite: m.sameSite,
	}
}
