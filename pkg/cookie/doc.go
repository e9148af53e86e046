// Package cookie sets and reads plain HTTP cookies with shared defaults.
//
// The site keeps one preference cookie, the visitor's language, so the
// Manager only deals in plain values:
//
//	m := cookie.New(cookie.WithSecure(true))
//	m.Set(w, "lang", "es", cookie.OneYear)
//	v, err := m.Get(r, "lang")
package cookie
