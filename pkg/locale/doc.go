// Package locale defines the fixed set of site locales and the pure functions
// built on top of it: Accept-Language negotiation and path localization.
//
// The supported set is closed. Adding a locale means adding a constant, a field
// to Localized and an entry in All; the compiler then points at every content
// record that is missing a value for it.
//
// # Negotiation
//
//	l := locale.Negotiate("es-MX,es;q=0.9,en;q=0.8")
//	// l == locale.ES
//
// Negotiate never fails. Empty, malformed or unmatched headers yield Default.
//
// # Path localization
//
//	locale.Localize("/es/contacto", locale.EN) // "/en/contacto"
//	locale.Localize("/es", locale.EN)          // "/"
//	locale.Localize("/", locale.ES)            // "/es"
//	locale.Localize("/blog", locale.ES)        // "/es/blog"
//
// A path consisting only of a locale segment collapses to "/" when the target
// is Default. Every other path keeps its segment count.
package locale
