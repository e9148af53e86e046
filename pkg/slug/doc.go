// Package slug builds and checks the URL path segments used for content records.
//
// Make folds Latin diacritics to ASCII and joins words with "-":
//
//	slug.Make("Ventas de Casas en Efectivo") // "ventas-de-casas-en-efectivo"
//	slug.Make("Venta rápida, Elk Grove")     // "venta-rapida-elk-grove"
//
// Valid reports whether a string is already in that canonical form, which is
// what content tables are checked against when they are built.
package slug
