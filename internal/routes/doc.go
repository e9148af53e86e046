// Package routes enumerates every page of the site.
//
// The table is the cross product of the supported locales with the static
// pages and each content table. It drives the sitemap, the static export and
// the hreflang alternates rendered into each page.
package routes
