// Package content holds the site's static tables: services, locations, blog
// posts and company details.
//
// Every record carries a value for every supported locale, and slugs are
// unique per locale within a table. Both properties are checked when the
// catalog is built, so a bad edit fails at startup instead of rendering a
// broken page.
package content
