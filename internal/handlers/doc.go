// Package handlers serves the site's pages over the route table.
//
// Lookups are pure reads of the content catalog. A slug that belongs to
// another locale is answered with a 301 to the same page in the requested
// locale; anything else that does not resolve is internal.ErrNotFound, which
// Pages.Error renders as the localized not-found page.
package handlers
