// Package views renders the site's pages as templ components.
//
// Components are written by hand with templ.ComponentFunc. Every text and
// attribute value goes through templ.EscapeString; the only raw HTML is the
// sanitized body of a blog post.
//
// Page carries what the layout needs to know about the request: the locale,
// its translator, and the canonical and alternate paths of the page.
package views
