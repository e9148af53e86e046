// Package sanitizer cleans HTML before it is embedded in pages.
package sanitizer

import (
	"regexp"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicy    *bluemonday.Policy
	articlePolicy *bluemonday.Policy
	initOnce      sync.Once
)

var headingID = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

func initPolicies() {
	initOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()

		// Long-form content: headings, lists, emphasis, quotes, tables and links.
		articlePolicy = bluemonday.NewPolicy()
		articlePolicy.AllowStandardURLs()
		// AllowStandardURLs marks every link nofollow; only external ones should be.
		articlePolicy.RequireNoFollowOnLinks(false)
		articlePolicy.AllowElements(
			"p", "br", "hr",
			"h2", "h3", "h4", "h5", "h6",
			"strong", "b", "em", "i", "del",
			"ul", "ol", "li",
			"blockquote", "code", "pre",
			"table", "thead", "tbody", "tr", "th", "td",
		)
		articlePolicy.AllowAttrs("id").Matching(headingID).OnElements("h2", "h3", "h4", "h5", "h6")
		articlePolicy.AllowAttrs("href").OnElements("a")
		articlePolicy.RequireNoFollowOnFullyQualifiedLinks(true)
		articlePolicy.AddTargetBlankToFullyQualifiedLinks(true)
	})
}

// Article keeps the structural and inline markup of an article body and
// strips everything else. External links get rel="nofollow noopener" and
// open in a new tab.
func Article(s string) string {
	initPolicies()
	return articlePolicy.Sanitize(s)
}

// Text strips all markup, leaving escaped text.
func Text(s string) string {
	initPolicies()
	return textPolicy.Sanitize(s)
}
