package locale

import (
	"cmp"
	"net/http"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// maxHeaderLength bounds the Accept-Language input handed to the parser.
const maxHeaderLength = 4096

var (
	supportedTags = []language.Tag{language.English, language.Spanish}
	matcher       = language.NewMatcher(supportedTags)
)

// Negotiate picks the best supported locale for an Accept-Language header.
// Entries with q=0 or that fail to parse are ignored. Empty or unmatched
// headers resolve to Default.
func Negotiate(header string) Locale {
	header = strings.TrimSpace(header)
	if header == "" {
		return Default
	}

	if len(header) > maxHeaderLength {
		header = header[:maxHeaderLength]
		// drop the entry the cut went through
		if i := strings.LastIndexByte(header, ','); i > 0 {
			header = header[:i]
		}
	}

	var accepted []language.Tag
	for _, e := range parseAcceptLanguage(header) {
		if e.q > 0 {
			accepted = append(accepted, e.tag)
		}
	}
	if len(accepted) == 0 {
		return Default
	}

	_, idx, conf := matcher.Match(accepted...)
	if conf == language.No || idx < 0 || idx >= len(all) {
		return Default
	}

	return all[idx]
}

type weighted struct {
	tag language.Tag
	q   float32
}

// parseAcceptLanguage returns the entries of header by descending weight.
// A malformed entry makes the parser reject the whole list, so the list is
// then parsed entry by entry and the bad ones are skipped.
func parseAcceptLanguage(header string) []weighted {
	if tags, q, err := language.ParseAcceptLanguage(header); err == nil {
		out := make([]weighted, len(tags))
		for i := range tags {
			out[i] = weighted{tags[i], q[i]}
		}
		return out
	}

	var out []weighted
	for entry := range strings.SplitSeq(header, ",") {
		tags, q, err := language.ParseAcceptLanguage(entry)
		if err != nil {
			continue
		}
		for i := range tags {
			out = append(out, weighted{tags[i], q[i]})
		}
	}
	slices.SortStableFunc(out, func(a, b weighted) int { return cmp.Compare(b.q, a.q) })
	return out
}

// NegotiateHeaders is Negotiate over the Accept-Language values of h.
func NegotiateHeaders(h http.Header) Locale {
	return Negotiate(strings.Join(h.Values("Accept-Language"), ","))
}
