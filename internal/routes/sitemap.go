package routes

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/turbohomes/website/pkg/locale"
)

const (
	sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"
	xhtmlNS   = "http://www.w3.org/1999/xhtml"
)

type urlset struct {
	XMLName xml.Name     `xml:"urlset"`
	NS      string       `xml:"xmlns,attr"`
	XHTML   string       `xml:"xmlns:xhtml,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string      `xml:"loc"`
	LastMod string      `xml:"lastmod,omitempty"`
	Links   []xhtmlLink `xml:"xhtml:link"`
}

type xhtmlLink struct {
	Rel      string `xml:"rel,attr"`
	Hreflang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

// Sitemap renders routes as a sitemap with hreflang alternates. A zero
// lastMod omits the lastmod element.
func Sitemap(routes []Route, baseURL string, lastMod time.Time) ([]byte, error) {
	base := strings.TrimRight(baseURL, "/")

	var mod string
	if !lastMod.IsZero() {
		mod = lastMod.UTC().Format(time.DateOnly)
	}

	set := urlset{NS: sitemapNS, XHTML: xhtmlNS, URLs: make([]sitemapURL, 0, len(routes))}
	for _, r := range routes {
		u := sitemapURL{Loc: base + r.Path, LastMod: mod}
		for _, l := range locale.All() {
			if p, ok := r.Alternates[l]; ok {
				u.Links = append(u.Links, xhtmlLink{Rel: "alternate", Hreflang: l.String(), Href: base + p})
			}
		}
		if p, ok := r.Alternates[locale.Default]; ok {
			u.Links = append(u.Links, xhtmlLink{Rel: "alternate", Hreflang: "x-default", Href: base + p})
		}
		set.URLs = append(set.URLs, u)
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return nil, fmt.Errorf("routes: encode sitemap: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Robots renders robots.txt pointing crawlers at the sitemap.
func Robots(baseURL string) []byte {
	return []byte("User-agent: *\nAllow: /\n\nSitemap: " + strings.TrimRight(baseURL, "/") + "/sitemap.xml\n")
}
