// Package goquery provides the per-origin source adapters that extract
// GOST standard records from the public catalog sites, plus the ordered
// registry that enumerates them. Each origin has its own extraction
// strategy because each site changes its page structure independently;
// a broken origin degrades to an error contained by the aggregator
// rather than aborting the whole refresh.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/gostcat"
)

// parseDocument parses raw HTML into a queryable document.
func parseDocument(body, origin string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, gostcat.Errorf(gostcat.EINVALID, "%s: failed to parse HTML: %v", origin, err)
	}
	return doc, nil
}

// containsGOST reports whether the text mentions a GOST standard number.
func containsGOST(text string) bool {
	return strings.Contains(strings.ToUpper(text), "ГОСТ")
}

// firstText returns the trimmed text of the first selector that matches
// a non-empty element, or "" when none match.
func firstText(sel *goquery.Selection, selectors ...string) string {
	for _, s := range selectors {
		if found := sel.Find(s).First(); found.Length() > 0 {
			if text := strings.TrimSpace(found.Text()); text != "" {
				return text
			}
		}
	}
	return ""
}

// resolveURL resolves a relative URL against a base URL.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
