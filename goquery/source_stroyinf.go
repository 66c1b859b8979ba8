package goquery

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/gostcat"
	"golang.org/x/net/html"
)

// Ensure StroyinfSource implements gostcat.Source at compile time.
var _ gostcat.Source = (*StroyinfSource)(nil)

// StroyinfSource fetches construction standards from files.stroyinf.ru.
// The catalog page lists standards as bare hyperlinks; when a description
// exists it is the text node immediately following the anchor.
type StroyinfSource struct {
	fetcher gostcat.Fetcher
}

// NewStroyinfSource creates a new StroyinfSource.
func NewStroyinfSource(fetcher gostcat.Fetcher) *StroyinfSource {
	return &StroyinfSource{fetcher: fetcher}
}

// Name returns the origin's identity.
func (s *StroyinfSource) Name() string {
	return "files.stroyinf.ru"
}

// BaseURL returns the origin's base address.
func (s *StroyinfSource) BaseURL() string {
	return "https://files.stroyinf.ru"
}

// Fetch retrieves the catalog page and extracts standard links.
func (s *StroyinfSource) Fetch(ctx context.Context) ([]gostcat.Standard, error) {
	page, err := s.fetcher.Fetch(ctx, s.BaseURL()+"/cat/Gosts.html")
	if err != nil {
		return nil, err
	}

	doc, err := parseDocument(page, s.Name())
	if err != nil {
		return nil, err
	}

	var standards []gostcat.Standard
	doc.Find("a").Each(func(_ int, link *goquery.Selection) {
		name := strings.TrimSpace(link.Text())
		if !containsGOST(name) {
			return
		}

		std, err := gostcat.NewStandard(name, siblingText(link))
		if err != nil {
			return
		}
		standards = append(standards, std)
	})

	return standards, nil
}

// siblingText returns the trimmed text node immediately following the
// selection's first node, or "" when the next sibling is not text.
func siblingText(sel *goquery.Selection) string {
	if len(sel.Nodes) == 0 {
		return ""
	}
	next := sel.Nodes[0].NextSibling
	if next == nil || next.Type != html.TextNode {
		return ""
	}
	return strings.TrimSpace(next.Data)
}
