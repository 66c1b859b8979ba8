package goquery

import (
	"context"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/gostcat"
)

// Ensure ProtectGostSource implements gostcat.Source at compile time.
var _ gostcat.Source = (*ProtectGostSource)(nil)

// ProtectGostSource fetches standards from protect.gost.ru, the official
// portal for protected GOST documents. The portal only answers search
// queries, so the source issues one query per common standard prefix.
type ProtectGostSource struct {
	fetcher gostcat.Fetcher
}

// NewProtectGostSource creates a new ProtectGostSource.
func NewProtectGostSource(fetcher gostcat.Fetcher) *ProtectGostSource {
	return &ProtectGostSource{fetcher: fetcher}
}

// Name returns the origin's identity.
func (s *ProtectGostSource) Name() string {
	return "protect.gost.ru"
}

// BaseURL returns the origin's base address.
func (s *ProtectGostSource) BaseURL() string {
	return "https://protect.gost.ru"
}

// Fetch queries the portal once per prefix and combines the results.
// If a query fails, results gathered from earlier prefixes are returned
// together with the error.
func (s *ProtectGostSource) Fetch(ctx context.Context) ([]gostcat.Standard, error) {
	var standards []gostcat.Standard

	for _, prefix := range []string{"ГОСТ Р", "ГОСТ"} {
		query := url.Values{"s": {prefix}}
		page, err := s.fetcher.Fetch(ctx, s.BaseURL()+"/v.aspx?"+query.Encode())
		if err != nil {
			return standards, err
		}

		doc, err := parseDocument(page, s.Name())
		if err != nil {
			return standards, err
		}

		standards = append(standards, extractSearchResults(doc)...)
	}

	return standards, nil
}

// extractSearchResults pulls standards out of a search results page.
func extractSearchResults(doc *goquery.Document) []gostcat.Standard {
	results := doc.Find("div.result-item")
	if results.Length() == 0 {
		results = doc.Find("tr.doc-row")
	}

	var standards []gostcat.Standard
	results.Each(func(_ int, item *goquery.Selection) {
		name := firstText(item, "a", "span.title")
		description := firstText(item, "p", "span.desc")

		std, err := gostcat.NewStandard(name, description)
		if err != nil {
			return
		}
		standards = append(standards, std)
	})

	return standards
}
