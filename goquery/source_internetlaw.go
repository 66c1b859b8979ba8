package goquery

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/gostcat"
)

// Ensure InternetLawSource implements gostcat.Source at compile time.
var _ gostcat.Source = (*InternetLawSource)(nil)

// InternetLawSource fetches standards from internet-law.ru, a legal
// database with a GOST section. Entries appear as div.gost-item blocks
// or li.gost list items.
type InternetLawSource struct {
	fetcher gostcat.Fetcher
}

// NewInternetLawSource creates a new InternetLawSource.
func NewInternetLawSource(fetcher gostcat.Fetcher) *InternetLawSource {
	return &InternetLawSource{fetcher: fetcher}
}

// Name returns the origin's identity.
func (s *InternetLawSource) Name() string {
	return "internet-law.ru"
}

// BaseURL returns the origin's base address.
func (s *InternetLawSource) BaseURL() string {
	return "https://internet-law.ru"
}

// Fetch retrieves the GOST section and extracts its entries.
func (s *InternetLawSource) Fetch(ctx context.Context) ([]gostcat.Standard, error) {
	page, err := s.fetcher.Fetch(ctx, s.BaseURL()+"/gosts/")
	if err != nil {
		return nil, err
	}

	doc, err := parseDocument(page, s.Name())
	if err != nil {
		return nil, err
	}

	items := doc.Find("div.gost-item")
	if items.Length() == 0 {
		items = doc.Find("li.gost")
	}

	var standards []gostcat.Standard
	items.Each(func(_ int, item *goquery.Selection) {
		name := strings.TrimSpace(item.Find("a").First().Text())
		if !containsGOST(name) {
			return
		}

		description := firstText(item, "p", "span.desc")

		std, err := gostcat.NewStandard(name, description)
		if err != nil {
			return
		}
		standards = append(standards, std)
	})

	return standards, nil
}
