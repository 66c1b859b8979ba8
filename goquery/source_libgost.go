package goquery

import (
	"context"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/gostcat"
)

// Ensure LibGostSource implements gostcat.Source at compile time.
var _ gostcat.Source = (*LibGostSource)(nil)

// LibGostSource fetches standards from libgost.ru. The library publishes
// standards as div.news items with the title in an anchor or heading and
// the description in the item body.
type LibGostSource struct {
	fetcher gostcat.Fetcher
}

// NewLibGostSource creates a new LibGostSource.
func NewLibGostSource(fetcher gostcat.Fetcher) *LibGostSource {
	return &LibGostSource{fetcher: fetcher}
}

// Name returns the origin's identity.
func (s *LibGostSource) Name() string {
	return "libgost.ru"
}

// BaseURL returns the origin's base address.
func (s *LibGostSource) BaseURL() string {
	return "http://libgost.ru"
}

// Fetch retrieves the library index and extracts its items.
func (s *LibGostSource) Fetch(ctx context.Context) ([]gostcat.Standard, error) {
	page, err := s.fetcher.Fetch(ctx, s.BaseURL()+"/gost/")
	if err != nil {
		return nil, err
	}

	doc, err := parseDocument(page, s.Name())
	if err != nil {
		return nil, err
	}

	var standards []gostcat.Standard
	doc.Find("div.news").Each(func(_ int, item *goquery.Selection) {
		name := firstText(item, "a", "h2", "h3")
		description := firstText(item, "p", "div.desc")

		std, err := gostcat.NewStandard(name, description)
		if err != nil {
			return
		}
		standards = append(standards, std)
	})

	return standards, nil
}
