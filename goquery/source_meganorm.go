package goquery

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/gostcat"
)

// Ensure MeganormSource implements gostcat.Source at compile time.
var _ gostcat.Source = (*MeganormSource)(nil)

// MeganormSource fetches standards from meganorm.ru. The GOST category
// page is a table; each row links the standard by name with the
// description in the adjacent cell.
type MeganormSource struct {
	fetcher gostcat.Fetcher
}

// NewMeganormSource creates a new MeganormSource.
func NewMeganormSource(fetcher gostcat.Fetcher) *MeganormSource {
	return &MeganormSource{fetcher: fetcher}
}

// Name returns the origin's identity.
func (s *MeganormSource) Name() string {
	return "meganorm.ru"
}

// BaseURL returns the origin's base address.
func (s *MeganormSource) BaseURL() string {
	return "https://meganorm.ru"
}

// Fetch retrieves the GOST category page and extracts table rows.
func (s *MeganormSource) Fetch(ctx context.Context) ([]gostcat.Standard, error) {
	page, err := s.fetcher.Fetch(ctx, s.BaseURL()+"/Index2/1/4294817/4294817904.htm")
	if err != nil {
		return nil, err
	}

	doc, err := parseDocument(page, s.Name())
	if err != nil {
		return nil, err
	}

	var standards []gostcat.Standard
	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		link := row.Find("a").First()
		if link.Length() == 0 {
			return
		}

		name := strings.TrimSpace(link.Text())
		if !containsGOST(name) {
			return
		}

		var description string
		if cells := row.Find("td"); cells.Length() > 1 {
			description = strings.TrimSpace(cells.Eq(1).Text())
		}

		std, err := gostcat.NewStandard(name, description)
		if err != nil {
			return
		}
		standards = append(standards, std)
	})

	return standards, nil
}
