package goquery

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/gostcat"
)

// Ensure CntdSource implements gostcat.Source at compile time.
var _ gostcat.Source = (*CntdSource)(nil)

// CntdSource fetches standards from docs.cntd.ru, the electronic fund of
// legal and normative-technical documents. Catalog entries appear as
// div.doc-item blocks; older page revisions use a.document-title anchors
// or li.doc list items instead.
type CntdSource struct {
	fetcher gostcat.Fetcher
}

// NewCntdSource creates a new CntdSource.
func NewCntdSource(fetcher gostcat.Fetcher) *CntdSource {
	return &CntdSource{fetcher: fetcher}
}

// Name returns the origin's identity.
func (s *CntdSource) Name() string {
	return "docs.cntd.ru"
}

// BaseURL returns the origin's base address.
func (s *CntdSource) BaseURL() string {
	return "https://docs.cntd.ru"
}

// Fetch retrieves the GOST catalog page and extracts its entries.
func (s *CntdSource) Fetch(ctx context.Context) ([]gostcat.Standard, error) {
	page, err := s.fetcher.Fetch(ctx, s.BaseURL()+"/document/gost")
	if err != nil {
		return nil, err
	}

	doc, err := parseDocument(page, s.Name())
	if err != nil {
		return nil, err
	}

	items := doc.Find("div.doc-item")
	if items.Length() == 0 {
		items = doc.Find("a.document-title")
	}
	if items.Length() == 0 {
		items = doc.Find("li.doc")
	}

	var standards []gostcat.Standard
	items.Each(func(_ int, item *goquery.Selection) {
		title := item
		if !item.Is("a") {
			title = item.Find("a").First()
		}
		name := strings.TrimSpace(title.Text())
		if !containsGOST(name) {
			return
		}

		description := firstText(item, "span.description", "div.doc-desc")

		std, err := gostcat.NewStandard(name, description)
		if err != nil {
			return
		}
		standards = append(standards, std)
	})

	return standards, nil
}
