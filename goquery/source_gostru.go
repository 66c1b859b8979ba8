package goquery

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/gostcat"
	"golang.org/x/text/encoding/charmap"
)

// Ensure GostRuSource implements gostcat.Source at compile time.
var _ gostcat.Source = (*GostRuSource)(nil)

// GostRuSource fetches national standards from gost.ru, the official
// Rosstandart portal. The open-data page links to a semicolon-delimited
// CSV file encoded in Windows-1251; the first column is the standard
// name, the second its description.
type GostRuSource struct {
	fetcher gostcat.Fetcher
}

// NewGostRuSource creates a new GostRuSource.
func NewGostRuSource(fetcher gostcat.Fetcher) *GostRuSource {
	return &GostRuSource{fetcher: fetcher}
}

// Name returns the origin's identity.
func (s *GostRuSource) Name() string {
	return "gost.ru"
}

// BaseURL returns the origin's base address.
func (s *GostRuSource) BaseURL() string {
	return "https://www.gost.ru"
}

const gostRuOpendataPath = "/opendata/7706406291-nationalstandards"

// Fetch locates the CSV download link on the open-data page, downloads
// the file, and parses its rows. Rows parsed before a malformed line are
// returned even when a later row is unusable.
func (s *GostRuSource) Fetch(ctx context.Context) ([]gostcat.Standard, error) {
	page, err := s.fetcher.Fetch(ctx, s.BaseURL()+gostRuOpendataPath)
	if err != nil {
		return nil, err
	}

	doc, err := parseDocument(page, s.Name())
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(s.BaseURL())
	if err != nil {
		return nil, gostcat.Errorf(gostcat.EINTERNAL, "gost.ru: invalid base URL: %v", err)
	}

	csvURL := findCSVLink(doc, base)
	if csvURL == "" {
		return nil, gostcat.Errorf(gostcat.ENOTFOUND, "gost.ru: no CSV link on open-data page")
	}

	raw, err := s.fetcher.Fetch(ctx, csvURL)
	if err != nil {
		return nil, err
	}

	// The portal serves the file in the legacy Russian Windows encoding.
	decoded, err := charmap.Windows1251.NewDecoder().String(raw)
	if err != nil {
		return nil, gostcat.Errorf(gostcat.EINVALID, "gost.ru: cp1251 decode: %v", err)
	}

	return parseCSVRows(decoded), nil
}

// findCSVLink returns the absolute URL of the first .csv link in the
// document, or "" when none exists.
func findCSVLink(doc *goquery.Document, base *url.URL) string {
	var csvURL string
	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		if strings.HasSuffix(strings.ToLower(href), ".csv") {
			csvURL = resolveURL(base, href)
			return false
		}
		return true
	})
	return csvURL
}

// parseCSVRows splits semicolon-delimited rows into standards, skipping
// the header line and rows without at least name and description columns.
func parseCSVRows(content string) []gostcat.Standard {
	var standards []gostcat.Standard
	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if i == 0 || line == "" {
			continue
		}
		fields := strings.Split(line, ";")
		if len(fields) < 2 {
			continue
		}
		std, err := gostcat.NewStandard(fields[0], fields[1])
		if err != nil {
			continue
		}
		standards = append(standards, std)
	}
	return standards
}
