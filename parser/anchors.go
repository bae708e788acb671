package parser

import (
	"strings"

	"screener-crawler/models"

	"github.com/antchfx/htmlquery"
)

// ParseAnchors is the fallback extraction path for pages without the
// screener table: every anchor whose text mentions the region becomes a
// record with only the name populated. Fragment-only and empty hrefs are
// skipped. Returns an empty slice on malformed HTML.
func (p *Parser) ParseAnchors(htmlContent, region string) []models.Record {
	doc, err := htmlquery.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil
	}

	regionLower := strings.ToLower(region)

	var records []models.Record
	for _, node := range htmlquery.Find(doc, "//a[@href]") {
		name := strings.TrimSpace(htmlquery.InnerText(node))
		href := strings.TrimSpace(htmlquery.SelectAttr(node, "href"))
		if name == "" || href == "" || strings.HasPrefix(href, "#") {
			continue
		}
		if !strings.Contains(strings.ToLower(name), regionLower) {
			continue
		}
		records = append(records, models.Record{Name: name})
	}

	return records
}
