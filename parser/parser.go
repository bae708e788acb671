package parser

import (
	"regexp"
	"strconv"
	"strings"

	"screener-crawler/models"

	"github.com/PuerkitoBio/goquery"
)

// Parser extracts screener records and pagination metadata from HTML
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// ParseRows extracts records from the screener table in the HTML.
// Returns an empty slice when the table structure is missing or the
// HTML cannot be parsed - malformed pages yield no rows, never an error.
func (p *Parser) ParseRows(htmlContent string) []models.Record {
	rows := p.tableRows(htmlContent)
	if rows == nil {
		return nil
	}

	var records []models.Record
	rows.Each(func(i int, tr *goquery.Selection) {
		cells := tr.Find("td")
		// Rows with fewer than 5 cells are spacer/ad rows, skip them
		if cells.Length() < 5 {
			return
		}
		records = append(records, models.Record{
			Symbol: strings.TrimSpace(cells.Eq(1).Text()),
			Name:   strings.TrimSpace(cells.Eq(2).Text()),
			Price:  ParsePrice(cells.Eq(4).Text()),
		})
	})

	return records
}

// tableRows locates the data rows inside the screener table container.
// Returns nil when any expected ancestor element is absent.
func (p *Parser) tableRows(htmlContent string) *goquery.Selection {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil
	}

	container := doc.Find("div.screener-table").First()
	if container.Length() == 0 {
		return nil
	}

	table := container.Find("table").First()
	if table.Length() == 0 {
		return nil
	}

	body := table.Find("tbody").First()
	if body.Length() == 0 {
		return nil
	}

	return body.Find("tr")
}

// TotalRows extracts the total result count from the badge text of the
// form "1-25 of 1067". Returns 0 when the badge is missing or malformed.
func (p *Parser) TotalRows(htmlContent string) int {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return 0
	}

	text := strings.TrimSpace(doc.Find("div.total").First().Text())
	if text == "" {
		return 0
	}

	// Text looks like "1-25 of 1067"; the total follows " of "
	_, totalPart, found := strings.Cut(text, " of ")
	if !found {
		return 0
	}

	total, err := strconv.Atoi(strings.TrimSpace(totalPart))
	if err != nil || total < 0 {
		return 0
	}
	return total
}

// rowsPerPageRe pulls the trailing number out of the control's aria-label,
// e.g. "Rows per page 25".
var rowsPerPageRe = regexp.MustCompile(`(\d+)\s*$`)

// RowsPerPage extracts the page size from the rows-per-page control.
// Returns 0 when the control is missing or its label is not numeric.
func (p *Parser) RowsPerPage(htmlContent string) int {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return 0
	}

	label := doc.Find("button[aria-label*='Rows per page']").First().AttrOr("aria-label", "")
	if label == "" {
		return 0
	}

	matches := rowsPerPageRe.FindStringSubmatch(strings.TrimSpace(label))
	if matches == nil {
		return 0
	}

	size, err := strconv.Atoi(matches[1])
	if err != nil || size < 0 {
		return 0
	}
	return size
}

// ParsePrice parses a free-text price like "11,520.00" into a float.
// Thousands separators are stripped first. Any parse failure yields 0.0;
// callers cannot distinguish zero from unparseable.
func ParsePrice(text string) float64 {
	cleaned := strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	if cleaned == "" {
		return 0.0
	}

	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0.0
	}
	return price
}
