package crawler

import (
	"fmt"
	"log"

	"screener-crawler/models"
	"screener-crawler/parser"
	"screener-crawler/scraper"
)

// Crawler pages through the screener results via a Driver and accumulates
// the extracted records
type Crawler struct {
	driver   scraper.Driver
	parser   *parser.Parser
	maxPages int // Safety cap on pages fetched; 0 means no cap
}

// NewCrawler creates a new Crawler using the given driver
func NewCrawler(driver scraper.Driver, maxPages int) *Crawler {
	return &Crawler{
		driver:   driver,
		parser:   parser.NewParser(),
		maxPages: maxPages,
	}
}

// IsLastPage reports whether pageIndex is the final page of a listing with
// totalRows items shown rowsPerPage at a time. A non-positive rowsPerPage
// means pagination metadata could not be read, which is treated as "last
// page" so the crawl stops instead of looping forever.
func IsLastPage(pageIndex, totalRows, rowsPerPage int) bool {
	if rowsPerPage <= 0 {
		return true
	}
	return (pageIndex+1)*rowsPerPage >= totalRows
}

// Extract opens the URL with the region filter applied and walks every
// result page, returning records in page order then row order.
//
// Parsing failures never abort the crawl: a malformed snapshot contributes
// zero rows and zero metadata, and zero metadata terminates pagination.
func (c *Crawler) Extract(url, region string) ([]models.Record, error) {
	if err := c.driver.Open(url, region); err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", url, err)
	}

	var (
		records     []models.Record
		pageIndex   int
		totalRows   int
		rowsPerPage int
	)

	for {
		snapshot, err := c.driver.Snapshot()
		if err != nil {
			log.Printf("Warning: Failed to capture page %d, stopping: %v\n", pageIndex+1, err)
			break
		}

		rows := c.parser.ParseRows(snapshot)
		if len(rows) == 0 {
			// No table on this page - fall back to region-matching anchors
			rows = c.parser.ParseAnchors(snapshot, region)
		}
		for i := range rows {
			rows[i].PageNumber = pageIndex + 1
		}
		records = append(records, rows...)
		log.Printf("Parsed %d record(s) from page %d\n", len(rows), pageIndex+1)

		if pageIndex == 0 {
			totalRows = c.parser.TotalRows(snapshot)
			rowsPerPage = c.parser.RowsPerPage(snapshot)
			if rowsPerPage == 0 {
				// Page-size control unreadable; estimate from the first page
				rowsPerPage = len(rows)
			}
		}

		if IsLastPage(pageIndex, totalRows, rowsPerPage) {
			break
		}
		if c.maxPages > 0 && pageIndex+1 >= c.maxPages {
			log.Printf("Reached page cap of %d, stopping\n", c.maxPages)
			break
		}

		if err := c.driver.NextPage(); err != nil {
			log.Printf("Warning: Could not advance past page %d: %v\n", pageIndex+1, err)
			break
		}
		pageIndex++
	}

	log.Printf("Crawl finished: %d record(s) across %d page(s)\n", len(records), pageIndex+1)
	return records, nil
}
