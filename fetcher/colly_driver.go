package fetcher

import (
	"fmt"
	"log"
	"net/url"
	"strconv"
	"time"

	"github.com/gocolly/colly/v2"
)

// defaultOffsetStep is the offset increment used when the URL does not
// carry a count parameter
const defaultOffsetStep = 25

// CollyDriver implements the scraper.Driver interface for server-rendered
// screener pages. It cannot click, so the region filter and pagination are
// expressed as query parameters instead: region=<region> and a growing
// offset=<n>.
type CollyDriver struct {
	collector *colly.Collector
	pageURL   *url.URL
	offset    int
	step      int
	html      string
}

// NewCollyDriver creates a new CollyDriver instance
func NewCollyDriver() *CollyDriver {
	c := colly.NewCollector(
		colly.UserAgent("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
	)

	// Rate limiting - stay polite on the single target domain
	c.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Parallelism: 1,
		Delay:       2 * time.Second,
	})

	cd := &CollyDriver{collector: c, step: defaultOffsetStep}

	c.OnResponse(func(r *colly.Response) {
		cd.html = string(r.Body)
	})
	c.OnError(func(r *colly.Response, err error) {
		log.Printf("Error fetching %s: %v\n", r.Request.URL, err)
	})

	return cd
}

// Open implements the Driver interface
func (cd *CollyDriver) Open(rawURL, region string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("failed to parse URL: %w", err)
	}

	query := parsed.Query()
	query.Set("region", region)
	if count := query.Get("count"); count != "" {
		if n, err := strconv.Atoi(count); err == nil && n > 0 {
			cd.step = n
		}
	}
	parsed.RawQuery = query.Encode()

	cd.pageURL = parsed
	cd.offset = 0
	return cd.fetch()
}

// fetch retrieves the page at the current offset
func (cd *CollyDriver) fetch() error {
	query := cd.pageURL.Query()
	query.Set("offset", strconv.Itoa(cd.offset))
	cd.pageURL.RawQuery = query.Encode()

	cd.html = ""
	if err := cd.collector.Visit(cd.pageURL.String()); err != nil {
		return fmt.Errorf("failed to visit %s: %w", cd.pageURL, err)
	}
	cd.collector.Wait()

	if cd.html == "" {
		return fmt.Errorf("no response body for %s", cd.pageURL)
	}
	return nil
}

// Snapshot implements the Driver interface
func (cd *CollyDriver) Snapshot() (string, error) {
	if cd.pageURL == nil {
		return "", fmt.Errorf("driver not opened")
	}
	return cd.html, nil
}

// NextPage implements the Driver interface
func (cd *CollyDriver) NextPage() error {
	if cd.pageURL == nil {
		return fmt.Errorf("driver not opened")
	}
	cd.offset += cd.step
	return cd.fetch()
}

// Close implements the Driver interface. Colly holds no long-lived
// resources, so this only forgets the session state.
func (cd *CollyDriver) Close() error {
	cd.pageURL = nil
	cd.html = ""
	return nil
}
