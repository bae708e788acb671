package scraper

// Driver is the browser collaborator: it loads the screener page with a
// region filter applied and serves rendered HTML snapshots, one per
// paginated view.
type Driver interface {
	// Open loads the URL and applies the region filter through the page UI
	Open(url, region string) error
	// Snapshot returns the rendered HTML of the current page
	Snapshot() (string, error)
	// NextPage advances to the next paginated view
	NextPage() error
	// Close releases the underlying browser resources
	Close() error
}
