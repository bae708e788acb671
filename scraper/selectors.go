package scraper

// CSS selectors used across the driver.
// Centralising them makes future updates trivial; each constant carries
// fallbacks because the site rotates class names between deploys.
const (
	// Cookie/consent banner
	CookieAcceptSelector = `button[name='agree'], button.accept-all, button[aria-label='Accept all']`

	// Region filter controls
	RegionMenuSelector     = `button[title='Region'], button[aria-label*='Region'], div.filter-region button`
	RegionCheckboxSelector = `input[type='checkbox']`
	RegionApplySelector    = `button[data-test='apply'], button.apply, button[type='submit']`

	// Pagination
	NextPageSelector = `button[aria-label='Goto next page'], button[data-testid='next-page-button'], a[aria-label='Next']`

	// Readiness probe for the results table
	TableReadySelector = `div.screener-table table tbody tr`
)
