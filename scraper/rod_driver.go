package scraper

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// RodDriver implements the Driver interface using rod (headless browser)
type RodDriver struct {
	browser *rod.Browser
	page    *rod.Page
}

// NewRodDriver launches a headless browser and connects to it
func NewRodDriver(headless bool) (*RodDriver, error) {
	l := launcher.New().
		Headless(headless).
		Set("disable-blink-features", "AutomationControlled").
		NoSandbox(true).
		Leakless(false).
		Set("disable-dev-shm-usage").
		Set("disable-gpu").
		Set("no-first-run").
		Set("no-default-browser-check").
		Set("disable-extensions").
		Set("disable-background-networking").
		Set("disable-popup-blocking").
		Set("mute-audio")

	if bin := findChromeBin(); bin != "" {
		l = l.Bin(bin)
	}

	browserURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(browserURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	return &RodDriver{browser: browser}, nil
}

// findChromeBin looks for a system Chrome/Chromium binary so rod does not
// have to download its own. SCREENER_BROWSER_BIN overrides the search.
func findChromeBin() string {
	if bin := os.Getenv("SCREENER_BROWSER_BIN"); bin != "" {
		return bin
	}

	paths := []string{
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/snap/bin/chromium",
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Open implements the Driver interface: navigate to the URL, dismiss the
// consent banner if present and apply the region filter through the page UI.
// UI hiccups during filtering are logged and ignored - the driver's contract
// is to return best-effort snapshots, not to fail the crawl.
func (rd *RodDriver) Open(url, region string) error {
	page := rd.browser.MustPage()
	rd.page = page

	if err := page.Navigate(url); err != nil {
		return fmt.Errorf("failed to navigate: %w", err)
	}

	page.WaitLoad()
	time.Sleep(3 * time.Second) // Give JavaScript time to render
	page.Timeout(10 * time.Second).MustWaitStable()

	rd.dismissCookieBanner()
	rd.applyRegionFilter(region)

	// Wait for the filtered table to settle before the first snapshot
	if _, err := page.Timeout(10 * time.Second).Element(TableReadySelector); err != nil {
		log.Printf("Warning: Results table did not appear after filtering: %v\n", err)
	}
	page.Timeout(10 * time.Second).MustWaitStable()

	return nil
}

// dismissCookieBanner clicks the consent banner away when one is shown
func (rd *RodDriver) dismissCookieBanner() {
	button, err := rd.page.Timeout(5 * time.Second).Element(CookieAcceptSelector)
	if err != nil {
		return // No banner, nothing to do
	}
	if err := button.Click("left", 1); err != nil {
		log.Printf("Warning: Failed to dismiss cookie banner: %v\n", err)
		return
	}
	time.Sleep(1 * time.Second)
}

// applyRegionFilter opens the region menu, swaps the default region for the
// requested one and applies the filter. Every step degrades to a log line
// on failure so a partially-filtered page still produces a snapshot.
func (rd *RodDriver) applyRegionFilter(region string) {
	menu, err := rd.page.Timeout(5 * time.Second).Element(RegionMenuSelector)
	if err != nil {
		log.Printf("Warning: Region menu not found, continuing unfiltered: %v\n", err)
		return
	}
	if err := menu.Click("left", 1); err != nil {
		log.Printf("Warning: Failed to open region menu: %v\n", err)
		return
	}
	time.Sleep(1 * time.Second)

	// Uncheck whatever region the page pre-selects
	boxes, err := rd.page.Elements(RegionCheckboxSelector)
	if err == nil {
		for _, box := range boxes {
			checked, _ := box.Property("checked")
			if checked.Bool() {
				if err := box.Click("left", 1); err != nil {
					log.Printf("Warning: Failed to uncheck default region: %v\n", err)
				}
				break
			}
		}
	}

	// Check the requested region by its label text
	label, err := rd.page.Timeout(5*time.Second).ElementR("label, span", "(?i)^\\s*"+strings.TrimSpace(region)+"\\s*$")
	if err != nil {
		log.Printf("Warning: Region option %q not found: %v\n", region, err)
	} else if err := label.Click("left", 1); err != nil {
		log.Printf("Warning: Failed to select region %q: %v\n", region, err)
	}
	time.Sleep(1 * time.Second)

	apply, err := rd.page.Timeout(5 * time.Second).Element(RegionApplySelector)
	if err != nil {
		log.Printf("Warning: Apply button not found: %v\n", err)
		return
	}
	if err := apply.Click("left", 1); err != nil {
		log.Printf("Warning: Failed to apply region filter: %v\n", err)
		return
	}

	rd.page.WaitLoad()
	time.Sleep(2 * time.Second)
}

// Snapshot implements the Driver interface
func (rd *RodDriver) Snapshot() (string, error) {
	if rd.page == nil {
		return "", fmt.Errorf("driver not opened")
	}
	html, err := rd.page.HTML()
	if err != nil {
		return "", fmt.Errorf("failed to get HTML: %w", err)
	}
	return html, nil
}

// NextPage implements the Driver interface
func (rd *RodDriver) NextPage() error {
	if rd.page == nil {
		return fmt.Errorf("driver not opened")
	}

	nextButton, err := rd.page.Timeout(5 * time.Second).Element(NextPageSelector)
	if err != nil {
		return fmt.Errorf("next button not found: %w", err)
	}

	visible, _ := nextButton.Visible()
	if !visible {
		return fmt.Errorf("next button not visible")
	}

	if err := nextButton.Click("left", 1); err != nil {
		return fmt.Errorf("failed to click next button: %w", err)
	}

	rd.page.WaitLoad()
	time.Sleep(2 * time.Second)
	rd.page.Timeout(10 * time.Second).MustWaitStable()

	return nil
}

// Close closes the browser
func (rd *RodDriver) Close() error {
	if rd.page != nil {
		rd.page.Close()
		rd.page = nil
	}
	if rd.browser != nil {
		return rd.browser.Close()
	}
	return nil
}
