package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"screener-crawler/config"
	"screener-crawler/crawler"
	"screener-crawler/db"
	"screener-crawler/exporter"
	"screener-crawler/fetcher"
	"screener-crawler/filter"
	"screener-crawler/models"
	"screener-crawler/notify"
	"screener-crawler/scheduler"
	"screener-crawler/scraper"
	"screener-crawler/sheets"
)

func main() {
	// Parse command line arguments
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	maxPages := flag.Int("pages", 0, "Maximum number of pages to crawl (0 = no cap)")
	watch := flag.Bool("watch", false, "Re-run the crawl on the configured interval")
	static := flag.Bool("static", false, "Fetch pages over plain HTTP instead of a headless browser")
	spreadsheetURL := flag.String("spreadsheet", "", "Google Sheets URL for an optional secondary export")
	credentialsPath := flag.String("credentials", "", "Path to Google service account credentials JSON file (or use GOOGLE_SHEETS_CREDENTIALS env var)")
	flag.Parse()

	// The target URL, region and output path come from the environment
	target, err := config.LoadTarget()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v. Set CRAWLER_URL to the screener page URL.\n", err)
		os.Exit(1)
	}

	cfg := loadConfig(*configPath)
	if *maxPages > 0 {
		cfg.Crawler.MaxPages = *maxPages
	}

	run := func() error {
		return runCrawl(target, cfg, *static, *spreadsheetURL, *credentialsPath)
	}

	log.Printf("Starting crawler for region=%s, output=%s\n", target.Region, target.OutputPath)
	if err := run(); err != nil {
		log.Fatalf("Crawl failed: %v\n", err)
	}

	if !*watch {
		return
	}

	interval := time.Duration(cfg.Crawler.WatchIntervalMinutes) * time.Minute
	sched := scheduler.NewScheduler(interval, run)
	sched.Start()
	log.Printf("Watch mode: re-crawling every %s (Ctrl-C to stop)\n", interval)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	sched.Stop()
}

// loadConfig loads configuration from file or returns defaults
func loadConfig(configPath string) *config.Config {
	if _, err := os.Stat(configPath); err != nil {
		log.Println("Config file not found. Using default configuration.")
		return config.GetDefaultConfig()
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Printf("Warning: Failed to load config file: %v. Using defaults.\n", err)
		return config.GetDefaultConfig()
	}
	return cfg
}

// newDriver picks the page source: headless browser by default, plain HTTP
// when -static is set
func newDriver(cfg *config.Config, static bool) (scraper.Driver, error) {
	if static {
		return fetcher.NewCollyDriver(), nil
	}
	return scraper.NewRodDriver(cfg.Crawler.Headless)
}

// runCrawl performs one full crawl: extract, filter, export and the
// optional database, spreadsheet and notification side channels
func runCrawl(target *config.Target, cfg *config.Config, static bool, spreadsheetURL, credentialsPath string) error {
	startedAt := time.Now()

	driver, err := newDriver(cfg, static)
	if err != nil {
		return fmt.Errorf("failed to create driver: %w", err)
	}
	defer func() {
		if err := driver.Close(); err != nil {
			log.Printf("Warning: Failed to close driver: %v\n", err)
		}
	}()

	c := crawler.NewCrawler(driver, cfg.Crawler.MaxPages)
	records, err := c.Extract(target.URL, target.Region)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	filtered := filter.NewFilter(cfg).ApplyFilters(records)
	if len(filtered) < len(records) {
		log.Printf("Filtered %d record(s) down to %d\n", len(records), len(filtered))
	}

	if err := exporter.WriteCSV(filtered, target.OutputPath); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	fmt.Printf("Extracted %d record(s). Exported to: %s\n", len(filtered), target.OutputPath)

	// Optional: persist the run to Postgres
	if os.Getenv("DATABASE_URL") != "" || os.Getenv("DB_HOST") != "" {
		saveRun(target, filtered, startedAt)
	}

	// Optional: secondary export to Google Sheets
	if spreadsheetURL != "" {
		writeSheet(target, filtered, spreadsheetURL, credentialsPath)
	}

	// Optional: Telegram completion notice
	notifier, err := notify.NewNotifierFromEnv()
	if err != nil {
		log.Printf("Warning: Failed to initialize Telegram notifier: %v\n", err)
	} else if notifier != nil {
		if err := notifier.NotifyCrawlDone(target.Region, len(filtered), target.OutputPath); err != nil {
			log.Printf("Warning: Failed to send Telegram notification: %v\n", err)
		}
	}

	return nil
}

// saveRun stores the crawl run in Postgres; failures are non-fatal
func saveRun(target *config.Target, records []models.Record, startedAt time.Time) {
	database, err := db.NewDB()
	if err != nil {
		log.Printf("Warning: Failed to connect to database: %v\n", err)
		return
	}
	defer database.Close()

	runID, err := database.SaveRun(target.URL, target.Region, records, startedAt, time.Now())
	if err != nil {
		log.Printf("Warning: Failed to save crawl run: %v\n", err)
		return
	}
	log.Printf("Saved crawl run %d to database\n", runID)
}

// writeSheet appends the records to the configured spreadsheet; failures
// are non-fatal
func writeSheet(target *config.Target, records []models.Record, spreadsheetURL, credentialsPath string) {
	spreadsheetID := sheets.ExtractSpreadsheetID(spreadsheetURL)
	if spreadsheetID == "" {
		log.Printf("Warning: Could not extract spreadsheet ID from URL: %s\n", spreadsheetURL)
		return
	}

	writer, err := sheets.NewWriter(spreadsheetID, credentialsPath)
	if err != nil {
		log.Printf("Warning: Failed to initialize Google Sheets writer: %v\n", err)
		return
	}

	sheetName, err := writer.WriteRecords(records, target.Region)
	if err != nil {
		log.Printf("Warning: Failed to write to Google Sheets: %v\n", err)
		return
	}
	log.Printf("Wrote %d record(s) to sheet %s\n", len(records), sheetName)
}
