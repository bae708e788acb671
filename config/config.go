package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the crawler settings and filter criteria
type Config struct {
	Crawler struct {
		Headless             bool `yaml:"headless"`
		MaxPages             int  `yaml:"max_pages"`
		WatchIntervalMinutes int  `yaml:"watch_interval_minutes"`
	} `yaml:"crawler"`
	Filters struct {
		MinPrice float64 `yaml:"min_price"`
		MaxPrice float64 `yaml:"max_price"`
	} `yaml:"filters"`
}

// LoadConfig loads configuration from a YAML file. Keys missing from the
// file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := GetDefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// GetDefaultConfig returns a default configuration
func GetDefaultConfig() *Config {
	cfg := &Config{}
	cfg.Crawler.Headless = true
	cfg.Crawler.MaxPages = 0
	cfg.Crawler.WatchIntervalMinutes = 60
	cfg.Filters.MinPrice = 0
	cfg.Filters.MaxPrice = 1000000000
	return cfg
}

// Target is the environment-supplied crawl target
type Target struct {
	URL        string
	Region     string
	OutputPath string
}

// LoadTarget reads the crawl target from the environment: CRAWLER_URL
// (required), CRAWLER_REGION (default "Brazil") and CRAWLER_OUTPUT
// (default "output_<region>.csv"). Values are trimmed of whitespace.
func LoadTarget() (*Target, error) {
	url := strings.TrimSpace(os.Getenv("CRAWLER_URL"))
	if url == "" {
		return nil, fmt.Errorf("CRAWLER_URL is not set")
	}

	region := strings.TrimSpace(os.Getenv("CRAWLER_REGION"))
	if region == "" {
		region = "Brazil"
	}

	output := strings.TrimSpace(os.Getenv("CRAWLER_OUTPUT"))
	if output == "" {
		output = fmt.Sprintf("output_%s.csv", region)
	}

	return &Target{URL: url, Region: region, OutputPath: output}, nil
}
