package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTarget_RequiresURL(t *testing.T) {
	t.Setenv("CRAWLER_URL", "")

	if _, err := LoadTarget(); err == nil {
		t.Error("LoadTarget() expected error when CRAWLER_URL is unset")
	}
}

func TestLoadTarget_BlankURLRejected(t *testing.T) {
	t.Setenv("CRAWLER_URL", "   ")

	if _, err := LoadTarget(); err == nil {
		t.Error("LoadTarget() expected error for whitespace-only CRAWLER_URL")
	}
}

func TestLoadTarget_ReadsEnv(t *testing.T) {
	t.Setenv("CRAWLER_URL", "https://finance.example.com/screener")
	t.Setenv("CRAWLER_REGION", "Argentina")
	t.Setenv("CRAWLER_OUTPUT", "out_ar.csv")

	target, err := LoadTarget()
	if err != nil {
		t.Fatalf("LoadTarget() error = %v", err)
	}
	if target.URL != "https://finance.example.com/screener" {
		t.Errorf("URL = %q", target.URL)
	}
	if target.Region != "Argentina" {
		t.Errorf("Region = %q, want Argentina", target.Region)
	}
	if target.OutputPath != "out_ar.csv" {
		t.Errorf("OutputPath = %q, want out_ar.csv", target.OutputPath)
	}
}

func TestLoadTarget_Defaults(t *testing.T) {
	t.Setenv("CRAWLER_URL", "https://example.com")
	t.Setenv("CRAWLER_REGION", "")
	t.Setenv("CRAWLER_OUTPUT", "")

	target, err := LoadTarget()
	if err != nil {
		t.Fatalf("LoadTarget() error = %v", err)
	}
	if target.Region != "Brazil" {
		t.Errorf("Region = %q, want default Brazil", target.Region)
	}
	if target.OutputPath != "output_Brazil.csv" {
		t.Errorf("OutputPath = %q, want output_Brazil.csv", target.OutputPath)
	}
}

func TestLoadTarget_TrimsWhitespace(t *testing.T) {
	t.Setenv("CRAWLER_URL", "  https://example.com  ")

	target, err := LoadTarget()
	if err != nil {
		t.Fatalf("LoadTarget() error = %v", err)
	}
	if target.URL != "https://example.com" {
		t.Errorf("URL = %q, want trimmed", target.URL)
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "filters:\n  max_price: 500\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Filters.MaxPrice != 500 {
		t.Errorf("MaxPrice = %v, want 500", cfg.Filters.MaxPrice)
	}
	if !cfg.Crawler.Headless {
		t.Error("Headless should default to true when absent from the file")
	}
	if cfg.Crawler.WatchIntervalMinutes != 60 {
		t.Errorf("WatchIntervalMinutes = %d, want default 60", cfg.Crawler.WatchIntervalMinutes)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadConfig() expected error for missing file")
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("filters: ["), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() expected error for invalid YAML")
	}
}
