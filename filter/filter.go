package filter

import (
	"screener-crawler/config"
	"screener-crawler/models"
)

// Filter applies price criteria to extracted records
type Filter struct {
	cfg *config.Config
}

// NewFilter creates a new Filter instance
func NewFilter(cfg *config.Config) *Filter {
	return &Filter{cfg: cfg}
}

// ApplyFilters filters records based on the configuration
func (f *Filter) ApplyFilters(records []models.Record) []models.Record {
	var filtered []models.Record

	for _, record := range records {
		if f.matchesFilters(record) {
			filtered = append(filtered, record)
		}
	}

	return filtered
}

// matchesFilters checks if a record matches all filter criteria
func (f *Filter) matchesFilters(record models.Record) bool {
	// A zero price means the price could not be parsed, not that the
	// instrument is free - never filter those out by price range
	if record.Price > 0 {
		if record.Price < f.cfg.Filters.MinPrice || record.Price > f.cfg.Filters.MaxPrice {
			return false
		}
	}

	return true
}
