package models

// Record represents one row extracted from the screener table
type Record struct {
	Symbol     string
	Name       string
	Price      float64
	PageNumber int // Page number where this record was found
}
