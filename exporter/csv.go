package exporter

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"screener-crawler/models"
)

// utf8BOM is prepended so spreadsheet applications detect the encoding
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV writes the records to a BOM-prefixed UTF-8 CSV file with the
// header symbol,name,price. Parent directories are created as needed and
// an existing file at the path is overwritten.
func WriteCSV(records []models.Record, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	w := csv.NewWriter(file)
	if err := w.Write([]string{"symbol", "name", "price"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, record := range records {
		row := []string{
			record.Symbol,
			record.Name,
			strconv.FormatFloat(record.Price, 'f', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}
