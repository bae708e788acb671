package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"screener-crawler/models"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Writer handles writing extracted records to Google Sheets
type Writer struct {
	service       *sheets.Service
	spreadsheetID string
}

// NewWriter creates a new Google Sheets writer. Credentials come from the
// file at credentialsPath, or from the GOOGLE_SHEETS_CREDENTIALS environment
// variable when the path is empty.
func NewWriter(spreadsheetID string, credentialsPath string) (*Writer, error) {
	ctx := context.Background()

	var credsJSON []byte
	var err error

	if credentialsPath != "" {
		credsJSON, err = os.ReadFile(credentialsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read credentials file: %w", err)
		}
	} else {
		credsEnv := strings.TrimSpace(os.Getenv("GOOGLE_SHEETS_CREDENTIALS"))
		if credsEnv == "" {
			return nil, fmt.Errorf("credentials not found: GOOGLE_SHEETS_CREDENTIALS environment variable is empty or not set")
		}
		credsJSON = []byte(credsEnv)
	}

	var creds map[string]interface{}
	if err := json.Unmarshal(credsJSON, &creds); err != nil {
		return nil, fmt.Errorf("invalid credentials JSON: %w", err)
	}
	if creds["type"] != "service_account" {
		return nil, fmt.Errorf("credentials must be a service account JSON file, got type: %v", creds["type"])
	}

	service, err := sheets.NewService(ctx, option.WithCredentialsJSON(credsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Writer{
		service:       service,
		spreadsheetID: spreadsheetID,
	}, nil
}

// spreadsheetIDRe matches the document ID inside a Google Sheets URL
var spreadsheetIDRe = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)

// ExtractSpreadsheetID pulls the spreadsheet ID out of a Sheets URL.
// Returns an empty string when the URL does not contain one.
func ExtractSpreadsheetID(url string) string {
	matches := spreadsheetIDRe.FindStringSubmatch(url)
	if matches == nil {
		return ""
	}
	return matches[1]
}

// WriteRecords appends the records to a new sheet named after the region
// and the current timestamp, with a symbol/name/price header row.
func (w *Writer) WriteRecords(records []models.Record, region string) (string, error) {
	sheetName := fmt.Sprintf("%s_%s", region, time.Now().Format("20060102_150405"))

	addReq := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: sheetName},
			},
		}},
	}
	if _, err := w.service.Spreadsheets.BatchUpdate(w.spreadsheetID, addReq).Do(); err != nil {
		return "", fmt.Errorf("failed to add sheet %s: %w", sheetName, err)
	}

	values := [][]interface{}{{"symbol", "name", "price"}}
	for _, record := range records {
		values = append(values, []interface{}{record.Symbol, record.Name, record.Price})
	}

	valueRange := &sheets.ValueRange{Values: values}
	_, err := w.service.Spreadsheets.Values.Update(w.spreadsheetID, fmt.Sprintf("%s!A1", sheetName), valueRange).
		ValueInputOption("RAW").Do()
	if err != nil {
		return "", fmt.Errorf("failed to write records to sheet %s: %w", sheetName, err)
	}

	return sheetName, nil
}
