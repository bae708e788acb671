package db

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"

	"screener-crawler/models"
)

// DB wraps the database connection used to persist crawl runs
type DB struct {
	conn *sql.DB
}

// NewDB creates a new database connection from DATABASE_URL or the
// individual DB_* environment variables
func NewDB() (*DB, error) {
	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		host := getEnvOrDefault("DB_HOST", "localhost")
		port := getEnvOrDefault("DB_PORT", "5432")
		user := getEnvOrDefault("DB_USER", "screener")
		password := getEnvOrDefault("DB_PASSWORD", "")
		dbname := getEnvOrDefault("DB_NAME", "screener")
		sslmode := getEnvOrDefault("DB_SSLMODE", "disable")

		connStr = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			host, port, user, password, dbname, sslmode)
	}

	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := &DB{conn: conn}

	if err := db.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// initSchema creates the crawl run tables if they do not exist
func (db *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS crawl_runs (
		id SERIAL PRIMARY KEY,
		url TEXT NOT NULL,
		region TEXT NOT NULL,
		record_count INTEGER NOT NULL,
		started_at TIMESTAMPTZ NOT NULL,
		finished_at TIMESTAMPTZ NOT NULL
	);
	CREATE TABLE IF NOT EXISTS crawl_records (
		id SERIAL PRIMARY KEY,
		run_id INTEGER NOT NULL REFERENCES crawl_runs(id) ON DELETE CASCADE,
		symbol TEXT NOT NULL,
		name TEXT NOT NULL,
		price DOUBLE PRECISION NOT NULL,
		page_number INTEGER NOT NULL
	);`

	if _, err := db.conn.Exec(schema); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

// SaveRun persists one crawl run and its records, returning the run ID
func (db *DB) SaveRun(url, region string, records []models.Record, startedAt, finishedAt time.Time) (int64, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var runID int64
	err = tx.QueryRow(
		`INSERT INTO crawl_runs (url, region, record_count, started_at, finished_at)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		url, region, len(records), startedAt, finishedAt,
	).Scan(&runID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO crawl_records (run_id, symbol, name, price, page_number)
		 VALUES ($1, $2, $3, $4, $5)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, record := range records {
		if _, err := stmt.Exec(runID, record.Symbol, record.Name, record.Price, record.PageNumber); err != nil {
			return 0, fmt.Errorf("failed to insert record %s: %w", record.Symbol, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}
	return runID, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}
