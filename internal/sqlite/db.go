package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL keeps readers from blocking the single writer
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations creates the schema if it doesn't exist yet.
func (db *DB) RunMigrations() error {
	migration := `
-- Live records: today's marks, replaced wholesale on each submission
CREATE TABLE IF NOT EXISTS day_marks (
    day TEXT NOT NULL,
    employee_id TEXT NOT NULL,
    marked_at TIMESTAMP NOT NULL,
    PRIMARY KEY (day, employee_id)
);

-- One header row per closed day; its presence is the idempotency check
CREATE TABLE IF NOT EXISTS archive_days (
    day TEXT PRIMARY KEY,
    rotation_id TEXT NOT NULL,
    closed_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Immutable marks of closed days; never updated or deleted
CREATE TABLE IF NOT EXISTS archive_marks (
    day TEXT NOT NULL,
    employee_id TEXT NOT NULL,
    marked_at TIMESTAMP NOT NULL,
    PRIMARY KEY (day, employee_id),
    FOREIGN KEY (day) REFERENCES archive_days(day)
);
`

	if _, err := db.Exec(migration); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
