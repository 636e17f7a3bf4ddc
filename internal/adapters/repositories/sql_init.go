package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres database schema. Idempotent; safe to run on every
// startup.
func InitSchemaPostgres(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createFavoritesQuery := `
	CREATE TABLE IF NOT EXISTS favorites (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		vehicle TEXT NOT NULL,
		unit TEXT NOT NULL,
		distance_text TEXT NOT NULL,
		time_text TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	`

	createHistoryQuery := `
	CREATE TABLE IF NOT EXISTS history (
		id BIGSERIAL PRIMARY KEY,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		vehicle TEXT NOT NULL,
		timestamp TEXT NOT NULL
	);
	`

	createHistoryIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_history_origin_destination
	ON history(origin, destination);
	`

	statements := []string{
		createFavoritesQuery,
		createHistoryQuery,
		createHistoryIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
