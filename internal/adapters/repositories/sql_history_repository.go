package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"trip-route-service/internal/domain"
)

// Postgres-backed implementation of the HistoryRepository port. Semantics
// match the SQLite flavor exactly; only placeholders differ.
type SQLHistoryRepository struct{ DB *sql.DB }

func NewSQLHistoryRepository(db *sql.DB) *SQLHistoryRepository {
	return &SQLHistoryRepository{DB: db}
}

// Record one routed request. Entries are append-only.
func (s *SQLHistoryRepository) Append(ctx context.Context, origin, destination, vehicle string) error {
	if s.DB == nil {
		return errors.New("sql history repository: DB is nil")
	}

	query := `
	INSERT INTO history (origin, destination, vehicle, timestamp)
	VALUES ($1, $2, $3, $4);
	`
	timestamp := time.Now().UTC().Format(time.RFC3339)
	if _, err := s.DB.ExecContext(ctx, query, origin, destination, vehicle, timestamp); err != nil {
		return fmt.Errorf("append history: insert row: %w", err)
	}

	return nil
}

// Return the most requested (origin, destination) pairs, count descending.
// Ties break on origin then destination text so repeated queries agree.
func (s *SQLHistoryRepository) TopRoutes(ctx context.Context, limit int) ([]domain.RouteCount, error) {
	if s.DB == nil {
		return nil, errors.New("sql history repository: DB is nil")
	}

	if limit <= 0 {
		limit = 5
	}

	query := `
	SELECT origin, destination, COUNT(*) AS request_count
	FROM history
	GROUP BY origin, destination
	ORDER BY request_count DESC, origin, destination
	LIMIT $1;
	`
	rows, err := s.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top routes: query history table: %w", err)
	}
	defer rows.Close()

	counts := make([]domain.RouteCount, 0, limit)
	for rows.Next() {
		var rc domain.RouteCount
		if err := rows.Scan(&rc.Origin, &rc.Destination, &rc.Count); err != nil {
			return nil, fmt.Errorf("top routes: scan row: %w", err)
		}
		counts = append(counts, rc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("top routes: row iteration: %w", err)
	}

	return counts, nil
}

// Return request counts grouped by exact vehicle string.
func (s *SQLHistoryRepository) VehicleUsage(ctx context.Context) (map[string]int, error) {
	if s.DB == nil {
		return nil, errors.New("sql history repository: DB is nil")
	}

	query := `
	SELECT vehicle, COUNT(*)
	FROM history
	GROUP BY vehicle;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("vehicle usage: query history table: %w", err)
	}
	defer rows.Close()

	usage := make(map[string]int)
	for rows.Next() {
		var vehicle string
		var count int
		if err := rows.Scan(&vehicle, &count); err != nil {
			return nil, fmt.Errorf("vehicle usage: scan row: %w", err)
		}
		usage[vehicle] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("vehicle usage: row iteration: %w", err)
	}

	return usage, nil
}
