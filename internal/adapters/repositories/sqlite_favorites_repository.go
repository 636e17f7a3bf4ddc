package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trip-route-service/internal/domain"
)

// SQLite-backed implementation of the FavoritesRepository port.
type SqliteFavoritesRepository struct{ DB *sql.DB }

func NewSqliteFavoritesRepository(db *sql.DB) *SqliteFavoritesRepository {
	return &SqliteFavoritesRepository{DB: db}
}

// Persist a favorite route and return its store-assigned id.
func (s *SqliteFavoritesRepository) Save(ctx context.Context, fav domain.FavoriteRoute) (int64, error) {
	if s.DB == nil {
		return 0, errors.New("sqlite favorites repository: DB is nil")
	}

	fav, err := prepareFavorite(fav)
	if err != nil {
		return 0, err
	}

	query := `
	INSERT INTO favorites (
		name,
		origin,
		destination,
		vehicle,
		unit,
		distance_text,
		time_text,
		created_at
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`
	res, err := s.DB.ExecContext(ctx, query,
		fav.Name,
		fav.Origin,
		fav.Destination,
		fav.Vehicle,
		fav.Unit,
		fav.DistanceText,
		fav.TimeText,
		fav.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("save favorite: insert row: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("save favorite: last insert id: %w", err)
	}

	return id, nil
}

// Return all favorite routes, newest first.
func (s *SqliteFavoritesRepository) List(ctx context.Context) ([]domain.FavoriteRoute, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite favorites repository: DB is nil")
	}

	query := `
	SELECT
		id,
		name,
		origin,
		destination,
		vehicle,
		unit,
		distance_text,
		time_text,
		created_at
	FROM favorites
	ORDER BY created_at DESC, id DESC;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list favorites: query favorites table: %w", err)
	}
	defer rows.Close()

	favorites := make([]domain.FavoriteRoute, 0, 16)
	for rows.Next() {
		var f domain.FavoriteRoute
		err := rows.Scan(
			&f.ID,
			&f.Name,
			&f.Origin,
			&f.Destination,
			&f.Vehicle,
			&f.Unit,
			&f.DistanceText,
			&f.TimeText,
			&f.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("list favorites: scan row: %w", err)
		}
		favorites = append(favorites, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list favorites: row iteration: %w", err)
	}

	return favorites, nil
}

// Remove a favorite by id. Deleting a nonexistent id fails with
// domain.ErrFavoriteNotFound.
func (s *SqliteFavoritesRepository) Delete(ctx context.Context, id int64) error {
	if s.DB == nil {
		return errors.New("sqlite favorites repository: DB is nil")
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM favorites WHERE id = ?;`, id)
	if err != nil {
		return fmt.Errorf("delete favorite id=%d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete favorite id=%d: rows affected: %w", id, err)
	}
	if affected == 0 {
		return domain.ErrFavoriteNotFound
	}

	return nil
}
