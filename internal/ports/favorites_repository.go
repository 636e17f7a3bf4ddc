package ports

import (
	"context"
	"trip-route-service/internal/domain"
)

// Port: a boundary for persisting named favorite routes.
type FavoritesRepository interface {
	// Persist a favorite and return its store-assigned id. The record's
	// CreatedAt is assigned at write time (UTC, ISO-8601).
	Save(ctx context.Context, fav domain.FavoriteRoute) (int64, error)

	// Return all favorites, newest first.
	List(ctx context.Context) ([]domain.FavoriteRoute, error)

	// Remove exactly one favorite by id.
	// Fails with domain.ErrFavoriteNotFound when the id does not exist.
	Delete(ctx context.Context, id int64) error
}
