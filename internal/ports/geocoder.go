package ports

import (
	"context"
	"trip-route-service/internal/domain"
)

// Contract for resolving free-text place names to coordinates.
type Geocoder interface {
	// Resolve a place name to a single best-match coordinate.
	// Fails with *domain.LocationNotFoundError when neither the remote
	// service nor the fallback table knows the place.
	Geocode(ctx context.Context, place string) (domain.Coordinates, error)

	// Return up to a handful of place-name suggestions for a partial query.
	Suggest(ctx context.Context, query string) ([]string, error)
}
