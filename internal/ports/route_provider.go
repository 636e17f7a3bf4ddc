package ports

import (
	"context"
	"trip-route-service/internal/domain"
)

// Contract for retrieving a route between two coordinates.
type RouteProvider interface {
	// Return the first candidate path between origin and destination for the
	// given vehicle profile. The vehicle string is passed through verbatim;
	// the remote service is the source of truth for validity.
	FetchRoute(ctx context.Context, origin, destination domain.Coordinates, vehicle string) (*domain.RoutePlan, error)
}
