package ports

import (
	"context"
	"trip-route-service/internal/domain"
)

// Port: a boundary for the append-only routing request log.
type HistoryRepository interface {
	// Record one routed request. Callers treat this as best-effort.
	Append(ctx context.Context, origin, destination, vehicle string) error

	// Return the most requested (origin, destination) pairs, count descending.
	TopRoutes(ctx context.Context, limit int) ([]domain.RouteCount, error)

	// Return request counts grouped by exact vehicle string.
	VehicleUsage(ctx context.Context) (map[string]int, error)
}
