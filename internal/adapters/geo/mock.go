package geo

import (
	"context"

	"trip-route-service/internal/domain"
)

// MockGeocoder resolves places from a fixed table for tests.
type MockGeocoder struct {
	Places      map[string]domain.Coordinates
	Suggestions []string
	SuggestErr  error
}

func (m *MockGeocoder) Geocode(ctx context.Context, place string) (domain.Coordinates, error) {
	c, ok := m.Places[place]
	if !ok {
		return domain.Coordinates{}, &domain.LocationNotFoundError{Query: place}
	}
	return c, nil
}

func (m *MockGeocoder) Suggest(ctx context.Context, query string) ([]string, error) {
	if m.SuggestErr != nil {
		return nil, m.SuggestErr
	}
	return m.Suggestions, nil
}

// MockRouteProvider returns a fixed plan or error for tests.
type MockRouteProvider struct {
	Plan *domain.RoutePlan
	Err  error

	// Captured arguments from the last FetchRoute call.
	LastOrigin      domain.Coordinates
	LastDestination domain.Coordinates
	LastVehicle     string
}

func (m *MockRouteProvider) FetchRoute(
	ctx context.Context,
	origin, destination domain.Coordinates,
	vehicle string,
) (*domain.RoutePlan, error) {
	m.LastOrigin = origin
	m.LastDestination = destination
	m.LastVehicle = vehicle

	if m.Err != nil {
		return nil, m.Err
	}
	return m.Plan, nil
}
