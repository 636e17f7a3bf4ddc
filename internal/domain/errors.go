package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for failure modes the caller can act on by changing input
// or retrying later. Handlers map these onto HTTP status codes.
var (
	// The heuristic sanity check tripped: resolved origin and destination
	// differ by more than 10 degrees of latitude or longitude.
	ErrImplausibleLocations = errors.New("detected locations too far apart, please specify more clearly")

	// The routing service responded but reported zero candidate paths.
	ErrNoRouteFound = errors.New("no route found between these points")

	// The bounded wait for the routing service elapsed without a response.
	ErrRoutingTimeout = errors.New("the routing service took too long to respond")

	// Delete targeted a favorite id that does not exist.
	ErrFavoriteNotFound = errors.New("favorite not found")
)

// LocationNotFoundError reports that a place query resolved through neither
// the remote geocoder nor the static fallback table.
type LocationNotFoundError struct {
	Query string
}

func (e *LocationNotFoundError) Error() string {
	return fmt.Sprintf("could not find location (and no fallback): %s", e.Query)
}

// RoutingServiceError wraps a transport-level failure talking to the routing
// service, distinct from a clean "no route" answer.
type RoutingServiceError struct {
	Err error
}

func (e *RoutingServiceError) Error() string {
	return fmt.Sprintf("could not contact the routing service: %v", e.Err)
}

func (e *RoutingServiceError) Unwrap() error { return e.Err }

// ValidationError lists the required fields missing from a write request.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}
