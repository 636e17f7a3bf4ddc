package services

import (
	"context"
	"fmt"
	"log"
	"math"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/platform/obs"
	"trip-route-service/internal/ports"
)

// Resolved geocodes more than this many degrees apart in latitude or
// longitude are rejected as a geocoding mismatch (e.g. a name resolving to
// the wrong hemisphere). Deliberately coarse, not a geodesic bound.
const maxPlausibleDegreeGap = 10.0

type PlanTripRequest struct {
	From    string
	To      string
	Vehicle string
	Unit    string
}

type TripInstruction struct {
	Text         string
	DistanceText string
}

// TripSummary is the display-ready result of planning one trip. The original
// input place texts are carried through so the caller can offer "save as
// favorite" without re-resolving anything.
type TripSummary struct {
	From         string
	To           string
	Vehicle      string
	VehicleLabel string
	Unit         string
	DistanceText string
	TimeText     string
	Instructions []TripInstruction
	Points       []domain.Coordinates
}

// PlanTrip geocodes both endpoints, fetches a route between them, and formats
// the result for display in the requested unit system.
//
// On success the request is appended to the routing history as a best-effort
// side effect; a history write failure is logged and never fails the trip.
func PlanTrip(
	ctx context.Context,
	req PlanTripRequest,
	geocoder ports.Geocoder,
	provider ports.RouteProvider,
	history ports.HistoryRepository,
) (_ *TripSummary, err error) {
	defer obs.Time(ctx, "services.PlanTrip")(&err)

	origin, err := geocoder.Geocode(ctx, req.From)
	if err != nil {
		return nil, fmt.Errorf("plan trip: geocode origin: %w", err)
	}

	destination, err := geocoder.Geocode(ctx, req.To)
	if err != nil {
		return nil, fmt.Errorf("plan trip: geocode destination: %w", err)
	}

	if math.Abs(origin.Lat-destination.Lat) > maxPlausibleDegreeGap ||
		math.Abs(origin.Lon-destination.Lon) > maxPlausibleDegreeGap {
		return nil, domain.ErrImplausibleLocations
	}

	plan, err := provider.FetchRoute(ctx, origin, destination, req.Vehicle)
	if err != nil {
		return nil, fmt.Errorf("plan trip: fetch route: %w", err)
	}

	instructions := make([]TripInstruction, 0, len(plan.Instructions))
	for _, instr := range plan.Instructions {
		instructions = append(instructions, TripInstruction{
			Text:         instr.Text,
			DistanceText: FormatDistance(instr.DistanceMeters, req.Unit),
		})
	}

	summary := &TripSummary{
		From:         req.From,
		To:           req.To,
		Vehicle:      req.Vehicle,
		VehicleLabel: cases.Title(language.English).String(req.Vehicle),
		Unit:         req.Unit,
		DistanceText: FormatDistance(plan.DistanceMeters, req.Unit),
		TimeText:     FormatDuration(plan.DurationMillis),
		Instructions: instructions,
		Points:       plan.Points,
	}

	if history != nil {
		if err := history.Append(ctx, req.From, req.To, req.Vehicle); err != nil {
			log.Printf("history append failed from=%q to=%q: %v", req.From, req.To, err)
		}
	}

	return summary, nil
}
