package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/url"

	"github.com/twpayne/go-polyline"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/platform/obs"
)

type routeResponse struct {
	Paths []struct {
		Distance     float64         `json:"distance"`
		Time         int64           `json:"time"`
		Points       json.RawMessage `json:"points"`
		Instructions []struct {
			Text     string  `json:"text"`
			Distance float64 `json:"distance"`
		} `json:"instructions"`
	} `json:"paths"`
}

// FetchRoute retrieves a route between two coordinates using GraphHopper
// (/route). Only the first candidate path is used; alternates are discarded.
//
// Failure modes are kept distinct so callers can tell "try different input"
// from "try again later": an empty path list yields domain.ErrNoRouteFound,
// an elapsed bounded wait yields domain.ErrRoutingTimeout, and any other
// transport or status failure yields a *domain.RoutingServiceError.
func (g *GraphHopperClient) FetchRoute(
	ctx context.Context,
	origin, destination domain.Coordinates,
	vehicle string,
) (_ *domain.RoutePlan, err error) {
	defer obs.Time(ctx, "graphhopper.FetchRoute")(&err)

	ctx, cancel := context.WithTimeout(ctx, g.routeTimeout)
	defer cancel()

	q := url.Values{}
	q.Set("vehicle", vehicle)
	q.Set("locale", "en")
	q.Set("points_encoded", "false")
	q.Add("point", origin.PointParam())
	q.Add("point", destination.PointParam())

	req, err := g.newRequest(ctx, "/route", q)
	if err != nil {
		return nil, fmt.Errorf("route request: %w", err)
	}

	resp, err := g.do(req)
	if err != nil {
		return nil, classifyRouteError(err)
	}
	defer resp.Body.Close()

	var decoded routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, &domain.RoutingServiceError{Err: fmt.Errorf("decode route response: %w", err)}
	}

	if len(decoded.Paths) == 0 {
		return nil, domain.ErrNoRouteFound
	}

	path := decoded.Paths[0]

	points, err := decodePoints(path.Points)
	if err != nil {
		return nil, &domain.RoutingServiceError{Err: fmt.Errorf("decode path geometry: %w", err)}
	}

	instructions := make([]domain.Instruction, 0, len(path.Instructions))
	for _, instr := range path.Instructions {
		instructions = append(instructions, domain.Instruction{
			Text:           instr.Text,
			DistanceMeters: instr.Distance,
		})
	}

	plan := &domain.RoutePlan{
		DistanceMeters: path.Distance,
		DurationMillis: path.Time,
		Points:         points,
		Instructions:   instructions,
	}

	return plan, nil
}

// classifyRouteError separates a deadline expiry from other upstream failures.
func classifyRouteError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.ErrRoutingTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.ErrRoutingTimeout
	}

	return &domain.RoutingServiceError{Err: err}
}

type lineString struct {
	Coordinates [][]float64 `json:"coordinates"`
}

// decodePoints accepts path geometry in either of GraphHopper's two shapes:
// a GeoJSON LineString (points_encoded=false) with [lng, lat] pairs, or an
// encoded polyline string emitting [lat, lng] pairs.
func decodePoints(raw json.RawMessage) ([]domain.Coordinates, error) {
	if len(raw) == 0 {
		return []domain.Coordinates{}, nil
	}

	if raw[0] == '"' {
		var encoded string
		if err := json.Unmarshal(raw, &encoded); err != nil {
			return nil, fmt.Errorf("unmarshal encoded points: %w", err)
		}

		pairs, _, err := polyline.DecodeCoords([]byte(encoded))
		if err != nil {
			return nil, fmt.Errorf("decode polyline: %w", err)
		}

		points := make([]domain.Coordinates, 0, len(pairs))
		for _, p := range pairs {
			points = append(points, domain.Coordinates{Lat: p[0], Lon: p[1]})
		}
		return points, nil
	}

	var line lineString
	if err := json.Unmarshal(raw, &line); err != nil {
		return nil, fmt.Errorf("unmarshal linestring points: %w", err)
	}

	points := make([]domain.Coordinates, 0, len(line.Coordinates))
	for i, pair := range line.Coordinates {
		if len(pair) < 2 {
			return nil, fmt.Errorf("invalid coordinate pair at index %d", i)
		}
		points = append(points, domain.Coordinates{Lat: pair[1], Lon: pair[0]})
	}

	return points, nil
}
