package geo

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/twpayne/go-polyline"

	"trip-route-service/internal/domain"
)

const routeBody = `{
	"paths": [{
		"distance": 50000.0,
		"time": 3600000,
		"points": {"type": "LineString", "coordinates": [[120.9842, 14.5995], [121.0583, 13.7565]]},
		"instructions": [
			{"text": "Start", "distance": 1000.0},
			{"text": "Arrive", "distance": 49000.0}
		]
	}]
}`

func TestFetchRouteFirstPath(t *testing.T) {
	origin := domain.Coordinates{Lat: 14.5995, Lon: 120.9842}
	destination := domain.Coordinates{Lat: 13.7565, Lon: 121.0583}

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/route" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("vehicle") != "car" {
			t.Errorf("vehicle = %q, want car", q.Get("vehicle"))
		}
		if q.Get("points_encoded") != "false" {
			t.Errorf("points_encoded = %q, want false", q.Get("points_encoded"))
		}
		points := q["point"]
		if len(points) != 2 || points[0] != origin.PointParam() || points[1] != destination.PointParam() {
			t.Errorf("point params = %v", points)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(routeBody))
	}))

	plan, err := client.FetchRoute(context.Background(), origin, destination, "car")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.DistanceMeters != 50000 {
		t.Errorf("DistanceMeters = %v, want 50000", plan.DistanceMeters)
	}
	if plan.DurationMillis != 3600000 {
		t.Errorf("DurationMillis = %v, want 3600000", plan.DurationMillis)
	}
	if len(plan.Points) != 2 || plan.Points[0].Lat != 14.5995 || plan.Points[0].Lon != 120.9842 {
		t.Errorf("Points = %v", plan.Points)
	}
	if len(plan.Instructions) != 2 || plan.Instructions[0].Text != "Start" {
		t.Errorf("Instructions = %v", plan.Instructions)
	}
}

func TestFetchRouteNoRouteFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"paths":[]}`))
	}))

	_, err := client.FetchRoute(context.Background(), domain.Coordinates{}, domain.Coordinates{}, "car")
	if !errors.Is(err, domain.ErrNoRouteFound) {
		t.Fatalf("expected ErrNoRouteFound, got %v", err)
	}
}

func TestFetchRouteUpstreamError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))

	_, err := client.FetchRoute(context.Background(), domain.Coordinates{}, domain.Coordinates{}, "car")

	var upstream *domain.RoutingServiceError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected RoutingServiceError, got %v", err)
	}
}

func TestFetchRouteTimeout(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(routeBody))
	}))
	client.routeTimeout = 20 * time.Millisecond

	_, err := client.FetchRoute(context.Background(), domain.Coordinates{}, domain.Coordinates{}, "car")
	if !errors.Is(err, domain.ErrRoutingTimeout) {
		t.Fatalf("expected ErrRoutingTimeout, got %v", err)
	}
}

func TestDecodePointsBothShapes(t *testing.T) {
	// The same two points: GeoJSON carries [lng, lat], polyline carries [lat, lng].
	geojson := json.RawMessage(`{"type":"LineString","coordinates":[[120.98420,14.59950],[121.05830,13.75650]]}`)
	// Encoded form of (14.5995, 120.9842) -> (13.7565, 121.0583).
	encoded, _ := json.Marshal(string(polyline.EncodeCoords([][]float64{
		{14.5995, 120.9842},
		{13.7565, 121.0583},
	})))

	fromGeoJSON, err := decodePoints(geojson)
	if err != nil {
		t.Fatalf("decode geojson: %v", err)
	}
	fromPolyline, err := decodePoints(encoded)
	if err != nil {
		t.Fatalf("decode polyline: %v", err)
	}

	if len(fromGeoJSON) != len(fromPolyline) {
		t.Fatalf("length mismatch: %d vs %d", len(fromGeoJSON), len(fromPolyline))
	}
	for i := range fromGeoJSON {
		if !closeEnough(fromGeoJSON[i].Lat, fromPolyline[i].Lat) ||
			!closeEnough(fromGeoJSON[i].Lon, fromPolyline[i].Lon) {
			t.Errorf("point %d mismatch: geojson=%+v polyline=%+v", i, fromGeoJSON[i], fromPolyline[i])
		}
	}
}

func closeEnough(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	// Polyline encoding quantizes to 1e-5 degrees.
	return diff < 1e-5
}
