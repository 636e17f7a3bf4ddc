package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"strings"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/platform/obs"
)

type geocodeResponse struct {
	Hits []struct {
		Point struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"point"`
		Name    string `json:"name"`
		Country string `json:"country"`
		State   string `json:"state"`
	} `json:"hits"`
}

// Geocode resolves a place name to its single best-match coordinate using
// GraphHopper (/geocode), restricted to the configured country.
//
// Resolution is two-tier: the remote call is tried first under a bounded
// timeout; on any failure or an empty hit set the static fallback table is
// consulted. Only when both tiers miss does the call fail with
// *domain.LocationNotFoundError.
func (g *GraphHopperClient) Geocode(ctx context.Context, place string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "graphhopper.Geocode")(&err)

	coords, err := g.geocodeRemote(ctx, place)
	if err == nil {
		return coords, nil
	}
	log.Printf("geocode remote lookup failed for %q, trying fallback: %v", place, err)

	if coords, ok := g.fallbacks[normalizeFallbackKey(place)]; ok {
		return coords, nil
	}

	return domain.Coordinates{}, &domain.LocationNotFoundError{Query: place}
}

func (g *GraphHopperClient) geocodeRemote(ctx context.Context, place string) (domain.Coordinates, error) {
	ctx, cancel := context.WithTimeout(ctx, g.geocodeTimeout)
	defer cancel()

	q := url.Values{}
	q.Set("q", place)
	q.Set("limit", "1")
	if g.country != "" {
		q.Set("country", g.country)
	}

	req, err := g.newRequest(ctx, "/geocode", q)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode request: %w", err)
	}

	resp, err := g.do(req)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("execute geocode request: %w", err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinates{}, fmt.Errorf("decode geocode response: %w", err)
	}

	if len(decoded.Hits) == 0 {
		return domain.Coordinates{}, fmt.Errorf("no geocode hits for %q", place)
	}

	point := decoded.Hits[0].Point
	return domain.Coordinates{Lat: point.Lat, Lon: point.Lng}, nil
}

// Suggest returns up to five place-name suggestions for a partial query.
// Callers on the UI path swallow errors and show no suggestions instead.
func (g *GraphHopperClient) Suggest(ctx context.Context, query string) (_ []string, err error) {
	defer obs.Time(ctx, "graphhopper.Suggest")(&err)

	if strings.TrimSpace(query) == "" {
		return []string{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, g.geocodeTimeout)
	defer cancel()

	q := url.Values{}
	q.Set("q", query)
	q.Set("limit", "5")
	q.Set("autocomplete", "true")
	if g.country != "" {
		q.Set("country", g.country)
	}

	req, err := g.newRequest(ctx, "/geocode", q)
	if err != nil {
		return nil, fmt.Errorf("autocomplete request: %w", err)
	}

	resp, err := g.do(req)
	if err != nil {
		return nil, fmt.Errorf("execute autocomplete request: %w", err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode autocomplete response: %w", err)
	}

	suggestions := make([]string, 0, len(decoded.Hits))
	for _, hit := range decoded.Hits {
		suggestions = append(suggestions, hit.Name)
	}

	return suggestions, nil
}
