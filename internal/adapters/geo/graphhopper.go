package geo

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"trip-route-service/internal/domain"
)

// Timeouts observed against the live service: geocoding answers quickly,
// routing can take much longer on cold upstream caches.
const (
	defaultGeocodeTimeout = 10 * time.Second
	defaultRouteTimeout   = 40 * time.Second
)

// Static coordinates for a few known places, consulted when the remote
// geocoder fails, times out, or returns no hits. This is a two-tier
// resolution policy, not a cache: nothing is ever written back or expired.
var defaultFallbacks = map[string]domain.Coordinates{
	"batangas city":    {Lat: 13.7565, Lon: 121.0583},
	"luisiana, laguna": {Lat: 14.1726, Lon: 121.5048},
	"manila":           {Lat: 14.5995, Lon: 120.9842},
}

// GraphHopperClient implements the Geocoder and RouteProvider ports against
// the public GraphHopper API.
//
// It coordinates:
//   - Geocoding with a country filter and a static fallback table
//   - Route retrieval with bounded per-call timeouts
//   - Place-name autocomplete suggestions
//
// The client is safe for concurrent use. No request is ever retried; a
// timeout or upstream error surfaces to the caller for manual retry.
type GraphHopperClient struct {
	session        *http.Client
	apiKey         string
	baseURL        string
	country        string
	geocodeTimeout time.Duration
	routeTimeout   time.Duration
	fallbacks      map[string]domain.Coordinates
}

func NewGraphHopperClient(apiKey string, country string) (*GraphHopperClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("graphhopper api key is empty")
	}

	client := &GraphHopperClient{
		session:        &http.Client{},
		apiKey:         apiKey,
		baseURL:        "https://graphhopper.com/api/1",
		country:        country,
		geocodeTimeout: defaultGeocodeTimeout,
		routeTimeout:   defaultRouteTimeout,
		fallbacks:      defaultFallbacks,
	}

	return client, nil
}

// normalizeFallbackKey lower-cases and trims a place query for fallback lookup.
func normalizeFallbackKey(place string) string {
	return strings.ToLower(strings.TrimSpace(place))
}
