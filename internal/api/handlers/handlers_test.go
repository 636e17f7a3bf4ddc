package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-route-service/internal/adapters/geo"
	"trip-route-service/internal/api/dto"
	"trip-route-service/internal/domain"
)

type fakeFavorites struct {
	saved  []domain.FavoriteRoute
	nextID int64
}

func (f *fakeFavorites) Save(ctx context.Context, fav domain.FavoriteRoute) (int64, error) {
	if strings.TrimSpace(fav.Name) == "" {
		return 0, &domain.ValidationError{Missing: []string{"name"}}
	}
	f.nextID++
	fav.ID = f.nextID
	f.saved = append(f.saved, fav)
	return f.nextID, nil
}

func (f *fakeFavorites) List(ctx context.Context) ([]domain.FavoriteRoute, error) {
	out := make([]domain.FavoriteRoute, 0, len(f.saved))
	for i := len(f.saved) - 1; i >= 0; i-- {
		out = append(out, f.saved[i])
	}
	return out, nil
}

func (f *fakeFavorites) Delete(ctx context.Context, id int64) error {
	for i, fav := range f.saved {
		if fav.ID == id {
			f.saved = append(f.saved[:i], f.saved[i+1:]...)
			return nil
		}
	}
	return domain.ErrFavoriteNotFound
}

type noopHistory struct{}

func (noopHistory) Append(ctx context.Context, origin, destination, vehicle string) error {
	return nil
}

func (noopHistory) TopRoutes(ctx context.Context, limit int) ([]domain.RouteCount, error) {
	return []domain.RouteCount{{Origin: "Manila", Destination: "Batangas City", Count: 2}}, nil
}

func (noopHistory) VehicleUsage(ctx context.Context) (map[string]int, error) {
	return map[string]int{"car": 2}, nil
}

func tripHandler(providerErr error) *TripHandler {
	geocoder := &geo.MockGeocoder{
		Places: map[string]domain.Coordinates{
			"Manila":        {Lat: 14.5995, Lon: 120.9842},
			"Batangas City": {Lat: 13.7565, Lon: 121.0583},
		},
	}
	provider := &geo.MockRouteProvider{
		Plan: &domain.RoutePlan{
			DistanceMeters: 50000,
			DurationMillis: 3600000,
			Points:         []domain.Coordinates{{Lat: 14.5995, Lon: 120.9842}},
			Instructions:   []domain.Instruction{{Text: "Start", DistanceMeters: 1000}},
		},
		Err: providerErr,
	}
	return &TripHandler{Geocoder: geocoder, Provider: provider, History: noopHistory{}}
}

func postRoute(t *testing.T, h *TripHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/route", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Route(rec, req)
	return rec
}

func TestRouteEndpointSuccess(t *testing.T) {
	rec := postRoute(t, tripHandler(nil),
		`{"from":"Manila","to":"Batangas City","vehicle":"car","unit":"km"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.RouteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	assert.Equal(t, "50.00 km", res.Distance)
	assert.Equal(t, "1h 0m 0s", res.Time)
	assert.Equal(t, "Car", res.Vehicle)
	assert.Equal(t, "km", res.Unit)
	assert.Equal(t, "Manila", res.From)
	assert.Equal(t, "Batangas City", res.To)
	require.Len(t, res.Instructions, 1)
	assert.Equal(t, "1.00 km", res.Instructions[0].Distance)
	require.Len(t, res.Points, 1)
	assert.Equal(t, 14.5995, res.Points[0].Lat)
}

func TestRouteEndpointValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"missing from", `{"to":"Batangas City"}`, http.StatusBadRequest},
		{"missing to", `{"from":"Manila"}`, http.StatusBadRequest},
		{"invalid json", `{`, http.StatusBadRequest},
		{"unknown field", `{"from":"Manila","to":"Batangas City","bogus":1}`, http.StatusBadRequest},
		{"two objects", `{"from":"Manila","to":"Batangas City"}{}`, http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := postRoute(t, tripHandler(nil), tc.body)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestRouteEndpointMethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/route", nil)
	rec := httptest.NewRecorder()
	tripHandler(nil).Route(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
}

func TestRouteEndpointErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"no route", domain.ErrNoRouteFound, http.StatusBadRequest},
		{"timeout", domain.ErrRoutingTimeout, http.StatusGatewayTimeout},
		{"upstream", &domain.RoutingServiceError{Err: errors.New("boom")}, http.StatusBadGateway},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := postRoute(t, tripHandler(tc.err),
				`{"from":"Manila","to":"Batangas City","vehicle":"car","unit":"km"}`)
			assert.Equal(t, tc.want, rec.Code)

			var res map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
			assert.NotEmpty(t, res["error"])
			if tc.want == http.StatusInternalServerError {
				assert.Equal(t, "internal server error", res["error"])
			}
		})
	}
}

func TestRouteEndpointUnknownLocation(t *testing.T) {
	rec := postRoute(t, tripHandler(nil),
		`{"from":"Atlantis","to":"Batangas City","vehicle":"car","unit":"km"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var res map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Contains(t, res["error"], "Atlantis")
}

func TestFavoritesSaveListDelete(t *testing.T) {
	h := &FavoritesHandler{Repo: &fakeFavorites{}}

	body := `{"name":"commute","from":"Manila","to":"Batangas City","vehicle":"car","unit":"km","distance":"50.00 km","time":"1h 0m 0s"}`
	req := httptest.NewRequest(http.MethodPost, "/favorites", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Collection(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var saveRes dto.SaveFavoriteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saveRes))
	assert.Equal(t, int64(1), saveRes.ID)

	req = httptest.NewRequest(http.MethodGet, "/favorites", nil)
	rec = httptest.NewRecorder()
	h.Collection(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var list []dto.FavoriteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "commute", list[0].Name)
	assert.Equal(t, "Manila", list[0].Origin)

	req = httptest.NewRequest(http.MethodDelete, "/favorites/1", nil)
	rec = httptest.NewRecorder()
	h.Delete(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodDelete, "/favorites/1", nil)
	rec = httptest.NewRecorder()
	h.Delete(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFavoritesSaveValidationError(t *testing.T) {
	h := &FavoritesHandler{Repo: &fakeFavorites{}}

	body := `{"from":"Manila","to":"Batangas City","distance":"50.00 km","time":"1h 0m 0s"}`
	req := httptest.NewRequest(http.MethodPost, "/favorites", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Collection(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFavoritesDeleteInvalidID(t *testing.T) {
	h := &FavoritesHandler{Repo: &fakeFavorites{}}

	req := httptest.NewRequest(http.MethodDelete, "/favorites/abc", nil)
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAutocompleteSwallowsUpstreamFailure(t *testing.T) {
	h := &AutocompleteHandler{
		Geocoder: &geo.MockGeocoder{SuggestErr: errors.New("upstream down")},
	}

	req := httptest.NewRequest(http.MethodGet, "/autocomplete?q=Mani", nil)
	rec := httptest.NewRecorder()
	h.Suggest(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestAutocompleteReturnsSuggestions(t *testing.T) {
	h := &AutocompleteHandler{
		Geocoder: &geo.MockGeocoder{Suggestions: []string{"Manila", "Manila Bay"}},
	}

	req := httptest.NewRequest(http.MethodGet, "/autocomplete?q=Mani", nil)
	rec := httptest.NewRecorder()
	h.Suggest(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["Manila","Manila Bay"]`, rec.Body.String())
}

func TestAnalyticsEndpoints(t *testing.T) {
	h := &AnalyticsHandler{Repo: noopHistory{}}

	req := httptest.NewRequest(http.MethodGet, "/analytics/top-routes", nil)
	rec := httptest.NewRecorder()
	h.TopRoutes(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var top dto.TopRoutesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &top))
	require.Len(t, top.Routes, 1)
	assert.Equal(t, 2, top.Routes[0].Count)

	req = httptest.NewRequest(http.MethodGet, "/analytics/top-routes?limit=0", nil)
	rec = httptest.NewRecorder()
	h.TopRoutes(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/analytics/vehicles", nil)
	rec = httptest.NewRecorder()
	h.VehicleUsage(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var usage dto.VehicleUsageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &usage))
	assert.Equal(t, 2, usage.Vehicles["car"])
}
