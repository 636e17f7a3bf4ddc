package api

import (
	"net/http"

	"trip-route-service/internal/api/handlers"
	"trip-route-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	geocoder ports.Geocoder,
	provider ports.RouteProvider,
	favorites ports.FavoritesRepository,
	history ports.HistoryRepository,
) http.Handler {
	mux := http.NewServeMux()

	tripHandler := &handlers.TripHandler{
		Geocoder: geocoder,
		Provider: provider,
		History:  history,
	}
	autocompleteHandler := &handlers.AutocompleteHandler{Geocoder: geocoder}
	favoritesHandler := &handlers.FavoritesHandler{Repo: favorites}
	analyticsHandler := &handlers.AnalyticsHandler{Repo: history}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/route", tripHandler.Route)
	mux.HandleFunc("/autocomplete", autocompleteHandler.Suggest)
	mux.HandleFunc("/favorites", favoritesHandler.Collection)
	mux.HandleFunc("/favorites/", favoritesHandler.Delete)
	mux.HandleFunc("/analytics/top-routes", analyticsHandler.TopRoutes)
	mux.HandleFunc("/analytics/vehicles", analyticsHandler.VehicleUsage)

	return requestIDMiddleware(loggingMiddleware(mux))
}
