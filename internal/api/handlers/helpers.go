package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"trip-route-service/internal/domain"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeDomainError maps the error taxonomy onto HTTP statuses. User-correctable
// failures are 4xx, upstream unavailability is 502/504 so clients can tell
// "try different input" from "try again later", and anything unrecognized
// collapses to a generic 500 without leaking internal error text.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var notFound *domain.LocationNotFoundError
	var validation *domain.ValidationError
	var upstream *domain.RoutingServiceError

	switch {
	case errors.As(err, &notFound):
		writeError(w, r, http.StatusBadRequest, notFound.Error())
	case errors.Is(err, domain.ErrImplausibleLocations):
		writeError(w, r, http.StatusBadRequest, domain.ErrImplausibleLocations.Error())
	case errors.Is(err, domain.ErrNoRouteFound):
		writeError(w, r, http.StatusBadRequest, domain.ErrNoRouteFound.Error())
	case errors.As(err, &validation):
		writeError(w, r, http.StatusBadRequest, validation.Error())
	case errors.Is(err, domain.ErrFavoriteNotFound):
		writeError(w, r, http.StatusNotFound, domain.ErrFavoriteNotFound.Error())
	case errors.Is(err, domain.ErrRoutingTimeout):
		writeError(w, r, http.StatusGatewayTimeout, "the routing service took too long to respond, please try again")
	case errors.As(err, &upstream):
		writeError(w, r, http.StatusBadGateway, "could not contact the routing service, please try again later")
	default:
		log.Printf("unexpected error: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
