package handlers

import (
	"log"
	"net/http"
	"strings"

	"trip-route-service/internal/ports"
)

// AutocompleteHandler serves place-name suggestions for the search inputs.
// Upstream failures degrade to an empty suggestion list so the UI never sees
// an error from typing.
type AutocompleteHandler struct {
	Geocoder ports.Geocoder
}

func (h *AutocompleteHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeJSON(w, r, http.StatusOK, []string{})
		return
	}

	suggestions, err := h.Geocoder.Suggest(r.Context(), query)
	if err != nil {
		log.Printf("autocomplete failed q=%q: %v", query, err)
		writeJSON(w, r, http.StatusOK, []string{})
		return
	}

	if suggestions == nil {
		suggestions = []string{}
	}

	writeJSON(w, r, http.StatusOK, suggestions)
}
