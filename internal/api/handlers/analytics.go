package handlers

import (
	"log"
	"net/http"
	"strconv"

	"trip-route-service/internal/api/dto"
	"trip-route-service/internal/ports"
)

// AnalyticsHandler exposes read-time aggregations over the routing history.
type AnalyticsHandler struct {
	Repo ports.HistoryRepository
}

func (h *AnalyticsHandler) TopRoutes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	limit := 5
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			writeError(w, r, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = parsed
	}

	counts, err := h.Repo.TopRoutes(r.Context(), limit)
	if err != nil {
		log.Printf("top routes failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.TopRoutesResponse{Routes: make([]dto.RouteCountResponse, 0, len(counts))}
	for _, rc := range counts {
		res.Routes = append(res.Routes, dto.RouteCountResponse{
			Origin:      rc.Origin,
			Destination: rc.Destination,
			Count:       rc.Count,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *AnalyticsHandler) VehicleUsage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	usage, err := h.Repo.VehicleUsage(r.Context())
	if err != nil {
		log.Printf("vehicle usage failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.VehicleUsageResponse{Vehicles: usage})
}
