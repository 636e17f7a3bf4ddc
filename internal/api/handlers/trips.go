package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"trip-route-service/internal/api/dto"
	"trip-route-service/internal/ports"
	"trip-route-service/internal/services"
)

// TripHandler exposes the trip-planning endpoint. It coordinates geocoding,
// route retrieval, display formatting and the best-effort history log.
type TripHandler struct {
	Geocoder ports.Geocoder
	Provider ports.RouteProvider
	History  ports.HistoryRepository
}

func (h *TripHandler) Route(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.RouteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	from := strings.TrimSpace(req.From)
	to := strings.TrimSpace(req.To)
	if from == "" || to == "" {
		writeError(w, r, http.StatusBadRequest, "from and to are required")
		return
	}

	vehicle := strings.TrimSpace(req.Vehicle)
	if vehicle == "" {
		vehicle = "car"
	}

	unit := strings.TrimSpace(req.Unit)
	if unit == "" {
		unit = "km"
	}

	svcReq := services.PlanTripRequest{
		From:    from,
		To:      to,
		Vehicle: vehicle,
		Unit:    unit,
	}

	summary, err := services.PlanTrip(r.Context(), svcReq, h.Geocoder, h.Provider, h.History)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	instructions := make([]dto.InstructionResponse, 0, len(summary.Instructions))
	for _, instr := range summary.Instructions {
		instructions = append(instructions, dto.InstructionResponse{
			Text:     instr.Text,
			Distance: instr.DistanceText,
		})
	}

	points := make([]dto.PointResponse, 0, len(summary.Points))
	for _, p := range summary.Points {
		points = append(points, dto.PointResponse{Lat: p.Lat, Lng: p.Lon})
	}

	res := dto.RouteResponse{
		Distance:     summary.DistanceText,
		Time:         summary.TimeText,
		Vehicle:      summary.VehicleLabel,
		Unit:         summary.Unit,
		Instructions: instructions,
		Points:       points,
		From:         summary.From,
		To:           summary.To,
	}

	writeJSON(w, r, http.StatusOK, res)
}
