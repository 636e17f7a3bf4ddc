package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"trip-route-service/internal/api/dto"
	"trip-route-service/internal/domain"
	"trip-route-service/internal/ports"
)

// FavoritesHandler exposes save/list/delete for named favorite routes.
type FavoritesHandler struct {
	Repo ports.FavoritesRepository
}

// Collection dispatches GET (list) and POST (save) on /favorites.
func (h *FavoritesHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.save(w, r)
	default:
		w.Header().Set("Allow", strings.Join([]string{http.MethodGet, http.MethodPost}, ", "))
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *FavoritesHandler) list(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.Repo.List(r.Context())
	if err != nil {
		log.Printf("list favorites failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := make([]dto.FavoriteResponse, 0, len(favorites))
	for _, f := range favorites {
		res = append(res, dto.FavoriteResponse{
			ID:          f.ID,
			Name:        f.Name,
			Origin:      f.Origin,
			Destination: f.Destination,
			Vehicle:     f.Vehicle,
			Unit:        f.Unit,
			Distance:    f.DistanceText,
			Time:        f.TimeText,
			CreatedAt:   f.CreatedAt,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *FavoritesHandler) save(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveFavoriteRequest

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

	fav := domain.FavoriteRoute{
		Name:         req.Name,
		Origin:       req.From,
		Destination:  req.To,
		Vehicle:      req.Vehicle,
		Unit:         req.Unit,
		DistanceText: req.Distance,
		TimeText:     req.Time,
	}

	id, err := h.Repo.Save(r.Context(), fav)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	res := dto.SaveFavoriteResponse{
		ID:      id,
		Message: "favorite route saved",
	}

	writeJSON(w, r, http.StatusCreated, res)
}

// Delete removes one favorite by id on DELETE /favorites/{id}.
func (h *FavoritesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.Header().Set("Allow", http.MethodDelete)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	rawID := strings.TrimPrefix(r.URL.Path, "/favorites/")
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, r, http.StatusBadRequest, "invalid favorite id")
		return
	}

	if err := h.Repo.Delete(r.Context(), id); err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"message": "favorite route deleted"})
}
