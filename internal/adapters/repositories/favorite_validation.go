package repositories

import (
	"strings"
	"time"

	"trip-route-service/internal/domain"
)

// prepareFavorite trims a favorite's fields, applies defaults for vehicle and
// unit, validates the required fields, and stamps the creation time. Shared
// by both store flavors so their semantics cannot drift.
func prepareFavorite(fav domain.FavoriteRoute) (domain.FavoriteRoute, error) {
	fav.Name = strings.TrimSpace(fav.Name)
	fav.Origin = strings.TrimSpace(fav.Origin)
	fav.Destination = strings.TrimSpace(fav.Destination)
	fav.Vehicle = strings.TrimSpace(fav.Vehicle)
	fav.Unit = strings.TrimSpace(fav.Unit)
	fav.DistanceText = strings.TrimSpace(fav.DistanceText)
	fav.TimeText = strings.TrimSpace(fav.TimeText)

	if fav.Vehicle == "" {
		fav.Vehicle = "car"
	}
	if fav.Unit == "" {
		fav.Unit = "km"
	}

	required := []struct {
		field string
		value string
	}{
		{"name", fav.Name},
		{"origin", fav.Origin},
		{"destination", fav.Destination},
		{"distance_text", fav.DistanceText},
		{"time_text", fav.TimeText},
	}

	missing := make([]string, 0)
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.field)
		}
	}
	if len(missing) > 0 {
		return domain.FavoriteRoute{}, &domain.ValidationError{Missing: missing}
	}

	fav.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	return fav, nil
}
