package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"trip-route-service/internal/domain"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	// One connection keeps every query on the same in-memory database.
	db.SetMaxOpenConns(1)

	require.NoError(t, InitSchema(db))
	// Schema init is idempotent.
	require.NoError(t, InitSchema(db))

	return db
}

func sampleFavorite() domain.FavoriteRoute {
	return domain.FavoriteRoute{
		Name:         "commute",
		Origin:       "Manila",
		Destination:  "Batangas City",
		Vehicle:      "car",
		Unit:         "km",
		DistanceText: "50.00 km",
		TimeText:     "1h 0m 0s",
	}
}

func TestFavoritesSaveListDelete(t *testing.T) {
	repo := NewSqliteFavoritesRepository(newTestDB(t))
	ctx := context.Background()

	first, err := repo.Save(ctx, sampleFavorite())
	require.NoError(t, err)
	assert.Greater(t, first, int64(0))

	weekend := sampleFavorite()
	weekend.Name = "weekend trip"
	second, err := repo.Save(ctx, weekend)
	require.NoError(t, err)
	assert.Greater(t, second, first)

	favorites, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, favorites, 2)

	// Newest first.
	assert.Equal(t, second, favorites[0].ID)
	assert.Equal(t, "weekend trip", favorites[0].Name)
	assert.Equal(t, first, favorites[1].ID)

	created, parseErr := time.Parse(time.RFC3339, favorites[0].CreatedAt)
	require.NoError(t, parseErr)
	assert.WithinDuration(t, time.Now().UTC(), created, time.Minute)

	require.NoError(t, repo.Delete(ctx, first))

	favorites, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, second, favorites[0].ID)

	// Deleting an already-deleted id reports not found.
	err = repo.Delete(ctx, first)
	assert.ErrorIs(t, err, domain.ErrFavoriteNotFound)
}

func TestFavoritesDuplicatesAllowed(t *testing.T) {
	repo := NewSqliteFavoritesRepository(newTestDB(t))
	ctx := context.Background()

	first, err := repo.Save(ctx, sampleFavorite())
	require.NoError(t, err)
	second, err := repo.Save(ctx, sampleFavorite())
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestFavoritesSaveValidation(t *testing.T) {
	repo := NewSqliteFavoritesRepository(newTestDB(t))
	ctx := context.Background()

	fav := sampleFavorite()
	fav.Name = "   "
	fav.TimeText = ""

	_, err := repo.Save(ctx, fav)

	var validation *domain.ValidationError
	require.True(t, errors.As(err, &validation))
	assert.Equal(t, []string{"name", "time_text"}, validation.Missing)

	favorites, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestFavoritesSaveDefaultsVehicleAndUnit(t *testing.T) {
	repo := NewSqliteFavoritesRepository(newTestDB(t))
	ctx := context.Background()

	fav := sampleFavorite()
	fav.Vehicle = ""
	fav.Unit = "  "

	_, err := repo.Save(ctx, fav)
	require.NoError(t, err)

	favorites, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "car", favorites[0].Vehicle)
	assert.Equal(t, "km", favorites[0].Unit)
}

func TestHistoryTopRoutesAndVehicleUsage(t *testing.T) {
	repo := NewSqliteHistoryRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, "Manila", "Batangas City", "car"))
	require.NoError(t, repo.Append(ctx, "Manila", "Batangas City", "car"))
	require.NoError(t, repo.Append(ctx, "Manila", "Luisiana, Laguna", "bike"))

	top, err := repo.TopRoutes(ctx, 5)
	require.NoError(t, err)
	require.Len(t, top, 2)

	assert.Equal(t, "Manila", top[0].Origin)
	assert.Equal(t, "Batangas City", top[0].Destination)
	assert.Equal(t, 2, top[0].Count)
	assert.Equal(t, 1, top[1].Count)

	usage, err := repo.VehicleUsage(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"car": 2, "bike": 1}, usage)
}

func TestHistoryTopRoutesLimit(t *testing.T) {
	repo := NewSqliteHistoryRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, "A", "B", "car"))
	require.NoError(t, repo.Append(ctx, "C", "D", "car"))
	require.NoError(t, repo.Append(ctx, "E", "F", "car"))

	top, err := repo.TopRoutes(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, top, 2)

	// Non-positive limits fall back to the default of five.
	top, err = repo.TopRoutes(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, top, 3)
}
