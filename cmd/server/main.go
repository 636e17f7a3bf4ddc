package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"trip-route-service/internal/adapters/geo"
	"trip-route-service/internal/adapters/repositories"
	"trip-route-service/internal/api"
	"trip-route-service/internal/config"
	"trip-route-service/internal/platform/db"
	"trip-route-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (SQLite or Postgres, GraphHopper) behind ports
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	country := config.Get("GEOCODE_COUNTRY", "PH")

	apiKey := os.Getenv("GRAPHHOPPER_API_KEY")
	if strings.TrimSpace(apiKey) == "" {
		log.Fatal("GRAPHHOPPER_API_KEY is required")
	}

	store, favorites, history, err := openStores()
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	client, err := geo.NewGraphHopperClient(apiKey, country)
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(client, client, favorites, history)

	// WriteTimeout leaves headroom for the routing call's 40s bounded wait.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openStores selects the store flavor: Postgres when DATABASE_URL is set,
// otherwise the embedded SQLite database. The schema is created idempotently
// on every startup.
func openStores() (*sql.DB, ports.FavoritesRepository, ports.HistoryRepository, error) {
	databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))

	if databaseURL != "" {
		store, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := repositories.InitSchemaPostgres(store); err != nil {
			store.Close()
			return nil, nil, nil, err
		}
		return store,
			repositories.NewSQLFavoritesRepository(store),
			repositories.NewSQLHistoryRepository(store),
			nil
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	store, err := openSqlite(dbPath)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := repositories.InitSchema(store); err != nil {
		store.Close()
		return nil, nil, nil, err
	}
	return store,
		repositories.NewSqliteFavoritesRepository(store),
		repositories.NewSqliteHistoryRepository(store),
		nil
}

func openSqlite(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}
