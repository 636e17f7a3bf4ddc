package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"trip-route-service/internal/adapters/repositories"
	"trip-route-service/internal/config"
	"trip-route-service/internal/platform/db"
	"trip-route-service/internal/ports"
)

// dbtool initializes the store schema and prints the usage analytics:
// the most requested routes and request counts per vehicle profile.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	store, history, err := openHistory()
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	if err := report(context.Background(), history); err != nil {
		log.Fatal(err)
	}
}

func openHistory() (*sql.DB, ports.HistoryRepository, error) {
	databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))

	if databaseURL != "" {
		store, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := repositories.InitSchemaPostgres(store); err != nil {
			store.Close()
			return nil, nil, err
		}
		return store, repositories.NewSQLHistoryRepository(store), nil
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	store, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open sqlite database %q: %w", dbPath, err)
	}
	if err := repositories.InitSchema(store); err != nil {
		store.Close()
		return nil, nil, err
	}
	return store, repositories.NewSqliteHistoryRepository(store), nil
}

func report(ctx context.Context, history ports.HistoryRepository) error {
	topRoutes, err := history.TopRoutes(ctx, 5)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}

	fmt.Println("Top routes:")
	if len(topRoutes) == 0 {
		fmt.Println("  (no history yet)")
	}
	for i, rc := range topRoutes {
		fmt.Printf("  %d. %s -> %s (%d requests)\n", i+1, rc.Origin, rc.Destination, rc.Count)
	}

	usage, err := history.VehicleUsage(ctx)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}

	fmt.Println("Vehicle usage:")
	if len(usage) == 0 {
		fmt.Println("  (no history yet)")
	}
	for vehicle, count := range usage {
		fmt.Printf("  %s: %d\n", vehicle, count)
	}

	return nil
}
