package main

import (
	"context"
	"courier-route-service/internal/adapters/cache"
	"courier-route-service/internal/adapters/geocode"
	"courier-route-service/internal/adapters/repositories"
	"courier-route-service/internal/config"
	"courier-route-service/internal/platform/db"
	"courier-route-service/internal/ports"
	"courier-route-service/internal/services"
	"database/sql"
	"log"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// dbtool initializes the schema and seeds stops without starting the
// server. It targets Postgres when DATABASE_URL is set, the local
// SQLite file otherwise.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	conn, repo, geocodeCache, err := openStore()
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	// Address-only seed rows need a geocoder; with no key they are
	// skipped and reported.
	var geocoder ports.Geocoder
	if key := strings.TrimSpace(os.Getenv("ORS_API_KEY")); key != "" {
		ors, err := geocode.NewORSGeocoder(key, geocodeCache)
		if err != nil {
			log.Fatal(err)
		}
		geocoder = ors
	} else {
		log.Println("ORS_API_KEY not set; address-only seed rows will be skipped")
	}

	seedPath := config.Get("SEED_PATH", "data/seeds/stops.json")
	if err := seed(repo, geocoder, seedPath); err != nil {
		log.Fatal(err)
	}
}

func openStore() (*sql.DB, ports.StopRepository, ports.GeocodeCache, error) {
	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		log.Println("Initializing postgres schema...")
		conn, err := db.OpenPostgres(databaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := repositories.InitPostgresSchema(conn); err != nil {
			conn.Close()
			return nil, nil, nil, err
		}
		log.Println("Schema ready.")
		return conn, repositories.NewPostgresStopRepository(conn), cache.NewPostgresGeocodeCache(conn), nil
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	log.Printf("Initializing sqlite schema path=%s", dbPath)
	conn, err := db.OpenSqlite(dbPath)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := repositories.InitSqliteSchema(conn); err != nil {
		conn.Close()
		return nil, nil, nil, err
	}
	log.Println("Schema ready.")
	return conn, repositories.NewSqliteStopRepository(conn), cache.NewSqliteGeocodeCache(conn), nil
}

func seed(repo ports.StopRepository, geocoder ports.Geocoder, seedPath string) error {
	log.Printf("Seeding stops path=%s", seedPath)
	seeds, err := services.ReadSeedFile(seedPath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	imported, skipped, err := services.ImportStops(ctx, seeds, repo, geocoder)
	if err != nil {
		return err
	}

	log.Printf("Seeding complete imported=%d skipped=%d", imported, skipped)
	return nil
}
