package main

import (
	"context"
	"courier-route-service/internal/adapters/cache"
	"courier-route-service/internal/adapters/geocode"
	"courier-route-service/internal/adapters/navigation"
	"courier-route-service/internal/adapters/repositories"
	"courier-route-service/internal/api"
	"courier-route-service/internal/config"
	"courier-route-service/internal/domain"
	"courier-route-service/internal/platform/db"
	"courier-route-service/internal/ports"
	"courier-route-service/internal/services"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQLite/Postgres, Redis, ORS) behind ports
// and starts the HTTP server. Only the depot origin and the listen port
// matter for planning; everything else degrades to a local single-binary
// setup when unset.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")

	depot, err := domain.NewGeoPoint(
		config.GetFloat("DEPOT_LAT", 33.448376),
		config.GetFloat("DEPOT_LON", -112.074036),
	)
	if err != nil {
		log.Fatalf("invalid depot configuration: %v", err)
	}

	store, err := openStore()
	if err != nil {
		log.Fatal(err)
	}
	defer store.db.Close()

	geocodeCache := store.geocodeCache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		ttl := time.Duration(config.GetInt("GEOCODE_CACHE_TTL_HOURS", 720)) * time.Hour
		if redisCache := openRedisCache(addr, ttl); redisCache != nil {
			geocodeCache = redisCache
		}
	}

	// Geocoding is optional: without a key, address-only stop creation
	// returns a clear client error while coordinate flows keep working.
	var geocoder ports.Geocoder
	if key := strings.TrimSpace(os.Getenv("ORS_API_KEY")); key != "" {
		ors, err := geocode.NewORSGeocoder(key, geocodeCache)
		if err != nil {
			log.Fatal(err)
		}
		geocoder = ors
	} else {
		log.Println("ORS_API_KEY not set; address geocoding disabled")
	}

	// Optional one-shot seeding for local runs; cmd/dbtool does the same
	// against either backend.
	if seedPath := os.Getenv("SEED_PATH"); seedPath != "" {
		if err := seedStops(store.repo, geocoder, seedPath); err != nil {
			log.Fatal(err)
		}
	}

	router := api.NewRouter(store.repo, geocoder, navigation.NewGoogleMapsLinkBuilder(), depot)

	log.Printf("Server listening addr=:%s store=%s", port, store.kind)
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

type store struct {
	db           *sql.DB
	repo         ports.StopRepository
	geocodeCache ports.GeocodeCache
	kind         string
}

// openStore selects Postgres when DATABASE_URL is set and the local
// SQLite file otherwise, then initializes the schema.
func openStore() (*store, error) {
	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		conn, err := db.OpenPostgres(databaseURL)
		if err != nil {
			return nil, err
		}
		if err := repositories.InitPostgresSchema(conn); err != nil {
			conn.Close()
			return nil, fmt.Errorf("init postgres schema: %w", err)
		}
		return &store{
			db:           conn,
			repo:         repositories.NewPostgresStopRepository(conn),
			geocodeCache: cache.NewPostgresGeocodeCache(conn),
			kind:         "postgres",
		}, nil
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	conn, err := db.OpenSqlite(dbPath)
	if err != nil {
		return nil, err
	}
	if err := repositories.InitSqliteSchema(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("init sqlite schema: %w", err)
	}
	return &store{
		db:           conn,
		repo:         repositories.NewSqliteStopRepository(conn),
		geocodeCache: cache.NewSqliteGeocodeCache(conn),
		kind:         "sqlite",
	}, nil
}

// openRedisCache connects to Redis for the geocode cache. Failures are
// logged and the SQL-backed cache stays in place.
func openRedisCache(addr string, ttl time.Duration) ports.GeocodeCache {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable addr=%s err=%v (using sql geocode cache)", addr, err)
		client.Close()
		return nil
	}

	log.Printf("geocode cache backend=redis addr=%s", addr)
	return cache.NewRedisGeocodeCache(client, ttl)
}

func seedStops(repo ports.StopRepository, geocoder ports.Geocoder, seedPath string) error {
	seeds, err := services.ReadSeedFile(seedPath)
	if err != nil {
		return fmt.Errorf("seed stops: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	imported, skipped, err := services.ImportStops(ctx, seeds, repo, geocoder)
	if err != nil {
		return fmt.Errorf("seed stops: %w", err)
	}

	log.Printf("seeded stops imported=%d skipped=%d path=%s", imported, skipped, seedPath)
	return nil
}
