package services

import (
	"context"
	"courier-route-service/internal/domain"
	"courier-route-service/internal/ports"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// StopSeed is one entry in a seed file. Lat and Lon are pointers so a
// seed may carry an address only and be geocoded during import.
type StopSeed struct {
	ID      string   `json:"stop_id"`
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Lat     *float64 `json:"lat"`
	Lon     *float64 `json:"lon"`
}

// ReadSeedFile parses a JSON array of stop seeds.
func ReadSeedFile(path string) ([]StopSeed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var seeds []StopSeed
	if err := json.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("read seed file: parse %s: %w", path, err)
	}
	return seeds, nil
}

// Import seeds into the repository. Seeds with coordinates are saved
// directly; address-only seeds are resolved through the geocoder first.
// When no geocoder is configured, address-only seeds are counted as
// skipped rather than failing the whole import.
func ImportStops(ctx context.Context, seeds []StopSeed, repo ports.StopRepository, geocoder ports.Geocoder) (imported, skipped int, err error) {
	var pending []string
	for i, seed := range seeds {
		if seed.Lat != nil && seed.Lon != nil {
			continue
		}
		if seed.Address == "" {
			return 0, 0, fmt.Errorf("import stops: seed %d (%q) has neither coordinates nor an address", i, seed.Name)
		}
		pending = append(pending, seed.Address)
	}

	resolved := make(map[string]domain.GeoPoint)
	if len(pending) > 0 && geocoder != nil {
		// Prefer batched resolution when the geocoder supports it.
		if batch, ok := geocoder.(ports.BatchGeocoder); ok {
			resolved, err = batch.ResolveMany(ctx, pending)
			if err != nil {
				return 0, 0, fmt.Errorf("import stops: resolve addresses: %w", err)
			}
		} else {
			for _, addr := range pending {
				point, rerr := geocoder.Resolve(ctx, addr)
				if rerr != nil {
					return 0, 0, fmt.Errorf("import stops: resolve %q: %w", addr, rerr)
				}
				resolved[addr] = point
			}
		}
	}

	for i, seed := range seeds {
		var point domain.GeoPoint
		switch {
		case seed.Lat != nil && seed.Lon != nil:
			point, err = domain.NewGeoPoint(*seed.Lat, *seed.Lon)
			if err != nil {
				return imported, skipped, fmt.Errorf("import stops: seed %d (%q): %w", i, seed.Name, err)
			}
		case geocoder == nil:
			skipped++
			continue
		default:
			var ok bool
			point, ok = resolved[seed.Address]
			if !ok {
				return imported, skipped, fmt.Errorf("import stops: seed %d (%q): no geocode result for %q", i, seed.Name, seed.Address)
			}
		}

		id := seed.ID
		if id == "" {
			id = uuid.NewString()
		}

		stop := domain.Stop{ID: id, Name: seed.Name, Address: seed.Address, Point: point}
		if err := repo.SaveStop(ctx, stop); err != nil {
			return imported, skipped, fmt.Errorf("import stops: save %q: %w", stop.Name, err)
		}
		imported++
	}

	return imported, skipped, nil
}
