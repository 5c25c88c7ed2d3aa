package services

import (
	"context"
	"courier-route-service/internal/adapters/geocode"
	"courier-route-service/internal/domain"
	"courier-route-service/internal/ports"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type fakeStopRepo struct {
	stops   []domain.Stop
	listErr error
	saveErr error
}

func (r *fakeStopRepo) ListStops(ctx context.Context) ([]domain.Stop, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]domain.Stop, len(r.stops))
	copy(out, r.stops)
	return out, nil
}

func (r *fakeStopRepo) SaveStop(ctx context.Context, stop domain.Stop) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	for i, existing := range r.stops {
		if existing.ID == stop.ID {
			r.stops[i] = stop
			return nil
		}
	}
	r.stops = append(r.stops, stop)
	return nil
}

func (r *fakeStopRepo) DeleteStop(ctx context.Context, id string) error {
	for i, existing := range r.stops {
		if existing.ID == id {
			r.stops = append(r.stops[:i], r.stops[i+1:]...)
			return nil
		}
	}
	return ports.ErrStopNotFound
}

func floatPtr(v float64) *float64 { return &v }

func TestImportStopsSavesCoordinateSeeds(t *testing.T) {
	repo := &fakeStopRepo{}
	seeds := []StopSeed{
		{ID: "s1", Name: "Depot East", Lat: floatPtr(33.45), Lon: floatPtr(-112.07)},
		{Name: "Depot West", Lat: floatPtr(33.5), Lon: floatPtr(-112.2)},
	}

	imported, skipped, err := ImportStops(context.Background(), seeds, repo, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if imported != 2 || skipped != 0 {
		t.Fatalf("imported=%d skipped=%d, want 2 and 0", imported, skipped)
	}

	if repo.stops[0].ID != "s1" {
		t.Fatalf("expected seed ID to be kept, got %q", repo.stops[0].ID)
	}
	if repo.stops[1].ID == "" {
		t.Fatalf("expected a minted ID for the unnamed seed")
	}
}

func TestImportStopsGeocodesAddressOnlySeeds(t *testing.T) {
	repo := &fakeStopRepo{}
	geocoder := geocode.NewMockGeocoder(map[string]domain.GeoPoint{
		"1 E Washington St, Phoenix": {Lat: 33.448, Lon: -112.073},
	})

	seeds := []StopSeed{
		{Name: "City Hall", Address: "1 E Washington St, Phoenix"},
	}

	imported, skipped, err := ImportStops(context.Background(), seeds, repo, geocoder)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if imported != 1 || skipped != 0 {
		t.Fatalf("imported=%d skipped=%d, want 1 and 0", imported, skipped)
	}
	if got := repo.stops[0].Point.Lat; got != 33.448 {
		t.Fatalf("geocoded latitude = %v, want 33.448", got)
	}
}

func TestImportStopsSkipsAddressesWithoutGeocoder(t *testing.T) {
	repo := &fakeStopRepo{}
	seeds := []StopSeed{
		{Name: "Coords", Lat: floatPtr(33.45), Lon: floatPtr(-112.07)},
		{Name: "Address only", Address: "somewhere"},
	}

	imported, skipped, err := ImportStops(context.Background(), seeds, repo, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if imported != 1 || skipped != 1 {
		t.Fatalf("imported=%d skipped=%d, want 1 and 1", imported, skipped)
	}
}

func TestImportStopsRejectsUnresolvableAddress(t *testing.T) {
	repo := &fakeStopRepo{}
	geocoder := geocode.NewMockGeocoder(nil)

	seeds := []StopSeed{{Name: "Nowhere", Address: "no such place"}}

	if _, _, err := ImportStops(context.Background(), seeds, repo, geocoder); !errors.Is(err, ports.ErrAddressNotFound) {
		t.Fatalf("expected ErrAddressNotFound, got %v", err)
	}
}

func TestImportStopsRejectsInvalidCoordinates(t *testing.T) {
	repo := &fakeStopRepo{}
	seeds := []StopSeed{{Name: "Broken", Lat: floatPtr(91), Lon: floatPtr(0)}}

	if _, _, err := ImportStops(context.Background(), seeds, repo, nil); !errors.Is(err, domain.ErrInvalidCoordinate) {
		t.Fatalf("expected ErrInvalidCoordinate, got %v", err)
	}
	if len(repo.stops) != 0 {
		t.Fatalf("invalid seed was saved")
	}
}

func TestReadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stops.json")
	payload := `[
		{"stop_id": "s1", "name": "Depot", "lat": 33.45, "lon": -112.07},
		{"name": "City Hall", "address": "1 E Washington St, Phoenix"}
	]`
	if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
		t.Fatalf("write seed file: %v", err)
	}

	seeds, err := ReadSeedFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seeds) != 2 {
		t.Fatalf("expected 2 seeds, got %d", len(seeds))
	}
	if seeds[0].Lat == nil || *seeds[0].Lat != 33.45 {
		t.Fatalf("first seed latitude not parsed: %+v", seeds[0])
	}
	if seeds[1].Lat != nil {
		t.Fatalf("address-only seed should have nil coordinates")
	}
}
