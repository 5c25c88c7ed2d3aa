package services

import (
	"courier-route-service/internal/domain"
	"testing"
)

func testStop(id string, lat, lon float64) domain.Stop {
	return domain.Stop{ID: id, Name: id, Point: domain.GeoPoint{Lat: lat, Lon: lon}}
}

func tourIDs(tour []domain.Stop) []string {
	ids := make([]string, len(tour))
	for i, s := range tour {
		ids[i] = s.ID
	}
	return ids
}

func TestBuildInitialTourWalksToNearestStop(t *testing.T) {
	origin := domain.GeoPoint{Lat: 0, Lon: 0}
	stops := []domain.Stop{
		testStop("far", 0, 3),
		testStop("near", 0, 1),
		testStop("mid", 0, 2),
	}

	tour := BuildInitialTour(origin, stops)

	want := []string{"near", "mid", "far"}
	got := tourIDs(tour)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tour order = %v, want %v", got, want)
		}
	}
}

func TestBuildInitialTourTieBreaksOnInputOrder(t *testing.T) {
	origin := domain.GeoPoint{Lat: 0, Lon: 0}

	// One degree north and one degree east are the same haversine
	// distance from the origin, so the first input stop must win.
	north := testStop("north", 1, 0)
	east := testStop("east", 0, 1)

	tour := BuildInitialTour(origin, []domain.Stop{east, north})
	if tour[0].ID != "east" {
		t.Fatalf("first stop = %q, want %q", tour[0].ID, "east")
	}

	tour = BuildInitialTour(origin, []domain.Stop{north, east})
	if tour[0].ID != "north" {
		t.Fatalf("first stop = %q, want %q", tour[0].ID, "north")
	}
}

func TestBuildInitialTourDegenerateInputs(t *testing.T) {
	origin := domain.GeoPoint{Lat: 0, Lon: 0}

	empty := BuildInitialTour(origin, nil)
	if len(empty) != 0 {
		t.Fatalf("expected empty tour, got %d stops", len(empty))
	}

	single := BuildInitialTour(origin, []domain.Stop{testStop("only", 1, 1)})
	if len(single) != 1 || single[0].ID != "only" {
		t.Fatalf("single-stop tour = %v", tourIDs(single))
	}
}

func TestBuildInitialTourDoesNotMutateInput(t *testing.T) {
	origin := domain.GeoPoint{Lat: 0, Lon: 0}
	stops := []domain.Stop{
		testStop("far", 0, 3),
		testStop("near", 0, 1),
		testStop("mid", 0, 2),
	}

	BuildInitialTour(origin, stops)

	want := []string{"far", "near", "mid"}
	for i := range want {
		if stops[i].ID != want[i] {
			t.Fatalf("input order changed: %v, want %v", tourIDs(stops), want)
		}
	}
}
