package services

import (
	"courier-route-service/internal/domain"
	"testing"
)

func sequentialStops(n int) []domain.Stop {
	stops := make([]domain.Stop, n)
	for i := range stops {
		stops[i] = testStop(string(rune('a'+i)), 0, float64(i+1)/10)
	}
	return stops
}

func TestSplitForNavigationChunksTour(t *testing.T) {
	origin := domain.GeoPoint{Lat: 0, Lon: 0}
	tour := sequentialStops(10)

	// A 9-point request holds the origin plus 8 stops.
	segments, err := SplitForNavigation(origin, tour, 9, SegmentFromOrigin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}
	if len(segments[0].Stops) != 8 || len(segments[1].Stops) != 2 {
		t.Fatalf("segment sizes = %d, %d, want 8, 2", len(segments[0].Stops), len(segments[1].Stops))
	}

	// Concatenation reproduces the tour.
	var rejoined []domain.Stop
	for _, seg := range segments {
		rejoined = append(rejoined, seg.Stops...)
	}
	for i := range tour {
		if rejoined[i].ID != tour[i].ID {
			t.Fatalf("rejoined order = %v, want %v", tourIDs(rejoined), tourIDs(tour))
		}
	}

	for i, seg := range segments {
		if seg.Origin != origin {
			t.Fatalf("segment %d origin = %+v, want depot %+v", i, seg.Origin, origin)
		}
	}
}

func TestSplitForNavigationChainedAnchors(t *testing.T) {
	origin := domain.GeoPoint{Lat: 0, Lon: 0}
	tour := sequentialStops(6)

	segments, err := SplitForNavigation(origin, tour, 4, SegmentChained)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}
	if segments[0].Origin != origin {
		t.Fatalf("first segment origin = %+v, want depot", segments[0].Origin)
	}
	if want := tour[2].Point; segments[1].Origin != want {
		t.Fatalf("second segment origin = %+v, want previous destination %+v", segments[1].Origin, want)
	}
}

func TestSplitForNavigationSingleSegmentFit(t *testing.T) {
	origin := domain.GeoPoint{Lat: 0, Lon: 0}
	tour := sequentialStops(4)

	segments, err := SplitForNavigation(origin, tour, 5, SegmentFromOrigin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segments) != 1 || len(segments[0].Stops) != 4 {
		t.Fatalf("expected one 4-stop segment, got %d segments", len(segments))
	}
}

func TestSplitForNavigationRejectsTinyLimit(t *testing.T) {
	origin := domain.GeoPoint{Lat: 0, Lon: 0}
	tour := sequentialStops(3)

	for _, limit := range []int{1, 0, -5} {
		if _, err := SplitForNavigation(origin, tour, limit, SegmentFromOrigin); err == nil {
			t.Fatalf("expected error for maxPointsPerRequest=%d", limit)
		}
	}
}

func TestSplitForNavigationEmptyTour(t *testing.T) {
	origin := domain.GeoPoint{Lat: 0, Lon: 0}

	segments, err := SplitForNavigation(origin, nil, 9, SegmentFromOrigin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segments) != 0 {
		t.Fatalf("expected no segments, got %d", len(segments))
	}
}
