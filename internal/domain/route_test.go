package domain

import "testing"

func TestRouteSegmentDestinationAndWaypoints(t *testing.T) {
	segment := RouteSegment{
		Origin: GeoPoint{Lat: 0, Lon: 0},
		Stops: []Stop{
			{ID: "a", Point: GeoPoint{Lat: 0, Lon: 1}},
			{ID: "b", Point: GeoPoint{Lat: 0, Lon: 2}},
			{ID: "c", Point: GeoPoint{Lat: 0, Lon: 3}},
		},
	}

	if got := segment.Destination().ID; got != "c" {
		t.Fatalf("destination = %q, want c", got)
	}

	wps := segment.Waypoints()
	if len(wps) != 2 {
		t.Fatalf("waypoints = %d, want 2", len(wps))
	}
	if wps[0].ID != "a" || wps[1].ID != "b" {
		t.Fatalf("waypoints = [%q %q], want [a b]", wps[0].ID, wps[1].ID)
	}
}

func TestRouteSegmentEmpty(t *testing.T) {
	var segment RouteSegment

	if got := segment.Destination(); got.ID != "" {
		t.Fatalf("empty segment destination = %+v, want zero stop", got)
	}
	if got := segment.Waypoints(); got != nil {
		t.Fatalf("empty segment waypoints = %v, want nil", got)
	}
}
