package services

import (
	"courier-route-service/internal/domain"
	"fmt"
)

// SegmentMode selects how split segments are anchored.
type SegmentMode int

const (
	// SegmentFromOrigin anchors every segment at the depot origin.
	SegmentFromOrigin SegmentMode = iota
	// SegmentChained anchors each segment at the previous segment's
	// destination, so the handed-off legs join into one continuous path.
	SegmentChained
)

// Split a tour into contiguous segments sized for a navigation provider
// that accepts at most maxPointsPerRequest points per request. One slot
// in every request is reserved for the segment origin, so a segment
// carries at most maxPointsPerRequest-1 stops. Concatenating the
// segments' stops reproduces the tour exactly.
func SplitForNavigation(origin domain.GeoPoint, tour []domain.Stop, maxPointsPerRequest int, mode SegmentMode) ([]domain.RouteSegment, error) {
	if maxPointsPerRequest < 2 {
		return nil, fmt.Errorf("split for navigation: maxPointsPerRequest must be at least 2, got %d", maxPointsPerRequest)
	}

	chunk := maxPointsPerRequest - 1
	segments := make([]domain.RouteSegment, 0, (len(tour)+chunk-1)/chunk)

	anchor := origin
	for start := 0; start < len(tour); start += chunk {
		end := start + chunk
		if end > len(tour) {
			end = len(tour)
		}

		stops := make([]domain.Stop, end-start)
		copy(stops, tour[start:end])
		segments = append(segments, domain.RouteSegment{Origin: anchor, Stops: stops})

		if mode == SegmentChained {
			anchor = stops[len(stops)-1].Point
		}
	}

	return segments, nil
}
