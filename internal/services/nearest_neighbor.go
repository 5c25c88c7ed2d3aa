package services

import (
	"courier-route-service/internal/domain"
	"courier-route-service/internal/geo"
)

// Build an initial visiting order using a greedy nearest-neighbor walk.
//
// The algorithm minimizes immediate travel distance at each step. It
// does not attempt global optimization; RefineTour improves the result
// afterwards. The design prioritizes determinism and simplicity over
// optimality.
func BuildInitialTour(origin domain.GeoPoint, stops []domain.Stop) []domain.Stop {
	if len(stops) == 0 {
		return []domain.Stop{}
	}

	remaining := make([]domain.Stop, len(stops))
	copy(remaining, stops)

	tour := make([]domain.Stop, 0, len(stops))
	current := origin

	for len(remaining) > 0 {
		best := 0
		bestDistance := geo.DistanceKm(current, remaining[0].Point)

		// Select the next stop by minimum haversine distance (greedy step.)
		for i := 1; i < len(remaining); i++ {
			d := geo.DistanceKm(current, remaining[i].Point)
			// Strict inequality keeps the earliest input stop when distances
			// are equal, so repeated runs produce identical tours.
			if d < bestDistance {
				best = i
				bestDistance = d
			}
		}

		tour = append(tour, remaining[best])
		current = remaining[best].Point
		remaining = append(remaining[:best], remaining[best+1:]...)
	}

	return tour
}
