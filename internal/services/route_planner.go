package services

import (
	"courier-route-service/internal/domain"
	"courier-route-service/internal/geo"
)

// Compute a visiting order for the given stops.
//
// A greedy nearest-neighbor pass builds the initial tour and 2-opt
// refinement removes its crossings, bounded by the budget. The result
// is always a permutation of the input stops; the input slice is left
// unmodified.
func ComputeOptimizedTour(origin domain.GeoPoint, stops []domain.Stop, budget RefineBudget) ([]domain.Stop, RefineOutcome) {
	initial := BuildInitialTour(origin, stops)
	return RefineTour(origin, initial, budget)
}

// Sum the haversine legs of the open path origin, tour[0], ...,
// tour[n-1]. The courier does not return to the origin, so there is no
// closing leg. An empty tour estimates to 0.
func EstimateRouteDistanceKm(origin domain.GeoPoint, tour []domain.Stop) float64 {
	total := 0.0
	current := origin
	for _, stop := range tour {
		total += geo.DistanceKm(current, stop.Point)
		current = stop.Point
	}
	return total
}
