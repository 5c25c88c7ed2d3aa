package services

import (
	"courier-route-service/internal/domain"
	"courier-route-service/internal/geo"
	"time"
)

// Gains below this threshold are treated as floating-point noise so the
// scan terminates instead of cycling on equivalent tours.
const improvementEpsKm = 1e-4

// How many candidate pairs are examined between wall-clock checks.
// Calling time.Now on every pair would dominate the scan cost.
const deadlineCheckInterval = 1024

// RefineBudget bounds a single RefineTour call. Zero values mean
// unlimited: MaxMoves 0 applies moves until convergence, MaxTime 0
// never expires.
type RefineBudget struct {
	MaxMoves int
	MaxTime  time.Duration
}

// RefineOutcome reports how a refinement pass ended. Converged is false
// when the budget ran out before a full scan found no improving move;
// the returned tour still holds the best order found so far.
type RefineOutcome struct {
	MovesApplied int
	Converged    bool
}

// Refine a tour with 2-opt moves. The input slice is left unmodified.
//
// Each scan walks every pair of path edges in order and applies the
// first move that shortens the route by more than improvementEpsKm,
// then restarts the scan. The pass converges when a full scan finds no
// such move. The final stop keeps its position: on an open path a
// suffix reversal has no second edge to reconnect.
func RefineTour(origin domain.GeoPoint, tour []domain.Stop, budget RefineBudget) ([]domain.Stop, RefineOutcome) {
	refined := make([]domain.Stop, len(tour))
	copy(refined, tour)

	n := len(refined)
	if n < 2 {
		return refined, RefineOutcome{Converged: true}
	}

	// Path point i: the origin for i == 0, otherwise refined[i-1].
	point := func(i int) domain.GeoPoint {
		if i == 0 {
			return origin
		}
		return refined[i-1].Point
	}

	var deadline time.Time
	if budget.MaxTime > 0 {
		deadline = time.Now().Add(budget.MaxTime)
	}

	moves := 0
	checks := 0

	for {
		improved := false

		for i := 0; i < n-1 && !improved; i++ {
			for k := i + 1; k < n; k++ {
				checks++
				if !deadline.IsZero() && checks%deadlineCheckInterval == 0 && !time.Now().Before(deadline) {
					return refined, RefineOutcome{MovesApplied: moves}
				}

				removed := geo.DistanceKm(point(i), point(i+1)) + geo.DistanceKm(point(k), point(k+1))
				added := geo.DistanceKm(point(i), point(k)) + geo.DistanceKm(point(i+1), point(k+1))
				if added-removed >= -improvementEpsKm {
					continue
				}

				// Swapping edges (i,i+1) and (k,k+1) reverses the stops
				// strictly between them.
				reverseStops(refined[i:k])
				moves++
				improved = true

				if budget.MaxMoves > 0 && moves >= budget.MaxMoves {
					return refined, RefineOutcome{MovesApplied: moves}
				}
				break
			}
		}

		if !improved {
			return refined, RefineOutcome{MovesApplied: moves, Converged: true}
		}
	}
}

func reverseStops(s []domain.Stop) {
	for a, b := 0, len(s)-1; a < b; a, b = a+1, b-1 {
		s[a], s[b] = s[b], s[a]
	}
}
