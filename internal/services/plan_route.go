package services

import (
	"context"
	"courier-route-service/internal/domain"
	"courier-route-service/internal/ports"
	"fmt"
)

// PlanRouteRequest carries the tunables for one planning run. Origin is
// a pointer so callers that omit it are rejected instead of being
// anchored at an arbitrary point.
type PlanRouteRequest struct {
	Origin              *domain.GeoPoint
	Budget              RefineBudget
	MaxPointsPerRequest int
	Mode                SegmentMode
}

// Plan a route over the given stops: build and refine a tour, estimate
// the open-path distance and split the result into provider-sized
// segments.
func PlanRoute(req PlanRouteRequest, stops []domain.Stop) (*domain.RoutePlan, error) {
	if req.Origin == nil {
		if len(stops) > 0 {
			return nil, fmt.Errorf("plan route: %d stops given: %w", len(stops), domain.ErrMissingOrigin)
		}
		return &domain.RoutePlan{
			Stops:     []domain.Stop{},
			Segments:  []domain.RouteSegment{},
			Converged: true,
		}, nil
	}
	origin := *req.Origin

	tour, outcome := ComputeOptimizedTour(origin, stops, req.Budget)

	segments, err := SplitForNavigation(origin, tour, req.MaxPointsPerRequest, req.Mode)
	if err != nil {
		return nil, fmt.Errorf("plan route: %w", err)
	}

	return &domain.RoutePlan{
		Origin:      origin,
		Stops:       tour,
		DistanceKm:  EstimateRouteDistanceKm(origin, tour),
		TwoOptMoves: outcome.MovesApplied,
		Converged:   outcome.Converged,
		Segments:    segments,
	}, nil
}

// Plan a route over the persisted stop set.
func PlanStoredRoute(ctx context.Context, req PlanRouteRequest, repo ports.StopRepository) (*domain.RoutePlan, error) {
	stops, err := repo.ListStops(ctx)
	if err != nil {
		return nil, fmt.Errorf("plan stored route: list stops: %w", err)
	}

	plan, err := PlanRoute(req, stops)
	if err != nil {
		return nil, fmt.Errorf("plan stored route: %w", err)
	}
	return plan, nil
}
