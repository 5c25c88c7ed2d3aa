package handlers

import (
	"courier-route-service/internal/api/dto"
	"courier-route-service/internal/domain"
	"courier-route-service/internal/platform/metrics"
	"courier-route-service/internal/ports"
	"courier-route-service/internal/services"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// RouteHandler computes optimized tours for stops supplied in the
// request body. Nothing is read from or written to storage.
type RouteHandler struct {
	Links ports.NavigationLinkBuilder
}

// Optimize orders the supplied stops, estimates the open-path distance
// and splits the tour into navigation-sized segments.
func (h *RouteHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.RouteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if req.Origin == nil && len(req.Stops) > 0 {
		writeError(w, r, http.StatusBadRequest, "origin is required when stops are present")
		return
	}

	svcReq, errMsg := planParams(req.MaxPointsPerRequest, req.SegmentMode, req.RefineBudgetMs, req.MaxMoves)
	if errMsg != "" {
		writeError(w, r, http.StatusBadRequest, errMsg)
		return
	}

	if req.Origin != nil {
		origin, err := domain.NewGeoPoint(req.Origin.Lat, req.Origin.Lon)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("origin: %v", err))
			return
		}
		svcReq.Origin = &origin
	}

	stops := make([]domain.Stop, 0, len(req.Stops))
	for i, s := range req.Stops {
		if s.Lat == nil || s.Lon == nil {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("stop %d: lat and lon are required", i))
			return
		}
		point, err := domain.NewGeoPoint(*s.Lat, *s.Lon)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("stop %d: %v", i, err))
			return
		}
		id := s.ID
		if id == "" {
			id = uuid.NewString()
		}
		stops = append(stops, domain.Stop{ID: id, Name: s.Name, Point: point})
	}

	plan, err := services.PlanRoute(svcReq, stops)
	if err != nil {
		log.Printf("plan route failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	observePlan(plan)
	writeJSON(w, r, http.StatusOK, routeResponse(plan, h.Links))
}

// planParams validates the shared planning knobs and applies defaults.
// A non-empty second return value is a client-facing rejection message.
func planParams(maxPoints int, segmentMode string, refineBudgetMs int, maxMoves int) (services.PlanRouteRequest, string) {
	var req services.PlanRouteRequest

	if maxPoints == 0 {
		maxPoints = 25
	}
	if maxPoints < 2 || maxPoints > 100 {
		return req, "max_points_per_request must be between 2 and 100"
	}

	var mode services.SegmentMode
	switch segmentMode {
	case "", "from_origin":
		mode = services.SegmentFromOrigin
	case "chained":
		mode = services.SegmentChained
	default:
		return req, `segment_mode must be "from_origin" or "chained"`
	}

	if refineBudgetMs < 0 || refineBudgetMs > 60000 {
		return req, "refine_budget_ms must be between 0 and 60000"
	}
	if maxMoves < 0 {
		return req, "max_moves must be non-negative"
	}

	req.MaxPointsPerRequest = maxPoints
	req.Mode = mode
	req.Budget = services.RefineBudget{
		MaxMoves: maxMoves,
		MaxTime:  time.Duration(refineBudgetMs) * time.Millisecond,
	}
	return req, ""
}

func observePlan(plan *domain.RoutePlan) {
	metrics.RoutesPlanned.Inc()
	metrics.TwoOptMoves.Add(float64(plan.TwoOptMoves))
	if !plan.Converged {
		metrics.RefineBudgetExhausted.Inc()
	}
}

func routeResponse(plan *domain.RoutePlan, links ports.NavigationLinkBuilder) dto.RouteResponse {
	res := dto.RouteResponse{
		Origin:      dto.PointPayload{Lat: plan.Origin.Lat, Lon: plan.Origin.Lon},
		Stops:       stopResponses(plan.Stops),
		DistanceKm:  plan.DistanceKm,
		TwoOptMoves: plan.TwoOptMoves,
		Converged:   plan.Converged,
		Segments:    make([]dto.SegmentResponse, 0, len(plan.Segments)),
	}

	for _, seg := range plan.Segments {
		segRes := dto.SegmentResponse{
			Origin: dto.PointPayload{Lat: seg.Origin.Lat, Lon: seg.Origin.Lon},
			Stops:  stopResponses(seg.Stops),
		}
		// A failed link never fails the plan; the ordering is still usable.
		if links != nil {
			link, err := links.BuildLink(seg)
			if err != nil {
				log.Printf("build navigation link failed: %v", err)
			} else {
				segRes.NavigationLink = link
			}
		}
		res.Segments = append(res.Segments, segRes)
	}

	return res
}

func stopResponses(stops []domain.Stop) []dto.RouteStopResponse {
	out := make([]dto.RouteStopResponse, 0, len(stops))
	for _, s := range stops {
		out = append(out, dto.RouteStopResponse{
			ID:      s.ID,
			Name:    s.Name,
			Address: s.Address,
			Point:   dto.PointPayload{Lat: s.Point.Lat, Lon: s.Point.Lon},
		})
	}
	return out
}
