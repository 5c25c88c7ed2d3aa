package handlers

import (
	"courier-route-service/internal/api/dto"
	"courier-route-service/internal/domain"
	"courier-route-service/internal/ports"
	"courier-route-service/internal/services"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
)

// PlanHandler plans a route over the persisted stop set. The depot
// origin comes from the request body or falls back to the configured
// default.
type PlanHandler struct {
	Repo          ports.StopRepository
	Links         ports.NavigationLinkBuilder
	DefaultOrigin domain.GeoPoint
}

// Plan orchestrates stop retrieval and route computation.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanRequest

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

	svcReq, errMsg := planParams(req.MaxPointsPerRequest, req.SegmentMode, req.RefineBudgetMs, req.MaxMoves)
	if errMsg != "" {
		writeError(w, r, http.StatusBadRequest, errMsg)
		return
	}

	origin := h.DefaultOrigin
	if req.Origin != nil {
		var err error
		origin, err = domain.NewGeoPoint(req.Origin.Lat, req.Origin.Lon)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("origin: %v", err))
			return
		}
	}
	svcReq.Origin = &origin

	plan, err := services.PlanStoredRoute(r.Context(), svcReq, h.Repo)
	if err != nil {
		log.Printf("plan stored route failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	observePlan(plan)
	writeJSON(w, r, http.StatusOK, routeResponse(plan, h.Links))
}
