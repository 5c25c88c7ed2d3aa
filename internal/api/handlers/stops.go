package handlers

import (
	"courier-route-service/internal/api/dto"
	"courier-route-service/internal/domain"
	"courier-route-service/internal/ports"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// StopHandler manages the persisted stop set. Stops may be created from
// explicit coordinates or from an address resolved via the geocoder.
type StopHandler struct {
	Repo     ports.StopRepository
	Geocoder ports.Geocoder
}

// Collection serves the /stops endpoint.
func (h *StopHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// Item serves the /stops/{id} endpoint.
func (h *StopHandler) Item(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.Header().Set("Allow", http.MethodDelete)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/stops/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, r, http.StatusNotFound, "stop not found")
		return
	}

	if err := h.Repo.DeleteStop(r.Context(), id); err != nil {
		if errors.Is(err, ports.ErrStopNotFound) {
			writeError(w, r, http.StatusNotFound, "stop not found")
			return
		}
		log.Printf("delete stop failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *StopHandler) list(w http.ResponseWriter, r *http.Request) {
	stops, err := h.Repo.ListStops(r.Context())
	if err != nil {
		log.Printf("list stops failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListStopsResponse{Stops: make([]dto.StopResponse, 0, len(stops))}
	for _, s := range stops {
		res.Stops = append(res.Stops, dto.StopResponse{
			ID:      s.ID,
			Name:    s.Name,
			Address: s.Address,
			Point:   dto.PointPayload{Lat: s.Point.Lat, Lon: s.Point.Lon},
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *StopHandler) create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateStopRequest

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

	name := strings.TrimSpace(req.Name)
	if name == "" {
		writeError(w, r, http.StatusBadRequest, "name is required")
		return
	}

	var point domain.GeoPoint
	switch {
	case req.Lat != nil && req.Lon != nil:
		var err error
		point, err = domain.NewGeoPoint(*req.Lat, *req.Lon)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
	case req.Lat != nil || req.Lon != nil:
		writeError(w, r, http.StatusBadRequest, "lat and lon must be provided together")
		return
	case strings.TrimSpace(req.Address) == "":
		writeError(w, r, http.StatusBadRequest, "either lat/lon or address is required")
		return
	default:
		if h.Geocoder == nil {
			writeError(w, r, http.StatusServiceUnavailable, "address geocoding is not configured")
			return
		}

		var err error
		point, err = h.Geocoder.Resolve(r.Context(), req.Address)
		if err != nil {
			if errors.Is(err, ports.ErrAddressNotFound) {
				writeError(w, r, http.StatusUnprocessableEntity, fmt.Sprintf("address %q could not be resolved", req.Address))
				return
			}
			log.Printf("geocode address failed: %v", err)
			writeError(w, r, http.StatusBadGateway, "geocoding service unavailable")
			return
		}
	}

	id := strings.TrimSpace(req.ID)
	if id == "" {
		id = uuid.NewString()
	}

	stop := domain.Stop{ID: id, Name: name, Address: strings.TrimSpace(req.Address), Point: point}
	if err := h.Repo.SaveStop(r.Context(), stop); err != nil {
		log.Printf("save stop failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.StopResponse{
		ID:      stop.ID,
		Name:    stop.Name,
		Address: stop.Address,
		Point:   dto.PointPayload{Lat: stop.Point.Lat, Lon: stop.Point.Lon},
	})
}
