package api

import (
	"courier-route-service/internal/api/handlers"
	"courier-route-service/internal/domain"
	"courier-route-service/internal/ports"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	repo ports.StopRepository,
	geocoder ports.Geocoder,
	links ports.NavigationLinkBuilder,
	defaultOrigin domain.GeoPoint,
) http.Handler {
	mux := http.NewServeMux()

	stopHandler := &handlers.StopHandler{Repo: repo, Geocoder: geocoder}
	routeHandler := &handlers.RouteHandler{Links: links}
	planHandler := &handlers.PlanHandler{
		Repo:          repo,
		Links:         links,
		DefaultOrigin: defaultOrigin,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/stops", stopHandler.Collection)
	mux.HandleFunc("/stops/", stopHandler.Item)
	mux.HandleFunc("/routes", routeHandler.Optimize)
	mux.HandleFunc("/plans", planHandler.Plan)

	return loggingMiddleware(metricsMiddleware(mux))
}
