package ports

import (
	"context"
	"courier-route-service/internal/domain"
)

// Port: a boundary for persisting resolved geocode results between runs.
type GeocodeCache interface {
	// Return cached points for the given addresses; absent keys are misses.
	GetMany(ctx context.Context, addresses []string) (map[string]domain.GeoPoint, error)
	// Store resolved points for later lookups.
	PutMany(ctx context.Context, points map[string]domain.GeoPoint) error
}
