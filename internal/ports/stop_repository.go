package ports

import (
	"context"
	"courier-route-service/internal/domain"
	"errors"
)

// Returned when a stop ID does not exist in the repository.
var ErrStopNotFound = errors.New("stop not found")

// Port: a boundary for persisting delivery stops.
type StopRepository interface {
	// Retrieve all stops in insertion order.
	ListStops(ctx context.Context) ([]domain.Stop, error)
	// Insert a stop, or update it when the ID already exists.
	SaveStop(ctx context.Context, stop domain.Stop) error
	// Remove a stop by ID, or ErrStopNotFound.
	DeleteStop(ctx context.Context, id string) error
}
