package ports

import (
	"context"
	"courier-route-service/internal/domain"
	"errors"
)

// Returned when a geocoder finds no match for an address.
var ErrAddressNotFound = errors.New("address not found")

// Contract for resolving a street address to coordinates.
type Geocoder interface {
	// Resolve one address to a point, or ErrAddressNotFound.
	Resolve(ctx context.Context, address string) (domain.GeoPoint, error)
}

// Optional extension of Geocoder that supports batched lookups.
type BatchGeocoder interface {
	Geocoder
	// Resolve many addresses at once, keyed by the address as given.
	ResolveMany(ctx context.Context, addresses []string) (map[string]domain.GeoPoint, error)
}
