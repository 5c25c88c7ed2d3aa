package geocode

import (
	"context"
	"courier-route-service/internal/domain"
	"courier-route-service/internal/ports"
	"fmt"
)

// In-memory Geocoder for tests and offline development.
type MockGeocoder struct {
	points map[string]domain.GeoPoint
}

func NewMockGeocoder(points map[string]domain.GeoPoint) *MockGeocoder {
	return &MockGeocoder{points: points}
}

func (m *MockGeocoder) Resolve(ctx context.Context, address string) (domain.GeoPoint, error) {
	point, ok := m.points[address]
	if !ok {
		return domain.GeoPoint{}, fmt.Errorf("mock geocoder: %q: %w", address, ports.ErrAddressNotFound)
	}

	return point, nil
}
