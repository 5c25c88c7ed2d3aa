package domain

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidCoordinate reports a latitude or longitude outside the valid range.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// ErrMissingOrigin reports a planning request that carries stops but no origin.
var ErrMissingOrigin = errors.New("missing origin")

// Immutable geographic position in decimal degrees.
type GeoPoint struct {
	Lat float64
	Lon float64
}

// NewGeoPoint validates latitude and longitude before constructing a point.
// Out-of-range values are rejected, never clamped.
func NewGeoPoint(lat, lon float64) (GeoPoint, error) {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return GeoPoint{}, fmt.Errorf("%w: latitude %v outside [-90, 90]", ErrInvalidCoordinate, lat)
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return GeoPoint{}, fmt.Errorf("%w: longitude %v outside [-180, 180]", ErrInvalidCoordinate, lon)
	}

	return GeoPoint{Lat: lat, Lon: lon}, nil
}
