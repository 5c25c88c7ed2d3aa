package geo

import (
	"courier-route-service/internal/domain"
	"math"
)

// Mean Earth radius in kilometers.
const earthRadiusKm = 6371

// DistanceKm computes the great-circle distance between two points using the
// haversine formula. The result is symmetric, non-negative, zero for
// identical points, and never exceeds half the Earth's circumference.
func DistanceKm(a, b domain.GeoPoint) float64 {
	latA := radians(a.Lat)
	latB := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon - a.Lon)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	h := sinLat*sinLat + math.Cos(latA)*math.Cos(latB)*sinLon*sinLon

	// Rounding can push h just past 1 for near-antipodal points.
	if h > 1 {
		h = 1
	}

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
