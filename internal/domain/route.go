package domain

// Represents one bounded-size slice of a tour, sized for a single external
// navigation request. A RouteSegment carries its own anchor point plus a
// contiguous run of stops; the final stop is the request destination and
// the stops before it are waypoints.
type RouteSegment struct {
	Origin GeoPoint
	Stops  []Stop
}

// Destination returns the final stop of the segment.
func (s RouteSegment) Destination() Stop {
	if len(s.Stops) == 0 {
		return Stop{}
	}
	return s.Stops[len(s.Stops)-1]
}

// Waypoints returns the stops before the destination.
func (s RouteSegment) Waypoints() []Stop {
	if len(s.Stops) == 0 {
		return nil
	}
	return s.Stops[:len(s.Stops)-1]
}

// Represents the planned visiting order for a single courier run.
// A RoutePlan is the output of the optimizer and describes the ordered
// sequence of stops from a fixed origin, along with aggregate distance and
// refinement metrics. It is immutable planning data and contains no side
// effects.
type RoutePlan struct {
	Origin      GeoPoint
	Stops       []Stop
	DistanceKm  float64
	TwoOptMoves int
	Converged   bool
	Segments    []RouteSegment
}
