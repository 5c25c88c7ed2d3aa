package dto

// PointPayload is a latitude/longitude pair on the wire.
type PointPayload struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type RouteStopRequest struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Lat  *float64 `json:"lat"`
	Lon  *float64 `json:"lon"`
}

type RouteRequest struct {
	Origin              *PointPayload      `json:"origin"`
	Stops               []RouteStopRequest `json:"stops"`
	MaxPointsPerRequest int                `json:"max_points_per_request"`
	SegmentMode         string             `json:"segment_mode"`
	RefineBudgetMs      int                `json:"refine_budget_ms"`
	MaxMoves            int                `json:"max_moves"`
}

type RouteStopResponse struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Address string       `json:"address"`
	Point   PointPayload `json:"point"`
}

type SegmentResponse struct {
	Origin         PointPayload        `json:"origin"`
	Stops          []RouteStopResponse `json:"stops"`
	NavigationLink string              `json:"navigation_link"`
}

type RouteResponse struct {
	Origin      PointPayload        `json:"origin"`
	Stops       []RouteStopResponse `json:"stops"`
	DistanceKm  float64             `json:"distance_km"`
	TwoOptMoves int                 `json:"two_opt_moves"`
	Converged   bool                `json:"converged"`
	Segments    []SegmentResponse   `json:"segments"`
}
