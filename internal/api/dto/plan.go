package dto

type PlanRequest struct {
	Origin              *PointPayload `json:"origin"`
	MaxPointsPerRequest int           `json:"max_points_per_request"`
	SegmentMode         string        `json:"segment_mode"`
	RefineBudgetMs      int           `json:"refine_budget_ms"`
	MaxMoves            int           `json:"max_moves"`
}
