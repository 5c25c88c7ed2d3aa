package dto

// CreateStopRequest accepts either explicit coordinates or an address
// to be geocoded server-side.
type CreateStopRequest struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Lat     *float64 `json:"lat"`
	Lon     *float64 `json:"lon"`
}

type StopResponse struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Address string       `json:"address"`
	Point   PointPayload `json:"point"`
}

type ListStopsResponse struct {
	Stops []StopResponse `json:"stops"`
}
