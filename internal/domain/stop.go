package domain

// Represents a single delivery stop visited by a courier.
// A Stop has an opaque identifier and a resolved geographic position.
// Name and Address are caller-owned labels carried through planning
// unchanged; identity is the ID alone, so two stops with equal
// coordinates remain distinct entities.
type Stop struct {
	ID      string
	Name    string
	Address string
	Point   GeoPoint
}
