package domain

// A single turn-by-turn step within a route.
type Instruction struct {
	Text           string
	DistanceMeters float64
}

// Represents one candidate path returned by the routing service.
// A RoutePlan is transient planning data: it exists for the duration of a
// single request/response cycle and is never persisted or cached.
type RoutePlan struct {
	DistanceMeters float64
	DurationMillis int64
	Points         []Coordinates
	Instructions   []Instruction
}
