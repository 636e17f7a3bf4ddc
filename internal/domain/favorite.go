package domain

// A user-named, persisted snapshot of a previously computed trip summary.
// Records are created on explicit save and deleted on explicit delete, never
// mutated in place. Uniqueness is by store-assigned id only; duplicate
// name/origin/destination combinations are allowed.
type FavoriteRoute struct {
	ID           int64
	Name         string
	Origin       string
	Destination  string
	Vehicle      string
	Unit         string
	DistanceText string
	TimeText     string
	CreatedAt    string
}
