package domain

// Append-only log record of a routing request, used only for aggregate
// analytics. Entries are never updated or deleted by the application.
type HistoryEntry struct {
	ID          int64
	Origin      string
	Destination string
	Vehicle     string
	Timestamp   string
}

// Aggregated request count for one exact (origin, destination) text pair.
type RouteCount struct {
	Origin      string
	Destination string
	Count       int
}
