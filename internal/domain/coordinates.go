package domain

import "fmt"

// Immutable geographic coordinates (latitude, longitude).
type Coordinates struct {
	Lat float64
	Lon float64
}

// PointParam renders the coordinates as "lat,lng" for routing API query parameters.
func (c Coordinates) PointParam() string {
	return fmt.Sprintf("%v,%v", c.Lat, c.Lon)
}
