package domain

// Venue represents a place from the externally supplied catalog. Names may
// carry a single bracketed category tag, e.g. "Grand Cinema (IMAX)".
type Venue struct {
	ID        string
	Name      string
	Count     int
	Latitude  *float64
	Longitude *float64
}

// HasCoordinates reports whether both latitude and longitude are set. A
// venue missing either is never eligible for display.
func (v Venue) HasCoordinates() bool {
	return v.Latitude != nil && v.Longitude != nil
}
