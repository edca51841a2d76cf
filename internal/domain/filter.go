package domain

// Distance slider bounds in kilometers.
const (
	DistanceMinKm     = 0.0
	DistanceMaxKm     = 25.0
	DefaultDistanceKm = 4.0
)

// FilterState holds the active inputs of the location browser. The zero
// value means no text or category constraint and a zero-kilometer gate.
type FilterState struct {
	SearchTerm    string
	MaxDistanceKm float64
	Category      string
}

// Clamped returns a copy with MaxDistanceKm forced into the slider range.
func (f FilterState) Clamped() FilterState {
	if f.MaxDistanceKm < DistanceMinKm {
		f.MaxDistanceKm = DistanceMinKm
	}
	if f.MaxDistanceKm > DistanceMaxKm {
		f.MaxDistanceKm = DistanceMaxKm
	}
	return f
}
