package geo

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	t.Parallel()

	campus := Point{Lat: 22.419843173273115, Lng: 114.20678205390958}

	tests := []struct {
		name      string
		a, b      Point
		wantKm    float64
		tolerance float64
	}{
		{
			name:      "identical points",
			a:         campus,
			b:         campus,
			wantKm:    0,
			tolerance: 0,
		},
		{
			name:      "one degree of latitude",
			a:         Point{Lat: 22, Lng: 114},
			b:         Point{Lat: 23, Lng: 114},
			wantKm:    111.19,
			tolerance: 0.05,
		},
		{
			name:      "campus to venue across the bay",
			a:         campus,
			b:         Point{Lat: 22.42, Lng: 114.30},
			wantKm:    9.6,
			tolerance: 0.2,
		},
		{
			name:      "antipodal-ish long haul",
			a:         Point{Lat: 0, Lng: 0},
			b:         Point{Lat: 0, Lng: 180},
			wantKm:    math.Pi * 6371.0,
			tolerance: 0.5,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Distance(tt.a, tt.b)
			if math.Abs(got-tt.wantKm) > tt.tolerance {
				t.Fatalf("expected ~%.2f km, got %.4f km", tt.wantKm, got)
			}
		})
	}
}

func TestDistance_Symmetric(t *testing.T) {
	t.Parallel()

	a := Point{Lat: 22.4198, Lng: 114.2068}
	b := Point{Lat: 22.2783, Lng: 114.1747}

	if d1, d2 := Distance(a, b), Distance(b, a); d1 != d2 {
		t.Fatalf("expected symmetric distance, got %v and %v", d1, d2)
	}
}
