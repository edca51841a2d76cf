package app

import (
	"github.com/Arkhalisal/kevin-work/internal/catalog"
	"github.com/Arkhalisal/kevin-work/internal/discovery"
	"github.com/Arkhalisal/kevin-work/internal/domain"
	"github.com/Arkhalisal/kevin-work/internal/geo"
)

// DiscoveryService runs the location filter pipeline over the current
// catalog snapshot. Every call recomputes the result from the raw
// snapshot; there is no cached intermediate state.
type DiscoveryService struct {
	store    *catalog.Store
	pipeline *discovery.Pipeline
}

func NewDiscoveryService(store *catalog.Store, pipeline *discovery.Pipeline) *DiscoveryService {
	return &DiscoveryService{
		store:    store,
		pipeline: pipeline,
	}
}

// DiscoveredVenue is a filtered venue decorated with its distance from
// the home coordinate, computed by the same function the gate used.
type DiscoveredVenue struct {
	domain.Venue
	DistanceKm float64
}

// DiscoverVenues filters the snapshot's venues with the given state.
func (s *DiscoveryService) DiscoverVenues(state domain.FilterState) []DiscoveredVenue {
	snap := s.store.Snapshot()
	matched := s.pipeline.Filter(snap.Venues, state.Clamped())

	home := s.pipeline.Home()
	out := make([]DiscoveredVenue, 0, len(matched))
	for _, v := range matched {
		out = append(out, DiscoveredVenue{
			Venue:      v,
			DistanceKm: geo.Distance(home, geo.Point{Lat: *v.Latitude, Lng: *v.Longitude}),
		})
	}
	return out
}

// Categories returns the category vocabulary for the current snapshot.
func (s *DiscoveryService) Categories() []string {
	return discovery.Categories(s.store.Snapshot().Venues)
}
