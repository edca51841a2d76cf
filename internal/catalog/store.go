// Package catalog holds the in-memory snapshot of externally supplied
// events and venues. The snapshot is replaced wholesale on refresh and
// never mutated in place.
package catalog

import (
	"sync"

	"github.com/Arkhalisal/kevin-work/internal/domain"
)

// Snapshot is one immutable view of the upstream data set, including the
// display-theme flag the provider publishes alongside it.
type Snapshot struct {
	Events    []domain.Event
	Venues    []domain.Venue
	LightMode bool
}

// Store owns the current snapshot. Readers always see a complete snapshot;
// writers swap the whole reference.
type Store struct {
	mu   sync.RWMutex
	snap Snapshot
}

func NewStore() *Store {
	return &Store{}
}

// Replace swaps in a new snapshot.
func (s *Store) Replace(snap Snapshot) {
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
}

// Snapshot returns the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// EventByID looks an event up in the current snapshot.
func (s *Store) EventByID(id string) (domain.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.snap.Events {
		if e.ID == id {
			return e, true
		}
	}
	return domain.Event{}, false
}

// VenueByID looks a venue up in the current snapshot.
func (s *Store) VenueByID(id string) (domain.Venue, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.snap.Venues {
		if v.ID == id {
			return v, true
		}
	}
	return domain.Venue{}, false
}
