package domain

import "time"

// Booking records one booking request for an event. Username is nil when
// the client had no stored identity; that is not an error.
type Booking struct {
	ID        string
	EventID   string
	Username  *string
	CreatedAt time.Time
}

// Favorite records one favoriting request for a venue.
type Favorite struct {
	ID        string
	VenueID   string
	Username  *string
	CreatedAt time.Time
}
