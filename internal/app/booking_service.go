package app

import (
	"context"
	"fmt"

	"github.com/Arkhalisal/kevin-work/internal/clock"
	"github.com/Arkhalisal/kevin-work/internal/domain"
	"github.com/google/uuid"
)

type BookingRepository interface {
	CreateBooking(ctx context.Context, booking domain.Booking) error
}

// EventFinder resolves event ids against the current catalog snapshot.
type EventFinder interface {
	EventByID(id string) (domain.Event, bool)
}

type BookingService struct {
	repo   BookingRepository
	events EventFinder
	clock  clock.Clock
}

func NewBookingService(repo BookingRepository, events EventFinder, clk clock.Clock) *BookingService {
	return &BookingService{
		repo:   repo,
		events: events,
		clock:  clk,
	}
}

type BookEventInput struct {
	EventID  string
	Username string
}

// BookEvent records one booking and returns the acknowledgment message
// shown to the user. Repeat bookings each insert a new record; there is
// no deduplication. An empty username is stored as NULL.
func (s *BookingService) BookEvent(ctx context.Context, in BookEventInput) (string, error) {
	if in.EventID == "" {
		return "", domain.ErrIDRequired
	}

	event, ok := s.events.EventByID(in.EventID)
	if !ok {
		return "", domain.ErrEventNotFound
	}

	booking := domain.Booking{
		ID:        uuid.NewString(),
		EventID:   event.ID,
		Username:  optionalUsername(in.Username),
		CreatedAt: s.clock.Now(),
	}
	if err := s.repo.CreateBooking(ctx, booking); err != nil {
		return "", err
	}

	return fmt.Sprintf("Booking confirmed for %s", event.Title), nil
}

func optionalUsername(username string) *string {
	if username == "" {
		return nil
	}
	return &username
}
