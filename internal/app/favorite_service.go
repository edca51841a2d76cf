package app

import (
	"context"

	"github.com/Arkhalisal/kevin-work/internal/clock"
	"github.com/Arkhalisal/kevin-work/internal/domain"
	"github.com/google/uuid"
)

type FavoriteRepository interface {
	CreateFavorite(ctx context.Context, favorite domain.Favorite) error
}

// VenueFinder resolves venue ids against the current catalog snapshot.
type VenueFinder interface {
	VenueByID(id string) (domain.Venue, bool)
}

type FavoriteService struct {
	repo   FavoriteRepository
	venues VenueFinder
	clock  clock.Clock
}

func NewFavoriteService(repo FavoriteRepository, venues VenueFinder, clk clock.Clock) *FavoriteService {
	return &FavoriteService{
		repo:   repo,
		venues: venues,
		clock:  clk,
	}
}

type FavoriteVenueInput struct {
	VenueID  string
	Username string
}

// FavoriteVenue records one favorite and returns the acknowledgment
// message. Like bookings, repeats insert new records and a missing
// username is stored as NULL.
func (s *FavoriteService) FavoriteVenue(ctx context.Context, in FavoriteVenueInput) (string, error) {
	if in.VenueID == "" {
		return "", domain.ErrIDRequired
	}

	venue, ok := s.venues.VenueByID(in.VenueID)
	if !ok {
		return "", domain.ErrVenueNotFound
	}

	favorite := domain.Favorite{
		ID:        uuid.NewString(),
		VenueID:   venue.ID,
		Username:  optionalUsername(in.Username),
		CreatedAt: s.clock.Now(),
	}
	if err := s.repo.CreateFavorite(ctx, favorite); err != nil {
		return "", err
	}

	return "Added to favorites", nil
}
