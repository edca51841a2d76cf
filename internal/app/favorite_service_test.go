package app

import (
	"context"
	"testing"
	"time"

	"github.com/Arkhalisal/kevin-work/internal/clock"
	"github.com/Arkhalisal/kevin-work/internal/domain"
)

type fakeFavoriteRepo struct {
	favorites []domain.Favorite
	err       error
}

func (r *fakeFavoriteRepo) CreateFavorite(_ context.Context, f domain.Favorite) error {
	if r.err != nil {
		return r.err
	}
	r.favorites = append(r.favorites, f)
	return nil
}

type fakeVenueFinder struct {
	venues map[string]domain.Venue
}

func (f fakeVenueFinder) VenueByID(id string) (domain.Venue, bool) {
	v, ok := f.venues[id]
	return v, ok
}

func TestFavoriteService_FavoriteVenue(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)
	finder := fakeVenueFinder{venues: map[string]domain.Venue{
		"v1": {ID: "v1", Name: "City Hall (Orchestra)"},
	}}

	t.Run("records favorite and returns message", func(t *testing.T) {
		repo := &fakeFavoriteRepo{}
		svc := NewFavoriteService(repo, finder, clock.NewFixed(now))

		msg, err := svc.FavoriteVenue(context.Background(), FavoriteVenueInput{VenueID: "v1", Username: "alice"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if msg != "Added to favorites" {
			t.Fatalf("unexpected message: %q", msg)
		}

		if len(repo.favorites) != 1 {
			t.Fatalf("expected 1 favorite, got %d", len(repo.favorites))
		}
		f := repo.favorites[0]
		if f.VenueID != "v1" || f.Username == nil || *f.Username != "alice" {
			t.Fatalf("unexpected favorite: %+v", f)
		}
		if !f.CreatedAt.Equal(now) {
			t.Fatalf("expected created_at %v, got %v", now, f.CreatedAt)
		}
	})

	t.Run("missing username is not an error", func(t *testing.T) {
		repo := &fakeFavoriteRepo{}
		svc := NewFavoriteService(repo, finder, clock.NewFixed(now))

		if _, err := svc.FavoriteVenue(context.Background(), FavoriteVenueInput{VenueID: "v1"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if repo.favorites[0].Username != nil {
			t.Fatalf("expected nil username")
		}
	})

	t.Run("missing id", func(t *testing.T) {
		svc := NewFavoriteService(&fakeFavoriteRepo{}, finder, clock.NewFixed(now))
		if _, err := svc.FavoriteVenue(context.Background(), FavoriteVenueInput{}); err != domain.ErrIDRequired {
			t.Fatalf("expected ErrIDRequired, got %v", err)
		}
	})

	t.Run("unknown venue", func(t *testing.T) {
		svc := NewFavoriteService(&fakeFavoriteRepo{}, finder, clock.NewFixed(now))
		if _, err := svc.FavoriteVenue(context.Background(), FavoriteVenueInput{VenueID: "missing"}); err != domain.ErrVenueNotFound {
			t.Fatalf("expected ErrVenueNotFound, got %v", err)
		}
	})
}
