package postgres

import (
	"context"
	"fmt"

	"github.com/Arkhalisal/kevin-work/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FavoriteRepository struct {
	pool *pgxpool.Pool
}

func NewFavoriteRepository(pool *pgxpool.Pool) *FavoriteRepository {
	return &FavoriteRepository{pool: pool}
}

func (r *FavoriteRepository) CreateFavorite(ctx context.Context, favorite domain.Favorite) error {
	const stmt = `
INSERT INTO favorites (id, venue_id, username, created_at)
VALUES ($1, $2, $3, $4)`

	_, err := r.pool.Exec(ctx, stmt,
		favorite.ID,
		favorite.VenueID,
		favorite.Username,
		favorite.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create favorite: %w", err)
	}
	return nil
}
