package repository

import (
	"context"
	"log/slog"

	"nagoyameshi/internal/domain/favorite"
	"nagoyameshi/internal/infra"
)

// the no-op update makes RETURNING yield the existing row on conflict
const upsertFavoriteSQL = `
INSERT INTO favorites (restaurant_id, user_id, created_at)
VALUES ($1, $2, $3)
ON CONFLICT (user_id, restaurant_id) DO UPDATE SET user_id = EXCLUDED.user_id
RETURNING id`

type FavoriteRepository struct {
	db     infra.DBTX
	logger *slog.Logger
}

func NewFavoriteRepository(db infra.DBTX, logger *slog.Logger) *FavoriteRepository {
	return &FavoriteRepository{
		db:     db,
		logger: logger,
	}
}

func (r *FavoriteRepository) Create(ctx context.Context, f *favorite.Favorite) (int64, error) {
	var id int64
	if err := r.db.QueryRow(ctx, upsertFavoriteSQL, f.RestaurantID(), f.UserID(), f.CreatedAt()).Scan(&id); err != nil {
		return 0, infra.Classify(r.logger, "failed to create favorite", err)
	}
	return id, nil
}

func (r *FavoriteRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM favorites WHERE id = $1`, id)
	if err != nil {
		return infra.Classify(r.logger, "failed to delete favorite", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound(r.logger, "favorite not found")
	}
	return nil
}
