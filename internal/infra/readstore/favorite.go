package readstore

import (
	"context"
	"log/slog"

	"nagoyameshi/internal/infra"
	"nagoyameshi/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

const favoriteViewSelect = `
SELECT f.id, f.restaurant_id, r.name, r.image_name, r.description, f.created_at
FROM favorites f
JOIN restaurants r ON r.id = f.restaurant_id`

type FavoriteReadStore struct {
	db     infra.DBTX
	logger *slog.Logger
}

func NewFavoriteReadStore(db infra.DBTX, logger *slog.Logger) *FavoriteReadStore {
	return &FavoriteReadStore{
		db:     db,
		logger: logger,
	}
}

func (s *FavoriteReadStore) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*queries.FavoriteView, int64, error) {
	var total int64
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM favorites WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, infra.Classify(s.logger, "failed to count favorites", err)
	}

	rows, err := s.db.Query(ctx, favoriteViewSelect+`
WHERE f.user_id = $1
ORDER BY f.created_at DESC, f.id DESC
LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, 0, infra.Classify(s.logger, "failed to list favorites", err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[queries.FavoriteView])
	if err != nil {
		return nil, 0, infra.Classify(s.logger, "failed to scan favorites", err)
	}
	return items, total, nil
}

func (s *FavoriteReadStore) FindFor(ctx context.Context, userID, restaurantID int64) (*queries.FavoriteView, error) {
	rows, err := s.db.Query(ctx, favoriteViewSelect+` WHERE f.user_id = $1 AND f.restaurant_id = $2`, userID, restaurantID)
	if err != nil {
		return nil, infra.Classify(s.logger, "failed to get favorite", err)
	}
	v, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByPos[queries.FavoriteView])
	if err != nil {
		return nil, infra.Classify(s.logger, "failed to get favorite", err)
	}
	return v, nil
}
