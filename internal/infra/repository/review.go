package repository

import (
	"context"
	"log/slog"

	"nagoyameshi/internal/domain/review"
	"nagoyameshi/internal/infra"
)

type ReviewRepository struct {
	db     infra.DBTX
	logger *slog.Logger
}

func NewReviewRepository(db infra.DBTX, logger *slog.Logger) *ReviewRepository {
	return &ReviewRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *review.Review) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
INSERT INTO reviews (restaurant_id, user_id, score, content, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`,
		rev.RestaurantID(), rev.UserID(), rev.Score().Value(), rev.Content().String(), rev.CreatedAt(), rev.UpdatedAt(),
	).Scan(&id)
	if err != nil {
		return 0, infra.Classify(r.logger, "failed to create review", err)
	}
	return id, nil
}

func (r *ReviewRepository) Update(ctx context.Context, rev *review.Review) error {
	tag, err := r.db.Exec(ctx, `UPDATE reviews SET score = $2, content = $3, updated_at = $4 WHERE id = $1`,
		rev.ID(), rev.Score().Value(), rev.Content().String(), rev.UpdatedAt())
	if err != nil {
		return infra.Classify(r.logger, "failed to update review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound(r.logger, "review not found")
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return infra.Classify(r.logger, "failed to delete review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound(r.logger, "review not found")
	}
	return nil
}
