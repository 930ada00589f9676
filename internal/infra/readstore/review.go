package readstore

import (
	"context"
	"log/slog"

	"nagoyameshi/internal/infra"
	"nagoyameshi/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

const reviewViewSelect = `
SELECT rv.id, rv.restaurant_id, rv.user_id, u.name, rv.score, rv.content, rv.created_at, rv.updated_at
FROM reviews rv
JOIN users u ON u.id = rv.user_id`

type ReviewReadStore struct {
	db     infra.DBTX
	logger *slog.Logger
}

func NewReviewReadStore(db infra.DBTX, logger *slog.Logger) *ReviewReadStore {
	return &ReviewReadStore{
		db:     db,
		logger: logger,
	}
}

func (s *ReviewReadStore) ListByRestaurant(ctx context.Context, restaurantID int64, limit, offset int) ([]*queries.ReviewView, int64, error) {
	var total int64
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM reviews WHERE restaurant_id = $1`, restaurantID).Scan(&total); err != nil {
		return nil, 0, infra.Classify(s.logger, "failed to count reviews", err)
	}

	rows, err := s.db.Query(ctx, reviewViewSelect+`
WHERE rv.restaurant_id = $1
ORDER BY rv.created_at DESC, rv.id DESC
LIMIT $2 OFFSET $3`, restaurantID, limit, offset)
	if err != nil {
		return nil, 0, infra.Classify(s.logger, "failed to list reviews", err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[queries.ReviewView])
	if err != nil {
		return nil, 0, infra.Classify(s.logger, "failed to scan reviews", err)
	}
	return items, total, nil
}

func (s *ReviewReadStore) Exists(ctx context.Context, userID, restaurantID int64) (bool, error) {
	var ok bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM reviews WHERE user_id = $1 AND restaurant_id = $2)`, userID, restaurantID).Scan(&ok)
	if err != nil {
		return false, infra.Classify(s.logger, "failed to check review existence", err)
	}
	return ok, nil
}

func (s *ReviewReadStore) FindByID(ctx context.Context, id int64) (*queries.ReviewView, error) {
	rows, err := s.db.Query(ctx, reviewViewSelect+` WHERE rv.id = $1`, id)
	if err != nil {
		return nil, infra.Classify(s.logger, "failed to get review", err)
	}
	v, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByPos[queries.ReviewView])
	if err != nil {
		return nil, infra.Classify(s.logger, "failed to get review", err)
	}
	return v, nil
}

func (s *ReviewReadStore) RestaurantExists(ctx context.Context, restaurantID int64) (bool, error) {
	var ok bool
	if err := s.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM restaurants WHERE id = $1)`, restaurantID).Scan(&ok); err != nil {
		return false, infra.Classify(s.logger, "failed to check restaurant existence", err)
	}
	return ok, nil
}
