package readstore

import (
	"context"
	"log/slog"

	"nagoyameshi/internal/infra"
	"nagoyameshi/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type ReservationReadStore struct {
	db     infra.DBTX
	logger *slog.Logger
}

func NewReservationReadStore(db infra.DBTX, logger *slog.Logger) *ReservationReadStore {
	return &ReservationReadStore{
		db:     db,
		logger: logger,
	}
}

func (s *ReservationReadStore) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*queries.ReservationView, int64, error) {
	var total int64
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM reservations WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, infra.Classify(s.logger, "failed to count reservations", err)
	}

	rows, err := s.db.Query(ctx, `
SELECT rs.id, rs.restaurant_id, r.name, rs.reserved_at, rs.number_of_people, rs.created_at
FROM reservations rs
JOIN restaurants r ON r.id = rs.restaurant_id
WHERE rs.user_id = $1
ORDER BY rs.reserved_at DESC, rs.id DESC
LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, 0, infra.Classify(s.logger, "failed to list reservations", err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[queries.ReservationView])
	if err != nil {
		return nil, 0, infra.Classify(s.logger, "failed to scan reservations", err)
	}
	return items, total, nil
}

func (s *ReservationReadStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM reservations`).Scan(&n); err != nil {
		return 0, infra.Classify(s.logger, "failed to count reservations", err)
	}
	return n, nil
}
