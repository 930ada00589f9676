package repository

import (
	"context"
	"log/slog"

	"nagoyameshi/internal/domain/reservation"
	"nagoyameshi/internal/infra"
)

type ReservationRepository struct {
	db     infra.DBTX
	logger *slog.Logger
}

func NewReservationRepository(db infra.DBTX, logger *slog.Logger) *ReservationRepository {
	return &ReservationRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
INSERT INTO reservations (restaurant_id, user_id, reserved_at, number_of_people, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`,
		res.RestaurantID(), res.UserID(), res.ReservedAt(), res.NumberOfPeople(), res.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return 0, infra.Classify(r.logger, "failed to create reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return infra.Classify(r.logger, "failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound(r.logger, "reservation not found")
	}
	return nil
}
