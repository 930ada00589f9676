//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation_mock.go -package=commandsmock

package commands

import (
	"context"
	"log/slog"
	"time"

	"nagoyameshi/internal/domain/access"
	"nagoyameshi/internal/domain/reservation"
	"nagoyameshi/internal/pkg/clock"
	"nagoyameshi/internal/pkg/errs"
	"nagoyameshi/internal/usecase/shared"
)

type CreateReservationRequest struct {
	RestaurantID   int64
	Date           string
	Time           string
	NumberOfPeople int
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, actor shared.Actor, req CreateReservationRequest) (int64, error)
	CancelReservation(ctx context.Context, actor shared.Actor, reservationID int64) error
}

type reservationUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	loc   *time.Location
}

func NewReservationUseCase(uow shared.UnitOfWork, clk clock.Clock, loc *time.Location) ReservationCommands {
	return &reservationUseCaseImpl{uow: uow, clock: clk, loc: loc}
}

func (uc *reservationUseCaseImpl) CreateReservation(ctx context.Context, actor shared.Actor, req CreateReservationRequest) (int64, error) {
	rest, err := uc.uow.CommandReads().RestaurantByID(ctx, req.RestaurantID)
	if err != nil {
		return 0, notFoundAs(err, ErrRestaurantNotFound)
	}

	res, err := reservation.NewReservation(reservation.Input{
		UserID:         actor.UserID,
		Restaurant:     reservation.RestaurantSpec{ID: rest.ID(), SeatingCapacity: rest.SeatingCapacity()},
		Date:           req.Date,
		Time:           req.Time,
		NumberOfPeople: req.NumberOfPeople,
		Location:       uc.loc,
	}, uc.clock)
	if err != nil {
		return 0, err
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Reservations().Create(ctx, res)
		if err != nil {
			// the restaurant was deleted between the read and the insert
			return parentGoneAs(err, ErrRestaurantNotFound)
		}
		id = created
		return nil
	})
	if err != nil {
		return 0, err
	}

	slog.Info("reservation created", "reservation_id", id, "user_id", actor.UserID, "restaurant_id", req.RestaurantID)
	return id, nil
}

func (uc *reservationUseCaseImpl) CancelReservation(ctx context.Context, actor shared.Actor, reservationID int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReservationByID(ctx, reservationID)
		if err != nil {
			return notFoundAs(err, ErrReservationNotFound)
		}
		if err := access.EnsureOwner(actor.UserID, snap.UserID); err != nil {
			return errs.Mark(err, ErrReservationNotFound)
		}
		return notFoundAs(tx.Reservations().Delete(ctx, reservationID), ErrReservationNotFound)
	})
}
