//go:generate mockgen -source=favorite.go -destination=../../../tests/mock/commands/favorite_mock.go -package=commandsmock

package commands

import (
	"context"

	"nagoyameshi/internal/domain/access"
	"nagoyameshi/internal/domain/favorite"
	"nagoyameshi/internal/infra"
	"nagoyameshi/internal/pkg/clock"
	"nagoyameshi/internal/pkg/errs"
	"nagoyameshi/internal/usecase/shared"
)

type FavoriteCommands interface {
	// AddFavorite is idempotent and returns the existing favorite id on repeat.
	AddFavorite(ctx context.Context, actor shared.Actor, restaurantID int64) (int64, error)
	RemoveFavorite(ctx context.Context, actor shared.Actor, favoriteID int64) error
}

type favoriteCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewFavoriteCommands(uow shared.UnitOfWork, clk clock.Clock) FavoriteCommands {
	return &favoriteCommandsImpl{uow: uow, clock: clk}
}

func (uc *favoriteCommandsImpl) AddFavorite(ctx context.Context, actor shared.Actor, restaurantID int64) (int64, error) {
	if _, err := uc.uow.CommandReads().RestaurantByID(ctx, restaurantID); err != nil {
		return 0, notFoundAs(err, ErrRestaurantNotFound)
	}

	var id int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Reads().FavoriteFor(ctx, actor.UserID, restaurantID)
		if err == nil {
			id = existing.ID()
			return nil
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return err
		}

		created, err := tx.Favorites().Create(ctx, favorite.NewFavorite(restaurantID, actor.UserID, uc.clock.Now()))
		if err != nil {
			return parentGoneAs(err, ErrRestaurantNotFound)
		}
		id = created
		return nil
	})
	return id, err
}

func (uc *favoriteCommandsImpl) RemoveFavorite(ctx context.Context, actor shared.Actor, favoriteID int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		fav, err := tx.Reads().FavoriteByID(ctx, favoriteID)
		if err != nil {
			return notFoundAs(err, ErrFavoriteNotFound)
		}
		if err := access.EnsureOwner(actor.UserID, fav.UserID()); err != nil {
			return errs.Mark(err, ErrFavoriteNotFound)
		}
		return notFoundAs(tx.Favorites().Delete(ctx, favoriteID), ErrFavoriteNotFound)
	})
}
