//go:generate mockgen -source=user.go -destination=../../../tests/mock/commands/user_mock.go -package=commandsmock

package commands

import (
	"context"

	"nagoyameshi/internal/domain/user"
	"nagoyameshi/internal/pkg/clock"
	"nagoyameshi/internal/usecase/shared"
)

type UserCommands interface {
	UpdateProfile(ctx context.Context, actor shared.Actor, in user.ProfileInput) error
}

type userCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewUserCommands(uow shared.UnitOfWork, clk clock.Clock) UserCommands {
	return &userCommandsImpl{uow: uow, clock: clk}
}

func (uc *userCommandsImpl) UpdateProfile(ctx context.Context, actor shared.Actor, in user.ProfileInput) error {
	profile, err := user.NewProfile(in)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Reads().UserByID(ctx, actor.UserID)
		if err != nil {
			return notFoundAs(err, ErrUserNotFound)
		}

		if profile.Email.Value() != u.Email().Value() {
			taken, err := tx.Reads().EmailTaken(ctx, profile.Email.Value(), u.ID())
			if err != nil {
				return err
			}
			if taken {
				return ErrEmailTaken
			}
		}

		u.UpdateProfile(profile, uc.clock.Now())
		return duplicateAs(tx.Users().UpdateProfile(ctx, u), ErrEmailTaken)
	})
}
