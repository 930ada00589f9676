//go:generate mockgen -source=review.go -destination=../../../tests/mock/commands/review_mock.go -package=commandsmock

package commands

import (
	"context"

	"nagoyameshi/internal/domain/access"
	domreview "nagoyameshi/internal/domain/review"
	"nagoyameshi/internal/pkg/clock"
	"nagoyameshi/internal/pkg/errs"
	"nagoyameshi/internal/usecase/shared"
)

type ReviewRequest struct {
	Score   int
	Content string
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, actor shared.Actor, restaurantID int64, req ReviewRequest) (int64, error)
	UpdateReview(ctx context.Context, actor shared.Actor, reviewID int64, req ReviewRequest) error
	DeleteReview(ctx context.Context, actor shared.Actor, reviewID int64) error
}

type reviewUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewUseCase(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, clock: clk}
}

func (uc *reviewUseCaseImpl) CreateReview(ctx context.Context, actor shared.Actor, restaurantID int64, req ReviewRequest) (int64, error) {
	if _, err := uc.uow.CommandReads().RestaurantByID(ctx, restaurantID); err != nil {
		return 0, notFoundAs(err, ErrRestaurantNotFound)
	}

	rev, err := domreview.NewReview(restaurantID, actor.UserID, req.Score, req.Content, uc.clock.Now())
	if err != nil {
		return 0, err
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, err := tx.Reads().ReviewExists(ctx, actor.UserID, restaurantID)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicateReview
		}
		created, err := tx.Reviews().Create(ctx, rev)
		if err != nil {
			return duplicateAs(err, ErrDuplicateReview)
		}
		id = created
		return nil
	})
	return id, err
}

func (uc *reviewUseCaseImpl) UpdateReview(ctx context.Context, actor shared.Actor, reviewID int64, req ReviewRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rev, err := uc.ownedReview(ctx, tx, actor, reviewID)
		if err != nil {
			return err
		}
		if err := rev.Edit(req.Score, req.Content, uc.clock.Now()); err != nil {
			return err
		}
		return notFoundAs(tx.Reviews().Update(ctx, rev), ErrReviewNotFound)
	})
}

func (uc *reviewUseCaseImpl) DeleteReview(ctx context.Context, actor shared.Actor, reviewID int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := uc.ownedReview(ctx, tx, actor, reviewID); err != nil {
			return err
		}
		return notFoundAs(tx.Reviews().Delete(ctx, reviewID), ErrReviewNotFound)
	})
}

// ownedReview hides other users' reviews behind the same error as a missing one.
func (uc *reviewUseCaseImpl) ownedReview(ctx context.Context, tx shared.Tx, actor shared.Actor, reviewID int64) (*domreview.Review, error) {
	rev, err := tx.Reads().ReviewByID(ctx, reviewID)
	if err != nil {
		return nil, notFoundAs(err, ErrReviewNotFound)
	}
	if err := access.EnsureOwner(actor.UserID, rev.UserID()); err != nil {
		return nil, errs.Mark(err, ErrReviewNotFound)
	}
	return rev, nil
}
