//go:generate mockgen -source=review.go -destination=../../../tests/mock/queries/review_mock.go -package=queriesmock

package queries

import (
	"context"
	"time"

	"nagoyameshi/internal/domain/access"
	"nagoyameshi/internal/domain/user"
	"nagoyameshi/internal/pkg/errs"
	"nagoyameshi/internal/usecase/shared"
)

type ReviewView struct {
	ID           int64     `json:"id"`
	RestaurantID int64     `json:"restaurant_id"`
	UserID       int64     `json:"user_id"`
	UserName     string    `json:"user_name"`
	Score        int       `json:"score"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ReviewReadStore interface {
	// ListByRestaurant orders by created_at DESC, id DESC.
	ListByRestaurant(ctx context.Context, restaurantID int64, limit, offset int) ([]*ReviewView, int64, error)
	Exists(ctx context.Context, userID, restaurantID int64) (bool, error)
	FindByID(ctx context.Context, id int64) (*ReviewView, error)
	RestaurantExists(ctx context.Context, restaurantID int64) (bool, error)
}

type ReviewQueries interface {
	ListForRestaurant(ctx context.Context, actor shared.Actor, restaurantID int64, page PageRequest) (Page[*ReviewView], error)
	// GetOwn loads a review for editing; someone else's review reads as missing.
	GetOwn(ctx context.Context, actor shared.Actor, reviewID int64) (*ReviewView, error)
}

type reviewQueriesImpl struct {
	store ReviewReadStore
}

func NewReviewQueries(store ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{store: store}
}

func (q *reviewQueriesImpl) ListForRestaurant(ctx context.Context, actor shared.Actor, restaurantID int64, page PageRequest) (Page[*ReviewView], error) {
	ok, err := q.store.RestaurantExists(ctx, restaurantID)
	if err != nil {
		return Page[*ReviewView]{}, err
	}
	if !ok {
		return Page[*ReviewView]{}, errs.Mark(errs.Newf("restaurant %d", restaurantID), ErrRestaurantNotFound)
	}

	if actor.Role == user.RoleFreeMember {
		req := PageRequest{Page: 0, Size: FreeReviewLimit}
		items, _, err := q.store.ListByRestaurant(ctx, restaurantID, req.Size, 0)
		if err != nil {
			return Page[*ReviewView]{}, err
		}
		return NewPage(items, req, int64(len(items))), nil
	}

	req := page.Normalize(PaidReviewPageSize)
	items, total, err := q.store.ListByRestaurant(ctx, restaurantID, req.Size, req.Offset())
	if err != nil {
		return Page[*ReviewView]{}, err
	}
	return NewPage(items, req, total), nil
}

func (q *reviewQueriesImpl) GetOwn(ctx context.Context, actor shared.Actor, reviewID int64) (*ReviewView, error) {
	rv, err := q.store.FindByID(ctx, reviewID)
	if err != nil {
		return nil, notFoundAs(err, ErrReviewNotFound)
	}
	if err := access.EnsureOwner(actor.UserID, rv.UserID); err != nil {
		return nil, errs.Mark(err, ErrReviewNotFound)
	}
	return rv, nil
}
