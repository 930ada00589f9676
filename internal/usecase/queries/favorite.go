//go:generate mockgen -source=favorite.go -destination=../../../tests/mock/queries/favorite_mock.go -package=queriesmock

package queries

import (
	"context"
	"time"

	"nagoyameshi/internal/usecase/shared"
)

type FavoriteView struct {
	ID             int64     `json:"id"`
	RestaurantID   int64     `json:"restaurant_id"`
	RestaurantName string    `json:"restaurant_name"`
	ImageName      string    `json:"image_name"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
}

type FavoriteReadStore interface {
	// ListByUser orders by created_at DESC, id DESC.
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*FavoriteView, int64, error)
	FindFor(ctx context.Context, userID, restaurantID int64) (*FavoriteView, error)
}

type FavoriteQueries interface {
	ListOwn(ctx context.Context, actor shared.Actor, page PageRequest) (Page[*FavoriteView], error)
}

type favoriteQueriesImpl struct {
	store FavoriteReadStore
}

func NewFavoriteQueries(store FavoriteReadStore) FavoriteQueries {
	return &favoriteQueriesImpl{store: store}
}

func (q *favoriteQueriesImpl) ListOwn(ctx context.Context, actor shared.Actor, page PageRequest) (Page[*FavoriteView], error) {
	req := page.Normalize(FavoritePageSize)
	items, total, err := q.store.ListByUser(ctx, actor.UserID, req.Size, req.Offset())
	if err != nil {
		return Page[*FavoriteView]{}, err
	}
	return NewPage(items, req, total), nil
}
