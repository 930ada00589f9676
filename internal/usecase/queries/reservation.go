//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation_mock.go -package=queriesmock

package queries

import (
	"context"
	"time"

	"nagoyameshi/internal/usecase/shared"
)

type ReservationView struct {
	ID             int64     `json:"id"`
	RestaurantID   int64     `json:"restaurant_id"`
	RestaurantName string    `json:"restaurant_name"`
	ReservedAt     time.Time `json:"reserved_at"`
	NumberOfPeople int       `json:"number_of_people"`
	CreatedAt      time.Time `json:"created_at"`
}

type ReservationReadStore interface {
	// ListByUser orders by reserved_at DESC, id DESC.
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*ReservationView, int64, error)
	Count(ctx context.Context) (int64, error)
}

type ReservationQueries interface {
	ListOwn(ctx context.Context, actor shared.Actor, page PageRequest) (Page[*ReservationView], error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) ListOwn(ctx context.Context, actor shared.Actor, page PageRequest) (Page[*ReservationView], error) {
	req := page.Normalize(ReservationPageSize)
	items, total, err := q.store.ListByUser(ctx, actor.UserID, req.Size, req.Offset())
	if err != nil {
		return Page[*ReservationView]{}, err
	}
	return NewPage(items, req, total), nil
}
