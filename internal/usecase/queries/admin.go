//go:generate mockgen -source=admin.go -destination=../../../tests/mock/queries/admin_mock.go -package=queriesmock

package queries

import (
	"context"

	"golang.org/x/sync/errgroup"

	"nagoyameshi/internal/domain/user"
)

// MonthlyFee is the subscription price in yen.
const MonthlyFee = 300

type Dashboard struct {
	FreeMembers  int64 `json:"free_members"`
	PaidMembers  int64 `json:"paid_members"`
	TotalMembers int64 `json:"total_members"`
	Restaurants  int64 `json:"restaurants"`
	Reservations int64 `json:"reservations"`
	MonthlySales int64 `json:"monthly_sales"`
}

type DashboardQueries interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
}

type dashboardQueriesImpl struct {
	users        UserReadStore
	restaurants  RestaurantReadStore
	reservations ReservationReadStore
}

func NewDashboardQueries(users UserReadStore, restaurants RestaurantReadStore, reservations ReservationReadStore) DashboardQueries {
	return &dashboardQueriesImpl{users: users, restaurants: restaurants, reservations: reservations}
}

func (q *dashboardQueriesImpl) Dashboard(ctx context.Context) (*Dashboard, error) {
	var d Dashboard
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		d.FreeMembers, err = q.users.CountByRole(gctx, user.RoleFreeMember)
		return err
	})
	g.Go(func() (err error) {
		d.PaidMembers, err = q.users.CountByRole(gctx, user.RolePaidMember)
		return err
	})
	g.Go(func() (err error) {
		d.Restaurants, err = q.restaurants.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		d.Reservations, err = q.reservations.Count(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	d.TotalMembers = d.FreeMembers + d.PaidMembers
	d.MonthlySales = MonthlyFee * d.PaidMembers
	return &d, nil
}
