//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"nagoyameshi/internal/domain/user"
	"nagoyameshi/internal/usecase/queries"
	queriesmock "nagoyameshi/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := queriesmock.NewMockUserReadStore(ctrl)
	restaurants := queriesmock.NewMockRestaurantReadStore(ctrl)
	reservations := queriesmock.NewMockReservationReadStore(ctrl)
	q := queries.NewDashboardQueries(users, restaurants, reservations)

	users.EXPECT().CountByRole(gomock.Any(), user.RoleFreeMember).Return(int64(40), nil)
	users.EXPECT().CountByRole(gomock.Any(), user.RolePaidMember).Return(int64(12), nil)
	restaurants.EXPECT().Count(gomock.Any()).Return(int64(30), nil)
	reservations.EXPECT().Count(gomock.Any()).Return(int64(99), nil)

	d, err := q.Dashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &queries.Dashboard{
		FreeMembers:  40,
		PaidMembers:  12,
		TotalMembers: 52,
		Restaurants:  30,
		Reservations: 99,
		MonthlySales: 3600,
	}, d)
}

func TestDashboard_CountFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := queriesmock.NewMockUserReadStore(ctrl)
	restaurants := queriesmock.NewMockRestaurantReadStore(ctrl)
	reservations := queriesmock.NewMockReservationReadStore(ctrl)
	q := queries.NewDashboardQueries(users, restaurants, reservations)
	boom := errors.New("boom")

	users.EXPECT().CountByRole(gomock.Any(), gomock.Any()).Return(int64(0), nil).AnyTimes()
	restaurants.EXPECT().Count(gomock.Any()).Return(int64(0), boom)
	reservations.EXPECT().Count(gomock.Any()).Return(int64(0), nil).AnyTimes()

	d, err := q.Dashboard(context.Background())

	assert.Nil(t, d)
	assert.ErrorIs(t, err, boom)
}

func TestHome(t *testing.T) {
	ctrl := gomock.NewController(t)
	restaurants := queriesmock.NewMockRestaurantQueries(ctrl)
	categories := queriesmock.NewMockCategoryQueries(ctrl)
	q := queries.NewHomeQueries(restaurants, categories)

	restaurants.EXPECT().HighlyRated(gomock.Any(), queries.HomeSectionSize).
		Return([]*queries.RestaurantListItem{{ID: 1}}, nil)
	restaurants.EXPECT().Newest(gomock.Any(), queries.HomeSectionSize).
		Return([]*queries.RestaurantListItem{{ID: 2}, {ID: 3}}, nil)
	categories.EXPECT().List(gomock.Any()).Return([]queries.CategoryView{{ID: 1, Name: "和食"}}, nil)

	v, err := q.Home(context.Background())

	require.NoError(t, err)
	assert.Len(t, v.HighlyRated, 1)
	assert.Len(t, v.Newest, 2)
	assert.Equal(t, "和食", v.Categories[0].Name)
}
