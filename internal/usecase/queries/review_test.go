//go:build unit

package queries_test

import (
	"context"
	"testing"

	"nagoyameshi/internal/domain/user"
	"nagoyameshi/internal/pkg/errs"
	"nagoyameshi/internal/usecase/queries"
	"nagoyameshi/internal/usecase/shared"
	queriesmock "nagoyameshi/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewQueriesTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	store *queriesmock.MockReviewReadStore
	q     queries.ReviewQueries
}

func (s *ReviewQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockReviewReadStore(s.ctrl)
	s.q = queries.NewReviewQueries(s.store)
}

func (s *ReviewQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReviewQueriesSuite(t *testing.T) {
	suite.Run(t, new(ReviewQueriesTestSuite))
}

func (s *ReviewQueriesTestSuite) TestListForRestaurant() {
	ctx := context.Background()
	free := shared.Actor{UserID: 1, Role: user.RoleFreeMember}
	paid := shared.Actor{UserID: 2, Role: user.RolePaidMember}

	s.Run("free member sees the latest three and never pages", func() {
		s.store.EXPECT().RestaurantExists(ctx, int64(10)).Return(true, nil)
		s.store.EXPECT().ListByRestaurant(ctx, int64(10), 3, 0).
			Return([]*queries.ReviewView{{ID: 9}, {ID: 8}, {ID: 7}}, int64(12), nil)

		page, err := s.q.ListForRestaurant(ctx, free, 10, queries.PageRequest{Page: 3, Size: 50})

		s.Require().NoError(err)
		s.Len(page.Items, 3)
		s.Equal(0, page.Page)
		s.Equal(1, page.TotalPages)
	})

	s.Run("paid member pages by five", func() {
		s.store.EXPECT().RestaurantExists(ctx, int64(10)).Return(true, nil)
		s.store.EXPECT().ListByRestaurant(ctx, int64(10), 5, 10).
			Return([]*queries.ReviewView{{ID: 2}, {ID: 1}}, int64(12), nil)

		page, err := s.q.ListForRestaurant(ctx, paid, 10, queries.PageRequest{Page: 2})

		s.Require().NoError(err)
		s.Len(page.Items, 2)
		s.Equal(int64(12), page.TotalItems)
		s.Equal(3, page.TotalPages)
	})

	s.Run("unknown restaurant", func() {
		s.store.EXPECT().RestaurantExists(ctx, int64(404)).Return(false, nil)

		_, err := s.q.ListForRestaurant(ctx, paid, 404, queries.PageRequest{})

		s.True(errs.Is(err, queries.ErrRestaurantNotFound))
	})
}

func (s *ReviewQueriesTestSuite) TestGetOwn() {
	ctx := context.Background()
	owner := shared.Actor{UserID: 2, Role: user.RolePaidMember}

	s.Run("owner", func() {
		s.store.EXPECT().FindByID(ctx, int64(5)).Return(&queries.ReviewView{ID: 5, UserID: 2}, nil)

		rv, err := s.q.GetOwn(ctx, owner, 5)

		s.Require().NoError(err)
		s.Equal(int64(5), rv.ID)
	})

	s.Run("someone else's review reads as missing", func() {
		s.store.EXPECT().FindByID(ctx, int64(6)).Return(&queries.ReviewView{ID: 6, UserID: 3}, nil)

		rv, err := s.q.GetOwn(ctx, owner, 6)

		s.Nil(rv)
		s.True(errs.Is(err, queries.ErrReviewNotFound))
	})
}
