//go:generate mockgen -source=home.go -destination=../../../tests/mock/queries/home_mock.go -package=queriesmock

package queries

import (
	"context"

	"golang.org/x/sync/errgroup"
)

const HomeSectionSize = 6

type HomeView struct {
	HighlyRated []*RestaurantListItem `json:"highly_rated"`
	Newest      []*RestaurantListItem `json:"newest"`
	Categories  []CategoryView        `json:"categories"`
}

type HomeQueries interface {
	Home(ctx context.Context) (*HomeView, error)
}

type homeQueriesImpl struct {
	restaurants RestaurantQueries
	categories  CategoryQueries
}

func NewHomeQueries(restaurants RestaurantQueries, categories CategoryQueries) HomeQueries {
	return &homeQueriesImpl{restaurants: restaurants, categories: categories}
}

func (q *homeQueriesImpl) Home(ctx context.Context) (*HomeView, error) {
	var v HomeView
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		v.HighlyRated, err = q.restaurants.HighlyRated(gctx, HomeSectionSize)
		return err
	})
	g.Go(func() (err error) {
		v.Newest, err = q.restaurants.Newest(gctx, HomeSectionSize)
		return err
	})
	g.Go(func() (err error) {
		v.Categories, err = q.categories.List(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &v, nil
}
