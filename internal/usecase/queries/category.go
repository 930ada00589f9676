//go:generate mockgen -source=category.go -destination=../../../tests/mock/queries/category_mock.go -package=queriesmock

package queries

import (
	"context"
	"strings"

	"nagoyameshi/internal/domain/category"
)

type CategoryView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CategoryReadStore interface {
	All(ctx context.Context) ([]CategoryView, error)
	Holidays(ctx context.Context) ([]category.RegularHoliday, error)
	Search(ctx context.Context, keyword string, limit, offset int) ([]CategoryView, int64, error)
	FindByID(ctx context.Context, id int64) (*CategoryView, error)
}

type CategoryQueries interface {
	List(ctx context.Context) ([]CategoryView, error)
	Holidays(ctx context.Context) ([]category.RegularHoliday, error)
	AdminSearch(ctx context.Context, keyword string, page PageRequest) (Page[CategoryView], error)
	Get(ctx context.Context, id int64) (*CategoryView, error)
}

type categoryQueriesImpl struct {
	store CategoryReadStore
}

func NewCategoryQueries(store CategoryReadStore) CategoryQueries {
	return &categoryQueriesImpl{store: store}
}

func (q *categoryQueriesImpl) List(ctx context.Context) ([]CategoryView, error) {
	return q.store.All(ctx)
}

func (q *categoryQueriesImpl) Holidays(ctx context.Context) ([]category.RegularHoliday, error) {
	return q.store.Holidays(ctx)
}

func (q *categoryQueriesImpl) AdminSearch(ctx context.Context, keyword string, page PageRequest) (Page[CategoryView], error) {
	req := page.Normalize(AdminPageSize)
	items, total, err := q.store.Search(ctx, strings.TrimSpace(keyword), req.Size, req.Offset())
	if err != nil {
		return Page[CategoryView]{}, err
	}
	return NewPage(items, req, total), nil
}

func (q *categoryQueriesImpl) Get(ctx context.Context, id int64) (*CategoryView, error) {
	c, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrCategoryNotFound)
	}
	return c, nil
}
