//go:generate mockgen -source=content.go -destination=../../../tests/mock/queries/content_mock.go -package=queriesmock

package queries

import (
	"context"

	"nagoyameshi/internal/domain/content"
)

type ContentReadStore interface {
	LatestTerm(ctx context.Context) (*content.Term, error)
	LatestCompany(ctx context.Context) (*content.Company, error)
}

type ContentQueries interface {
	Term(ctx context.Context) (*content.Term, error)
	Company(ctx context.Context) (*content.Company, error)
}

type contentQueriesImpl struct {
	store ContentReadStore
}

func NewContentQueries(store ContentReadStore) ContentQueries {
	return &contentQueriesImpl{store: store}
}

func (q *contentQueriesImpl) Term(ctx context.Context) (*content.Term, error) {
	t, err := q.store.LatestTerm(ctx)
	if err != nil {
		return nil, notFoundAs(err, ErrContentNotFound)
	}
	return t, nil
}

func (q *contentQueriesImpl) Company(ctx context.Context) (*content.Company, error) {
	c, err := q.store.LatestCompany(ctx)
	if err != nil {
		return nil, notFoundAs(err, ErrContentNotFound)
	}
	return c, nil
}
