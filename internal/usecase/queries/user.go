//go:generate mockgen -source=user.go -destination=../../../tests/mock/queries/user_mock.go -package=queriesmock

package queries

import (
	"context"
	"strings"
	"time"

	"nagoyameshi/internal/domain/user"
	"nagoyameshi/internal/usecase/shared"
)

type UserView struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Furigana    string     `json:"furigana"`
	PostalCode  string     `json:"postal_code"`
	Address     string     `json:"address"`
	PhoneNumber string     `json:"phone_number"`
	Birthday    *time.Time `json:"birthday,omitempty"`
	Occupation  *string    `json:"occupation,omitempty"`
	Email       string     `json:"email"`
	Role        user.Role  `json:"role"`
	Enabled     bool       `json:"enabled"`
	CreatedAt   time.Time  `json:"created_at"`
}

type UserReadStore interface {
	FindByID(ctx context.Context, id int64) (*UserView, error)
	// Search matches keyword against name OR furigana; blank lists everyone.
	Search(ctx context.Context, keyword string, limit, offset int) ([]*UserView, int64, error)
	CountByRole(ctx context.Context, role user.Role) (int64, error)
}

type UserQueries interface {
	Me(ctx context.Context, actor shared.Actor) (*UserView, error)
	AdminSearch(ctx context.Context, keyword string, page PageRequest) (Page[*UserView], error)
	AdminGet(ctx context.Context, id int64) (*UserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) Me(ctx context.Context, actor shared.Actor) (*UserView, error) {
	return q.AdminGet(ctx, actor.UserID)
}

func (q *userQueriesImpl) AdminSearch(ctx context.Context, keyword string, page PageRequest) (Page[*UserView], error) {
	req := page.Normalize(AdminPageSize)
	items, total, err := q.readStore.Search(ctx, strings.TrimSpace(keyword), req.Size, req.Offset())
	if err != nil {
		return Page[*UserView]{}, err
	}
	return NewPage(items, req, total), nil
}

func (q *userQueriesImpl) AdminGet(ctx context.Context, id int64) (*UserView, error) {
	u, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrUserNotFound)
	}
	return u, nil
}
