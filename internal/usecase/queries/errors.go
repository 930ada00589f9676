package queries

import (
	"nagoyameshi/internal/infra"
	"nagoyameshi/internal/pkg/errs"
)

var (
	ErrRestaurantNotFound = errs.New("restaurant not found")
	ErrReviewNotFound     = errs.New("review not found")
	ErrCategoryNotFound   = errs.New("category not found")
	ErrUserNotFound       = errs.New("user not found")
	ErrContentNotFound    = errs.New("content not found")
)

func notFoundAs(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}
