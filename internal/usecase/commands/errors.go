package commands

import (
	"nagoyameshi/internal/infra"
	"nagoyameshi/internal/pkg/errs"
)

// Absent records in user flows; handlers redirect back to the owning list.
var (
	ErrRestaurantNotFound  = errs.New("restaurant not found")
	ErrReservationNotFound = errs.New("reservation not found")
	ErrReviewNotFound      = errs.New("review not found")
	ErrFavoriteNotFound    = errs.New("favorite not found")
	ErrCategoryNotFound    = errs.New("category not found")
	ErrUserNotFound        = errs.New("user not found")
)

var (
	ErrDuplicateReview   = errs.New("restaurant already reviewed by user")
	ErrEmailTaken        = errs.New("email already registered")
	ErrCategoryNameTaken = errs.New("category name already exists")
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrUserDisabled       = errs.New("user disabled")
	ErrTokenValidation    = errs.New("token validation failed")
	ErrTokenGeneration    = errs.New("token generation failed")
)

var (
	ErrBillingFailed     = errs.New("payment processing failed")
	ErrSubscriptionState = errs.New("subscription state does not allow this operation")
	ErrImageUploadFailed = errs.New("image upload failed")
)

// notFoundAs marks repository NOT_FOUND errors with a usecase sentinel.
func notFoundAs(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}

func duplicateAs(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return errs.Mark(err, sentinel)
	}
	return err
}

// parentGoneAs treats a foreign key violation as the parent row having been deleted.
func parentGoneAs(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindForeignKeyViolated) {
		return errs.Mark(err, sentinel)
	}
	return err
}
