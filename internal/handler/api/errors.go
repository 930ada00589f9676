package api

import (
	"log/slog"
	"net/http"

	"nagoyameshi/internal/handler/httperr"
	"nagoyameshi/internal/pkg/errs"
	"nagoyameshi/internal/usecase/commands"
	"nagoyameshi/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// Owning list pages that missing records redirect back to.
const (
	restaurantsPath      = "/restaurants"
	reservationsPath     = "/reservations"
	favoritesPath        = "/favorites"
	adminRestaurantsPath = "/admin/restaurants"
	adminCategoriesPath  = "/admin/categories"
	adminUsersPath       = "/admin/users"
)

type notFoundRule struct {
	sentinels []error
	flash     string
}

var notFoundRules = []notFoundRule{
	{[]error{commands.ErrRestaurantNotFound, queries.ErrRestaurantNotFound}, "The restaurant does not exist."},
	{[]error{commands.ErrReservationNotFound}, "The reservation does not exist."},
	{[]error{commands.ErrReviewNotFound, queries.ErrReviewNotFound}, "The review does not exist."},
	{[]error{commands.ErrFavoriteNotFound}, "The favorite does not exist."},
	{[]error{commands.ErrCategoryNotFound, queries.ErrCategoryNotFound}, "The category does not exist."},
	{[]error{commands.ErrUserNotFound, queries.ErrUserNotFound}, "The user does not exist."},
}

var conflicts = map[error]string{
	commands.ErrDuplicateReview:   "You have already reviewed this restaurant.",
	commands.ErrEmailTaken:        "The email address is already registered.",
	commands.ErrCategoryNameTaken: "The category name already exists.",
}

func badRequest(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
}

// respondError maps a usecase error onto the HTTP error contract.
// listPath is the page a missing record redirects back to.
func respondError(c *gin.Context, err error, listPath string) {
	if ve, ok := errs.AsValidation(err); ok {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", gin.H{"fields": ve.Fields})
		return
	}

	for _, rule := range notFoundRules {
		for _, s := range rule.sentinels {
			if errs.Is(err, s) {
				httperr.AbortWithRedirect(c, listPath, err, rule.flash)
				return
			}
		}
	}

	for sentinel, msg := range conflicts {
		if errs.Is(err, sentinel) {
			httperr.AbortWithError(c, http.StatusConflict, err, msg, nil)
			return
		}
	}

	switch {
	case errs.Is(err, commands.ErrBillingFailed):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment processing failed, please retry.", nil)
	case errs.Is(err, commands.ErrImageUploadFailed):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Image upload failed, please retry.", nil)
	case errs.Is(err, commands.ErrSubscriptionState):
		httperr.AbortWithError(c, http.StatusConflict, err, "The subscription state does not allow this operation.", nil)
	case errs.Is(err, commands.ErrInvalidCredentials):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
	case errs.Is(err, commands.ErrTokenValidation):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
	case errs.Is(err, commands.ErrUserDisabled):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Account is disabled", nil)
	case errs.Is(err, queries.ErrContentNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Content not found", nil)
	default:
		slog.Error("unhandled request error",
			"path", c.FullPath(),
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 8),
		)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
