package middleware

import (
	"net/http"

	"nagoyameshi/internal/domain/access"
	"nagoyameshi/internal/handler/httperr"
	"nagoyameshi/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	LoginPath                = "/login"
	SubscriptionRegisterPath = "/subscription/register"
)

var (
	errLoginRequired        = errs.New("login required")
	errSubscriptionRequired = errs.New("paid membership required")
	errForbidden            = errs.New("role not permitted")
)

// AccessGate classifies the matched route once and applies the access policy.
// It must run after Authenticate.
func AccessGate(table *access.Table) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			// unmatched paths fall through to gin's 404
			c.Next()
			return
		}

		role := access.RoleAnonymous
		if r, ok := GetUserRole(c); ok {
			role = access.FromUserRole(r)
		}

		switch access.Evaluate(role, table.Classify(c.Request.Method, route)) {
		case access.Allow:
			c.Next()
		case access.RedirectLogin:
			httperr.AbortWithRedirect(c, LoginPath, errLoginRequired, "Please log in to continue.")
		case access.RedirectSubscription:
			httperr.AbortWithRedirect(c, SubscriptionRegisterPath, errSubscriptionRequired, "This feature requires a paid membership.")
		default:
			httperr.AbortWithError(c, http.StatusForbidden, errForbidden, "Forbidden", nil)
		}
	}
}
