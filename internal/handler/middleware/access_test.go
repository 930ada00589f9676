//go:build unit

package middleware_test

import (
	"context"
	"net/http"
	"testing"

	"nagoyameshi/internal/domain/access"
	"nagoyameshi/internal/domain/user"
	"nagoyameshi/internal/handler/middleware"
	"nagoyameshi/internal/pkg/errs"
	"nagoyameshi/internal/usecase/shared"
	"nagoyameshi/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubValidator map[string]shared.Actor

func (v stubValidator) ValidateToken(_ context.Context, token string) (shared.Actor, error) {
	a, ok := v[token]
	if !ok {
		return shared.Actor{}, errs.New("unknown token")
	}
	return a, nil
}

func newGatedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	validator := stubValidator{
		"free":  {UserID: 1, Role: user.RoleFreeMember},
		"paid":  {UserID: 2, Role: user.RolePaidMember},
		"admin": {UserID: 3, Role: user.RoleAdmin},
	}
	table := access.NewTable()
	r.Use(middleware.NewAuthMiddleware(validator).Authenticate())
	r.Use(middleware.AccessGate(table))

	ok := func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	}
	routes := []struct {
		method, path string
		class        access.Class
	}{
		{http.MethodGet, "/api/restaurants", access.ClassPublic},
		{http.MethodGet, "/api/restaurants/:id/reviews", access.ClassMemberBasic},
		{http.MethodPost, "/api/restaurants/:id/reservations", access.ClassMemberPremium},
		{http.MethodPost, "/api/subscription", access.ClassFreeOnly},
		{http.MethodGet, "/api/admin/users", access.ClassAdminOnly},
	}
	for _, rt := range routes {
		table.Set(rt.method, rt.path, rt.class)
		r.Handle(rt.method, rt.path, ok)
	}
	// registered with gin only, so the table falls back to AUTHENTICATED
	r.GET("/api/user", ok)
	return r
}

func TestAccessGate(t *testing.T) {
	router := newGatedRouter()

	tests := []struct {
		name     string
		method   string
		path     string
		token    string
		wantCode int
		wantLoc  string
	}{
		{name: "public route is open to anonymous", method: http.MethodGet, path: "/api/restaurants", wantCode: http.StatusOK},
		{name: "anonymous is sent to login", method: http.MethodGet, path: "/api/restaurants/1/reviews", wantCode: http.StatusSeeOther, wantLoc: middleware.LoginPath},
		{name: "invalid token counts as anonymous", method: http.MethodGet, path: "/api/restaurants/1/reviews", token: "forged", wantCode: http.StatusSeeOther, wantLoc: middleware.LoginPath},
		{name: "free member reads reviews", method: http.MethodGet, path: "/api/restaurants/1/reviews", token: "free", wantCode: http.StatusOK},
		{name: "admin cannot use member reviews", method: http.MethodGet, path: "/api/restaurants/1/reviews", token: "admin", wantCode: http.StatusForbidden},
		{name: "free member is sent to subscribe", method: http.MethodPost, path: "/api/restaurants/1/reservations", token: "free", wantCode: http.StatusSeeOther, wantLoc: middleware.SubscriptionRegisterPath},
		{name: "paid member reserves", method: http.MethodPost, path: "/api/restaurants/1/reservations", token: "paid", wantCode: http.StatusOK},
		{name: "paid member cannot subscribe again", method: http.MethodPost, path: "/api/subscription", token: "paid", wantCode: http.StatusForbidden},
		{name: "free member subscribes", method: http.MethodPost, path: "/api/subscription", token: "free", wantCode: http.StatusOK},
		{name: "paid member is not admin", method: http.MethodGet, path: "/api/admin/users", token: "paid", wantCode: http.StatusForbidden},
		{name: "admin reaches admin routes", method: http.MethodGet, path: "/api/admin/users", token: "admin", wantCode: http.StatusOK},
		{name: "unclassified route defaults to authenticated", method: http.MethodGet, path: "/api/user", wantCode: http.StatusSeeOther, wantLoc: middleware.LoginPath},
		{name: "unclassified route admits any signed-in role", method: http.MethodGet, path: "/api/user", token: "admin", wantCode: http.StatusOK},
		{name: "unknown path is a plain 404", method: http.MethodGet, path: "/api/nope", wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.PerformRequest(t, router, tt.method, tt.path, nil, tt.token)

			if tt.wantLoc != "" {
				httptest.AssertRedirect(t, w, tt.wantLoc)
				return
			}
			assert.Equal(t, tt.wantCode, w.Code, w.Body.String())
		})
	}
}

func TestAuthenticate_SetsActor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.NewAuthMiddleware(stubValidator{
		"paid": {UserID: 2, Role: user.RolePaidMember, TokenID: "jti-2"},
	}).Authenticate())

	var got shared.Actor
	var found bool
	r.GET("/whoami", func(c *gin.Context) {
		got, found = middleware.GetActor(c)
		c.Status(http.StatusNoContent)
	})

	httptest.PerformRequest(t, r, http.MethodGet, "/whoami", nil, "paid")
	assert.True(t, found)
	assert.Equal(t, int64(2), got.UserID)
	assert.Equal(t, "jti-2", got.TokenID)

	found = false
	httptest.PerformRequest(t, r, http.MethodGet, "/whoami", nil, "")
	assert.False(t, found)
}
