//go:build unit || e2e

package authtest

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"nagoyameshi/internal/domain/user"
	"nagoyameshi/internal/handler/dto/request"
	"nagoyameshi/internal/pkg/cookie"
	"nagoyameshi/tests/common/dbtest"
	"nagoyameshi/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}

// LoginCookies logs in and returns the session cookies the browser would keep.
func LoginCookies(t *testing.T, router *gin.Engine, email, password string) []*http.Cookie {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	cookies := httptest.ExtractCookies(w)
	require.NotEmpty(t, cookies, "login set no cookies")
	return cookies
}

// CreateAndLogin inserts a member with the shared test password and logs in.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email string, role user.Role) (int64, string) {
	t.Helper()
	id := dbtest.CreateTestUser(t, db, email, role)
	return id, LoginUser(t, router, email, dbtest.TestPassword)
}

func LogoutUser(t *testing.T, router *gin.Engine, token string) {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/logout", nil, token)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}

func LogoutWithCookies(t *testing.T, router *gin.Engine, cookies []*http.Cookie) *nethttptest.ResponseRecorder {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
	return w
}
