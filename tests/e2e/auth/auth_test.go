//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"nagoyameshi/internal/domain/user"
	"nagoyameshi/internal/handler/dto/request"
	resdto "nagoyameshi/internal/handler/dto/response"
	"nagoyameshi/internal/handler/middleware"
	"nagoyameshi/internal/pkg/cookie"
	"nagoyameshi/internal/usecase/queries"
	"nagoyameshi/tests/common/authtest"
	"nagoyameshi/tests/common/builder"
	"nagoyameshi/tests/common/dbtest"
	"nagoyameshi/tests/common/httptest"
	"nagoyameshi/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	signupURL  = "/api/auth/signup"
	loginURL   = "/api/auth/login"
	logoutURL  = "/api/auth/logout"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	// テスト用ユーザーを作成
	dbtest.CreateTestUser(s.T(), s.DB, "free@example.com", user.RoleFreeMember)
	dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", user.RoleAdmin)
	dbtest.CreateTestUser(s.T(), s.DB, "disabled@example.com", user.RoleFreeMember)

	_, err := s.DB.Exec(s.T().Context(), "UPDATE users SET enabled = false WHERE email = 'disabled@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "正常なログイン",
			email:          "free@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusOK,
			description:    "有効な認証情報でログインできること",
		},
		{
			name:           "存在しないユーザー",
			email:          "nonexistent@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusUnauthorized,
			description:    "存在しないユーザーでログインできないこと",
		},
		{
			name:           "間違ったパスワード",
			email:          "free@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			description:    "間違ったパスワードでログインできないこと",
		},
		{
			name:           "無効化されたユーザー",
			email:          "disabled@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusForbidden,
			description:    "無効化されたユーザーはログインできないこと",
		},
		{
			name:           "空のメールアドレス",
			email:          "",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusBadRequest,
			description:    "空のメールアドレスは拒否されること",
		},
		{
			name:           "空のパスワード",
			email:          "free@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
			description:    "空のパスワードは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				var loginRes resdto.LoginResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &loginRes))
				require.NotEmpty(t, loginRes.AccessToken, "アクセストークンが空")
				require.NotEmpty(t, loginRes.RefreshToken, "リフレッシュトークンが空")
				require.NotNil(t, loginRes.User)
				require.Equal(t, user.RoleFreeMember, loginRes.User.Role)
			}
		})
	}
}

func (s *authSuite) TestSignup() {
	s.Run("新規会員は無料会員として登録される", func() {
		t := s.T()
		body := request.SignupRequest{
			ProfileRequest:       builder.NewUserBuilder().WithEmail("new@example.com").BuildProfileDTO(),
			Password:             "password456",
			PasswordConfirmation: "password456",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL, body, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var role string
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT role FROM users WHERE email = 'new@example.com'").Scan(&role))
		require.Equal(t, string(user.RoleFreeMember), role)

		authtest.LoginUser(t, s.Router, "new@example.com", "password456")
	})

	s.Run("登録済みのメールアドレスは409", func() {
		t := s.T()
		body := request.SignupRequest{
			ProfileRequest:       builder.NewUserBuilder().WithEmail("free@example.com").BuildProfileDTO(),
			Password:             "password456",
			PasswordConfirmation: "password456",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL, body, "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
	})

	s.Run("確認用パスワードの不一致は400", func() {
		t := s.T()
		body := request.SignupRequest{
			ProfileRequest:       builder.NewUserBuilder().WithEmail("mismatch@example.com").BuildProfileDTO(),
			Password:             "password456",
			PasswordConfirmation: "password789",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL, body, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
		require.Equal(t, 0, dbtest.Count(t, s.DB, "SELECT count(*) FROM users WHERE email = 'mismatch@example.com'"))
	})
}

func (s *authSuite) TestRefresh() {
	s.Run("リフレッシュトークンで新しいトークンを取得できる", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "free@example.com", Password: dbtest.TestPassword}, "")
		require.Equal(t, http.StatusOK, w.Code)
		var loginRes resdto.LoginResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &loginRes))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: loginRes.RefreshToken}, "")
		var tokens resdto.TokenResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &tokens)
		require.NotEmpty(t, tokens.AccessToken)
	})

	s.Run("アクセストークンはリフレッシュに使えない", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "free@example.com", dbtest.TestPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: token}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestMe() {
	s.Run("ログイン中のユーザーを返す", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "admin@example.com", dbtest.TestPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		var me queries.UserView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &me)
		require.Equal(t, "admin@example.com", me.Email)
		require.Equal(t, user.RoleAdmin, me.Role)
	})

	s.Run("期限切れトークンは未ログイン扱い", func() {
		t := s.T()
		id := dbtest.CreateTestUser(t, s.DB, "free@example.com", user.RoleFreeMember)
		token := s.jwtHelper.CreateExpiredToken(t, id, user.RoleFreeMember)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertRedirect(t, w, middleware.LoginPath)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("ログアウト後のアクセストークンは失効する", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "free@example.com", dbtest.TestPassword)

		authtest.LogoutUser(t, s.Router, token)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertRedirect(t, w, middleware.LoginPath)
	})

	s.Run("クッキーのみのセッションもログアウトで失効しクッキーが消える", func() {
		t := s.T()
		cookies := authtest.LoginCookies(t, s.Router, "free@example.com", dbtest.TestPassword)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, meURL, nil, cookies, "")
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

		w = authtest.LogoutWithCookies(t, s.Router, cookies)
		for _, name := range []string{cookie.AccessTokenCookieName, cookie.RefreshTokenCookieName} {
			cleared := httptest.ExtractCookie(w, name)
			s.Require().NotNil(cleared, name)
			s.Empty(cleared.Value)
			s.Negative(cleared.MaxAge)
		}

		w = httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, meURL, nil, cookies, "")
		httptest.AssertRedirect(t, w, middleware.LoginPath)
	})

	s.Run("未ログインのログアウトはログインへ誘導", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "")
		httptest.AssertRedirect(s.T(), w, middleware.LoginPath)
	})
}
