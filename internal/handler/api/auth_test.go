//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"nagoyameshi/internal/domain/user"
	"nagoyameshi/internal/handler/api"
	resdto "nagoyameshi/internal/handler/dto/response"
	"nagoyameshi/internal/handler/middleware"
	"nagoyameshi/internal/pkg/config"
	"nagoyameshi/internal/pkg/cookie"
	"nagoyameshi/internal/pkg/errs"
	"nagoyameshi/internal/pkg/jwt"
	"nagoyameshi/internal/usecase/commands"
	"nagoyameshi/internal/usecase/shared"
	"nagoyameshi/tests/common/builder"
	"nagoyameshi/tests/common/httptest"
	"nagoyameshi/tests/common/testutil"
	commandsmock "nagoyameshi/tests/mock/commands"
	queriesmock "nagoyameshi/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// withActor stands in for the auth middleware: any Authorization header
// authenticates as actor.
func withActor(actor shared.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			middleware.SetActor(c, actor)
		}
		c.Next()
	}
}

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	actor        shared.Actor
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	jwtService := jwt.NewService("test-secret", 15*time.Minute, time.Hour)
	handler := api.NewAuthHandler(s.mockCommands, s.mockQueries, jwtService, config.NewTestConfig())

	s.actor = shared.Actor{UserID: 1, Role: user.RoleFreeMember, TokenID: "jti-1"}
	s.router.Use(withActor(s.actor))
	s.router.POST("/auth/signup", handler.Signup)
	s.router.POST("/auth/login", handler.Login)
	s.router.POST("/auth/refresh", handler.Refresh)
	s.router.POST("/auth/logout", handler.Logout)
	s.router.GET("/auth/me", handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	auth := builder.NewAuthBuilder()
	reqBody := auth.BuildDTO()
	returnUser := builder.NewUserBuilder().BuildView()
	tokens := jwt.TokenPair{AccessToken: "test-jwt-token", RefreshToken: "test-refresh-token"}

	s.Run("success: returns 200 OK and sets token cookies", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), auth.BuildCommand()).
			Return(&commands.LoginResult{UserID: returnUser.ID, Role: returnUser.Role, Tokens: tokens}, nil).Times(1)
		s.mockQueries.EXPECT().Me(gomock.Any(), shared.Actor{UserID: returnUser.ID, Role: returnUser.Role}).
			Return(returnUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnUser.Email, response.User.Email)
		s.Equal("test-jwt-token", response.AccessToken)

		accessCookie := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(accessCookie)
		s.Equal("test-jwt-token", accessCookie.Value)
		s.True(accessCookie.HttpOnly)
	})

	s.Run("error: 400 Bad Request on binding errors", func() {
		cases := []testCaseAuth{
			{name: "invalid email", mutate: testutil.Field("email", "invalid-email"), expectCode: http.StatusBadRequest},
			{name: "missing email", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
			{name: "missing password", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest},
			{name: "empty password", mutate: testutil.Field("password", ""), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid credentials",
				commandsError:  commands.ErrInvalidCredentials,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Invalid email or password",
			},
			{
				name:           "unknown user is indistinguishable from a wrong password",
				commandsError:  errs.Mark(errors.New("no rows"), commands.ErrInvalidCredentials),
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Invalid email or password",
			},
			{
				name:           "disabled account",
				commandsError:  commands.ErrUserDisabled,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Account is disabled",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Login(gomock.Any(), auth.BuildCommand()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestSignup() {
	url := "/auth/signup"
	body := map[string]any{
		"name":                  "名古屋 太郎",
		"furigana":              "ナゴヤ タロウ",
		"postal_code":           "4600002",
		"address":               "愛知県名古屋市中区丸の内1-1-1",
		"phone_number":          "0521234567",
		"email":                 "taro@example.com",
		"password":              "password123",
		"password_confirmation": "password123",
	}

	s.Run("success: returns 201 with the new id", func() {
		s.mockCommands.EXPECT().Signup(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in user.SignupInput) (int64, error) {
				s.Equal("taro@example.com", in.Email)
				s.Equal("password123", in.PasswordConfirmation)
				return 42, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.IDResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(int64(42), response.ID)
	})

	s.Run("error: field errors are returned together", func() {
		fe := errs.FieldErrors{}
		fe.Add("password", "passwords do not match")
		fe.Add("password_confirmation", "passwords do not match")
		s.mockCommands.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(int64(0), fe.Err()).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")

		var response struct {
			Detail struct {
				Fields map[string]string `json:"fields"`
			} `json:"detail"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Contains(response.Detail.Fields, "password")
		s.Contains(response.Detail.Fields, "password_confirmation")
	})

	s.Run("error: duplicate email is 409", func() {
		s.mockCommands.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(int64(0), commands.ErrEmailTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already registered")
	})
}

func (s *AuthHandlerTestSuite) TestRefresh() {
	s.Run("error: 401 without a refresh token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/refresh", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("success: rotates tokens from the body", func() {
		pair := &jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "old-refresh").Return(pair, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/refresh",
			map[string]any{"refresh_token": "old-refresh"}, "")

		var response resdto.TokenResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("new-access", response.AccessToken)
		s.Equal("new-refresh", httptest.ExtractCookie(rec, cookie.RefreshTokenCookieName).Value)
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: revokes and clears cookies", func() {
		s.mockCommands.EXPECT().Logout(gomock.Any(), s.actor).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)

		accessCookie := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(accessCookie)
		s.Empty(accessCookie.Value)
		s.Negative(accessCookie.MaxAge)
	})

	s.Run("error: anonymous callers are sent to login", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")
		httptest.AssertRedirect(s.T(), rec, middleware.LoginPath)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"
	returnUser := builder.NewUserBuilder().BuildView()

	s.Run("success: returns current user info", func() {
		s.mockQueries.EXPECT().Me(gomock.Any(), s.actor).Return(returnUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnUser.Email, response["email"])
		s.Equal(string(user.RoleFreeMember), response["role"])
	})

	s.Run("error: internal error is 500", func() {
		s.mockQueries.EXPECT().Me(gomock.Any(), s.actor).Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
