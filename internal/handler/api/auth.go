package api

import (
	"net/http"

	reqdto "nagoyameshi/internal/handler/dto/request"
	resdto "nagoyameshi/internal/handler/dto/response"
	"nagoyameshi/internal/handler/middleware"
	"nagoyameshi/internal/pkg/config"
	"nagoyameshi/internal/pkg/cookie"
	"nagoyameshi/internal/pkg/errs"
	"nagoyameshi/internal/pkg/jwt"
	"nagoyameshi/internal/usecase/commands"
	"nagoyameshi/internal/usecase/queries"
	"nagoyameshi/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

var errRefreshTokenMissing = errs.New("refresh token missing")

type AuthHandler struct {
	authCommands commands.AuthCommands
	userQueries  queries.UserQueries
	jwtService   *jwt.Service
	cookieCfg    config.CookieConfig
}

func NewAuthHandler(authCommands commands.AuthCommands, userQueries queries.UserQueries, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		userQueries:  userQueries,
		jwtService:   jwtService,
		cookieCfg:    cfg.Cookie,
	}
}

// @Summary Sign up
// @Description Register a free member account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.SignupRequest true "Signup request"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req reqdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	id, err := h.authCommands.Signup(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondError(c, err, middleware.LoginPath)
		return
	}
	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id})
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req.ToCommand())
	if err != nil {
		respondError(c, err, middleware.LoginPath)
		return
	}

	view, err := h.userQueries.Me(c.Request.Context(), shared.Actor{UserID: result.UserID, Role: result.Role})
	if err != nil {
		respondError(c, err, middleware.LoginPath)
		return
	}

	h.setTokenCookies(c, result.Tokens)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		TokenResponse: resdto.FromTokenPair(result.Tokens),
		User:          view,
	})
}

// @Summary Refresh tokens
// @Description Rotate the token pair using the refresh token from the body or cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RefreshRequest false "Refresh request"
// @Success 200 {object} resdto.TokenResponse
// @Failure 401 {object} httperr.Response
// @Router /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req reqdto.RefreshRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
	}
	token := req.RefreshToken
	if token == "" {
		token = cookie.GetRefreshToken(c)
	}
	if token == "" {
		respondError(c, errs.Mark(errRefreshTokenMissing, commands.ErrTokenValidation), middleware.LoginPath)
		return
	}

	pair, err := h.authCommands.RefreshToken(c.Request.Context(), token)
	if err != nil {
		respondError(c, err, middleware.LoginPath)
		return
	}

	h.setTokenCookies(c, *pair)
	c.JSON(http.StatusOK, resdto.FromTokenPair(*pair))
}

// @Summary User logout
// @Description Revoke the current access token and clear the cookies
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.authCommands.Logout(c.Request.Context(), actor); err != nil {
		respondError(c, err, middleware.LoginPath)
		return
	}
	cookie.ClearTokenCookies(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.UserView
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	view, err := h.userQueries.Me(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, middleware.LoginPath)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *AuthHandler) setTokenCookies(c *gin.Context, pair jwt.TokenPair) {
	cookie.SetTokenCookies(c, h.cookieCfg, pair.AccessToken, pair.RefreshToken,
		h.jwtService.AccessDuration(), h.jwtService.RefreshDuration())
}
