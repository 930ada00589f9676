package middleware

import (
	"log/slog"
	"strconv"
	"strings"

	"nagoyameshi/internal/domain/user"
	"nagoyameshi/internal/pkg/cookie"
	"nagoyameshi/internal/usecase"
	"nagoyameshi/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
	ctxActorKey    = "actor"
	ctxClaimsKey   = "jwt_claims"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// Authenticate resolves the caller from the access token when one is present.
// Requests without a usable token continue as anonymous; AccessGate decides
// whether the route needs more.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		actor, err := m.tokenValidator.ValidateToken(c.Request.Context(), token)
		if err != nil {
			slog.Debug("token rejected, continuing as anonymous", "error", err.Error(), "path", c.Request.URL.Path)
			c.Next()
			return
		}

		SetActor(c, actor)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

// SetActor stores the authenticated caller on the request context.
func SetActor(c *gin.Context, actor shared.Actor) {
	c.Set(ctxActorKey, actor)
	c.Set(ctxUserIDKey, actor.UserID)
	c.Set(ctxUserRoleKey, actor.Role)
	c.Set(ctxClaimsKey, map[string]any{
		"user_id": strconv.FormatInt(actor.UserID, 10),
		"role":    string(actor.Role),
	})
}

func GetActor(c *gin.Context) (shared.Actor, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return shared.Actor{}, false
	}
	actor, ok := v.(shared.Actor)
	return actor, ok
}

func GetUserID(c *gin.Context) (int64, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return 0, false
	}

	id, ok := userID.(int64)
	return id, ok
}

// GetUserRole returns the authenticated user role from context
func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}
