//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"nagoyameshi/internal/domain/user"
	"nagoyameshi/internal/pkg/config"
	"nagoyameshi/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID int64, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.AccessTokenDuration)
	require.NoError(t, err)
	refreshDuration, err := time.ParseDuration(h.cfg.RefreshTokenDuration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration, refreshDuration)
	pair, err := service.GenerateTokenPair(userID, role)
	require.NoError(t, err)
	return pair.AccessToken
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID int64, role user.Role) string {
	t.Helper()
	refreshDuration, err := time.ParseDuration(h.cfg.RefreshTokenDuration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond, refreshDuration)
	pair, err := service.GenerateTokenPair(userID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return pair.AccessToken
}
