package response

import (
	"time"

	"nagoyameshi/internal/pkg/jwt"
	"nagoyameshi/internal/usecase/queries"
)

type TokenResponse struct {
	AccessToken      string    `json:"access_token"`
	RefreshToken     string    `json:"refresh_token"`
	AccessExpiresAt  time.Time `json:"access_expires_at"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
}

func FromTokenPair(p jwt.TokenPair) TokenResponse {
	return TokenResponse{
		AccessToken:      p.AccessToken,
		RefreshToken:     p.RefreshToken,
		AccessExpiresAt:  p.AccessExpiresAt,
		RefreshExpiresAt: p.RefreshExpiresAt,
	}
}

type LoginResponse struct {
	TokenResponse
	User *queries.UserView `json:"user"`
}

type IDResponse struct {
	ID int64 `json:"id"`
}
