package shared

import (
	"time"

	"nagoyameshi/internal/domain/user"
)

// Actor is the authenticated caller as seen by usecases.
type Actor struct {
	UserID int64
	Role   user.Role
	// TokenID is the jti of the access token presented with the request.
	TokenID        string
	TokenExpiresAt time.Time
}
