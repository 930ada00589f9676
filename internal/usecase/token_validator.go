//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/usecase/token_validator_mock.go -package=usecasemock

package usecase

import (
	"context"
	"log/slog"

	"nagoyameshi/internal/domain/user"
	"nagoyameshi/internal/pkg/errs"
	"nagoyameshi/internal/pkg/jwt"
	"nagoyameshi/internal/usecase/commands"
	"nagoyameshi/internal/usecase/shared"
)

var ErrTokenRevoked = errs.New("token revoked")

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(ctx context.Context, tokenString string) (shared.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
	revoker    commands.TokenRevoker
}

func NewTokenValidator(jwtService *jwt.Service, revoker commands.TokenRevoker) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
		revoker:    revoker,
	}
}

func (t *tokenValidatorImpl) ValidateToken(ctx context.Context, tokenString string) (shared.Actor, error) {
	claims, err := t.jwtService.ValidateTyped(tokenString, jwt.AccessToken)
	if err != nil {
		return shared.Actor{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return shared.Actor{}, err
	}

	revoked, err := t.revoker.IsRevoked(ctx, claims.ID)
	if err != nil {
		// revocation store outage must not lock every member out
		slog.Warn("revocation check failed", "user_id", claims.UserID, "error", err.Error())
	} else if revoked {
		return shared.Actor{}, ErrTokenRevoked
	}

	if claims.IssuedAt != nil {
		stale, err := t.revoker.IssuedBeforeCutoff(ctx, claims.UserID, claims.IssuedAt.Time)
		if err != nil {
			slog.Warn("token cutoff check failed", "user_id", claims.UserID, "error", err.Error())
		} else if stale {
			// the role changed in another session after this token was issued
			return shared.Actor{}, ErrTokenRevoked
		}
	}

	actor := shared.Actor{
		UserID:  claims.UserID,
		Role:    role,
		TokenID: claims.ID,
	}
	if claims.ExpiresAt != nil {
		actor.TokenExpiresAt = claims.ExpiresAt.Time
	}
	return actor, nil
}
