//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth_mock.go -package=commandsmock

package commands

import (
	"context"
	"log/slog"

	"nagoyameshi/internal/domain/auth"
	"nagoyameshi/internal/domain/user"
	"nagoyameshi/internal/pkg/clock"
	"nagoyameshi/internal/pkg/errs"
	"nagoyameshi/internal/pkg/jwt"
	"nagoyameshi/internal/pkg/password"
	"nagoyameshi/internal/usecase/shared"
)

type LoginRequest struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID int64
	Role   user.Role
	Tokens jwt.TokenPair
}

type AuthCommands interface {
	Signup(ctx context.Context, in user.SignupInput) (int64, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error)
	Logout(ctx context.Context, actor shared.Actor) error
}

type authCommandsImpl struct {
	uow     shared.UnitOfWork
	tokens  TokenIssuer
	revoker TokenRevoker
	hasher  password.Hasher
	clock   clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, tokens TokenIssuer, revoker TokenRevoker, hasher password.Hasher, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:     uow,
		tokens:  tokens,
		revoker: revoker,
		hasher:  hasher,
		clock:   clk,
	}
}

func (a *authCommandsImpl) Signup(ctx context.Context, in user.SignupInput) (int64, error) {
	profile, pw, err := user.ValidateSignup(in)
	if err != nil {
		return 0, err
	}

	taken, err := a.uow.CommandReads().EmailTaken(ctx, profile.Email.Value(), 0)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, ErrEmailTaken
	}

	hash, err := a.hasher.Hash(pw.Value())
	if err != nil {
		return 0, errs.Wrap(err, "hash password")
	}

	var id int64
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Users().Create(ctx, user.NewUser(profile, hash, a.clock.Now()))
		if err != nil {
			// lost a race with a concurrent signup for the same address
			return duplicateAs(err, ErrEmailTaken)
		}
		id = created
		return nil
	})
	if err != nil {
		return 0, err
	}

	slog.Info("user signed up", "user_id", id)
	return id, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(req.Email, req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	u, err := a.uow.CommandReads().UserByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// same answer as a wrong password to prevent user enumeration
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	if err := a.hasher.Compare(u.PasswordHash(), credentials.Password()); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	if !u.Enabled() {
		return nil, ErrUserDisabled
	}

	pair, err := a.tokens.GenerateTokenPair(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{UserID: u.ID(), Role: u.Role(), Tokens: pair}, nil
}

// RefreshToken re-reads the user so a role change since the last login is honoured.
func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := a.tokens.ValidateTyped(refreshToken, jwt.RefreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	revoked, err := a.revoker.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrTokenValidation
	}

	u, err := a.uow.CommandReads().UserByID(ctx, claims.UserID)
	if err != nil {
		return nil, notFoundAs(err, ErrUserNotFound)
	}
	if !u.Enabled() {
		return nil, ErrUserDisabled
	}

	pair, err := a.tokens.GenerateTokenPair(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	if claims.ExpiresAt != nil {
		if err := a.revoker.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
			slog.Warn("failed to revoke rotated refresh token", "user_id", u.ID(), "error", err.Error())
		}
	}

	return &pair, nil
}

func (a *authCommandsImpl) Logout(ctx context.Context, actor shared.Actor) error {
	if actor.TokenID == "" {
		return nil
	}
	if err := a.revoker.Revoke(ctx, actor.TokenID, actor.TokenExpiresAt); err != nil {
		return errs.Wrap(err, "revoke access token")
	}
	slog.Info("user logged out", "user_id", actor.UserID)
	return nil
}
