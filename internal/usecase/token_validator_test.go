//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"nagoyameshi/internal/domain/user"
	"nagoyameshi/internal/pkg/errs"
	"nagoyameshi/internal/pkg/jwt"
	"nagoyameshi/internal/usecase"
	commandsmock "nagoyameshi/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestValidateToken(t *testing.T) {
	ctx := context.Background()
	service := jwt.NewService("validator-test-secret", 15*time.Minute, time.Hour)

	issue := func(t *testing.T) jwt.TokenPair {
		t.Helper()
		pair, err := service.GenerateTokenPair(9, user.RolePaidMember)
		require.NoError(t, err)
		return pair
	}

	t.Run("live token yields the actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		revoker := commandsmock.NewMockTokenRevoker(ctrl)
		pair := issue(t)
		revoker.EXPECT().IsRevoked(ctx, pair.AccessTokenID).Return(false, nil)
		revoker.EXPECT().IssuedBeforeCutoff(ctx, int64(9), gomock.Any()).Return(false, nil)

		actor, err := usecase.NewTokenValidator(service, revoker).ValidateToken(ctx, pair.AccessToken)

		require.NoError(t, err)
		assert.Equal(t, int64(9), actor.UserID)
		assert.Equal(t, user.RolePaidMember, actor.Role)
		assert.Equal(t, pair.AccessTokenID, actor.TokenID)
	})

	t.Run("revoked token id is refused before the cutoff lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		revoker := commandsmock.NewMockTokenRevoker(ctrl)
		pair := issue(t)
		revoker.EXPECT().IsRevoked(ctx, pair.AccessTokenID).Return(true, nil)
		revoker.EXPECT().IssuedBeforeCutoff(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := usecase.NewTokenValidator(service, revoker).ValidateToken(ctx, pair.AccessToken)

		assert.True(t, errs.Is(err, usecase.ErrTokenRevoked))
	})

	t.Run("token from before a role change is refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		revoker := commandsmock.NewMockTokenRevoker(ctrl)
		pair := issue(t)
		revoker.EXPECT().IsRevoked(ctx, pair.AccessTokenID).Return(false, nil)
		revoker.EXPECT().IssuedBeforeCutoff(ctx, int64(9), gomock.Any()).Return(true, nil)

		_, err := usecase.NewTokenValidator(service, revoker).ValidateToken(ctx, pair.AccessToken)

		assert.True(t, errs.Is(err, usecase.ErrTokenRevoked))
	})

	t.Run("store outage does not lock members out", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		revoker := commandsmock.NewMockTokenRevoker(ctrl)
		pair := issue(t)
		revoker.EXPECT().IsRevoked(ctx, pair.AccessTokenID).Return(false, errors.New("redis down"))
		revoker.EXPECT().IssuedBeforeCutoff(ctx, int64(9), gomock.Any()).Return(false, errors.New("redis down"))

		actor, err := usecase.NewTokenValidator(service, revoker).ValidateToken(ctx, pair.AccessToken)

		require.NoError(t, err)
		assert.Equal(t, int64(9), actor.UserID)
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		revoker := commandsmock.NewMockTokenRevoker(ctrl)
		pair := issue(t)

		_, err := usecase.NewTokenValidator(service, revoker).ValidateToken(ctx, pair.RefreshToken)

		assert.ErrorIs(t, err, jwt.ErrWrongTokenType)
	})
}
