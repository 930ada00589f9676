//go:build unit

package session

import (
	"context"
	"testing"
	"time"

	"nagoyameshi/internal/infra/metrics"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*RevocationStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRevocationStore(client, metrics.NewRegistry()), mr
}

func TestRevokeAndCheck(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "jti-1", now.Add(15*time.Minute)))

	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.Equal(t, 15*time.Minute, mr.TTL(keyPrefix+"jti-1"))

	mr.FastForward(16 * time.Minute)

	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRevoke_ExpiredTokenStillGetsShortTTL(t *testing.T) {
	store, mr := newStore(t)
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Revoke(context.Background(), "jti-2", now.Add(-time.Minute)))

	assert.Equal(t, time.Second, mr.TTL(keyPrefix+"jti-2"))
}

func TestEmptyTokenIDIsIgnored(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Revoke(ctx, "", time.Now().Add(time.Hour)))
	revoked, err := store.IsRevoked(ctx, "")

	require.NoError(t, err)
	assert.False(t, revoked)
	assert.Empty(t, mr.Keys())
}

func TestRedisFailure(t *testing.T) {
	store, mr := newStore(t)
	mr.Close()

	_, err := store.IsRevoked(context.Background(), "jti-3")

	assert.Error(t, err)
}

func TestIssuedBeforeCutoff(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	stale, err := store.IssuedBeforeCutoff(ctx, 7, now.Add(-time.Hour))
	require.NoError(t, err)
	assert.False(t, stale, "no cutoff recorded yet")

	require.NoError(t, store.RevokeIssuedBefore(ctx, 7, now, now.Add(15*time.Minute)))
	assert.Equal(t, 15*time.Minute, mr.TTL("cutoff:7"))

	tests := []struct {
		name     string
		userID   int64
		issuedAt time.Time
		want     bool
	}{
		{name: "issued before the cutoff", userID: 7, issuedAt: now.Add(-time.Minute), want: true},
		{name: "issued in the cutoff second", userID: 7, issuedAt: now.Add(500 * time.Millisecond), want: false},
		{name: "issued after the cutoff", userID: 7, issuedAt: now.Add(time.Minute), want: false},
		{name: "other users are untouched", userID: 8, issuedAt: now.Add(-time.Minute), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stale, err := store.IssuedBeforeCutoff(ctx, tt.userID, tt.issuedAt)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stale)
		})
	}

	mr.FastForward(16 * time.Minute)

	stale, err = store.IssuedBeforeCutoff(ctx, 7, now.Add(-time.Minute))
	require.NoError(t, err)
	assert.False(t, stale, "cutoff lapses once older tokens have expired")
}
