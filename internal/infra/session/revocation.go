package session

import (
	"context"
	"strconv"
	"time"

	"nagoyameshi/internal/infra/metrics"
	"nagoyameshi/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix    = "revoked:"
	cutoffPrefix = "cutoff:"
)

// RevocationStore remembers revoked token ids until the token would have
// expired anyway.
type RevocationStore struct {
	client  *redis.Client
	metrics *metrics.Registry
	now     func() time.Time
}

func NewRevocationStore(client *redis.Client, m *metrics.Registry) *RevocationStore {
	return &RevocationStore{client: client, metrics: m, now: time.Now}
}

func (s *RevocationStore) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	if tokenID == "" {
		return nil
	}
	if err := s.client.Set(ctx, keyPrefix+tokenID, 1, s.ttl(until)).Err(); err != nil {
		s.observe("error")
		return errs.Wrap(err, "failed to revoke token")
	}
	s.observe("revoke")
	return nil
}

func (s *RevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}
	n, err := s.client.Exists(ctx, keyPrefix+tokenID).Result()
	if err != nil {
		s.observe("error")
		return false, errs.Wrap(err, "failed to check token revocation")
	}
	if n > 0 {
		s.observe("hit")
		return true, nil
	}
	s.observe("miss")
	return false, nil
}

// RevokeIssuedBefore records a per-user cutoff. Access tokens issued before it
// are rejected until until, by which time they have all expired.
func (s *RevocationStore) RevokeIssuedBefore(ctx context.Context, userID int64, cutoff, until time.Time) error {
	if err := s.client.Set(ctx, cutoffKey(userID), cutoff.Unix(), s.ttl(until)).Err(); err != nil {
		s.observe("error")
		return errs.Wrap(err, "failed to record token cutoff")
	}
	s.observe("cutoff")
	return nil
}

// IssuedBeforeCutoff compares at second precision, the precision of the iat claim.
func (s *RevocationStore) IssuedBeforeCutoff(ctx context.Context, userID int64, issuedAt time.Time) (bool, error) {
	cutoff, err := s.client.Get(ctx, cutoffKey(userID)).Int64()
	if errs.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		s.observe("error")
		return false, errs.Wrap(err, "failed to read token cutoff")
	}
	if issuedAt.Unix() < cutoff {
		s.observe("hit")
		return true, nil
	}
	return false, nil
}

func (s *RevocationStore) ttl(until time.Time) time.Duration {
	ttl := until.Sub(s.now())
	if ttl < time.Second {
		ttl = time.Second
	}
	return ttl
}

func cutoffKey(userID int64) string {
	return cutoffPrefix + strconv.FormatInt(userID, 10)
}

func (s *RevocationStore) observe(event string) {
	if s.metrics != nil {
		s.metrics.ObserveRevocation(event)
	}
}
