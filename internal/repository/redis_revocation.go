package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "revoked:"

// RedisRevocationStore keeps revoked refresh token identifiers until their
// natural expiry. A key that outlives the token's TTL serves no purpose, so
// entries are set with the remaining lifetime and Redis evicts them itself.
type RedisRevocationStore struct {
	client *redis.Client
}

func NewRedisRevocationStore(client *redis.Client) *RedisRevocationStore {
	return &RedisRevocationStore{
		client: client,
	}
}

func (s *RedisRevocationStore) Revoke(ctx context.Context, id string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	return s.client.Set(ctx, revokedKeyPrefix+id, "1", ttl).Err()
}

func (s *RedisRevocationStore) IsRevoked(ctx context.Context, id string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKeyPrefix+id).Result()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}
