package mocks

import (
	"context"
	"time"
)

type MockRevocationStore struct {
	RevokeFunc    func(ctx context.Context, id string, ttl time.Duration) error
	IsRevokedFunc func(ctx context.Context, id string) (bool, error)
}

func (m *MockRevocationStore) Revoke(ctx context.Context, id string, ttl time.Duration) error {
	return m.RevokeFunc(ctx, id, ttl)
}

func (m *MockRevocationStore) IsRevoked(ctx context.Context, id string) (bool, error) {
	return m.IsRevokedFunc(ctx, id)
}
