package domain

import (
	"context"
	"time"
)

// RevocationStore is the set of refresh-token identifiers no longer
// honored. Lookups happen on every refresh; writes only on logout. Entries
// expire with the token they revoke, so the store prunes itself.
type RevocationStore interface {
	Revoke(ctx context.Context, id string, ttl time.Duration) error
	IsRevoked(ctx context.Context, id string) (bool, error)
}
