package token

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bekbolotov/movie-catalog-api/internal/domain"
	"github.com/bekbolotov/movie-catalog-api/internal/mocks"
)

const testSecret = "test-secret-key-for-unit-tests"

func newTestAuthority(store domain.RevocationStore) (*Authority, *time.Time) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	a := NewAuthority(testSecret, 30*time.Minute, 72*time.Hour, store)
	a.now = func() time.Time { return now }

	return a, &now
}

func testUser() *domain.User {
	return &domain.User{ID: 42, Status: domain.UserStatusSimple}
}

func TestIssuePairLifetimes(t *testing.T) {
	a, now := newTestAuthority(mocks.NewMemoryRevocationStore())

	pair, err := a.IssuePair(testUser())
	require.NoError(t, err)

	access, err := a.VerifyAccess(pair.Access)
	require.NoError(t, err)
	assert.Equal(t, 42, access.UserID())
	assert.Equal(t, string(domain.UserStatusSimple), access.Role)
	assert.Equal(t, now.Add(30*time.Minute), access.ExpiresAt.Time)
	assert.Equal(t, *now, access.IssuedAt.Time)

	refresh, err := a.VerifyRefresh(context.Background(), pair.Refresh)
	require.NoError(t, err)
	assert.Equal(t, now.Add(72*time.Hour), refresh.ExpiresAt.Time)

	assert.NotEqual(t, access.ID, refresh.ID, "access and refresh must have distinct ids")
}

func TestVerifyAccessFailures(t *testing.T) {
	a, now := newTestAuthority(mocks.NewMemoryRevocationStore())

	pair, err := a.IssuePair(testUser())
	require.NoError(t, err)

	t.Run("malformed token", func(t *testing.T) {
		_, err := a.VerifyAccess("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("tampered signature", func(t *testing.T) {
		parts := strings.Split(pair.Access, ".")
		tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

		_, err := a.VerifyAccess(tampered)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewAuthority("other-secret", 30*time.Minute, 72*time.Hour, mocks.NewMemoryRevocationStore())
		other.now = a.now

		_, err := other.VerifyAccess(pair.Access)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		*now = now.Add(31 * time.Minute)
		defer func() { *now = now.Add(-31 * time.Minute) }()

		_, err := a.VerifyAccess(pair.Access)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("refresh token does not pass as access token", func(t *testing.T) {
		_, err := a.VerifyAccess(pair.Refresh)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("access token does not pass as refresh token", func(t *testing.T) {
		_, err := a.VerifyRefresh(context.Background(), pair.Access)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unsigned token is rejected", func(t *testing.T) {
		claims := Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "42",
				ID:        "some-id",
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
			TokenUse: UseAccess,
		}
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = a.VerifyAccess(unsigned)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestRevocation(t *testing.T) {
	store := mocks.NewMemoryRevocationStore()
	a, _ := newTestAuthority(store)
	ctx := context.Background()

	first, err := a.IssuePair(testUser())
	require.NoError(t, err)

	second, err := a.IssuePair(testUser())
	require.NoError(t, err)

	// both refresh tokens are valid before logout
	_, err = a.VerifyRefresh(ctx, first.Refresh)
	require.NoError(t, err)
	_, err = a.VerifyRefresh(ctx, second.Refresh)
	require.NoError(t, err)

	require.NoError(t, a.Revoke(ctx, first.Refresh))

	_, err = a.VerifyRefresh(ctx, first.Refresh)
	assert.ErrorIs(t, err, ErrInvalidToken, "revoked refresh token must be rejected")

	_, err = a.VerifyRefresh(ctx, second.Refresh)
	assert.NoError(t, err, "tokens not logged out remain valid")

	t.Run("revoking twice is a no-op", func(t *testing.T) {
		assert.NoError(t, a.Revoke(ctx, first.Refresh))
	})

	t.Run("revoking a malformed token fails", func(t *testing.T) {
		assert.ErrorIs(t, a.Revoke(ctx, "garbage"), ErrInvalidToken)
	})

	t.Run("revoking an access token fails", func(t *testing.T) {
		assert.ErrorIs(t, a.Revoke(ctx, first.Access), ErrInvalidToken)
	})
}

func TestStoreFailuresAreNotTokenErrors(t *testing.T) {
	storeErr := errors.New("redis: connection refused")
	a, _ := newTestAuthority(&mocks.MockRevocationStore{
		RevokeFunc: func(ctx context.Context, id string, ttl time.Duration) error {
			return storeErr
		},
		IsRevokedFunc: func(ctx context.Context, id string) (bool, error) {
			return false, storeErr
		},
	})
	ctx := context.Background()

	pair, err := a.IssuePair(testUser())
	require.NoError(t, err)

	_, err = a.VerifyRefresh(ctx, pair.Refresh)
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrInvalidToken)

	err = a.Revoke(ctx, pair.Refresh)
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrInvalidToken)

	_, err = a.RefreshAccess(ctx, pair.Refresh)
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrInvalidToken)
}
