// Package token issues and verifies the access/refresh token pairs of the
// session lifecycle. Tokens are HS256 JWTs; refresh tokens can be revoked
// ahead of expiry through a revocation store keyed by token id.
package token

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/bekbolotov/movie-catalog-api/internal/domain"
)

const (
	UseAccess  = "access"
	UseRefresh = "refresh"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims carries the authenticated identity. Role is the user's standing at
// issue time; TokenUse prevents a refresh token from passing as an access
// token and vice versa.
type Claims struct {
	jwt.RegisteredClaims
	Role     string `json:"role"`
	TokenUse string `json:"token_use"`
}

// UserID parses the subject claim. Verification rejects tokens whose
// subject is absent or not a positive integer, so callers holding verified
// claims always get a real id.
func (c *Claims) UserID() int {
	id, _ := strconv.Atoi(c.Subject)
	return id
}

type Pair struct {
	Access  string
	Refresh string
}

type Authority struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	revoked    domain.RevocationStore

	now func() time.Time
}

func NewAuthority(secret string, accessTTL, refreshTTL time.Duration, revoked domain.RevocationStore) *Authority {
	return &Authority{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		revoked:    revoked,
		now:        time.Now,
	}
}

// IssuePair mints a fresh access/refresh pair for the user. Refresh tokens
// are not rotated on use; a previously issued refresh token stays valid
// until its own expiry or explicit revocation.
func (a *Authority) IssuePair(user *domain.User) (*Pair, error) {
	now := a.now()

	access, err := a.sign(user, now, a.accessTTL, UseAccess)
	if err != nil {
		return nil, err
	}

	refresh, err := a.sign(user, now, a.refreshTTL, UseRefresh)
	if err != nil {
		return nil, err
	}

	return &Pair{Access: access, Refresh: refresh}, nil
}

// RefreshAccess verifies the refresh token and mints a new access token for
// the same identity. The refresh token itself stays live.
func (a *Authority) RefreshAccess(ctx context.Context, refreshToken string) (string, error) {
	claims, err := a.VerifyRefresh(ctx, refreshToken)
	if err != nil {
		return "", err
	}

	now := a.now()
	next := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.Subject,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.accessTTL)),
		},
		Role:     claims.Role,
		TokenUse: UseAccess,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, next).SignedString(a.secret)
}

func (a *Authority) sign(user *domain.User, now time.Time, ttl time.Duration, use string) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(user.ID),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role:     string(user.Status),
		TokenUse: use,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// VerifyAccess validates signature, expiry and token use, returning the
// claims for downstream authorization checks.
func (a *Authority) VerifyAccess(tokenString string) (*Claims, error) {
	return a.verify(tokenString, UseAccess)
}

// VerifyRefresh additionally consults the revocation store; a revoked token
// fails the same way as an invalid one.
func (a *Authority) VerifyRefresh(ctx context.Context, tokenString string) (*Claims, error) {
	claims, err := a.verify(tokenString, UseRefresh)
	if err != nil {
		return nil, err
	}

	revoked, err := a.revoked.IsRevoked(ctx, revocationKey(claims.ID))
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (a *Authority) verify(tokenString, use string) (*Claims, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return a.secret, nil
	}, jwt.WithTimeFunc(a.now), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.TokenUse != use || claims.ID == "" || claims.UserID() == 0 {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Revoke parses the refresh token and adds its id to the revocation store
// with the token's remaining lifetime as TTL. Malformed tokens fail with
// ErrInvalidToken; revoking twice is a no-op.
func (a *Authority) Revoke(ctx context.Context, tokenString string) error {
	claims, err := a.verify(tokenString, UseRefresh)
	if err != nil {
		return err
	}

	ttl := claims.ExpiresAt.Sub(a.now())
	if ttl <= 0 {
		return ErrInvalidToken
	}

	return a.revoked.Revoke(ctx, revocationKey(claims.ID), ttl)
}

// revocationKey hashes the token id so the raw identifier never reaches the
// shared store.
func revocationKey(jti string) string {
	sum := sha256.Sum256([]byte(jti))
	return hex.EncodeToString(sum[:])
}
