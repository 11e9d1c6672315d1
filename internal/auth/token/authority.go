// Package token issues, verifies and revokes signed session tokens
package token

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrInvalidToken is returned for malformed, tampered or revoked tokens
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired is returned for well-formed tokens past their expiry
	ErrTokenExpired = errors.New("token expired")
)

// Claims is the identity carried by a session token
type Claims struct {
	// ID is the unique token id (jti)
	ID       string
	UserID   int
	Role     string
	SchoolID *int
	IssuedAt time.Time
	// ExpiresAt is truncated to whole seconds, as encoded in the token
	ExpiresAt time.Time
}

// Token is a freshly issued session token
type Token struct {
	Value     string
	ID        string
	ExpiresAt time.Time
}

// Authority is the interface that wraps token issuance, verification and revocation.
type Authority interface {
	// Method Issue signs a new token for the given claims that expires after ttl.
	//
	// ID, IssuedAt and ExpiresAt of "claims" are ignored and set by the authority.
	Issue(ctx context.Context, claims Claims, ttl time.Duration) (*Token, error)
	// Method Verify checks signature, expiry and revocation and returns the token claims.
	//
	// The error is ErrTokenExpired for expired tokens and ErrInvalidToken for anything else that is not accepted.
	Verify(ctx context.Context, token string) (*Claims, error)
	// Method Revoke makes a currently valid token unusable until it would have expired.
	Revoke(ctx context.Context, token string) error
}

// RevocationStore is the interface that wraps persistence of revoked token ids.
type RevocationStore interface {
	// Method Revoke records the token id "jti" of user "userID" as revoked until "expiresAt".
	Revoke(ctx context.Context, jti string, userID int, expiresAt time.Time) error
	// Method IsRevoked reports whether the token id has been revoked.
	IsRevoked(ctx context.Context, jti string) (bool, error)
	// Method Purge removes records for tokens that expired at or before "now" and returns how many were removed.
	Purge(ctx context.Context, now time.Time) (int, error)
}
