package token

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtClaims is the wire form of Claims
type jwtClaims struct {
	Role     string `json:"role"`
	SchoolID *int   `json:"school_id"`
	jwt.RegisteredClaims
}

// JWTAuthority implements Authority with HS256 JWTs
type JWTAuthority struct {
	secret []byte
	issuer string
	store  RevocationStore
	now    func() time.Time
}

// NewJWTAuthority creates a new JWT authority.
// The secret must not be empty; store persists revoked token ids.
func NewJWTAuthority(secret, issuer string, store RevocationStore) (*JWTAuthority, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	if store == nil {
		return nil, fmt.Errorf("revocation store is required")
	}
	return &JWTAuthority{
		secret: []byte(secret),
		issuer: issuer,
		store:  store,
		now:    time.Now,
	}, nil
}

// Issue signs a new token for claims
func (a *JWTAuthority) Issue(ctx context.Context, claims Claims, ttl time.Duration) (*Token, error) {
	if ttl <= 0 {
		return nil, fmt.Errorf("token ttl must be positive")
	}

	now := a.now()
	jti := uuid.NewString()
	expiresAt := now.Add(ttl).Truncate(time.Second)

	wire := jwtClaims{
		Role:     claims.Role,
		SchoolID: claims.SchoolID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   strconv.Itoa(claims.UserID),
			Issuer:    a.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, wire).SignedString(a.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &Token{Value: signed, ID: jti, ExpiresAt: expiresAt}, nil
}

// Verify parses the token and checks that it has not been revoked
func (a *JWTAuthority) Verify(ctx context.Context, tokenString string) (*Claims, error) {
	claims, err := a.parse(tokenString)
	if err != nil {
		return nil, err
	}

	revoked, err := a.store.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check token revocation: %w", err)
	}
	if revoked {
		return nil, fmt.Errorf("token has been revoked: %w", ErrInvalidToken)
	}

	return claims, nil
}

// Revoke stores the token id until the token expires
func (a *JWTAuthority) Revoke(ctx context.Context, tokenString string) error {
	claims, err := a.parse(tokenString)
	if err != nil {
		return err
	}

	if err := a.store.Revoke(ctx, claims.ID, claims.UserID, claims.ExpiresAt); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// parse validates signature and registered claims without consulting the revocation store
func (a *JWTAuthority) parse(tokenString string) (*Claims, error) {
	wire := &jwtClaims{}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}

	parsed, err := jwt.ParseWithClaims(tokenString, wire, func(t *jwt.Token) (any, error) {
		return a.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}

	userID, err := strconv.Atoi(wire.Subject)
	if err != nil || wire.ID == "" {
		return nil, fmt.Errorf("token is missing subject or id: %w", ErrInvalidToken)
	}

	claims := &Claims{
		ID:        wire.ID,
		UserID:    userID,
		Role:      wire.Role,
		SchoolID:  wire.SchoolID,
		ExpiresAt: wire.ExpiresAt.Time,
	}
	if wire.IssuedAt != nil {
		claims.IssuedAt = wire.IssuedAt.Time
	}
	return claims, nil
}
