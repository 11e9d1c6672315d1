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
)

// mockRevocationStore is an in-memory implementation of RevocationStore
type mockRevocationStore struct {
	revoked   map[string]time.Time
	err       error
	revokeErr error
}

func newMockRevocationStore() *mockRevocationStore {
	return &mockRevocationStore{revoked: map[string]time.Time{}}
}

func (m *mockRevocationStore) Revoke(ctx context.Context, jti string, userID int, expiresAt time.Time) error {
	if m.revokeErr != nil {
		return m.revokeErr
	}
	m.revoked[jti] = expiresAt
	return nil
}

func (m *mockRevocationStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.revoked[jti]
	return ok, nil
}

func (m *mockRevocationStore) Purge(ctx context.Context, now time.Time) (int, error) {
	return 0, nil
}

func newTestAuthority(t *testing.T, store RevocationStore) *JWTAuthority {
	t.Helper()
	a, err := NewJWTAuthority("test-secret", "spksaw", store)
	require.NoError(t, err)
	return a
}

func intPtr(i int) *int { return &i }

func TestNewJWTAuthority(t *testing.T) {
	_, err := NewJWTAuthority("", "spksaw", newMockRevocationStore())
	assert.Error(t, err)

	_, err = NewJWTAuthority("secret", "spksaw", nil)
	assert.Error(t, err)

	a, err := NewJWTAuthority("secret", "spksaw", newMockRevocationStore())
	require.NoError(t, err)
	assert.NotNil(t, a)
}

func TestJWTAuthority_IssueAndVerify(t *testing.T) {
	tests := []struct {
		name     string
		claims   Claims
		schoolID *int
	}{
		{name: "user without school", claims: Claims{UserID: 1, Role: "super_admin"}},
		{name: "user with school", claims: Claims{UserID: 9, Role: "admin", SchoolID: intPtr(2)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAuthority(t, newMockRevocationStore())

			issued, err := a.Issue(context.Background(), tt.claims, time.Hour)
			require.NoError(t, err)
			assert.NotEmpty(t, issued.Value)
			assert.NotEmpty(t, issued.ID)
			assert.WithinDuration(t, time.Now().Add(time.Hour), issued.ExpiresAt, 2*time.Second)

			claims, err := a.Verify(context.Background(), issued.Value)
			require.NoError(t, err)
			assert.Equal(t, issued.ID, claims.ID)
			assert.Equal(t, tt.claims.UserID, claims.UserID)
			assert.Equal(t, tt.claims.Role, claims.Role)
			assert.Equal(t, tt.claims.SchoolID, claims.SchoolID)
			assert.True(t, issued.ExpiresAt.Equal(claims.ExpiresAt))
		})
	}
}

func TestJWTAuthority_IssueUniqueIDs(t *testing.T) {
	a := newTestAuthority(t, newMockRevocationStore())

	first, err := a.Issue(context.Background(), Claims{UserID: 1, Role: "user"}, time.Hour)
	require.NoError(t, err)
	second, err := a.Issue(context.Background(), Claims{UserID: 1, Role: "user"}, time.Hour)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.Value, second.Value)
}

func TestJWTAuthority_IssueInvalidTTL(t *testing.T) {
	a := newTestAuthority(t, newMockRevocationStore())

	_, err := a.Issue(context.Background(), Claims{UserID: 1}, 0)
	assert.Error(t, err)
}

func TestJWTAuthority_VerifyExpired(t *testing.T) {
	a := newTestAuthority(t, newMockRevocationStore())
	issued, err := a.Issue(context.Background(), Claims{UserID: 1, Role: "user"}, time.Minute)
	require.NoError(t, err)

	a.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	_, err = a.Verify(context.Background(), issued.Value)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.NotErrorIs(t, err, ErrInvalidToken)
}

func TestJWTAuthority_VerifyInvalid(t *testing.T) {
	a := newTestAuthority(t, newMockRevocationStore())
	issued, err := a.Issue(context.Background(), Claims{UserID: 1, Role: "user"}, time.Hour)
	require.NoError(t, err)

	other, err := NewJWTAuthority("another-secret", "spksaw", newMockRevocationStore())
	require.NoError(t, err)
	foreign, err := other.Issue(context.Background(), Claims{UserID: 1, Role: "super_admin"}, time.Hour)
	require.NoError(t, err)

	parts := strings.Split(issued.Value, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "1", "jti": "abc", "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	wrongIssuer, err := NewJWTAuthority("test-secret", "someone-else", newMockRevocationStore())
	require.NoError(t, err)
	foreignIssuer, err := wrongIssuer.Issue(context.Background(), Claims{UserID: 1}, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "empty", token: ""},
		{name: "tampered payload", token: tampered},
		{name: "signed with another secret", token: foreign.Value},
		{name: "alg none", token: noneToken},
		{name: "foreign issuer", token: foreignIssuer.Value},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Verify(context.Background(), tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestJWTAuthority_Revoke(t *testing.T) {
	store := newMockRevocationStore()
	a := newTestAuthority(t, store)
	issued, err := a.Issue(context.Background(), Claims{UserID: 5, Role: "admin"}, time.Hour)
	require.NoError(t, err)

	require.NoError(t, a.Revoke(context.Background(), issued.Value))
	assert.True(t, store.revoked[issued.ID].Equal(issued.ExpiresAt))

	_, err = a.Verify(context.Background(), issued.Value)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTAuthority_RevokeErrors(t *testing.T) {
	store := newMockRevocationStore()
	a := newTestAuthority(t, store)

	err := a.Revoke(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)

	issued, err := a.Issue(context.Background(), Claims{UserID: 5}, time.Hour)
	require.NoError(t, err)
	store.revokeErr = errors.New("database down")

	err = a.Revoke(context.Background(), issued.Value)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database down")
}

func TestJWTAuthority_VerifyStoreError(t *testing.T) {
	store := newMockRevocationStore()
	a := newTestAuthority(t, store)
	issued, err := a.Issue(context.Background(), Claims{UserID: 5}, time.Hour)
	require.NoError(t, err)

	store.err = errors.New("redis unavailable")

	_, err = a.Verify(context.Background(), issued.Value)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidToken)
	assert.NotErrorIs(t, err, ErrTokenExpired)
}
