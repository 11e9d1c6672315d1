package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/spksaw/backend/internal/auth/token"
	"github.com/spksaw/backend/internal/middlewares"
	"go.uber.org/zap"
)

type contextKey string

const (
	claimsKey contextKey = "claims"
	tokenKey  contextKey = "token"
)

// Messages returned when a protected route rejects a request
const (
	MessageUnauthenticated = "Tidak terautentikasi"
	MessageInvalidToken    = "Token tidak valid"
	MessageTokenExpired    = "Token telah kedaluwarsa"
	MessageForbidden       = "Akses ditolak"
)

// AuthMiddleware verifies the bearer token and stores its claims in the request context
func AuthMiddleware(authority token.Authority, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, ok := authenticate(w, r, authority, logger)
			if !ok {
				return
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// authenticate extracts and verifies the token, writing the error response itself when it fails
func authenticate(w http.ResponseWriter, r *http.Request, authority token.Authority, logger *zap.Logger) (context.Context, bool) {
	raw := extractToken(r)
	if raw == "" {
		middlewares.WriteError(w, http.StatusUnauthorized, MessageUnauthenticated)
		return nil, false
	}

	claims, err := authority.Verify(r.Context(), raw)
	switch {
	case err == nil:
	case errors.Is(err, token.ErrTokenExpired):
		middlewares.WriteError(w, http.StatusUnauthorized, MessageTokenExpired)
		return nil, false
	case errors.Is(err, token.ErrInvalidToken):
		middlewares.WriteError(w, http.StatusUnauthorized, MessageInvalidToken)
		return nil, false
	default:
		logger.Error("failed to verify token", zap.Error(err))
		middlewares.WriteError(w, http.StatusInternalServerError, "Terjadi kesalahan pada server")
		return nil, false
	}

	ctx := context.WithValue(r.Context(), claimsKey, claims)
	ctx = context.WithValue(ctx, tokenKey, raw)
	return ctx, true
}

// extractToken reads the token from the Authorization header, falling back to the access_token cookie
func extractToken(r *http.Request) string {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		// Expected format: "Bearer <token>"
		parts := strings.Fields(authHeader)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
		return ""
	}

	if cookie, err := r.Cookie("access_token"); err == nil {
		return cookie.Value
	}
	return ""
}

// GetClaims retrieves the verified token claims from context
func GetClaims(ctx context.Context) (*token.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*token.Claims)
	return claims, ok
}

// GetUserID retrieves the authenticated user ID from context
func GetUserID(ctx context.Context) (int, bool) {
	claims, ok := GetClaims(ctx)
	if !ok {
		return 0, false
	}
	return claims.UserID, true
}

// GetToken retrieves the raw verified token from context
func GetToken(ctx context.Context) (string, bool) {
	raw, ok := ctx.Value(tokenKey).(string)
	return raw, ok
}
