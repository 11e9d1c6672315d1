package middleware

import (
	"net/http"

	"github.com/spksaw/backend/internal/auth/token"
	"github.com/spksaw/backend/internal/middlewares"
	"github.com/spksaw/backend/internal/models"
	"go.uber.org/zap"
)

// RoleMiddleware verifies the bearer token and checks that the role claim is at least requiredRole
func RoleMiddleware(authority token.Authority, requiredRole models.Role, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, ok := authenticate(w, r, authority, logger)
			if !ok {
				return
			}

			claims, _ := GetClaims(ctx)
			if !models.Role(claims.Role).AtLeast(requiredRole) {
				middlewares.WriteError(w, http.StatusForbidden, MessageForbidden)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
