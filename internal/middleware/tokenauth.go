// Package middleware provides HTTP middlewares for authentication and logging.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/avoronin/bookstore/internal/models"
	"github.com/avoronin/bookstore/internal/token"
)

type ctxKey string

const claimsKey ctxKey = "claims"

const bearerPrefix = "Bearer "

// TokenVerifier checks a session token and returns its claims.
type TokenVerifier interface {
	Verify(tokenString string) (*token.Claims, error)
}

// BearerAuth is a middleware that enforces bearer-token authentication.
//
// It reads the Authorization header, verifies the token's signature and
// expiry, and stores the embedded claims in the request context for
// downstream handlers. Every verification failure (missing header, bad
// signature, expired, malformed) collapses to the same 401 response so
// callers get no oracle about why a token was rejected.
func BearerAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				unauthorized(w)
				return
			}
			claims, err := verifier.Verify(strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				unauthorized(w)
				return
			}
			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a route group on the authenticated user's role.
// It must run after BearerAuth; requests without matching claims get 403.
func RequireRole(role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := GetClaimsFromContext(r.Context())
			if !token.Authorize(claims, role) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_ = json.NewEncoder(w).Encode(map[string]string{"message": "Admin access required"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetClaimsFromContext extracts the verified token claims from the request
// context. Returns nil if the request did not pass BearerAuth.
func GetClaimsFromContext(ctx context.Context) *token.Claims {
	val := ctx.Value(claimsKey)
	if c, ok := val.(*token.Claims); ok {
		return c
	}
	return nil
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
}
