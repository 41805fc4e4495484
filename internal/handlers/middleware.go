package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"gitlab.com/codeclass-2026.net/internal/core/ports/primary"
	"gitlab.com/codeclass-2026.net/internal/domain"
)

type ctxKey int

const identityKey ctxKey = iota

type MiddlewareProvider struct {
	jwtService primary.JWTService
}

func NewMiddlewareProvider(jwtService primary.JWTService) *MiddlewareProvider {
	return &MiddlewareProvider{jwtService: jwtService}
}

// JWTMiddleware verifies the bearer token and stores the caller identity in
// the request context. Every route behind it can assume an authenticated
// caller.
func (m *MiddlewareProvider) JWTMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			ResponseError(w, "Authorization header missing", http.StatusUnauthorized)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		valid, err := m.jwtService.VerifyTokenHMAC(r.Context(), tokenString, jwt.SigningMethodHS256.Name)
		if err != nil || !valid {
			ResponseError(w, "invalid token", http.StatusUnauthorized)
			return
		}

		payload, err := m.jwtService.DecodeTokenPayload(r.Context(), tokenString)
		if err != nil || payload.UserID == "" {
			ResponseError(w, "invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, payload)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// IdentityFromContext returns the authenticated caller placed by
// JWTMiddleware.
func IdentityFromContext(ctx context.Context) (domain.AuthPayload, bool) {
	payload, ok := ctx.Value(identityKey).(domain.AuthPayload)
	return payload, ok
}

// ContextWithIdentity injects an identity directly; used by tests.
func ContextWithIdentity(ctx context.Context, identity domain.AuthPayload) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}
