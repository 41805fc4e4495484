package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"gitlab.com/codeclass-2026.net/internal/adapter/crypto"
	"gitlab.com/codeclass-2026.net/internal/config"
)

func newJWT() (*MiddlewareProvider, func(claims map[string]interface{}) string) {
	svc := crypto.NewJWTService(&config.JwtConfig{Secret: "test-secret"})
	sign := func(claims map[string]interface{}) string {
		tok, err := svc.GenerateTokenHMAC(context.Background(), jwt.SigningMethodHS256.Name, claims)
		if err != nil {
			panic(err)
		}
		return tok
	}
	return NewMiddlewareProvider(svc), sign
}

func okHandler(t *testing.T, wantUser string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		if !ok {
			t.Errorf("identity missing from context")
		}
		if identity.UserID != wantUser {
			t.Errorf("identity = %q, want %q", identity.UserID, wantUser)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestJWTMiddlewareAcceptsValidToken(t *testing.T) {
	mw, sign := newJWT()
	token := sign(map[string]interface{}{"id": "u1", "email": "a@b.c"})

	req := httptest.NewRequest(http.MethodGet, "/api/rooms", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	mw.JWTMiddleware(okHandler(t, "u1")).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestJWTMiddlewareRejectsMissingHeader(t *testing.T) {
	mw, _ := newJWT()
	req := httptest.NewRequest(http.MethodGet, "/api/rooms", nil)
	rec := httptest.NewRecorder()
	mw.JWTMiddleware(http.NotFoundHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestJWTMiddlewareRejectsGarbageToken(t *testing.T) {
	mw, _ := newJWT()
	req := httptest.NewRequest(http.MethodGet, "/api/rooms", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rec := httptest.NewRecorder()
	mw.JWTMiddleware(http.NotFoundHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestJWTMiddlewareRejectsWrongSecret(t *testing.T) {
	other := crypto.NewJWTService(&config.JwtConfig{Secret: "other-secret"})
	forged, err := other.GenerateTokenHMAC(context.Background(), jwt.SigningMethodHS256.Name,
		map[string]interface{}{"id": "u1"})
	if err != nil {
		t.Fatal(err)
	}

	mw, _ := newJWT()
	req := httptest.NewRequest(http.MethodGet, "/api/rooms", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	rec := httptest.NewRecorder()
	mw.JWTMiddleware(http.NotFoundHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
