package auth

import (
	"context"
	"errors"
	"testing"

	"gitlab.com/codeclass-2026.net/internal/adapter/crypto"
	"gitlab.com/codeclass-2026.net/internal/adapter/jsonstore"
	"gitlab.com/codeclass-2026.net/internal/config"
	"gitlab.com/codeclass-2026.net/internal/static/errs"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Warn(msg string, args ...interface{})  {}

func newLocal(t *testing.T, adminEmails []string) (IAuthService, *jsonstore.Store) {
	t.Helper()
	store, err := jsonstore.New(t.TempDir(), nopLogger{})
	if err != nil {
		t.Fatalf("jsonstore.New: %v", err)
	}
	jwtProvider := crypto.NewJWTService(&config.JwtConfig{Secret: "test-secret"})
	return NewLocalAuthService(store, jwtProvider, adminEmails, nopLogger{}), store
}

func TestSignupThenLogin(t *testing.T) {
	svc, _ := newLocal(t, nil)
	ctx := context.Background()

	signedUp, err := svc.Signup(ctx, Credentials{Email: "alice@example.com", Password: "hunter2"})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if signedUp.Token == "" {
		t.Errorf("signup should issue a token")
	}
	if signedUp.User.Name != "alice" {
		t.Errorf("name should default to the email prefix, got %q", signedUp.User.Name)
	}

	loggedIn, err := svc.Login(ctx, Credentials{Email: "alice@example.com", Password: "hunter2"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if loggedIn.User.ID != signedUp.User.ID {
		t.Errorf("login should resolve the same account")
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _ := newLocal(t, nil)
	ctx := context.Background()

	if _, err := svc.Signup(ctx, Credentials{Email: "a@b.c", Password: "x"}); err != nil {
		t.Fatalf("Signup: %v", err)
	}
	_, err := svc.Signup(ctx, Credentials{Email: "a@b.c", Password: "y"})
	if !errors.Is(err, errs.EmailTaken) {
		t.Errorf("want EmailTaken, got %v", err)
	}
}

func TestSignupMissingFields(t *testing.T) {
	svc, _ := newLocal(t, nil)
	_, err := svc.Signup(context.Background(), Credentials{Email: "a@b.c"})
	if !errors.Is(err, errs.EmailRequired) {
		t.Errorf("want EmailRequired, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newLocal(t, nil)
	ctx := context.Background()

	if _, err := svc.Signup(ctx, Credentials{Email: "a@b.c", Password: "right"}); err != nil {
		t.Fatal(err)
	}
	_, err := svc.Login(ctx, Credentials{Email: "a@b.c", Password: "wrong"})
	if !errors.Is(err, errs.InvalidCredentials) {
		t.Errorf("want InvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownAccount(t *testing.T) {
	svc, _ := newLocal(t, nil)
	_, err := svc.Login(context.Background(), Credentials{Email: "nobody@b.c", Password: "x"})
	if !errors.Is(err, errs.InvalidCredentials) {
		t.Errorf("want InvalidCredentials, got %v", err)
	}
}

func TestAdminBootstrap(t *testing.T) {
	svc, _ := newLocal(t, []string{"admin@example.com"})
	resp, err := svc.Signup(context.Background(), Credentials{Email: "admin@example.com", Password: "x"})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if !resp.User.IsAdmin {
		t.Errorf("listed email should become admin on signup")
	}
}

func TestAdminBackfillOnLogin(t *testing.T) {
	ctx := context.Background()
	store, err := jsonstore.New(t.TempDir(), nopLogger{})
	if err != nil {
		t.Fatal(err)
	}
	jwtProvider := crypto.NewJWTService(&config.JwtConfig{Secret: "test-secret"})

	// Account created before the address was on the admin list.
	before := NewLocalAuthService(store, jwtProvider, nil, nopLogger{})
	if _, err := before.Signup(ctx, Credentials{Email: "late@example.com", Password: "x"}); err != nil {
		t.Fatal(err)
	}

	after := NewLocalAuthService(store, jwtProvider, []string{"late@example.com"}, nopLogger{})
	resp, err := after.Login(ctx, Credentials{Email: "late@example.com", Password: "x"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !resp.User.IsAdmin {
		t.Errorf("admin flag should be backfilled on login")
	}
}

func TestGoogleLoginProvisionsOnFirstUse(t *testing.T) {
	store, err := jsonstore.New(t.TempDir(), nopLogger{})
	if err != nil {
		t.Fatal(err)
	}
	jwtProvider := crypto.NewJWTService(&config.JwtConfig{Secret: "test-secret"})
	svc := NewGoogleAuthService(store, jwtProvider, nopLogger{})
	ctx := context.Background()

	creds := Credentials{Email: "g@example.com", Name: "G", GoogleID: "google-1"}
	first, err := svc.Login(ctx, creds)
	if err != nil {
		t.Fatalf("first login: %v", err)
	}
	second, err := svc.Login(ctx, creds)
	if err != nil {
		t.Fatalf("second login: %v", err)
	}
	if first.User.ID != second.User.ID {
		t.Errorf("repeat google login should reuse the provisioned account")
	}
}

func TestGoogleSignupUnsupported(t *testing.T) {
	store, err := jsonstore.New(t.TempDir(), nopLogger{})
	if err != nil {
		t.Fatal(err)
	}
	jwtProvider := crypto.NewJWTService(&config.JwtConfig{Secret: "test-secret"})
	svc := NewGoogleAuthService(store, jwtProvider, nopLogger{})

	_, err = svc.Signup(context.Background(), Credentials{Email: "g@example.com"})
	if !errors.Is(err, errs.UnsupportedProvider) {
		t.Errorf("want UnsupportedProvider, got %v", err)
	}
}
