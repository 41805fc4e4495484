package auth

import (
	"context"

	"gitlab.com/codeclass-2026.net/internal/domain"
)

// Credentials carries whatever a provider needs to identify the account.
type Credentials struct {
	Email    string
	Password string
	Name     string
	GoogleID string
}

type IAuthService interface {
	ProviderName() domain.Provider
	Login(ctx context.Context, creds Credentials) (*domain.LoginResponse, error)
	Signup(ctx context.Context, creds Credentials) (*domain.LoginResponse, error)
}
