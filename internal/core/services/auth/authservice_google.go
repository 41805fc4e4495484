package auth

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"gitlab.com/codeclass-2026.net/internal/core/ports/primary"
	"gitlab.com/codeclass-2026.net/internal/core/ports/secondary"
	"gitlab.com/codeclass-2026.net/internal/domain"
	"gitlab.com/codeclass-2026.net/internal/static/errs"
)

var _ IAuthService = &googleAuthService{}

type googleAuthService struct {
	userPort    secondary.UserPort
	jwtProvider primary.JWTService
	logger      primary.Logger
}

func NewGoogleAuthService(
	userPort secondary.UserPort,
	jwtProvider primary.JWTService,
	logger primary.Logger,
) IAuthService {
	return &googleAuthService{
		userPort:    userPort,
		jwtProvider: jwtProvider,
		logger:      logger,
	}
}

func (g googleAuthService) ProviderName() domain.Provider {
	return domain.ProviderGoogle
}

// Login finds or provisions the account for a verified Google identity.
func (g googleAuthService) Login(ctx context.Context, creds Credentials) (*domain.LoginResponse, error) {
	if creds.GoogleID == "" {
		return nil, errs.InvalidCredentials
	}
	if creds.Email == "" {
		return nil, errs.EmailRequired
	}

	usr, err := g.userPort.GetByGoogleID(ctx, creds.GoogleID)
	if err != nil {
		return nil, errs.InternalError
	}
	if usr == nil {
		name := creds.Name
		if name == "" {
			name = strings.SplitN(creds.Email, "@", 2)[0]
		}
		googleID := creds.GoogleID
		usr = &domain.User{
			ID:           uuid.New(),
			Email:        creds.Email,
			Name:         name,
			AuthProvider: string(domain.ProviderGoogle),
			GoogleID:     &googleID,
			CreatedAt:    time.Now(),
		}
		if err := g.userPort.Create(ctx, usr); err != nil {
			g.logger.Error("Failed to provision google user", "email", creds.Email, "error", err)
			return nil, errs.FailedToCreateUser
		}
	}

	claims := map[string]interface{}{
		"id":    usr.ID.String(),
		"email": usr.Email,
	}
	token, err := g.jwtProvider.GenerateTokenHMAC(ctx, jwt.SigningMethodHS256.Name, claims)
	if err != nil {
		return nil, errs.GeneratingToken
	}
	return &domain.LoginResponse{Token: token, User: usr.Public()}, nil
}

func (g googleAuthService) Signup(ctx context.Context, creds Credentials) (*domain.LoginResponse, error) {
	// Google accounts are provisioned on first login.
	return nil, errs.UnsupportedProvider
}
