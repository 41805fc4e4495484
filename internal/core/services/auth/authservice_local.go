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

var _ IAuthService = &localAuthService{}

type localAuthService struct {
	userPort    secondary.UserPort
	jwtProvider primary.JWTService
	logger      primary.Logger
	// adminEmails bootstraps at least one admin account without UI.
	adminEmails []string
}

func NewLocalAuthService(
	userPort secondary.UserPort,
	jwtProvider primary.JWTService,
	adminEmails []string,
	logger primary.Logger,
) IAuthService {
	return &localAuthService{
		userPort:    userPort,
		jwtProvider: jwtProvider,
		logger:      logger,
		adminEmails: adminEmails,
	}
}

func (g localAuthService) ProviderName() domain.Provider {
	return domain.ProviderLocal
}

func (g localAuthService) Signup(ctx context.Context, creds Credentials) (*domain.LoginResponse, error) {
	if creds.Email == "" || creds.Password == "" {
		return nil, errs.EmailRequired
	}

	existing, err := g.userPort.GetByEmail(ctx, creds.Email)
	if err != nil {
		return nil, errs.InternalError
	}
	if existing != nil {
		return nil, errs.EmailTaken
	}

	hash, err := g.jwtProvider.EncryptPassword(ctx, creds.Password)
	if err != nil {
		return nil, errs.InternalError
	}

	name := creds.Name
	if name == "" {
		name = strings.SplitN(creds.Email, "@", 2)[0]
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        creds.Email,
		Name:         name,
		PasswordHash: &hash,
		AuthProvider: string(domain.ProviderLocal),
		IsAdmin:      g.isAdminEmail(creds.Email),
		CreatedAt:    time.Now(),
	}
	if err := g.userPort.Create(ctx, user); err != nil {
		g.logger.Error("Failed to create user", "email", creds.Email, "error", err)
		return nil, errs.FailedToCreateUser
	}

	return g.issue(ctx, user)
}

func (g localAuthService) Login(ctx context.Context, creds Credentials) (*domain.LoginResponse, error) {
	if creds.Email == "" || creds.Password == "" {
		return nil, errs.EmailRequired
	}

	usr, err := g.userPort.GetByEmail(ctx, creds.Email)
	if err != nil {
		return nil, errs.InternalError
	}
	if usr == nil || usr.PasswordHash == nil {
		return nil, errs.InvalidCredentials
	}
	valid, err := g.jwtProvider.VerifyPassword(ctx, *usr.PasswordHash, creds.Password)
	if err != nil || !valid {
		return nil, errs.InvalidCredentials
	}

	// Backfill the admin flag when the env list gained this address after
	// the account was created.
	if g.isAdminEmail(usr.Email) && !usr.IsAdmin {
		usr.IsAdmin = true
		if err := g.userPort.Update(ctx, usr); err != nil {
			g.logger.Warn("Failed to backfill admin flag", "email", usr.Email, "error", err)
		}
	}

	return g.issue(ctx, usr)
}

func (g localAuthService) issue(ctx context.Context, user *domain.User) (*domain.LoginResponse, error) {
	claims := map[string]interface{}{
		"id":    user.ID.String(),
		"email": user.Email,
	}
	token, err := g.jwtProvider.GenerateTokenHMAC(ctx, jwt.SigningMethodHS256.Name, claims)
	if err != nil {
		return nil, errs.GeneratingToken
	}
	return &domain.LoginResponse{Token: token, User: user.Public()}, nil
}

func (g localAuthService) isAdminEmail(email string) bool {
	for _, a := range g.adminEmails {
		if a != "" && a == email {
			return true
		}
	}
	return false
}
