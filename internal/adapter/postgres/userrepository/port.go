package userrepository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"gitlab.com/codeclass-2026.net/internal/core/ports/primary"
	"gitlab.com/codeclass-2026.net/internal/core/ports/secondary"
	"gitlab.com/codeclass-2026.net/internal/domain"
)

var _ secondary.UserPort = (*userRepo)(nil)

const userColumns = `id, email, name, password_hash, auth_provider, google_id, is_admin, created_at`

type userRepo struct {
	db     *sqlx.DB
	logger primary.Logger
}

func New(db *sqlx.DB, logger primary.Logger) secondary.UserPort {
	return &userRepo{db: db, logger: logger}
}

func (u userRepo) Create(ctx context.Context, user *domain.User) error {
	_, err := u.db.ExecContext(ctx,
		`INSERT INTO users (id, email, name, password_hash, auth_provider, google_id, is_admin, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Email, user.Name, user.PasswordHash,
		user.AuthProvider, user.GoogleID, user.IsAdmin, user.CreatedAt)
	return err
}

func (u userRepo) Update(ctx context.Context, user *domain.User) error {
	_, err := u.db.ExecContext(ctx,
		`UPDATE users SET email = $2, name = $3, password_hash = $4, is_admin = $5 WHERE id = $1`,
		user.ID, user.Email, user.Name, user.PasswordHash, user.IsAdmin)
	return err
}

func (u userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return u.getWhere(ctx, `id = $1`, id)
}

func (u userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return u.getWhere(ctx, `email = $1`, email)
}

func (u userRepo) GetByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	return u.getWhere(ctx, `google_id = $1`, googleID)
}

func (u userRepo) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := u.db.SelectContext(ctx, &users,
		`SELECT `+userColumns+` FROM users ORDER BY created_at`)
	return users, err
}

func (u userRepo) getWhere(ctx context.Context, cond string, arg interface{}) (*domain.User, error) {
	var user domain.User
	err := u.db.GetContext(ctx, &user,
		`SELECT `+userColumns+` FROM users WHERE `+cond, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
