package secondary

import (
	"context"

	"gitlab.com/codeclass-2026.net/internal/domain"
)

// UserPort owns account records. Lookups return (nil, nil) when the user
// does not exist.
type UserPort interface {
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByGoogleID(ctx context.Context, googleID string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}
