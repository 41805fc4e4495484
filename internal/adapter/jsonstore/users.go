package jsonstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gitlab.com/codeclass-2026.net/internal/core/ports/secondary"
	"gitlab.com/codeclass-2026.net/internal/domain"
)

var _ secondary.UserPort = (*Store)(nil)

// userRecord is the on-disk account shape.
type userRecord struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	PasswordHash *string `json:"passwordHash,omitempty"`
	AuthProvider string  `json:"authProvider"`
	GoogleID     *string `json:"googleId,omitempty"`
	IsAdmin      bool    `json:"isAdmin"`
	CreatedAt    int64   `json:"createdAt"`
}

func toRecord(u *domain.User) userRecord {
	return userRecord{
		ID:           u.ID.String(),
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		AuthProvider: u.AuthProvider,
		GoogleID:     u.GoogleID,
		IsAdmin:      u.IsAdmin,
		CreatedAt:    u.CreatedAt.UnixMilli(),
	}
}

func (r userRecord) toDomain() (*domain.User, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, fmt.Errorf("corrupt user record %q: %w", r.ID, err)
	}
	return &domain.User{
		ID:           id,
		Email:        r.Email,
		Name:         r.Name,
		PasswordHash: r.PasswordHash,
		AuthProvider: r.AuthProvider,
		GoogleID:     r.GoogleID,
		IsAdmin:      r.IsAdmin,
		CreatedAt:    time.UnixMilli(r.CreatedAt),
	}, nil
}

func (s *Store) Create(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var users []userRecord
	if err := s.readDoc(usersFile, &users); err != nil {
		return err
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	users = append(users, toRecord(user))
	return s.writeDoc(usersFile, users)
}

func (s *Store) Update(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var users []userRecord
	if err := s.readDoc(usersFile, &users); err != nil {
		return err
	}
	id := user.ID.String()
	for i := range users {
		if users[i].ID == id {
			users[i] = toRecord(user)
			return s.writeDoc(usersFile, users)
		}
	}
	return errNotPersisted(id)
}

func (s *Store) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.findUser(func(r userRecord) bool { return r.ID == id })
}

func (s *Store) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.findUser(func(r userRecord) bool { return r.Email == email })
}

func (s *Store) GetByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	return s.findUser(func(r userRecord) bool {
		return r.GoogleID != nil && *r.GoogleID == googleID
	})
}

func (s *Store) List(ctx context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var users []userRecord
	if err := s.readDoc(usersFile, &users); err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(users))
	for _, r := range users {
		u, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *u)
	}
	return out, nil
}

func (s *Store) findUser(match func(userRecord) bool) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var users []userRecord
	if err := s.readDoc(usersFile, &users); err != nil {
		return nil, err
	}
	for _, r := range users {
		if match(r) {
			return r.toDomain()
		}
	}
	return nil, nil
}

func errNotPersisted(id string) error {
	return fmt.Errorf("record %s not found in store", id)
}
