package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account, either professor or student; room ownership
// decides who can edit a room, not a role flag.
type User struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	PasswordHash *string   `db:"password_hash"`
	AuthProvider string    `db:"auth_provider"`
	GoogleID     *string   `db:"google_id"`
	IsAdmin      bool      `db:"is_admin"`
	CreatedAt    time.Time `db:"created_at"`
}

// PublicUser is the wire shape exposed to other users (member lists, the
// invite picker). Never carries credentials.
type PublicUser struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"isAdmin"`
}

// Public strips the account down to its shareable fields.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:      u.ID.String(),
		Email:   u.Email,
		Name:    u.Name,
		IsAdmin: u.IsAdmin,
	}
}

type UsersTable struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	AuthProvider string
	GoogleID     string
	IsAdmin      string
	CreatedAt    string
}

func GetUserTable() UsersTable {
	return UsersTable{
		ID:           "id",
		Email:        "email",
		Name:         "name",
		PasswordHash: "password_hash",
		AuthProvider: "auth_provider",
		GoogleID:     "google_id",
		IsAdmin:      "is_admin",
		CreatedAt:    "created_at",
	}
}

func (UsersTable) GetTableName() string {
	return "users"
}
