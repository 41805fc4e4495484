package room

import (
	"context"

	"gitlab.com/codeclass-2026.net/internal/core/ports/secondary"
	"gitlab.com/codeclass-2026.net/internal/domain"
)

// RoomUpdate carries partial room edits; nil fields are left untouched.
type RoomUpdate struct {
	Name       *string
	GroupName  *string
	AuthorName *string
	LogoURL    *string
	Public     *bool
}

// IRoomService owns rooms, their problems, membership and per-student code
// snapshots. Mutations are owner-only; reads require the caller to have
// access (public room, owner, or member).
type IRoomService interface {
	ListRooms(ctx context.Context, identity domain.AuthPayload) ([]domain.Room, error)
	CreateRoom(ctx context.Context, identity domain.AuthPayload, room *domain.Room) error
	GetRoom(ctx context.Context, identity domain.AuthPayload, roomID string) (*domain.Room, error)
	UpdateRoom(ctx context.Context, identity domain.AuthPayload, roomID string, update RoomUpdate) (*domain.Room, error)
	DeleteRoom(ctx context.Context, identity domain.AuthPayload, roomID string) error
	ShareRoom(ctx context.Context, identity domain.AuthPayload, roomID string) (string, error)

	InviteMember(ctx context.Context, identity domain.AuthPayload, roomID, email string) error
	ListMembers(ctx context.Context, identity domain.AuthPayload, roomID string) ([]domain.PublicUser, error)
	ListUsers(ctx context.Context) ([]domain.PublicUser, error)

	ListProblems(ctx context.Context, identity domain.AuthPayload, roomID string) ([]domain.Problem, error)
	CreateProblem(ctx context.Context, identity domain.AuthPayload, roomID string, problem *domain.Problem) error
	GetProblem(ctx context.Context, identity domain.AuthPayload, roomID, problemID string) (*domain.Problem, error)
	UpdateProblem(ctx context.Context, identity domain.AuthPayload, roomID string, problem *domain.Problem) error
	DeleteProblem(ctx context.Context, identity domain.AuthPayload, roomID, problemID string) error

	GetCode(ctx context.Context, identity domain.AuthPayload, roomID, problemID string) (secondary.CodeSnapshot, error)
	SaveCode(ctx context.Context, identity domain.AuthPayload, roomID, problemID, code string) error
}
