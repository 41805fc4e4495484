package secondary

import (
	"context"

	"gitlab.com/codeclass-2026.net/internal/domain"
)

// RoomStore owns room and problem definitions. Lookups return (nil, nil)
// when the room does not exist; errors mean the backing store itself failed.
// The grading path only ever reads through this port.
type RoomStore interface {
	ListRooms(ctx context.Context) ([]domain.Room, error)
	GetRoom(ctx context.Context, roomID string) (*domain.Room, error)
	CreateRoom(ctx context.Context, room *domain.Room) error
	UpdateRoom(ctx context.Context, room *domain.Room) error
	DeleteRoom(ctx context.Context, roomID string) error
}
