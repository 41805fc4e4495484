package jsonstore

import (
	"context"

	"gitlab.com/codeclass-2026.net/internal/core/ports/secondary"
	"gitlab.com/codeclass-2026.net/internal/domain"
)

var _ secondary.RoomStore = (*Store)(nil)

func (s *Store) ListRooms(ctx context.Context) ([]domain.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var rooms []domain.Room
	if err := s.readDoc(roomsFile, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *Store) GetRoom(ctx context.Context, roomID string) (*domain.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var rooms []domain.Room
	if err := s.readDoc(roomsFile, &rooms); err != nil {
		return nil, err
	}
	for i := range rooms {
		if rooms[i].ID == roomID {
			return &rooms[i], nil
		}
	}
	return nil, nil
}

func (s *Store) CreateRoom(ctx context.Context, room *domain.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var rooms []domain.Room
	if err := s.readDoc(roomsFile, &rooms); err != nil {
		return err
	}
	// Newest first, the way room lists are displayed.
	rooms = append([]domain.Room{*room}, rooms...)
	return s.writeDoc(roomsFile, rooms)
}

func (s *Store) UpdateRoom(ctx context.Context, room *domain.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var rooms []domain.Room
	if err := s.readDoc(roomsFile, &rooms); err != nil {
		return err
	}
	for i := range rooms {
		if rooms[i].ID == room.ID {
			rooms[i] = *room
			return s.writeDoc(roomsFile, rooms)
		}
	}
	return errNotPersisted(room.ID)
}

func (s *Store) DeleteRoom(ctx context.Context, roomID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var rooms []domain.Room
	if err := s.readDoc(roomsFile, &rooms); err != nil {
		return err
	}
	for i := range rooms {
		if rooms[i].ID == roomID {
			rooms = append(rooms[:i], rooms[i+1:]...)
			return s.writeDoc(roomsFile, rooms)
		}
	}
	return errNotPersisted(roomID)
}
