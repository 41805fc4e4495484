package jsonstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gitlab.com/codeclass-2026.net/internal/core/ports/secondary"
)

var _ secondary.CodeStore = (*Store)(nil)

func codeFileName(roomID, problemID, userID string) string {
	return fmt.Sprintf("%s-%s-%s.json", roomID, problemID, userID)
}

func (s *Store) GetCode(ctx context.Context, roomID, problemID, userID string) (secondary.CodeSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var snap secondary.CodeSnapshot
	name := filepath.Join(codesDir, codeFileName(roomID, problemID, userID))
	if _, err := os.Stat(filepath.Join(s.dir, name)); os.IsNotExist(err) {
		// Nothing saved yet; the editor starts empty.
		return secondary.CodeSnapshot{}, nil
	}
	if err := s.readDoc(name, &snap); err != nil {
		return secondary.CodeSnapshot{}, err
	}
	return snap, nil
}

func (s *Store) SaveCode(ctx context.Context, roomID, problemID, userID, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := secondary.CodeSnapshot{Code: code, SavedAt: time.Now().UnixMilli()}
	return s.writeDoc(filepath.Join(codesDir, codeFileName(roomID, problemID, userID)), snap)
}

func (s *Store) DeleteProblemCode(ctx context.Context, roomID, problemID string) error {
	return s.removeCodeFiles(fmt.Sprintf("%s-%s-", roomID, problemID))
}

func (s *Store) DeleteRoomCode(ctx context.Context, roomID string) error {
	return s.removeCodeFiles(roomID + "-")
}

func (s *Store) removeCodeFiles(prefix string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, err := os.ReadDir(filepath.Join(s.dir, codesDir))
	if err != nil {
		return fmt.Errorf("read codes dir: %w", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), prefix) {
			if err := os.Remove(filepath.Join(s.dir, codesDir, e.Name())); err != nil {
				s.logger.Warn("Failed to remove snapshot", "file", e.Name(), "error", err)
			}
		}
	}
	return nil
}
