// Package jsonstore is the default persistence adapter: flat JSON documents
// on disk, one file for users, one for rooms, one snapshot file per
// (room, problem, user). Good enough for a single-process classroom server;
// the postgres adapters cover anything bigger.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gitlab.com/codeclass-2026.net/internal/core/ports/primary"
)

const (
	usersFile = "users.json"
	roomsFile = "rooms.json"
	codesDir  = "codes"
)

// Store guards the data directory with one RWMutex; the grading path only
// reads, CRUD writes are read-modify-write under the write lock.
type Store struct {
	dir    string
	mu     sync.RWMutex
	logger primary.Logger
}

func New(dir string, logger primary.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Join(dir, codesDir), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	s := &Store{dir: dir, logger: logger}
	for _, name := range []string{usersFile, roomsFile} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, []byte("[]\n"), 0o644); err != nil {
				return nil, fmt.Errorf("seed %s: %w", name, err)
			}
		}
	}
	return s, nil
}

// readDoc decodes one JSON document. Callers hold the appropriate lock.
func (s *Store) readDoc(name string, out interface{}) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// writeDoc writes atomically via temp file + rename so a crash mid-write
// never leaves a truncated document behind.
func (s *Store) writeDoc(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	path := filepath.Join(s.dir, name)
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
