package secondary

import "context"

// CodeSnapshot is the last saved editor state for one (room, problem, user).
type CodeSnapshot struct {
	Code    string `json:"code"`
	SavedAt int64  `json:"ts,omitempty"`
}

// CodeStore persists editor snapshots. Saving and grading are independent
// paths; a snapshot is never consulted when grading.
type CodeStore interface {
	GetCode(ctx context.Context, roomID, problemID, userID string) (CodeSnapshot, error)
	SaveCode(ctx context.Context, roomID, problemID, userID, code string) error
	DeleteProblemCode(ctx context.Context, roomID, problemID string) error
	DeleteRoomCode(ctx context.Context, roomID string) error
}
