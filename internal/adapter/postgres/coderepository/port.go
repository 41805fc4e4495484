package coderepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"gitlab.com/codeclass-2026.net/internal/core/ports/primary"
	"gitlab.com/codeclass-2026.net/internal/core/ports/secondary"
)

var _ secondary.CodeStore = (*codeRepo)(nil)

type codeRepo struct {
	db     *sqlx.DB
	logger primary.Logger
}

func New(db *sqlx.DB, logger primary.Logger) secondary.CodeStore {
	return &codeRepo{db: db, logger: logger}
}

func (c codeRepo) GetCode(ctx context.Context, roomID, problemID, userID string) (secondary.CodeSnapshot, error) {
	var row struct {
		Code    string    `db:"code"`
		SavedAt time.Time `db:"saved_at"`
	}
	err := c.db.GetContext(ctx, &row,
		`SELECT code, saved_at FROM code_snapshots
		 WHERE room_id = $1 AND problem_id = $2 AND user_id = $3`,
		roomID, problemID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return secondary.CodeSnapshot{}, nil
		}
		return secondary.CodeSnapshot{}, err
	}
	return secondary.CodeSnapshot{Code: row.Code, SavedAt: row.SavedAt.UnixMilli()}, nil
}

func (c codeRepo) SaveCode(ctx context.Context, roomID, problemID, userID, code string) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO code_snapshots (room_id, problem_id, user_id, code, saved_at)
		 VALUES ($1, $2, $3, $4, now())
		 ON CONFLICT (room_id, problem_id, user_id)
		 DO UPDATE SET code = EXCLUDED.code, saved_at = now()`,
		roomID, problemID, userID, code)
	return err
}

func (c codeRepo) DeleteProblemCode(ctx context.Context, roomID, problemID string) error {
	_, err := c.db.ExecContext(ctx,
		`DELETE FROM code_snapshots WHERE room_id = $1 AND problem_id = $2`, roomID, problemID)
	return err
}

func (c codeRepo) DeleteRoomCode(ctx context.Context, roomID string) error {
	_, err := c.db.ExecContext(ctx,
		`DELETE FROM code_snapshots WHERE room_id = $1`, roomID)
	return err
}
