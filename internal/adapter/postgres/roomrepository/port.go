package roomrepository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"gitlab.com/codeclass-2026.net/internal/core/ports/primary"
	"gitlab.com/codeclass-2026.net/internal/core/ports/secondary"
	"gitlab.com/codeclass-2026.net/internal/domain"
)

var _ secondary.RoomStore = (*roomRepo)(nil)

// roomRow maps the rooms table; members and problems are JSONB documents so
// a room loads in one query, the way the grading path reads it.
type roomRow struct {
	ID         string    `db:"id"`
	Name       string    `db:"name"`
	GroupName  string    `db:"group_name"`
	AuthorName string    `db:"author_name"`
	LogoURL    string    `db:"logo_url"`
	OwnerID    string    `db:"owner_id"`
	Public     bool      `db:"public"`
	Members    []byte    `db:"members"`
	Problems   []byte    `db:"problems"`
	CreatedAt  time.Time `db:"created_at"`
}

type roomRepo struct {
	db     *sqlx.DB
	logger primary.Logger
}

func New(db *sqlx.DB, logger primary.Logger) secondary.RoomStore {
	return &roomRepo{db: db, logger: logger}
}

func (r roomRow) toDomain() (*domain.Room, error) {
	room := domain.Room{
		ID:         r.ID,
		Name:       r.Name,
		GroupName:  r.GroupName,
		AuthorName: r.AuthorName,
		LogoURL:    r.LogoURL,
		OwnerID:    r.OwnerID,
		Public:     r.Public,
		CreatedAt:  r.CreatedAt,
	}
	if len(r.Members) > 0 {
		if err := json.Unmarshal(r.Members, &room.Members); err != nil {
			return nil, fmt.Errorf("decode members for room %s: %w", r.ID, err)
		}
	}
	if len(r.Problems) > 0 {
		// Fixture validation runs here too: a malformed stored fixture is a
		// store fault, never a grading-time surprise.
		if err := json.Unmarshal(r.Problems, &room.Problems); err != nil {
			return nil, fmt.Errorf("decode problems for room %s: %w", r.ID, err)
		}
	}
	return &room, nil
}

func toRow(room *domain.Room) (roomRow, error) {
	members, err := json.Marshal(room.Members)
	if err != nil {
		return roomRow{}, err
	}
	problems, err := json.Marshal(room.Problems)
	if err != nil {
		return roomRow{}, err
	}
	return roomRow{
		ID:         room.ID,
		Name:       room.Name,
		GroupName:  room.GroupName,
		AuthorName: room.AuthorName,
		LogoURL:    room.LogoURL,
		OwnerID:    room.OwnerID,
		Public:     room.Public,
		Members:    members,
		Problems:   problems,
		CreatedAt:  room.CreatedAt,
	}, nil
}

func (u roomRepo) ListRooms(ctx context.Context) ([]domain.Room, error) {
	var rows []roomRow
	err := u.db.SelectContext(ctx, &rows,
		`SELECT id, name, group_name, author_name, logo_url, owner_id, public, members, problems, created_at
		 FROM rooms ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	rooms := make([]domain.Room, 0, len(rows))
	for _, row := range rows {
		room, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, *room)
	}
	return rooms, nil
}

func (u roomRepo) GetRoom(ctx context.Context, roomID string) (*domain.Room, error) {
	var row roomRow
	err := u.db.GetContext(ctx, &row,
		`SELECT id, name, group_name, author_name, logo_url, owner_id, public, members, problems, created_at
		 FROM rooms WHERE id = $1`, roomID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return row.toDomain()
}

func (u roomRepo) CreateRoom(ctx context.Context, room *domain.Room) error {
	row, err := toRow(room)
	if err != nil {
		return err
	}
	_, err = u.db.ExecContext(ctx,
		`INSERT INTO rooms (id, name, group_name, author_name, logo_url, owner_id, public, members, problems, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		row.ID, row.Name, row.GroupName, row.AuthorName, row.LogoURL,
		row.OwnerID, row.Public, row.Members, row.Problems, row.CreatedAt)
	return err
}

func (u roomRepo) UpdateRoom(ctx context.Context, room *domain.Room) error {
	row, err := toRow(room)
	if err != nil {
		return err
	}
	res, err := u.db.ExecContext(ctx,
		`UPDATE rooms SET name = $2, group_name = $3, author_name = $4, logo_url = $5,
		 public = $6, members = $7, problems = $8 WHERE id = $1`,
		row.ID, row.Name, row.GroupName, row.AuthorName, row.LogoURL,
		row.Public, row.Members, row.Problems)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return fmt.Errorf("room %s not found", room.ID)
	}
	return err
}

func (u roomRepo) DeleteRoom(ctx context.Context, roomID string) error {
	_, err := u.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, roomID)
	return err
}
