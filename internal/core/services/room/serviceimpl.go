package room

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gitlab.com/codeclass-2026.net/internal/core/ports/primary"
	"gitlab.com/codeclass-2026.net/internal/core/ports/secondary"
	"gitlab.com/codeclass-2026.net/internal/domain"
	"gitlab.com/codeclass-2026.net/internal/static/errs"
)

var _ IRoomService = (*RoomService)(nil)

type RoomService struct {
	roomStore secondary.RoomStore
	codeStore secondary.CodeStore
	userPort  secondary.UserPort
	logger    primary.Logger
}

func NewRoomService(
	roomStore secondary.RoomStore,
	codeStore secondary.CodeStore,
	userPort secondary.UserPort,
	logger primary.Logger,
) *RoomService {
	return &RoomService{
		roomStore: roomStore,
		codeStore: codeStore,
		userPort:  userPort,
		logger:    logger,
	}
}

// loadRoom fetches a room and applies the read-access check.
func (s *RoomService) loadRoom(ctx context.Context, identity domain.AuthPayload, roomID string) (*domain.Room, error) {
	room, err := s.roomStore.GetRoom(ctx, roomID)
	if err != nil {
		s.logger.Error("Failed to read room store", "roomId", roomID, "error", err)
		return nil, errs.StoreUnavailable
	}
	if room == nil {
		return nil, errs.RoomNotFound
	}
	if !room.AccessibleBy(identity.UserID) {
		return nil, errs.Forbidden
	}
	return room, nil
}

// loadOwnedRoom fetches a room and requires the caller to be its owner.
func (s *RoomService) loadOwnedRoom(ctx context.Context, identity domain.AuthPayload, roomID string) (*domain.Room, error) {
	room, err := s.roomStore.GetRoom(ctx, roomID)
	if err != nil {
		s.logger.Error("Failed to read room store", "roomId", roomID, "error", err)
		return nil, errs.StoreUnavailable
	}
	if room == nil {
		return nil, errs.RoomNotFound
	}
	if room.OwnerID != identity.UserID {
		return nil, errs.Forbidden
	}
	return room, nil
}

func (s *RoomService) ListRooms(ctx context.Context, identity domain.AuthPayload) ([]domain.Room, error) {
	rooms, err := s.roomStore.ListRooms(ctx)
	if err != nil {
		s.logger.Error("Failed to list rooms", "error", err)
		return nil, errs.StoreUnavailable
	}
	visible := make([]domain.Room, 0, len(rooms))
	for _, r := range rooms {
		if r.Public || r.OwnerID == identity.UserID || r.IsMember(identity.UserID) {
			visible = append(visible, r)
		}
	}
	return visible, nil
}

func (s *RoomService) CreateRoom(ctx context.Context, identity domain.AuthPayload, room *domain.Room) error {
	if room.Name == "" {
		return fmt.Errorf("%w: name required", errs.InternalError)
	}
	room.ID = uuid.New().String()
	room.OwnerID = identity.UserID
	room.CreatedAt = time.Now()
	if room.Problems == nil {
		room.Problems = []domain.Problem{}
	}
	if err := s.roomStore.CreateRoom(ctx, room); err != nil {
		s.logger.Error("Failed to create room", "error", err)
		return errs.StoreUnavailable
	}
	return nil
}

func (s *RoomService) GetRoom(ctx context.Context, identity domain.AuthPayload, roomID string) (*domain.Room, error) {
	return s.loadRoom(ctx, identity, roomID)
}

func (s *RoomService) UpdateRoom(ctx context.Context, identity domain.AuthPayload, roomID string, update RoomUpdate) (*domain.Room, error) {
	room, err := s.loadOwnedRoom(ctx, identity, roomID)
	if err != nil {
		return nil, err
	}
	if update.Name != nil {
		room.Name = *update.Name
	}
	if update.GroupName != nil {
		room.GroupName = *update.GroupName
	}
	if update.AuthorName != nil {
		room.AuthorName = *update.AuthorName
	}
	if update.LogoURL != nil {
		room.LogoURL = *update.LogoURL
	}
	if update.Public != nil {
		room.Public = *update.Public
	}
	if err := s.roomStore.UpdateRoom(ctx, room); err != nil {
		s.logger.Error("Failed to update room", "roomId", roomID, "error", err)
		return nil, errs.StoreUnavailable
	}
	return room, nil
}

func (s *RoomService) DeleteRoom(ctx context.Context, identity domain.AuthPayload, roomID string) error {
	if _, err := s.loadOwnedRoom(ctx, identity, roomID); err != nil {
		return err
	}
	if err := s.roomStore.DeleteRoom(ctx, roomID); err != nil {
		s.logger.Error("Failed to delete room", "roomId", roomID, "error", err)
		return errs.StoreUnavailable
	}
	// Snapshots are owned by the room; best effort cleanup.
	if err := s.codeStore.DeleteRoomCode(ctx, roomID); err != nil {
		s.logger.Warn("Failed to clean code snapshots", "roomId", roomID, "error", err)
	}
	return nil
}

func (s *RoomService) ShareRoom(ctx context.Context, identity domain.AuthPayload, roomID string) (string, error) {
	room, err := s.loadOwnedRoom(ctx, identity, roomID)
	if err != nil {
		return "", err
	}
	room.Public = true
	if err := s.roomStore.UpdateRoom(ctx, room); err != nil {
		s.logger.Error("Failed to share room", "roomId", roomID, "error", err)
		return "", errs.StoreUnavailable
	}
	return fmt.Sprintf("/rooms/%s", room.ID), nil
}

func (s *RoomService) InviteMember(ctx context.Context, identity domain.AuthPayload, roomID, email string) error {
	room, err := s.loadOwnedRoom(ctx, identity, roomID)
	if err != nil {
		return err
	}
	user, err := s.userPort.GetByEmail(ctx, email)
	if err != nil {
		return errs.StoreUnavailable
	}
	if user == nil {
		return errs.UserNotFound
	}
	userID := user.ID.String()
	if room.OwnerID == userID || room.IsMember(userID) {
		return nil
	}
	room.Members = append(room.Members, userID)
	if err := s.roomStore.UpdateRoom(ctx, room); err != nil {
		s.logger.Error("Failed to invite member", "roomId", roomID, "error", err)
		return errs.StoreUnavailable
	}
	return nil
}

func (s *RoomService) ListMembers(ctx context.Context, identity domain.AuthPayload, roomID string) ([]domain.PublicUser, error) {
	room, err := s.loadRoom(ctx, identity, roomID)
	if err != nil {
		return nil, err
	}
	members := make([]domain.PublicUser, 0, len(room.Members))
	for _, id := range room.Members {
		user, err := s.userPort.GetByID(ctx, id)
		if err != nil {
			return nil, errs.StoreUnavailable
		}
		if user != nil {
			members = append(members, user.Public())
		}
	}
	return members, nil
}

func (s *RoomService) ListUsers(ctx context.Context) ([]domain.PublicUser, error) {
	users, err := s.userPort.List(ctx)
	if err != nil {
		return nil, errs.StoreUnavailable
	}
	out := make([]domain.PublicUser, 0, len(users))
	for i := range users {
		out = append(out, users[i].Public())
	}
	return out, nil
}

func (s *RoomService) ListProblems(ctx context.Context, identity domain.AuthPayload, roomID string) ([]domain.Problem, error) {
	room, err := s.loadRoom(ctx, identity, roomID)
	if err != nil {
		return nil, err
	}
	if room.Problems == nil {
		return []domain.Problem{}, nil
	}
	return room.Problems, nil
}

// normalizeProblem fills defaults and validates the fields the sandbox
// depends on. Fixture wellformedness is enforced when the request body is
// decoded; by the time a Problem exists in memory its fixtures are valid.
func normalizeProblem(room *domain.Room, p *domain.Problem) error {
	if p.Title == "" {
		p.Title = room.Name
	}
	if p.Difficulty == "" {
		p.Difficulty = "Easy"
	}
	if p.FunctionName == "" {
		p.FunctionName = domain.DefaultFunctionName
	}
	if p.Language == "" {
		p.Language = domain.LanguageJavaScript
	}
	if p.Language != domain.LanguageJavaScript {
		return errs.UnsupportedLanguage
	}
	if !domain.ValidFunctionName(p.FunctionName) {
		return fmt.Errorf("invalid function name %q", p.FunctionName)
	}
	if p.Samples == nil {
		p.Samples = []domain.Fixture{}
	}
	if p.Tests == nil {
		p.Tests = []domain.Fixture{}
	}
	return nil
}

func (s *RoomService) CreateProblem(ctx context.Context, identity domain.AuthPayload, roomID string, problem *domain.Problem) error {
	room, err := s.loadOwnedRoom(ctx, identity, roomID)
	if err != nil {
		return err
	}
	if err := normalizeProblem(room, problem); err != nil {
		return err
	}
	problem.ID = uuid.New().String()
	room.Problems = append(room.Problems, *problem)
	if err := s.roomStore.UpdateRoom(ctx, room); err != nil {
		s.logger.Error("Failed to create problem", "roomId", roomID, "error", err)
		return errs.StoreUnavailable
	}
	return nil
}

func (s *RoomService) GetProblem(ctx context.Context, identity domain.AuthPayload, roomID, problemID string) (*domain.Problem, error) {
	room, err := s.loadRoom(ctx, identity, roomID)
	if err != nil {
		return nil, err
	}
	problem := room.FindProblem(problemID)
	if problem == nil {
		return nil, errs.ProblemNotFound
	}
	return problem, nil
}

func (s *RoomService) UpdateProblem(ctx context.Context, identity domain.AuthPayload, roomID string, problem *domain.Problem) error {
	room, err := s.loadOwnedRoom(ctx, identity, roomID)
	if err != nil {
		return err
	}
	existing := room.FindProblem(problem.ID)
	if existing == nil {
		return errs.ProblemNotFound
	}
	if err := normalizeProblem(room, problem); err != nil {
		return err
	}
	*existing = *problem
	if err := s.roomStore.UpdateRoom(ctx, room); err != nil {
		s.logger.Error("Failed to update problem", "roomId", roomID, "problemId", problem.ID, "error", err)
		return errs.StoreUnavailable
	}
	return nil
}

func (s *RoomService) DeleteProblem(ctx context.Context, identity domain.AuthPayload, roomID, problemID string) error {
	room, err := s.loadOwnedRoom(ctx, identity, roomID)
	if err != nil {
		return err
	}
	if !room.RemoveProblem(problemID) {
		return errs.ProblemNotFound
	}
	if err := s.roomStore.UpdateRoom(ctx, room); err != nil {
		s.logger.Error("Failed to delete problem", "roomId", roomID, "problemId", problemID, "error", err)
		return errs.StoreUnavailable
	}
	if err := s.codeStore.DeleteProblemCode(ctx, roomID, problemID); err != nil {
		s.logger.Warn("Failed to clean code snapshots", "roomId", roomID, "problemId", problemID, "error", err)
	}
	return nil
}

func (s *RoomService) GetCode(ctx context.Context, identity domain.AuthPayload, roomID, problemID string) (secondary.CodeSnapshot, error) {
	room, err := s.loadRoom(ctx, identity, roomID)
	if err != nil {
		return secondary.CodeSnapshot{}, err
	}
	if room.FindProblem(problemID) == nil {
		return secondary.CodeSnapshot{}, errs.ProblemNotFound
	}
	snap, err := s.codeStore.GetCode(ctx, roomID, problemID, identity.UserID)
	if err != nil {
		s.logger.Error("Failed to read code snapshot", "roomId", roomID, "error", err)
		return secondary.CodeSnapshot{}, errs.StoreUnavailable
	}
	return snap, nil
}

func (s *RoomService) SaveCode(ctx context.Context, identity domain.AuthPayload, roomID, problemID, code string) error {
	room, err := s.loadRoom(ctx, identity, roomID)
	if err != nil {
		return err
	}
	if room.FindProblem(problemID) == nil {
		return errs.ProblemNotFound
	}
	if err := s.codeStore.SaveCode(ctx, roomID, problemID, identity.UserID, code); err != nil {
		s.logger.Error("Failed to save code snapshot", "roomId", roomID, "error", err)
		return errs.StoreUnavailable
	}
	return nil
}
