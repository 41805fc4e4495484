package rooms

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/codeclass-2026.net/internal/core/ports/primary"
	"gitlab.com/codeclass-2026.net/internal/core/services/hint"
	"gitlab.com/codeclass-2026.net/internal/core/services/room"
	"gitlab.com/codeclass-2026.net/internal/domain"
	"gitlab.com/codeclass-2026.net/internal/handlers"
)

type Handler struct {
	roomService room.IRoomService
	hintService hint.IHintService
	logger      primary.Logger
}

func NewHandler(roomService room.IRoomService, hintService hint.IHintService, logger primary.Logger) *Handler {
	return &Handler{
		roomService: roomService,
		hintService: hintService,
		logger:      logger,
	}
}

// RegisterRoutes wires the room surface onto the authenticated subrouter.
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/rooms", h.ListRooms).Methods("GET")
	router.HandleFunc("/rooms", h.CreateRoom).Methods("POST")
	router.HandleFunc("/rooms/{roomId}", h.GetRoom).Methods("GET")
	router.HandleFunc("/rooms/{roomId}", h.UpdateRoom).Methods("PUT")
	router.HandleFunc("/rooms/{roomId}", h.DeleteRoom).Methods("DELETE")
	router.HandleFunc("/rooms/{roomId}/share", h.ShareRoom).Methods("POST")
	router.HandleFunc("/rooms/{roomId}/invite", h.InviteMember).Methods("POST")
	router.HandleFunc("/rooms/{roomId}/members", h.ListMembers).Methods("GET")
	router.HandleFunc("/users", h.ListUsers).Methods("GET")

	router.HandleFunc("/rooms/{roomId}/problems", h.ListProblems).Methods("GET")
	router.HandleFunc("/rooms/{roomId}/problems", h.CreateProblem).Methods("POST")
	router.HandleFunc("/rooms/{roomId}/problems/generate", h.GenerateProblem).Methods("POST")
	router.HandleFunc("/rooms/{roomId}/problems/{problemId}", h.GetProblem).Methods("GET")
	router.HandleFunc("/rooms/{roomId}/problems/{problemId}", h.UpdateProblem).Methods("PUT")
	router.HandleFunc("/rooms/{roomId}/problems/{problemId}", h.DeleteProblem).Methods("DELETE")

	router.HandleFunc("/rooms/{roomId}/problems/{problemId}/code", h.GetCode).Methods("GET")
	router.HandleFunc("/rooms/{roomId}/problems/{problemId}/code", h.SaveCode).Methods("PUT")
}

func identity(w http.ResponseWriter, r *http.Request) (domain.AuthPayload, bool) {
	payload, ok := handlers.IdentityFromContext(r.Context())
	if !ok {
		handlers.ResponseError(w, "unauthenticated", http.StatusUnauthorized)
	}
	return payload, ok
}

func (h *Handler) ListRooms(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}
	rooms, err := h.roomService.ListRooms(r.Context(), caller)
	if err != nil {
		handlers.WriteServiceError(w, err)
		return
	}
	handlers.ResponseWithJson(w, http.StatusOK, rooms)
}

func (h *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}
	var rm domain.Room
	if err := json.NewDecoder(r.Body).Decode(&rm); err != nil {
		handlers.ResponseError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if rm.Name == "" {
		handlers.ResponseError(w, "room name is required", http.StatusBadRequest)
		return
	}
	if err := h.roomService.CreateRoom(r.Context(), caller, &rm); err != nil {
		handlers.WriteServiceError(w, err)
		return
	}
	handlers.ResponseWithJson(w, http.StatusCreated, rm)
}

func (h *Handler) GetRoom(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}
	rm, err := h.roomService.GetRoom(r.Context(), caller, mux.Vars(r)["roomId"])
	if err != nil {
		handlers.WriteServiceError(w, err)
		return
	}
	handlers.ResponseWithJson(w, http.StatusOK, rm)
}

type roomUpdateRequest struct {
	Name       *string `json:"name"`
	GroupName  *string `json:"groupName"`
	AuthorName *string `json:"authorName"`
	LogoURL    *string `json:"logoUrl"`
	Public     *bool   `json:"public"`
}

func (h *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}
	var req roomUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.ResponseError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	rm, err := h.roomService.UpdateRoom(r.Context(), caller, mux.Vars(r)["roomId"], room.RoomUpdate{
		Name:       req.Name,
		GroupName:  req.GroupName,
		AuthorName: req.AuthorName,
		LogoURL:    req.LogoURL,
		Public:     req.Public,
	})
	if err != nil {
		handlers.WriteServiceError(w, err)
		return
	}
	handlers.ResponseWithJson(w, http.StatusOK, rm)
}

func (h *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}
	if err := h.roomService.DeleteRoom(r.Context(), caller, mux.Vars(r)["roomId"]); err != nil {
		handlers.WriteServiceError(w, err)
		return
	}
	handlers.ResponseWithJson(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *Handler) ShareRoom(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}
	link, err := h.roomService.ShareRoom(r.Context(), caller, mux.Vars(r)["roomId"])
	if err != nil {
		handlers.WriteServiceError(w, err)
		return
	}
	handlers.ResponseWithJson(w, http.StatusOK, map[string]string{"shareUrl": link})
}

type inviteRequest struct {
	Email string `json:"email"`
}

func (h *Handler) InviteMember(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}
	var req inviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.ResponseError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.roomService.InviteMember(r.Context(), caller, mux.Vars(r)["roomId"], req.Email); err != nil {
		handlers.WriteServiceError(w, err)
		return
	}
	handlers.ResponseWithJson(w, http.StatusOK, map[string]bool{"invited": true})
}

func (h *Handler) ListMembers(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}
	members, err := h.roomService.ListMembers(r.Context(), caller, mux.Vars(r)["roomId"])
	if err != nil {
		handlers.WriteServiceError(w, err)
		return
	}
	handlers.ResponseWithJson(w, http.StatusOK, members)
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	if _, ok := identity(w, r); !ok {
		return
	}
	users, err := h.roomService.ListUsers(r.Context())
	if err != nil {
		handlers.WriteServiceError(w, err)
		return
	}
	handlers.ResponseWithJson(w, http.StatusOK, users)
}

func (h *Handler) ListProblems(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}
	problems, err := h.roomService.ListProblems(r.Context(), caller, mux.Vars(r)["roomId"])
	if err != nil {
		handlers.WriteServiceError(w, err)
		return
	}
	handlers.ResponseWithJson(w, http.StatusOK, problems)
}

func (h *Handler) CreateProblem(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}
	var p domain.Problem
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		handlers.ResponseError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.roomService.CreateProblem(r.Context(), caller, mux.Vars(r)["roomId"], &p); err != nil {
		handlers.WriteServiceError(w, err)
		return
	}
	handlers.ResponseWithJson(w, http.StatusCreated, p)
}

type generateRequest struct {
	Text string `json:"text"`
}

// GenerateProblem turns pasted problem text into a stored problem. The
// generated definition goes through the same create path as a handwritten
// one, so it gets the same validation.
func (h *Handler) GenerateProblem(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.ResponseError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		handlers.ResponseError(w, "text is required", http.StatusBadRequest)
		return
	}

	p, err := h.hintService.GenerateProblem(r.Context(), req.Text)
	if err != nil {
		h.logger.Error("Problem generation failed", "error", err)
		handlers.ResponseError(w, "failed to generate problem", http.StatusBadGateway)
		return
	}
	if err := h.roomService.CreateProblem(r.Context(), caller, mux.Vars(r)["roomId"], p); err != nil {
		handlers.WriteServiceError(w, err)
		return
	}
	handlers.ResponseWithJson(w, http.StatusCreated, p)
}

func (h *Handler) GetProblem(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}
	vars := mux.Vars(r)
	p, err := h.roomService.GetProblem(r.Context(), caller, vars["roomId"], vars["problemId"])
	if err != nil {
		handlers.WriteServiceError(w, err)
		return
	}
	handlers.ResponseWithJson(w, http.StatusOK, p)
}

func (h *Handler) UpdateProblem(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}
	vars := mux.Vars(r)
	var p domain.Problem
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		handlers.ResponseError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	p.ID = vars["problemId"]
	if err := h.roomService.UpdateProblem(r.Context(), caller, vars["roomId"], &p); err != nil {
		handlers.WriteServiceError(w, err)
		return
	}
	handlers.ResponseWithJson(w, http.StatusOK, p)
}

func (h *Handler) DeleteProblem(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}
	vars := mux.Vars(r)
	if err := h.roomService.DeleteProblem(r.Context(), caller, vars["roomId"], vars["problemId"]); err != nil {
		handlers.WriteServiceError(w, err)
		return
	}
	handlers.ResponseWithJson(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *Handler) GetCode(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}
	vars := mux.Vars(r)
	snapshot, err := h.roomService.GetCode(r.Context(), caller, vars["roomId"], vars["problemId"])
	if err != nil {
		handlers.WriteServiceError(w, err)
		return
	}
	handlers.ResponseWithJson(w, http.StatusOK, snapshot)
}

type saveCodeRequest struct {
	Code string `json:"code"`
}

func (h *Handler) SaveCode(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}
	vars := mux.Vars(r)
	var req saveCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.ResponseError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.roomService.SaveCode(r.Context(), caller, vars["roomId"], vars["problemId"], req.Code); err != nil {
		handlers.WriteServiceError(w, err)
		return
	}
	handlers.ResponseWithJson(w, http.StatusOK, map[string]bool{"saved": true})
}
