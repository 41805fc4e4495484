package grading

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/codeclass-2026.net/internal/core/ports/primary"
	"gitlab.com/codeclass-2026.net/internal/core/services/grading"
	"gitlab.com/codeclass-2026.net/internal/handlers"
)

type Handler struct {
	gradingService grading.IGradingService
	logger         primary.Logger
}

func NewHandler(gradingService grading.IGradingService, logger primary.Logger) *Handler {
	return &Handler{gradingService: gradingService, logger: logger}
}

func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/rooms/{roomId}/problems/{problemId}/submit", h.Submit).Methods("POST")
}

type submitRequest struct {
	Code string `json:"code"`
}

// Submit grades the posted code against the problem's hidden tests. A failed
// submission (compile error, wrong answer, timeout) is still a 200 with a
// verdict body; non-200s mean the request itself could not be graded.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	caller, ok := handlers.IdentityFromContext(r.Context())
	if !ok {
		handlers.ResponseError(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.ResponseError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	verdict, err := h.gradingService.Grade(r.Context(), caller, vars["roomId"], vars["problemId"], req.Code)
	if err != nil {
		handlers.WriteServiceError(w, err)
		return
	}
	handlers.ResponseWithJson(w, http.StatusOK, verdict)
}
