package hints

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/codeclass-2026.net/internal/core/ports/primary"
	"gitlab.com/codeclass-2026.net/internal/core/services/hint"
	"gitlab.com/codeclass-2026.net/internal/handlers"
)

type Handler struct {
	hintService hint.IHintService
	logger      primary.Logger
}

func NewHandler(hintService hint.IHintService, logger primary.Logger) *Handler {
	return &Handler{hintService: hintService, logger: logger}
}

func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/hint", h.Hint).Methods("POST")
}

type hintRequest struct {
	ProblemTitle       string `json:"problemTitle"`
	ProblemDescription string `json:"problemDescription"`
	CurrentCode        string `json:"currentCode"`
	Difficulty         string `json:"difficulty"`
}

func (h *Handler) Hint(w http.ResponseWriter, r *http.Request) {
	if _, ok := handlers.IdentityFromContext(r.Context()); !ok {
		handlers.ResponseError(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req hintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.ResponseError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	text, err := h.hintService.Hint(r.Context(), hint.HintRequest{
		ProblemTitle:       req.ProblemTitle,
		ProblemDescription: req.ProblemDescription,
		CurrentCode:        req.CurrentCode,
		Difficulty:         req.Difficulty,
	})
	if err != nil {
		if errors.Is(err, hint.ErrGeneratorUnavailable) {
			handlers.ResponseError(w, "hints are not configured", http.StatusServiceUnavailable)
			return
		}
		h.logger.Error("Hint generation failed", "error", err)
		handlers.ResponseError(w, "failed to generate hint", http.StatusBadGateway)
		return
	}
	handlers.ResponseWithJson(w, http.StatusOK, map[string]string{"hint": text})
}
