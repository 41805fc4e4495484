package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"gitlab.com/codeclass-2026.net/internal/static/errs"
)

func ResponseWithJson(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

func ResponseError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// WriteServiceError maps a service error onto the wire. Store faults get a
// generic message so backing-store details never leak to the caller.
func WriteServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errs.RoomNotFound), errors.Is(err, errs.ProblemNotFound), errors.Is(err, errs.UserNotFound):
		ResponseError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, errs.Forbidden):
		ResponseError(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, errs.NoTestsConfigured), errors.Is(err, errs.UnsupportedLanguage), errors.Is(err, errs.MissingEntryPoint), errors.Is(err, errs.EmailRequired):
		ResponseError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, errs.EmailTaken):
		ResponseError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, errs.InvalidCredentials):
		ResponseError(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, errs.TooManySubmissions):
		ResponseError(w, err.Error(), http.StatusTooManyRequests)
	case errors.Is(err, errs.StoreUnavailable):
		ResponseError(w, "internal error", http.StatusInternalServerError)
	default:
		ResponseError(w, "internal error", http.StatusInternalServerError)
	}
}
