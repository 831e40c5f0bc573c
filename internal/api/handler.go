// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/opositest/backend/internal/remote"
	"github.com/opositest/backend/internal/service"
	"github.com/opositest/backend/internal/store"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	store    *store.Store
	sessions *service.SessionService
	remote   *remote.Client
	logger   *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(s *store.Store, sessions *service.SessionService, rc *remote.Client, logger *slog.Logger) *Handler {
	return &Handler{
		store:    s,
		sessions: sessions,
		remote:   rc,
		logger:   logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes a JSON error body with the given status code.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// decodeJSON decodes the request body into v. Returns false (after writing
// a 400) when the body is not valid JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

// validatable is implemented by request types that check their own fields.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the request body and runs its validation.
// Returns false when a 400 was already written.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v validatable) bool {
	if !decodeJSON(w, r, v) {
		return false
	}
	if err := v.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// handleStoreError checks for common store and session errors and writes the
// appropriate HTTP response. Returns true if an error was handled (caller
// should return).
func (h *Handler) handleStoreError(w http.ResponseWriter, err error, entity string) bool {
	if err == nil {
		return false
	}
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		respondError(w, http.StatusNotFound, entity+" not found")
	case errors.Is(err, store.ErrOutOfRange):
		respondError(w, http.StatusNotFound, entity+" not found")
	case errors.Is(err, store.ErrUnknownUser):
		respondError(w, http.StatusNotFound, entity+" not found")
	case errors.Is(err, store.ErrActiveUser):
		respondError(w, http.StatusConflict, "cannot delete the active user")
	case errors.Is(err, store.ErrEmptyUserName):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("store error", "error", err, "entity", entity)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}
