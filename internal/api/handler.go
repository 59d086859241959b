// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/remaimber-it/sattutor/internal/service"
	"github.com/remaimber-it/sattutor/internal/telemetry"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	sessions *service.Manager
	metrics  *telemetry.Metrics
	logger   *slog.Logger
}

// NewHandler creates a Handler with the given dependencies. metrics may be nil.
func NewHandler(sessions *service.Manager, metrics *telemetry.Metrics, logger *slog.Logger) *Handler {
	return &Handler{
		sessions: sessions,
		metrics:  metrics,
		logger:   logger,
	}
}

// validator is implemented by request types that check their own fields.
type validator interface {
	Validate() error
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON reads the request body into dst. An empty body leaves dst
// untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.ContentLength == 0 {
		return true
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst validator) bool {
	if !decodeJSON(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// session resolves the {sessionID} path value. Returns false if a response
// was already written.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*service.Session, bool) {
	s, err := h.sessions.Get(r.PathValue("sessionID"))
	if h.handleSessionError(w, err) {
		return nil, false
	}
	return s, true
}

// handleSessionError checks for common session errors and writes the
// appropriate HTTP response. Returns true if an error was handled (caller
// should return).
func (h *Handler) handleSessionError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}

	var emptyErr *service.EmptyFilterError
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		respondError(w, http.StatusNotFound, "session not found")
	case errors.Is(err, service.ErrNoQuestion):
		respondError(w, http.StatusConflict, "no question selected")
	case errors.As(err, &emptyErr):
		respondJSON(w, http.StatusNotFound, EmptyFilterResponse{
			Error:                 emptyErr.Error(),
			AvailableTopics:       emptyErr.AvailableTopics,
			AvailableDifficulties: emptyErr.AvailableDifficulties,
		})
	default:
		h.logger.Error("session error", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}
