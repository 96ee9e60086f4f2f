package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/cryptofolio/cryptofolio-backend/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

// writeMappedError translates domain errors into HTTP statuses:
// insufficient balance and other rule violations are the caller's fault,
// missing records are 404, anything else is a 500.
func (s *Server) writeMappedError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInsufficientBalance):
		s.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		s.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrDuplicatePlatform):
		s.writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidRequest):
		s.writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.log.Error().Err(err).Msg("Request failed")
		s.writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// userID extracts the acting user from the X-User-ID header. User
// management itself lives outside this service.
func userID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(r.Header.Get("X-User-ID"))
}
