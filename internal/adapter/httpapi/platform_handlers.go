package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/cryptofolio/cryptofolio-backend/internal/domain"
)

type platformRequest struct {
	Name string `json:"name"`
}

type platformResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (s *Server) handleListPlatforms(w http.ResponseWriter, r *http.Request) {
	platforms, err := s.cfg.PlatformRepo.List(r.Context())
	if err != nil {
		s.writeMappedError(w, err)
		return
	}

	result := make([]platformResponse, 0, len(platforms))
	for _, p := range platforms {
		result = append(result, platformResponse{ID: p.ID.String(), Name: p.Name})
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleCreatePlatform(w http.ResponseWriter, r *http.Request) {
	var req platformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	platform := &domain.Platform{ID: uuid.New(), Name: req.Name}
	if err := platform.Validate(); err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := s.cfg.PlatformRepo.Create(r.Context(), platform); err != nil {
		s.writeMappedError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, platformResponse{ID: platform.ID.String(), Name: platform.Name})
}

func (s *Server) handleUpdatePlatform(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "platformID"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid platform id")
		return
	}

	var req platformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	platform := &domain.Platform{ID: id, Name: req.Name}
	if err := platform.Validate(); err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := s.cfg.PlatformRepo.Update(r.Context(), platform); err != nil {
		s.writeMappedError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, platformResponse{ID: platform.ID.String(), Name: platform.Name})
}

func (s *Server) handleDeletePlatform(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "platformID"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid platform id")
		return
	}

	if err := s.cfg.PlatformRepo.Delete(r.Context(), id); err != nil {
		s.writeMappedError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
