package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cryptofolio/cryptofolio-backend/internal/domain"
)

type goalRequest struct {
	CryptoID     string `json:"cryptoId"`
	GoalQuantity string `json:"goalQuantity"`
}

type goalResponse struct {
	ID           string `json:"id"`
	CryptoID     string `json:"cryptoId"`
	GoalQuantity string `json:"goalQuantity"`
}

type goalProgressResponse struct {
	goalResponse
	CryptoName        string  `json:"cryptoName"`
	CryptoTicker      string  `json:"cryptoTicker"`
	ActualQuantity    string  `json:"actualQuantity"`
	RemainingQuantity string  `json:"remainingQuantity"`
	Progress          float64 `json:"progress"`
	MoneyNeeded       string  `json:"moneyNeeded"`
}

func (s *Server) handleListGoals(w http.ResponseWriter, r *http.Request) {
	user, err := userID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid or missing X-User-ID header")
		return
	}

	goals, err := s.cfg.GoalRepo.ListByUser(r.Context(), user)
	if err != nil {
		s.writeMappedError(w, err)
		return
	}

	result := make([]goalResponse, 0, len(goals))
	for _, g := range goals {
		result = append(result, goalResponse{
			ID:           g.ID.String(),
			CryptoID:     g.CryptoID.String(),
			GoalQuantity: g.GoalQuantity.String(),
		})
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	user, err := userID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid or missing X-User-ID header")
		return
	}

	var req goalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cryptoID, err := uuid.Parse(req.CryptoID)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid crypto id")
		return
	}
	quantity, err := decimal.NewFromString(req.GoalQuantity)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid goal quantity format")
		return
	}

	goal := &domain.Goal{ID: uuid.New(), UserID: user, CryptoID: cryptoID, GoalQuantity: quantity}
	if err := goal.Validate(); err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if _, err := s.cfg.CryptoRepo.GetByID(r.Context(), cryptoID); err != nil {
		s.writeMappedError(w, err)
		return
	}

	if err := s.cfg.GoalRepo.Create(r.Context(), goal); err != nil {
		s.writeMappedError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, goalResponse{
		ID:           goal.ID.String(),
		CryptoID:     goal.CryptoID.String(),
		GoalQuantity: goal.GoalQuantity.String(),
	})
}

func (s *Server) handleGoalProgress(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "goalID"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid goal id")
		return
	}

	report, err := s.cfg.ProgressService.GoalProgress(r.Context(), id)
	if err != nil {
		s.writeMappedError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, goalProgressResponse{
		goalResponse: goalResponse{
			ID:           report.Goal.ID.String(),
			CryptoID:     report.Goal.CryptoID.String(),
			GoalQuantity: report.GoalQuantity.String(),
		},
		CryptoName:        report.CryptoName,
		CryptoTicker:      report.CryptoTicker,
		ActualQuantity:    report.ActualQuantity.String(),
		RemainingQuantity: report.RemainingQuantity.String(),
		Progress:          report.Progress,
		MoneyNeeded:       report.MoneyNeeded.StringFixed(2),
	})
}

func (s *Server) handleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "goalID"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid goal id")
		return
	}

	if err := s.cfg.GoalRepo.Delete(r.Context(), id); err != nil {
		s.writeMappedError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type targetRequest struct {
	CryptoID string `json:"cryptoId"`
	Target   string `json:"target"`
}

type targetResponse struct {
	ID       string `json:"id"`
	CryptoID string `json:"cryptoId"`
	Target   string `json:"target"`
}

type targetProgressResponse struct {
	targetResponse
	CryptoName   string `json:"cryptoName"`
	CryptoTicker string `json:"cryptoTicker"`
	CurrentPrice string `json:"currentPrice"`
	ChangeNeeded string `json:"changeNeeded"`
}

func (s *Server) handleListTargets(w http.ResponseWriter, r *http.Request) {
	user, err := userID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid or missing X-User-ID header")
		return
	}

	targets, err := s.cfg.TargetRepo.ListByUser(r.Context(), user)
	if err != nil {
		s.writeMappedError(w, err)
		return
	}

	result := make([]targetResponse, 0, len(targets))
	for _, t := range targets {
		result = append(result, targetResponse{
			ID:       t.ID.String(),
			CryptoID: t.CryptoID.String(),
			Target:   t.Target.String(),
		})
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleCreateTarget(w http.ResponseWriter, r *http.Request) {
	user, err := userID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid or missing X-User-ID header")
		return
	}

	var req targetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cryptoID, err := uuid.Parse(req.CryptoID)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid crypto id")
		return
	}
	price, err := decimal.NewFromString(req.Target)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid target format")
		return
	}

	target := &domain.PriceTarget{ID: uuid.New(), UserID: user, CryptoID: cryptoID, Target: price}
	if err := target.Validate(); err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if _, err := s.cfg.CryptoRepo.GetByID(r.Context(), cryptoID); err != nil {
		s.writeMappedError(w, err)
		return
	}

	if err := s.cfg.TargetRepo.Create(r.Context(), target); err != nil {
		s.writeMappedError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, targetResponse{
		ID:       target.ID.String(),
		CryptoID: target.CryptoID.String(),
		Target:   target.Target.String(),
	})
}

func (s *Server) handleTargetProgress(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "targetID"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid target id")
		return
	}

	report, err := s.cfg.ProgressService.TargetProgress(r.Context(), id)
	if err != nil {
		s.writeMappedError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, targetProgressResponse{
		targetResponse: targetResponse{
			ID:       report.PriceTarget.ID.String(),
			CryptoID: report.PriceTarget.CryptoID.String(),
			Target:   report.Target.String(),
		},
		CryptoName:   report.CryptoName,
		CryptoTicker: report.CryptoTicker,
		CurrentPrice: report.CurrentPrice.String(),
		ChangeNeeded: report.ChangeNeeded.StringFixed(2),
	})
}

func (s *Server) handleDeleteTarget(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "targetID"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid target id")
		return
	}

	if err := s.cfg.TargetRepo.Delete(r.Context(), id); err != nil {
		s.writeMappedError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
