package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cryptofolio/cryptofolio-backend/internal/domain"
)

type cryptoRequest struct {
	Name   string `json:"name"`
	Ticker string `json:"ticker"`
}

type cryptoResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Ticker string `json:"ticker"`
}

func (s *Server) handleListCryptos(w http.ResponseWriter, r *http.Request) {
	cryptos, err := s.cfg.CryptoRepo.List(r.Context())
	if err != nil {
		s.writeMappedError(w, err)
		return
	}

	result := make([]cryptoResponse, 0, len(cryptos))
	for _, c := range cryptos {
		result = append(result, cryptoResponse{ID: c.ID.String(), Name: c.Name, Ticker: c.Ticker})
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleCreateCrypto(w http.ResponseWriter, r *http.Request) {
	var req cryptoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	crypto := &domain.Crypto{ID: uuid.New(), Name: req.Name, Ticker: req.Ticker}
	if err := crypto.Validate(); err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := s.cfg.CryptoRepo.Create(r.Context(), crypto); err != nil {
		s.writeMappedError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, cryptoResponse{ID: crypto.ID.String(), Name: crypto.Name, Ticker: crypto.Ticker})
}

type holdingRequest struct {
	CryptoID   string `json:"cryptoId"`
	PlatformID string `json:"platformId"`
	Quantity   string `json:"quantity"`
}

type holdingResponse struct {
	ID         string `json:"id"`
	CryptoID   string `json:"cryptoId"`
	PlatformID string `json:"platformId"`
	Quantity   string `json:"quantity"`
}

func (s *Server) handleListHoldings(w http.ResponseWriter, r *http.Request) {
	user, err := userID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid or missing X-User-ID header")
		return
	}

	holdings, err := s.cfg.HoldingRepo.ListByUser(r.Context(), user)
	if err != nil {
		s.writeMappedError(w, err)
		return
	}

	result := make([]holdingResponse, 0, len(holdings))
	for _, h := range holdings {
		result = append(result, holdingResponse{
			ID:         h.ID.String(),
			CryptoID:   h.CryptoID.String(),
			PlatformID: h.PlatformID.String(),
			Quantity:   h.Quantity.String(),
		})
	}
	s.writeJSON(w, http.StatusOK, result)
}

// handleSaveHolding creates or replaces the quantity of one holding
func (s *Server) handleSaveHolding(w http.ResponseWriter, r *http.Request) {
	user, err := userID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid or missing X-User-ID header")
		return
	}

	var req holdingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cryptoID, err := uuid.Parse(req.CryptoID)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid crypto id")
		return
	}
	platformID, err := uuid.Parse(req.PlatformID)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid platform id")
		return
	}
	quantity, err := decimal.NewFromString(req.Quantity)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid quantity format")
		return
	}

	// Referenced records must exist before the upsert
	if _, err := s.cfg.CryptoRepo.GetByID(r.Context(), cryptoID); err != nil {
		s.writeMappedError(w, err)
		return
	}
	if _, err := s.cfg.PlatformRepo.GetByID(r.Context(), platformID); err != nil {
		s.writeMappedError(w, err)
		return
	}

	holding := &domain.Holding{
		ID:         uuid.New(),
		UserID:     user,
		CryptoID:   cryptoID,
		PlatformID: platformID,
		Quantity:   quantity,
	}
	if err := holding.Validate(); err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := s.cfg.HoldingRepo.Save(r.Context(), holding); err != nil {
		s.writeMappedError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, holdingResponse{
		ID:         holding.ID.String(),
		CryptoID:   holding.CryptoID.String(),
		PlatformID: holding.PlatformID.String(),
		Quantity:   holding.Quantity.String(),
	})
}

func (s *Server) handleDeleteHolding(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "holdingID"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid holding id")
		return
	}

	if err := s.cfg.HoldingRepo.Delete(r.Context(), id); err != nil {
		s.writeMappedError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
