package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cryptofolio/cryptofolio-backend/internal/domain"
)

const transactionPageSize = 25

type transactionRequest struct {
	Ticker   string `json:"ticker"`
	Quantity string `json:"quantity"`
	Price    string `json:"price"`
	Type     string `json:"type"`
	Platform string `json:"platform"`
	Date     string `json:"date"` // RFC 3339; empty means now
}

type transactionResponse struct {
	ID       string `json:"id"`
	Ticker   string `json:"ticker"`
	Quantity string `json:"quantity"`
	Price    string `json:"price"`
	Type     string `json:"type"`
	Platform string `json:"platform"`
	Date     string `json:"date"`
}

type transactionPage struct {
	Transactions []transactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	user, err := userID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid or missing X-User-ID header")
		return
	}

	page := 0
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}

	txs, err := s.cfg.TransactionRepo.List(r.Context(), user, transactionPageSize, page*transactionPageSize)
	if err != nil {
		s.writeMappedError(w, err)
		return
	}
	total, err := s.cfg.TransactionRepo.Count(r.Context(), user)
	if err != nil {
		s.writeMappedError(w, err)
		return
	}

	result := transactionPage{Transactions: make([]transactionResponse, 0, len(txs)), Total: total}
	for _, tx := range txs {
		result.Transactions = append(result.Transactions, transactionResponse{
			ID:       tx.ID.String(),
			Ticker:   tx.Ticker,
			Quantity: tx.Quantity.String(),
			Price:    tx.Price.String(),
			Type:     string(tx.Type),
			Platform: tx.Platform,
			Date:     tx.Date.UTC().Format(time.RFC3339),
		})
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	user, err := userID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid or missing X-User-ID header")
		return
	}

	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	quantity, err := decimal.NewFromString(req.Quantity)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid quantity format")
		return
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid price format")
		return
	}

	date := time.Now().UTC()
	if req.Date != "" {
		if date, err = time.Parse(time.RFC3339, req.Date); err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid date format")
			return
		}
	}

	tx := &domain.Transaction{
		ID:       uuid.New(),
		UserID:   user,
		Ticker:   req.Ticker,
		Quantity: quantity,
		Price:    price,
		Type:     domain.TransactionType(req.Type),
		Platform: req.Platform,
		Date:     date,
	}
	if err := tx.Validate(); err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := s.cfg.TransactionRepo.Create(r.Context(), tx); err != nil {
		s.writeMappedError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, transactionResponse{
		ID:       tx.ID.String(),
		Ticker:   tx.Ticker,
		Quantity: tx.Quantity.String(),
		Price:    tx.Price.String(),
		Type:     string(tx.Type),
		Platform: tx.Platform,
		Date:     tx.Date.UTC().Format(time.RFC3339),
	})
}
