package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cryptofolio/cryptofolio-backend/internal/usecase/transfer"
)

type transferRequest struct {
	CryptoID         string `json:"cryptoId"`
	FromPlatformID   string `json:"fromPlatformId"`
	ToPlatformID     string `json:"toPlatformId"`
	Quantity         string `json:"quantity"`
	NetworkFee       string `json:"networkFee"`
	SendFullQuantity bool   `json:"sendFullQuantity"`
}

type transferResponse struct {
	FromPlatform            string `json:"fromPlatform"`
	ToPlatform              string `json:"toPlatform"`
	RemainingSourceQuantity string `json:"remainingSourceQuantity"`
	DestinationNewQuantity  string `json:"destinationNewQuantity"`
	QuantityDelivered       string `json:"quantityDelivered"`
	TotalDebited            string `json:"totalDebited"`
}

func (s *Server) handleTransfer(w http.ResponseWriter, r *http.Request) {
	user, err := userID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid or missing X-User-ID header")
		return
	}

	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cryptoID, err := uuid.Parse(req.CryptoID)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid crypto id")
		return
	}
	fromID, err := uuid.Parse(req.FromPlatformID)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid source platform id")
		return
	}
	toID, err := uuid.Parse(req.ToPlatformID)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid destination platform id")
		return
	}
	quantity, err := decimal.NewFromString(req.Quantity)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid quantity format")
		return
	}
	fee := decimal.Zero
	if req.NetworkFee != "" {
		if fee, err = decimal.NewFromString(req.NetworkFee); err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid network fee format")
			return
		}
	}

	result, err := s.cfg.TransferService.Transfer(r.Context(), transfer.Input{
		UserID:           user,
		CryptoID:         cryptoID,
		FromPlatformID:   fromID,
		ToPlatformID:     toID,
		Quantity:         quantity,
		NetworkFee:       fee,
		SendFullQuantity: req.SendFullQuantity,
	})
	if err != nil {
		s.writeMappedError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, transferResponse{
		FromPlatform:            result.FromPlatform,
		ToPlatform:              result.ToPlatform,
		RemainingSourceQuantity: result.RemainingSourceQuantity.String(),
		DestinationNewQuantity:  result.DestinationNewQuantity.String(),
		QuantityDelivered:       result.QuantityDelivered.String(),
		TotalDebited:            result.TotalDebited.String(),
	})
}
