package httpapi

import (
	"net/http"
	"strconv"

	"github.com/cryptofolio/cryptofolio-backend/internal/domain"
)

type snapshotResponse struct {
	Date     string          `json:"date"`
	Balances domain.Balances `json:"balances"`
}

type historyResponse struct {
	Snapshots []snapshotResponse `json:"snapshots"`
	ChangeUSD string             `json:"changeUsd"`
	ChangeEUR string             `json:"changeEur"`
	ChangeBTC string             `json:"changeBtc"`
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	user, err := userID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid or missing X-User-ID header")
		return
	}

	days := 0
	if v, err := strconv.Atoi(r.URL.Query().Get("days")); err == nil {
		days = v
	}

	report, err := s.cfg.HistoryService.Report(r.Context(), user, days)
	if err != nil {
		s.writeMappedError(w, err)
		return
	}

	result := historyResponse{
		Snapshots: make([]snapshotResponse, 0, len(report.Snapshots)),
		ChangeUSD: report.ChangeUSD,
		ChangeEUR: report.ChangeEUR,
		ChangeBTC: report.ChangeBTC,
	}
	for _, snap := range report.Snapshots {
		result.Snapshots = append(result.Snapshots, snapshotResponse{
			Date:     snap.Date.Format("2006-01-02"),
			Balances: snap.Balances,
		})
	}
	s.writeJSON(w, http.StatusOK, result)
}
