package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/cryptofolio/cryptofolio-backend/internal/usecase/insights"
)

// insightQuery parses page/sortBy/sortOrder query params. The page param
// is 0-based; responses report it 1-based.
func insightQuery(r *http.Request) insights.Query {
	q := insights.Query{
		SortBy: insights.SortByPercentage,
		Order:  insights.Descending,
	}
	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		q.Page = page
	}
	if v := r.URL.Query().Get("sortBy"); v != "" {
		q.SortBy = insights.SortKey(v)
	}
	if v := r.URL.Query().Get("sortOrder"); v != "" {
		q.Order = insights.SortOrder(v)
	}
	return q
}

func (s *Server) handleTotalBalances(w http.ResponseWriter, r *http.Request) {
	user, err := userID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid or missing X-User-ID header")
		return
	}

	total, err := s.cfg.InsightsService.Total(r.Context(), user)
	if err != nil {
		s.writeMappedError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, total)
}

func (s *Server) handleCryptoInsights(w http.ResponseWriter, r *http.Request) {
	user, err := userID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid or missing X-User-ID header")
		return
	}

	page, err := s.cfg.InsightsService.CryptoInsights(r.Context(), user, insightQuery(r))
	if err != nil {
		s.writeMappedError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, page)
}

func (s *Server) handlePlatformInsights(w http.ResponseWriter, r *http.Request) {
	user, err := userID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid or missing X-User-ID header")
		return
	}

	page, err := s.cfg.InsightsService.PlatformInsights(r.Context(), user, insightQuery(r))
	if err != nil {
		s.writeMappedError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, page)
}

func (s *Server) handleCryptoPlatformsInsights(w http.ResponseWriter, r *http.Request) {
	user, err := userID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid or missing X-User-ID header")
		return
	}

	cryptoID, err := uuid.Parse(chi.URLParam(r, "cryptoID"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid crypto id")
		return
	}

	page, err := s.cfg.InsightsService.CryptoPlatforms(r.Context(), user, cryptoID, insightQuery(r))
	if err != nil {
		s.writeMappedError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, page)
}

func (s *Server) handlePlatformCryptosInsights(w http.ResponseWriter, r *http.Request) {
	user, err := userID(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid or missing X-User-ID header")
		return
	}

	platformID, err := uuid.Parse(chi.URLParam(r, "platformID"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid platform id")
		return
	}

	page, err := s.cfg.InsightsService.PlatformCryptos(r.Context(), user, platformID, insightQuery(r))
	if err != nil {
		s.writeMappedError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, page)
}
