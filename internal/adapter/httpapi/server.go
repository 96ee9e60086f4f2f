// Package httpapi maps the usecase services onto an HTTP/JSON API.
// It owns routing, request decoding and error translation only; every
// computation lives in the usecase packages.
package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/cryptofolio/cryptofolio-backend/internal/domain"
	"github.com/cryptofolio/cryptofolio-backend/internal/usecase/history"
	"github.com/cryptofolio/cryptofolio-backend/internal/usecase/insights"
	"github.com/cryptofolio/cryptofolio-backend/internal/usecase/progress"
	"github.com/cryptofolio/cryptofolio-backend/internal/usecase/transfer"
)

// Config holds server configuration
type Config struct {
	Port     int
	APIToken string
	DevMode  bool
	Log      zerolog.Logger

	CryptoRepo      domain.CryptoRepository
	PlatformRepo    domain.PlatformRepository
	HoldingRepo     domain.HoldingRepository
	GoalRepo        domain.GoalRepository
	TargetRepo      domain.PriceTargetRepository
	TransactionRepo domain.TransactionRepository

	InsightsService *insights.Service
	TransferService *transfer.Service
	ProgressService *progress.Service
	HistoryService  *history.Service
}

// Server represents the HTTP server
type Server struct {
	router *chi.Mux
	server *http.Server
	log    zerolog.Logger
	cfg    Config
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	s := &Server{
		router: chi.NewRouter(),
		log:    cfg.Log.With().Str("component", "server").Logger(),
		cfg:    cfg,
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Timeout(30 * time.Second))

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-User-ID"},
		MaxAge:         300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Use(authMiddleware(s.cfg.APIToken))

		r.Route("/platforms", func(r chi.Router) {
			r.Get("/", s.handleListPlatforms)
			r.Post("/", s.handleCreatePlatform)
			r.Put("/{platformID}", s.handleUpdatePlatform)
			r.Delete("/{platformID}", s.handleDeletePlatform)
		})

		r.Route("/cryptos", func(r chi.Router) {
			r.Get("/", s.handleListCryptos)
			r.Post("/", s.handleCreateCrypto)
		})

		r.Route("/holdings", func(r chi.Router) {
			r.Get("/", s.handleListHoldings)
			r.Post("/", s.handleSaveHolding)
			r.Delete("/{holdingID}", s.handleDeleteHolding)
		})

		r.Route("/insights", func(r chi.Router) {
			r.Get("/balances", s.handleTotalBalances)
			r.Get("/cryptos", s.handleCryptoInsights)
			r.Get("/cryptos/{cryptoID}/platforms", s.handleCryptoPlatformsInsights)
			r.Get("/platforms", s.handlePlatformInsights)
			r.Get("/platforms/{platformID}/cryptos", s.handlePlatformCryptosInsights)
		})

		r.Post("/transfers", s.handleTransfer)

		r.Route("/goals", func(r chi.Router) {
			r.Get("/", s.handleListGoals)
			r.Post("/", s.handleCreateGoal)
			r.Get("/{goalID}/progress", s.handleGoalProgress)
			r.Delete("/{goalID}", s.handleDeleteGoal)
		})

		r.Route("/price-targets", func(r chi.Router) {
			r.Get("/", s.handleListTargets)
			r.Post("/", s.handleCreateTarget)
			r.Get("/{targetID}/progress", s.handleTargetProgress)
			r.Delete("/{targetID}", s.handleDeleteTarget)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", s.handleListTransactions)
			r.Post("/", s.handleCreateTransaction)
		})

		r.Get("/history", s.handleHistory)
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Int("port", s.cfg.Port).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// Router exposes the handler for tests
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
