package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cryptofolio/cryptofolio-backend/internal/adapter/httpapi"
	"github.com/cryptofolio/cryptofolio-backend/internal/adapter/marketdata"
	"github.com/cryptofolio/cryptofolio-backend/internal/adapter/repository/sqlite"
	"github.com/cryptofolio/cryptofolio-backend/internal/config"
	"github.com/cryptofolio/cryptofolio-backend/internal/scheduler"
	"github.com/cryptofolio/cryptofolio-backend/internal/usecase/history"
	"github.com/cryptofolio/cryptofolio-backend/internal/usecase/insights"
	"github.com/cryptofolio/cryptofolio-backend/internal/usecase/pricefeed"
	"github.com/cryptofolio/cryptofolio-backend/internal/usecase/progress"
	"github.com/cryptofolio/cryptofolio-backend/internal/usecase/transfer"
	"github.com/cryptofolio/cryptofolio-backend/pkg/logger"
)

func main() {
	// 1. Configuration and logging
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.DevMode})
	logger.SetGlobalLogger(log)

	// 2. Database
	db, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer db.Close()

	// 3. Repositories
	cryptoRepo := sqlite.NewCryptoRepository(db)
	platformRepo := sqlite.NewPlatformRepository(db)
	holdingRepo := sqlite.NewHoldingRepository(db)
	goalRepo := sqlite.NewGoalRepository(db)
	targetRepo := sqlite.NewPriceTargetRepository(db)
	transactionRepo := sqlite.NewTransactionRepository(db)
	dateBalanceRepo := sqlite.NewDateBalanceRepository(db)

	// 4. Services (use cases)
	insightsService := insights.NewService(holdingRepo, cryptoRepo, platformRepo)
	transferService := transfer.NewService(holdingRepo, platformRepo)
	progressService := progress.NewService(goalRepo, targetRepo, cryptoRepo, holdingRepo)
	historyService := history.NewService(holdingRepo, dateBalanceRepo, insightsService)

	provider := marketdata.NewClient(cfg.MarketDataURL, log)
	pricefeedService := pricefeed.NewService(cryptoRepo, provider, cfg.PriceCooldown, cfg.PriceMaxBatch, log)

	// 5. Background jobs
	sched := scheduler.New(log)
	if err := sched.AddJob(cfg.PriceRefreshSchedule, &scheduler.PriceRefreshJob{Service: pricefeedService}); err != nil {
		log.Fatal().Err(err).Msg("Failed to register price refresh job")
	}
	if err := sched.AddJob(cfg.SnapshotSchedule, &scheduler.SnapshotJob{Service: historyService}); err != nil {
		log.Fatal().Err(err).Msg("Failed to register snapshot job")
	}
	sched.Start()
	defer sched.Stop()

	// 6. HTTP server
	server := httpapi.New(httpapi.Config{
		Port:            cfg.Port,
		APIToken:        cfg.APIToken,
		DevMode:         cfg.DevMode,
		Log:             log,
		CryptoRepo:      cryptoRepo,
		PlatformRepo:    platformRepo,
		HoldingRepo:     holdingRepo,
		GoalRepo:        goalRepo,
		TargetRepo:      targetRepo,
		TransactionRepo: transactionRepo,
		InsightsService: insightsService,
		TransferService: transferService,
		ProgressService: progressService,
		HistoryService:  historyService,
	})

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// 7. Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigChan
	log.Info().Str("signal", sig.String()).Msg("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Shutdown failed")
	}
}
