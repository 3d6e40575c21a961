package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/naruebet/Finance-Tracker-Backend/internal/api"
	"github.com/naruebet/Finance-Tracker-Backend/internal/config"
	"github.com/naruebet/Finance-Tracker-Backend/internal/database"
	"github.com/naruebet/Finance-Tracker-Backend/internal/repository"
	"github.com/naruebet/Finance-Tracker-Backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create repositories
	assetTransactionRepo := repository.NewAssetTransactionRepository(db)
	fxConversionRepo := repository.NewFxConversionRepository(db)
	stockTradeRepo := repository.NewStockTradeRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	balanceService := service.NewBalanceService(assetTransactionRepo)
	fxService := service.NewFxService(fxConversionRepo, cfg.Finance.HomeCurrency)
	tradeService := service.NewTradeService(stockTradeRepo)
	overviewService := service.NewOverviewService(balanceService, fxService, tradeService)
	maintenanceService := service.NewMaintenanceService(db, cfg.Backup.Dir)

	// Schedule nightly backups
	scheduler := cron.New()
	if cfg.Backup.Dir != "" {
		if _, err := scheduler.AddFunc(cfg.Backup.Schedule, maintenanceService.RunScheduledBackup); err != nil {
			log.Fatalf("Failed to schedule backup: %v", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	// Create router
	router := api.NewRouter(systemService, balanceService, fxService, tradeService, overviewService, maintenanceService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
