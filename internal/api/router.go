package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/naruebet/Finance-Tracker-Backend/internal/api/handlers"
	custommiddleware "github.com/naruebet/Finance-Tracker-Backend/internal/api/middleware"
	"github.com/naruebet/Finance-Tracker-Backend/internal/config"
	"github.com/naruebet/Finance-Tracker-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	balanceService *service.BalanceService,
	fxService *service.FxService,
	tradeService *service.TradeService,
	overviewService *service.OverviewService,
	maintenanceService *service.MaintenanceService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/asset-transaction", func(r chi.Router) {
			assetTransactionHandler := handlers.NewAssetTransactionHandler(balanceService)
			r.Get("/", assetTransactionHandler.AllAssetTransactions)
			r.Post("/", assetTransactionHandler.CreateAssetTransaction)
			r.Get("/summary", assetTransactionHandler.BalanceSummary)
		})

		r.Route("/fx-conversion", func(r chi.Router) {
			fxConversionHandler := handlers.NewFxConversionHandler(fxService)
			r.Get("/", fxConversionHandler.AllFxConversions)
			r.Post("/", fxConversionHandler.CreateFxConversion)
			r.Get("/summary", fxConversionHandler.FxSummary)
		})

		r.Route("/stock-trade", func(r chi.Router) {
			stockTradeHandler := handlers.NewStockTradeHandler(tradeService)
			r.Get("/", stockTradeHandler.AllStockTrades)
			r.Post("/", stockTradeHandler.CreateStockTrade)
			r.Get("/positions", stockTradeHandler.Positions)
			r.Post("/import", stockTradeHandler.ImportStockTrades)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Delete("/", stockTradeHandler.DeleteStockTrade)
			})
		})

		overviewHandler := handlers.NewOverviewHandler(overviewService)
		r.Get("/overview", overviewHandler.Overview)

		r.Route("/developer", func(r chi.Router) {
			r.Use(custommiddleware.APIKeyMiddleware)
			developerHandler := handlers.NewDeveloperHandler(maintenanceService)
			r.Post("/backup", developerHandler.Backup)
		})
	})

	return r
}
