package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/naruebet/Finance-Tracker-Backend/internal/api/handlers"
	"github.com/naruebet/Finance-Tracker-Backend/internal/model"
	"github.com/naruebet/Finance-Tracker-Backend/internal/testutil"
)

// TestOverviewHandler_Overview tests the combined net-worth endpoint.
func TestOverviewHandler_Overview(t *testing.T) {
	t.Run("combines balances fx and positions", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		handler := handlers.NewOverviewHandler(testutil.NewTestOverviewService(t, db))

		testutil.NewAssetTransaction().WithAccount("kbank").WithAmount(10000).Build(t, db)
		testutil.NewFxConversion().
			WithDate(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)).
			WithAmounts(100, 3500).
			Build(t, db)
		testutil.NewStockTrade().WithSymbol("AAPL").Buy(1000, 100).Build(t, db)

		req := httptest.NewRequest(http.MethodGet, "/api/overview", nil)
		rr := httptest.NewRecorder()

		// Execute
		handler.Overview(rr, req)

		// Assert
		if rr.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", rr.Code, rr.Body.String())
		}

		var overview model.Overview
		testutil.DecodeResponse(t, rr, &overview)
		if overview.TotalBalance != 10000 {
			t.Errorf("Expected total balance 10000, got %v", overview.TotalBalance)
		}
		if overview.Fx.Count != 1 {
			t.Errorf("Expected 1 fx conversion, got %d", overview.Fx.Count)
		}
		if len(overview.Positions) != 1 || overview.Positions[0].Symbol != "AAPL" {
			t.Errorf("Unexpected positions: %+v", overview.Positions)
		}
	})

	t.Run("empty database yields an empty view", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewOverviewHandler(testutil.NewTestOverviewService(t, db))

		req := httptest.NewRequest(http.MethodGet, "/api/overview", nil)
		rr := httptest.NewRecorder()

		handler.Overview(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rr.Code)
		}

		var overview model.Overview
		testutil.DecodeResponse(t, rr, &overview)
		if overview.TotalBalance != 0 || len(overview.Accounts) != 0 || len(overview.Positions) != 0 {
			t.Errorf("Expected empty overview, got %+v", overview)
		}
	})
}
