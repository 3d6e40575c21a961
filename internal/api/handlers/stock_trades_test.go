package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/naruebet/Finance-Tracker-Backend/internal/api/handlers"
	"github.com/naruebet/Finance-Tracker-Backend/internal/api/response"
	"github.com/naruebet/Finance-Tracker-Backend/internal/model"
	"github.com/naruebet/Finance-Tracker-Backend/internal/testutil"
)

// TestStockTradeHandler_CreateStockTrade tests the single trade endpoint.
func TestStockTradeHandler_CreateStockTrade(t *testing.T) {
	t.Run("creates a BUY from a valid body", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		handler := handlers.NewStockTradeHandler(testutil.NewTestTradeService(t, db))

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/stock-trade", map[string]any{
			"side":            "BUY",
			"symbol":          "aapl",
			"transactionDate": "2024-01-15",
			"executedPrice":   100.0,
			"commission":      10.0,
			"inputAmountUsd":  1000.0,
		})
		rr := httptest.NewRecorder()

		// Execute
		handler.CreateStockTrade(rr, req)

		// Assert
		if rr.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", rr.Code, rr.Body.String())
		}

		var trade model.StockTrade
		testutil.DecodeResponse(t, rr, &trade)
		if trade.Symbol != "AAPL" {
			t.Errorf("Expected symbol AAPL, got %q", trade.Symbol)
		}
		if trade.Shares != 9.9 {
			t.Errorf("Expected 9.9 shares, got %v", trade.Shares)
		}
		testutil.AssertRowCount(t, db, "stock_trade", 1)
	})

	t.Run("rejects a SELL without input shares", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewStockTradeHandler(testutil.NewTestTradeService(t, db))

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/stock-trade", map[string]any{
			"side":            "SELL",
			"symbol":          "AAPL",
			"transactionDate": "2024-01-15",
			"executedPrice":   100.0,
		})
		rr := httptest.NewRecorder()

		handler.CreateStockTrade(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rr.Code)
		}
		testutil.AssertRowCount(t, db, "stock_trade", 0)
	})
}

// TestStockTradeHandler_DeleteStockTrade tests the deletion endpoint.
func TestStockTradeHandler_DeleteStockTrade(t *testing.T) {
	t.Run("deletes an existing trade", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewStockTradeHandler(testutil.NewTestTradeService(t, db))

		trade := testutil.NewStockTrade().Build(t, db)

		req := testutil.NewRequestWithURLParams(
			http.MethodDelete,
			"/api/stock-trade/"+trade.ID,
			map[string]string{"uuid": trade.ID},
		)
		rr := httptest.NewRecorder()

		handler.DeleteStockTrade(rr, req)

		if rr.Code != http.StatusNoContent {
			t.Errorf("Expected status 204, got %d", rr.Code)
		}
		testutil.AssertRowCount(t, db, "stock_trade", 0)
	})

	t.Run("returns 404 for an unknown trade", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewStockTradeHandler(testutil.NewTestTradeService(t, db))

		id := testutil.MakeID()
		req := testutil.NewRequestWithURLParams(
			http.MethodDelete,
			"/api/stock-trade/"+id,
			map[string]string{"uuid": id},
		)
		rr := httptest.NewRecorder()

		handler.DeleteStockTrade(rr, req)

		if rr.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", rr.Code)
		}
	})
}

// TestStockTradeHandler_Positions tests the position view endpoint.
func TestStockTradeHandler_Positions(t *testing.T) {
	t.Run("returns folded positions", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewStockTradeHandler(testutil.NewTestTradeService(t, db))

		testutil.NewStockTrade().WithSymbol("AAPL").Buy(1000, 100).Build(t, db)
		testutil.NewStockTrade().WithSymbol("aapl").Buy(500, 100).Build(t, db)

		req := httptest.NewRequest(http.MethodGet, "/api/stock-trade/positions", nil)
		rr := httptest.NewRecorder()

		handler.Positions(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rr.Code)
		}

		var positions []model.SymbolPosition
		testutil.DecodeResponse(t, rr, &positions)
		if len(positions) != 1 {
			t.Fatalf("Expected 1 position, got %d", len(positions))
		}
		if positions[0].Shares != 15 {
			t.Errorf("Expected 15 shares, got %v", positions[0].Shares)
		}
	})
}

// TestStockTradeHandler_ImportStockTrades tests the batch import endpoint.
//
// WHY: The import endpoint is the boundary where data errors must surface as
// 400 with the offending item named, while storage failures stay 500. Getting
// that split wrong turns user-fixable payload problems into opaque errors.
func TestStockTradeHandler_ImportStockTrades(t *testing.T) {
	t.Run("imports a valid batch", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewStockTradeHandler(testutil.NewTestTradeService(t, db))

		payload := `Extracted: [{"side": "BUY", "symbol": "AAPL", "transaction_date": "2024-01-15", "executed_price": 100, "input_amount_usd": 1000}]`
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/stock-trade/import", map[string]any{
			"payload": payload,
		})
		rr := httptest.NewRecorder()

		handler.ImportStockTrades(rr, req)

		if rr.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", rr.Code, rr.Body.String())
		}

		var trades []model.StockTrade
		testutil.DecodeResponse(t, rr, &trades)
		if len(trades) != 1 {
			t.Fatalf("Expected 1 trade, got %d", len(trades))
		}
		testutil.AssertRowCount(t, db, "stock_trade", 1)
	})

	t.Run("invalid item yields 400 naming the item", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewStockTradeHandler(testutil.NewTestTradeService(t, db))

		payload := `[
			{"side": "BUY", "symbol": "AAPL", "transaction_date": "2024-01-15", "executed_price": 100, "input_amount_usd": 1000},
			{"side": "SELL", "symbol": "AAPL", "transaction_date": "2024-01-16", "executed_price": 100}
		]`
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/stock-trade/import", map[string]any{
			"payload": payload,
		})
		rr := httptest.NewRecorder()

		handler.ImportStockTrades(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("Expected status 400, got %d", rr.Code)
		}

		var errResp response.ErrorResponse
		testutil.DecodeResponse(t, rr, &errResp)
		details, _ := errResp.Details.(string)
		if !strings.Contains(details, "item 1") {
			t.Errorf("Expected details naming item 1, got %q", details)
		}
		testutil.AssertRowCount(t, db, "stock_trade", 0)
	})

	t.Run("payload without JSON yields 400", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewStockTradeHandler(testutil.NewTestTradeService(t, db))

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/stock-trade/import", map[string]any{
			"payload": "nothing to see here",
		})
		rr := httptest.NewRecorder()

		handler.ImportStockTrades(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rr.Code)
		}
	})

	t.Run("empty payload fails validation", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewStockTradeHandler(testutil.NewTestTradeService(t, db))

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/stock-trade/import", map[string]any{
			"payload": "",
		})
		rr := httptest.NewRecorder()

		handler.ImportStockTrades(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rr.Code)
		}
	})
}
