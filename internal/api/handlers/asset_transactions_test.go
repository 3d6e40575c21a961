package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/naruebet/Finance-Tracker-Backend/internal/api/handlers"
	"github.com/naruebet/Finance-Tracker-Backend/internal/model"
	"github.com/naruebet/Finance-Tracker-Backend/internal/testutil"
)

// TestAssetTransactionHandler_CreateAssetTransaction tests the creation endpoint.
func TestAssetTransactionHandler_CreateAssetTransaction(t *testing.T) {
	t.Run("creates a transaction from a valid body", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		handler := handlers.NewAssetTransactionHandler(testutil.NewTestBalanceService(t, db))

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/asset-transaction", map[string]any{
			"accountName": "kbank",
			"type":        "IN",
			"amount":      1500.0,
			"date":        "2024-05-01",
			"tag":         "salary",
		})
		rr := httptest.NewRecorder()

		// Execute
		handler.CreateAssetTransaction(rr, req)

		// Assert
		if rr.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", rr.Code, rr.Body.String())
		}

		var created model.AssetTransaction
		testutil.DecodeResponse(t, rr, &created)
		if created.ID == "" {
			t.Error("Expected generated ID in response")
		}
		if created.AccountName != "kbank" || created.Amount != 1500 {
			t.Errorf("Unexpected response body: %+v", created)
		}
		testutil.AssertRowCount(t, db, "asset_transaction", 1)
	})

	t.Run("rejects an invalid direction", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewAssetTransactionHandler(testutil.NewTestBalanceService(t, db))

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/asset-transaction", map[string]any{
			"accountName": "kbank",
			"type":        "DEPOSIT",
			"amount":      100.0,
			"date":        "2024-05-01",
		})
		rr := httptest.NewRecorder()

		handler.CreateAssetTransaction(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rr.Code)
		}
		testutil.AssertRowCount(t, db, "asset_transaction", 0)
	})

	t.Run("rejects unknown fields in the body", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewAssetTransactionHandler(testutil.NewTestBalanceService(t, db))

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/asset-transaction", map[string]any{
			"accountName": "kbank",
			"type":        "IN",
			"amount":      100.0,
			"date":        "2024-05-01",
			"balance":     9999.0,
		})
		rr := httptest.NewRecorder()

		handler.CreateAssetTransaction(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rr.Code)
		}
	})
}

// TestAssetTransactionHandler_BalanceSummary tests the aggregated balance endpoint.
func TestAssetTransactionHandler_BalanceSummary(t *testing.T) {
	t.Run("returns the aggregated view", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewAssetTransactionHandler(testutil.NewTestBalanceService(t, db))

		testutil.NewAssetTransaction().WithAccount("scb").WithAmount(700).Build(t, db)
		testutil.NewAssetTransaction().WithAccount("scb").Outgoing().WithAmount(200).Build(t, db)

		req := httptest.NewRequest(http.MethodGet, "/api/asset-transaction/summary", nil)
		rr := httptest.NewRecorder()

		handler.BalanceSummary(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rr.Code)
		}

		var summary model.BalanceSummary
		testutil.DecodeResponse(t, rr, &summary)
		if summary.Total != 500 {
			t.Errorf("Expected total 500, got %v", summary.Total)
		}
		if len(summary.Accounts) != 1 || summary.Accounts[0].AccountName != "scb" {
			t.Errorf("Unexpected accounts: %+v", summary.Accounts)
		}
	})
}

// TestAssetTransactionHandler_AllAssetTransactions tests the log endpoint.
func TestAssetTransactionHandler_AllAssetTransactions(t *testing.T) {
	t.Run("returns records sorted by date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewAssetTransactionHandler(testutil.NewTestBalanceService(t, db))

		later := testutil.NewAssetTransaction().WithDate(mustDate("2024-06-01")).Build(t, db)
		earlier := testutil.NewAssetTransaction().WithDate(mustDate("2024-01-01")).Build(t, db)

		req := httptest.NewRequest(http.MethodGet, "/api/asset-transaction", nil)
		rr := httptest.NewRecorder()

		handler.AllAssetTransactions(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rr.Code)
		}

		var transactions []model.AssetTransaction
		testutil.DecodeResponse(t, rr, &transactions)
		if len(transactions) != 2 {
			t.Fatalf("Expected 2 transactions, got %d", len(transactions))
		}
		if transactions[0].ID != earlier.ID || transactions[1].ID != later.ID {
			t.Error("Expected transactions in ascending date order")
		}
	})
}
