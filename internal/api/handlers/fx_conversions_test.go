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

// TestFxConversionHandler_CreateFxConversion tests the creation endpoint.
func TestFxConversionHandler_CreateFxConversion(t *testing.T) {
	t.Run("creates a conversion and derives the rate", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		handler := handlers.NewFxConversionHandler(testutil.NewTestFxService(t, db))

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/fx-conversion", map[string]any{
			"transactionAt": "2024-03-10",
			"fromCurrency":  "THB",
			"toCurrency":    "USD",
			"foreignAmount": 200.0,
			"thbAmount":     7000.0,
		})
		rr := httptest.NewRecorder()

		// Execute
		handler.CreateFxConversion(rr, req)

		// Assert
		if rr.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", rr.Code, rr.Body.String())
		}

		var conversion model.FxConversion
		testutil.DecodeResponse(t, rr, &conversion)
		if conversion.ExchangeRate != 35 {
			t.Errorf("Expected derived rate 35, got %v", conversion.ExchangeRate)
		}
		testutil.AssertRowCount(t, db, "fx_conversion", 1)
	})

	t.Run("rejects identical currencies", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewFxConversionHandler(testutil.NewTestFxService(t, db))

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/fx-conversion", map[string]any{
			"transactionAt": "2024-03-10",
			"fromCurrency":  "THB",
			"toCurrency":    "THB",
			"foreignAmount": 200.0,
			"thbAmount":     7000.0,
		})
		rr := httptest.NewRecorder()

		handler.CreateFxConversion(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rr.Code)
		}
	})

	t.Run("rejects an unknown currency code", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewFxConversionHandler(testutil.NewTestFxService(t, db))

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/fx-conversion", map[string]any{
			"transactionAt": "2024-03-10",
			"fromCurrency":  "THB",
			"toCurrency":    "ZZZ",
			"foreignAmount": 200.0,
			"thbAmount":     7000.0,
		})
		rr := httptest.NewRecorder()

		handler.CreateFxConversion(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rr.Code)
		}
	})
}

// TestFxConversionHandler_FxSummary tests the filtered summary endpoint.
func TestFxConversionHandler_FxSummary(t *testing.T) {
	t.Run("filters by year and month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewFxConversionHandler(testutil.NewTestFxService(t, db))

		testutil.NewFxConversion().
			WithDate(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)).
			WithAmounts(100, 3500).
			Build(t, db)
		testutil.NewFxConversion().
			WithDate(time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)).
			WithAmounts(100, 3600).
			Build(t, db)

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/fx-conversion/summary", map[string]string{
			"year":  "2024",
			"month": "3",
		})
		rr := httptest.NewRecorder()

		handler.FxSummary(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rr.Code)
		}

		var summary model.FxSummary
		testutil.DecodeResponse(t, rr, &summary)
		if summary.Count != 1 {
			t.Errorf("Expected 1 conversion in March, got %d", summary.Count)
		}
		if summary.AverageRate != 35 {
			t.Errorf("Expected average rate 35, got %v", summary.AverageRate)
		}
	})

	t.Run("all disables the period predicate", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewFxConversionHandler(testutil.NewTestFxService(t, db))

		testutil.NewFxConversion().
			WithDate(time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC)).
			WithAmounts(100, 3400).
			Build(t, db)
		testutil.NewFxConversion().
			WithDate(time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)).
			WithAmounts(100, 3600).
			Build(t, db)

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/fx-conversion/summary", map[string]string{
			"year":  "all",
			"month": "all",
		})
		rr := httptest.NewRecorder()

		handler.FxSummary(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rr.Code)
		}

		var summary model.FxSummary
		testutil.DecodeResponse(t, rr, &summary)
		if summary.Count != 2 {
			t.Errorf("Expected all conversions, got %d", summary.Count)
		}
	})

	t.Run("omitted period defaults to the latest record", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewFxConversionHandler(testutil.NewTestFxService(t, db))

		testutil.NewFxConversion().
			WithDate(time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC)).
			WithAmounts(100, 3400).
			Build(t, db)
		testutil.NewFxConversion().
			WithDate(time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)).
			WithAmounts(100, 3600).
			Build(t, db)

		req := httptest.NewRequest(http.MethodGet, "/api/fx-conversion/summary", nil)
		rr := httptest.NewRecorder()

		handler.FxSummary(rr, req)

		var summary model.FxSummary
		testutil.DecodeResponse(t, rr, &summary)
		if summary.Year != 2024 || summary.Month != 4 {
			t.Errorf("Expected period 2024/4, got %d/%d", summary.Year, summary.Month)
		}
		if summary.Count != 1 {
			t.Errorf("Expected only the latest month's conversion, got %d", summary.Count)
		}
	})

	t.Run("rejects a non-numeric year", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewFxConversionHandler(testutil.NewTestFxService(t, db))

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/fx-conversion/summary", map[string]string{
			"year": "twenty24",
		})
		rr := httptest.NewRecorder()

		handler.FxSummary(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rr.Code)
		}
	})
}
