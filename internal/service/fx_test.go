package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/naruebet/Finance-Tracker-Backend/internal/api/request"
	"github.com/naruebet/Finance-Tracker-Backend/internal/model"
	"github.com/naruebet/Finance-Tracker-Backend/internal/service"
	"github.com/naruebet/Finance-Tracker-Backend/internal/testutil"
)

func fxRecord(at time.Time, from, to string, foreign, thb float64) model.FxConversion {
	return model.FxConversion{
		TransactionAt: at,
		FromCurrency:  from,
		ToCurrency:    to,
		ForeignAmount: foreign,
		ThbAmount:     thb,
		ExchangeRate:  thb / foreign,
	}
}

// TestSummarizeConversions tests the FX aggregate fold.
//
// WHY: The average rate is volume-weighted (sum of THB over sum of foreign),
// which is the property that makes the figure stable when the same flow is
// split across multiple records. These cases pin that down along with the
// inflow/outflow direction and the filter semantics.
func TestSummarizeConversions(t *testing.T) {
	jan := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)

	t.Run("outflow counts conversions out of the home currency", func(t *testing.T) {
		conversions := []model.FxConversion{
			fxRecord(jan, "THB", "USD", 100, 3500),
			fxRecord(jan, "USD", "THB", 50, 1800),
		}

		summary := service.SummarizeConversions(conversions, service.FxFilter{Year: 2024, Month: 1}, "THB")

		if !almostEqual(summary.Outflow, 3500) {
			t.Errorf("Expected outflow 3500, got %v", summary.Outflow)
		}
		if !almostEqual(summary.Inflow, 1800) {
			t.Errorf("Expected inflow 1800, got %v", summary.Inflow)
		}
		if summary.Count != 2 {
			t.Errorf("Expected count 2, got %d", summary.Count)
		}
	})

	t.Run("average rate is total thb over total foreign", func(t *testing.T) {
		conversions := []model.FxConversion{
			fxRecord(jan, "THB", "USD", 100, 3500), // rate 35
			fxRecord(jan, "THB", "USD", 300, 10800), // rate 36
		}

		summary := service.SummarizeConversions(conversions, service.FxFilter{Year: 2024, Month: 1}, "THB")

		// (3500 + 10800) / (100 + 300) = 35.75, not the unweighted mean 35.5
		if !almostEqual(summary.AverageRate, 35.75) {
			t.Errorf("Expected average rate 35.75, got %v", summary.AverageRate)
		}
	})

	t.Run("average rate is invariant under record splitting", func(t *testing.T) {
		single := []model.FxConversion{
			fxRecord(jan, "THB", "USD", 200, 7100),
		}
		split := []model.FxConversion{
			fxRecord(jan, "THB", "USD", 50, 1775),
			fxRecord(jan, "THB", "USD", 150, 5325),
		}

		filter := service.FxFilter{Year: 2024, Month: 1}
		a := service.SummarizeConversions(single, filter, "THB")
		b := service.SummarizeConversions(split, filter, "THB")

		if !almostEqual(a.AverageRate, b.AverageRate) {
			t.Errorf("Average rate changed under splitting: %v vs %v", a.AverageRate, b.AverageRate)
		}
		if !almostEqual(a.Outflow, b.Outflow) {
			t.Errorf("Outflow changed under splitting: %v vs %v", a.Outflow, b.Outflow)
		}
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		conversions := []model.FxConversion{
			fxRecord(jan, "THB", "USD", 100, 3500),
			fxRecord(feb, "THB", "USD", 100, 3600),
			fxRecord(feb, "THB", "JPY", 10000, 2400),
		}

		summary := service.SummarizeConversions(conversions, service.FxFilter{
			Year:       2024,
			Month:      2,
			ToCurrency: "USD",
		}, "THB")

		if summary.Count != 1 {
			t.Fatalf("Expected 1 matching conversion, got %d", summary.Count)
		}
		if !almostEqual(summary.TotalThb, 3600) {
			t.Errorf("Expected total thb 3600, got %v", summary.TotalThb)
		}
	})

	t.Run("FilterAll disables the period predicate", func(t *testing.T) {
		conversions := []model.FxConversion{
			fxRecord(jan, "THB", "USD", 100, 3500),
			fxRecord(feb, "THB", "USD", 100, 3600),
			fxRecord(time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), "THB", "USD", 100, 3400),
		}

		summary := service.SummarizeConversions(conversions, service.FxFilter{
			Year:  service.FilterAll,
			Month: service.FilterAll,
		}, "THB")

		if summary.Count != 3 {
			t.Errorf("Expected all 3 conversions, got %d", summary.Count)
		}
		if summary.Year != 0 || summary.Month != 0 {
			t.Errorf("Expected zeroed period in output, got %d/%d", summary.Year, summary.Month)
		}
	})

	t.Run("unset period defaults to the most recent record", func(t *testing.T) {
		conversions := []model.FxConversion{
			fxRecord(jan, "THB", "USD", 100, 3500),
			fxRecord(feb, "THB", "USD", 100, 3600),
		}

		summary := service.SummarizeConversions(conversions, service.FxFilter{}, "THB")

		if summary.Year != 2024 || summary.Month != 2 {
			t.Fatalf("Expected period 2024/2, got %d/%d", summary.Year, summary.Month)
		}
		if summary.Count != 1 {
			t.Errorf("Expected only February's conversion, got %d", summary.Count)
		}
	})

	t.Run("empty set yields zero average not an error", func(t *testing.T) {
		summary := service.SummarizeConversions(nil, service.FxFilter{Year: 2024, Month: 1}, "THB")

		if summary.AverageRate != 0 || summary.Count != 0 {
			t.Errorf("Expected zero summary, got %+v", summary)
		}
	})
}

// TestFxService_GetFxSummary tests the summary over stored records.
func TestFxService_GetFxSummary(t *testing.T) {
	t.Run("summarizes persisted conversions", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestFxService(t, db)

		at := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
		testutil.NewFxConversion().WithDate(at).WithAmounts(100, 3500).Build(t, db)
		testutil.NewFxConversion().WithDate(at).WithAmounts(100, 3700).Build(t, db)

		summary, err := svc.GetFxSummary(service.FxFilter{Year: 2024, Month: 3})
		if err != nil {
			t.Fatalf("GetFxSummary() returned unexpected error: %v", err)
		}

		if summary.Count != 2 {
			t.Fatalf("Expected 2 conversions, got %d", summary.Count)
		}
		if !almostEqual(summary.AverageRate, 36) {
			t.Errorf("Expected average rate 36, got %v", summary.AverageRate)
		}
		if !almostEqual(summary.Outflow, 7200) {
			t.Errorf("Expected outflow 7200, got %v", summary.Outflow)
		}
	})
}

// TestFxService_CreateFxConversion tests conversion creation and rate derivation.
func TestFxService_CreateFxConversion(t *testing.T) {
	t.Run("derives the rate when omitted", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestFxService(t, db)

		created, err := svc.CreateFxConversion(context.Background(), request.CreateFxConversionRequest{
			TransactionAt: "2024-03-10",
			FromCurrency:  "THB",
			ToCurrency:    "USD",
			ForeignAmount: 200,
			ThbAmount:     7100,
		})
		if err != nil {
			t.Fatalf("CreateFxConversion() returned unexpected error: %v", err)
		}

		if !almostEqual(created.ExchangeRate, 35.5) {
			t.Errorf("Expected derived rate 35.5, got %v", created.ExchangeRate)
		}
		testutil.AssertRowCount(t, db, "fx_conversion", 1)
	})

	t.Run("keeps an explicit rate", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestFxService(t, db)

		created, err := svc.CreateFxConversion(context.Background(), request.CreateFxConversionRequest{
			TransactionAt: "2024-03-10",
			FromCurrency:  "THB",
			ToCurrency:    "USD",
			ForeignAmount: 200,
			ThbAmount:     7100,
			ExchangeRate:  testutil.Float(35.49),
		})
		if err != nil {
			t.Fatalf("CreateFxConversion() returned unexpected error: %v", err)
		}

		if !almostEqual(created.ExchangeRate, 35.49) {
			t.Errorf("Expected explicit rate 35.49, got %v", created.ExchangeRate)
		}
	})
}
