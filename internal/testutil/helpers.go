package testutil

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"

	"github.com/naruebet/Finance-Tracker-Backend/internal/repository"
	"github.com/naruebet/Finance-Tracker-Backend/internal/service"
)

// HomeCurrency is the home currency used by test FX services.
const HomeCurrency = "THB"

func NewTestBalanceService(t *testing.T, db *sql.DB) *service.BalanceService {
	t.Helper()

	return service.NewBalanceService(repository.NewAssetTransactionRepository(db))
}

func NewTestFxService(t *testing.T, db *sql.DB) *service.FxService {
	t.Helper()

	return service.NewFxService(repository.NewFxConversionRepository(db), HomeCurrency)
}

func NewTestTradeService(t *testing.T, db *sql.DB) *service.TradeService {
	t.Helper()

	return service.NewTradeService(repository.NewStockTradeRepository(db))
}

func NewTestOverviewService(t *testing.T, db *sql.DB) *service.OverviewService {
	t.Helper()

	return service.NewOverviewService(
		NewTestBalanceService(t, db),
		NewTestFxService(t, db),
		NewTestTradeService(t, db),
	)
}

func NewTestMaintenanceService(t *testing.T, db *sql.DB) *service.MaintenanceService {
	t.Helper()

	return service.NewMaintenanceService(db, t.TempDir())
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// MakeID generates a UUID string for use in tests.
func MakeID() string {
	return uuid.New().String()
}

// Float returns a pointer to the given float, for optional request fields.
func Float(v float64) *float64 {
	return &v
}
