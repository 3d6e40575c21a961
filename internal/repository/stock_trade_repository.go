package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/naruebet/Finance-Tracker-Backend/internal/apperrors"
	"github.com/naruebet/Finance-Tracker-Backend/internal/model"
)

// StockTradeRepository provides data access methods for the stock_trade table.
type StockTradeRepository struct {
	db *sql.DB
}

// NewStockTradeRepository creates a new StockTradeRepository with the provided database connection.
func NewStockTradeRepository(db *sql.DB) *StockTradeRepository {
	return &StockTradeRepository{db: db}
}

const stockTradeColumns = `id, side, symbol, transaction_date, executed_price, shares,
		total_amount, stock_amount, commission, vat, fee, sec_fee, taf_fee,
		input_amount_usd, input_shares, currency, created_at`

// GetStockTrades retrieves all stock trades sorted by transaction date ascending.
func (r *StockTradeRepository) GetStockTrades() ([]model.StockTrade, error) {
	query := `SELECT ` + stockTradeColumns + `
		FROM stock_trade
		ORDER BY transaction_date ASC, created_at ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock_trade table: %w", err)
	}
	defer rows.Close()

	trades := []model.StockTrade{}

	for rows.Next() {
		t, err := scanStockTrade(rows)
		if err != nil {
			return nil, err
		}
		trades = append(trades, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stock_trade table: %w", err)
	}

	return trades, nil
}

// InsertStockTrade stores a single new stock trade record.
func (r *StockTradeRepository) InsertStockTrade(ctx context.Context, t *model.StockTrade) error {
	_, err := r.db.ExecContext(ctx, insertStockTradeQuery, insertStockTradeArgs(t)...)
	if err != nil {
		return fmt.Errorf("failed to insert stock trade: %w", err)
	}
	return nil
}

// InsertStockTrades stores a batch of trades in a single database transaction.
// Either every trade is committed or none are; a failure on any insert rolls
// the whole batch back.
func (r *StockTradeRepository) InsertStockTrades(ctx context.Context, trades []model.StockTrade) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin batch insert: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	for i := range trades {
		if _, err := tx.ExecContext(ctx, insertStockTradeQuery, insertStockTradeArgs(&trades[i])...); err != nil {
			return fmt.Errorf("failed to insert trade %d of batch: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batch insert: %w", err)
	}
	return nil
}

// DeleteStockTrade removes a trade by ID.
// Returns apperrors.ErrStockTradeNotFound if no row matches.
func (r *StockTradeRepository) DeleteStockTrade(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM stock_trade WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete stock trade: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrStockTradeNotFound
	}

	return nil
}

const insertStockTradeQuery = `
	INSERT INTO stock_trade (` + stockTradeColumns + `)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

func insertStockTradeArgs(t *model.StockTrade) []any {
	var inputAmount, inputShares any
	if t.InputAmountUSD != nil {
		inputAmount = *t.InputAmountUSD
	}
	if t.InputShares != nil {
		inputShares = *t.InputShares
	}

	return []any{
		t.ID,
		t.Side,
		t.Symbol,
		t.TransactionDate.UTC().Format("2006-01-02 15:04:05"),
		t.ExecutedPrice,
		t.Shares,
		t.TotalAmount,
		t.StockAmount,
		t.Commission,
		t.Vat,
		t.Fee,
		t.SecFee,
		t.TafFee,
		inputAmount,
		inputShares,
		t.Currency,
		t.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
	}
}

func scanStockTrade(rows *sql.Rows) (model.StockTrade, error) {
	var t model.StockTrade
	var transactionDateStr, createdAtStr string
	var inputAmount, inputShares sql.NullFloat64

	err := rows.Scan(
		&t.ID,
		&t.Side,
		&t.Symbol,
		&transactionDateStr,
		&t.ExecutedPrice,
		&t.Shares,
		&t.TotalAmount,
		&t.StockAmount,
		&t.Commission,
		&t.Vat,
		&t.Fee,
		&t.SecFee,
		&t.TafFee,
		&inputAmount,
		&inputShares,
		&t.Currency,
		&createdAtStr,
	)
	if err != nil {
		return t, fmt.Errorf("failed to scan stock_trade table results: %w", err)
	}

	t.TransactionDate, err = ParseTime(transactionDateStr)
	if err != nil {
		return t, err
	}
	t.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return t, err
	}
	if inputAmount.Valid {
		t.InputAmountUSD = &inputAmount.Float64
	}
	if inputShares.Valid {
		t.InputShares = &inputShares.Float64
	}

	return t, nil
}
