package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/naruebet/Finance-Tracker-Backend/internal/model"
)

// FxConversionRepository provides data access methods for the fx_conversion table.
type FxConversionRepository struct {
	db *sql.DB
}

// NewFxConversionRepository creates a new FxConversionRepository with the provided database connection.
func NewFxConversionRepository(db *sql.DB) *FxConversionRepository {
	return &FxConversionRepository{db: db}
}

// GetFxConversions retrieves all FX conversions sorted by transaction time ascending.
// Filtering by year, month or currency pair happens in the service layer over
// this snapshot; the record set stays small enough that pushing predicates into
// SQL buys nothing.
func (r *FxConversionRepository) GetFxConversions() ([]model.FxConversion, error) {
	query := `
		SELECT id, transaction_at, from_currency, to_currency, foreign_amount, thb_amount, exchange_rate, created_at
		FROM fx_conversion
		ORDER BY transaction_at ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query fx_conversion table: %w", err)
	}
	defer rows.Close()

	conversions := []model.FxConversion{}

	for rows.Next() {
		var c model.FxConversion
		var transactionAtStr, createdAtStr string

		err := rows.Scan(
			&c.ID,
			&transactionAtStr,
			&c.FromCurrency,
			&c.ToCurrency,
			&c.ForeignAmount,
			&c.ThbAmount,
			&c.ExchangeRate,
			&createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fx_conversion table results: %w", err)
		}

		c.TransactionAt, err = ParseTime(transactionAtStr)
		if err != nil {
			return nil, err
		}
		c.CreatedAt, err = ParseTime(createdAtStr)
		if err != nil {
			return nil, err
		}

		conversions = append(conversions, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fx_conversion table: %w", err)
	}

	return conversions, nil
}

// InsertFxConversion stores a new FX conversion record.
func (r *FxConversionRepository) InsertFxConversion(ctx context.Context, c *model.FxConversion) error {
	query := `
		INSERT INTO fx_conversion (id, transaction_at, from_currency, to_currency, foreign_amount, thb_amount, exchange_rate, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.TransactionAt.UTC().Format("2006-01-02 15:04:05"),
		c.FromCurrency,
		c.ToCurrency,
		c.ForeignAmount,
		c.ThbAmount,
		c.ExchangeRate,
		c.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		return fmt.Errorf("failed to insert fx conversion: %w", err)
	}

	return nil
}
