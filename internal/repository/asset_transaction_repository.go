package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/naruebet/Finance-Tracker-Backend/internal/model"
)

// AssetTransactionRepository provides data access methods for the asset_transaction table.
type AssetTransactionRepository struct {
	db *sql.DB
}

// NewAssetTransactionRepository creates a new AssetTransactionRepository with the provided database connection.
func NewAssetTransactionRepository(db *sql.DB) *AssetTransactionRepository {
	return &AssetTransactionRepository{db: db}
}

// GetAssetTransactions retrieves all asset transactions sorted by date ascending.
// Callers receive a complete snapshot; aggregation happens in the service layer.
func (r *AssetTransactionRepository) GetAssetTransactions() ([]model.AssetTransaction, error) {
	query := `
		SELECT id, account_name, type, amount, date, tag, note, created_at
		FROM asset_transaction
		ORDER BY date ASC, created_at ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query asset_transaction table: %w", err)
	}
	defer rows.Close()

	transactions := []model.AssetTransaction{}

	for rows.Next() {
		var t model.AssetTransaction
		var dateStr, createdAtStr string
		var tag, note sql.NullString

		err := rows.Scan(
			&t.ID,
			&t.AccountName,
			&t.Type,
			&t.Amount,
			&dateStr,
			&tag,
			&note,
			&createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset_transaction table results: %w", err)
		}

		t.Date, err = ParseTime(dateStr)
		if err != nil {
			return nil, err
		}
		t.CreatedAt, err = ParseTime(createdAtStr)
		if err != nil {
			return nil, err
		}
		t.Tag = tag.String
		t.Note = note.String

		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating asset_transaction table: %w", err)
	}

	return transactions, nil
}

// InsertAssetTransaction stores a new asset transaction record.
func (r *AssetTransactionRepository) InsertAssetTransaction(ctx context.Context, t *model.AssetTransaction) error {
	query := `
		INSERT INTO asset_transaction (id, account_name, type, amount, date, tag, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.AccountName,
		t.Type,
		t.Amount,
		t.Date.Format("2006-01-02"),
		nullable(t.Tag),
		nullable(t.Note),
		t.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		return fmt.Errorf("failed to insert asset transaction: %w", err)
	}

	return nil
}

// nullable maps an empty string to SQL NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
