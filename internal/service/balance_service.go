package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/naruebet/Finance-Tracker-Backend/internal/api/request"
	"github.com/naruebet/Finance-Tracker-Backend/internal/model"
	"github.com/naruebet/Finance-Tracker-Backend/internal/repository"
)

// BalanceService handles asset transaction business logic operations.
type BalanceService struct {
	assetTransactionRepo *repository.AssetTransactionRepository
}

// NewBalanceService creates a new BalanceService with the provided repository dependencies.
func NewBalanceService(
	assetTransactionRepo *repository.AssetTransactionRepository,
) *BalanceService {
	return &BalanceService{
		assetTransactionRepo: assetTransactionRepo,
	}
}

// GetAssetTransactions retrieves all asset transactions sorted by date.
func (s *BalanceService) GetAssetTransactions() ([]model.AssetTransaction, error) {
	return s.assetTransactionRepo.GetAssetTransactions()
}

// GetBalanceSummary fetches a fresh snapshot of the asset transaction log and
// folds it into the total and per-account balances.
func (s *BalanceService) GetBalanceSummary() (model.BalanceSummary, error) {
	transactions, err := s.assetTransactionRepo.GetAssetTransactions()
	if err != nil {
		return model.BalanceSummary{}, err
	}
	return SummarizeBalances(transactions), nil
}

// CreateAssetTransaction stores a new asset transaction from a validated request.
func (s *BalanceService) CreateAssetTransaction(ctx context.Context, req request.CreateAssetTransactionRequest) (*model.AssetTransaction, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, err
	}

	transaction := &model.AssetTransaction{
		ID:          uuid.New().String(),
		AccountName: req.AccountName,
		Type:        req.Type,
		Amount:      req.Amount,
		Date:        date,
		Tag:         req.Tag,
		Note:        req.Note,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.assetTransactionRepo.InsertAssetTransaction(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create asset transaction: %w", err)
	}

	return transaction, nil
}
