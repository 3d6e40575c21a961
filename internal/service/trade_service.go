package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/naruebet/Finance-Tracker-Backend/internal/api/request"
	"github.com/naruebet/Finance-Tracker-Backend/internal/apperrors"
	"github.com/naruebet/Finance-Tracker-Backend/internal/importer"
	"github.com/naruebet/Finance-Tracker-Backend/internal/model"
	"github.com/naruebet/Finance-Tracker-Backend/internal/repository"
)

// TradeService handles stock trade business logic operations, including the
// batch import path.
type TradeService struct {
	stockTradeRepo *repository.StockTradeRepository
}

// NewTradeService creates a new TradeService with the provided repository dependencies.
func NewTradeService(
	stockTradeRepo *repository.StockTradeRepository,
) *TradeService {
	return &TradeService{
		stockTradeRepo: stockTradeRepo,
	}
}

// GetStockTrades retrieves all stock trades sorted by transaction date.
func (s *TradeService) GetStockTrades() ([]model.StockTrade, error) {
	return s.stockTradeRepo.GetStockTrades()
}

// GetPositions fetches a fresh snapshot of the trade log and folds it into
// per-symbol positions.
func (s *TradeService) GetPositions() ([]model.SymbolPosition, error) {
	trades, err := s.stockTradeRepo.GetStockTrades()
	if err != nil {
		return nil, err
	}
	return SummarizePositions(trades), nil
}

// CreateStockTrade derives and stores a single trade from a validated request.
func (s *TradeService) CreateStockTrade(ctx context.Context, req request.CreateStockTradeRequest) (*model.StockTrade, error) {
	transactionDate, err := repository.ParseTime(req.TransactionDate)
	if err != nil {
		return nil, err
	}

	trade, err := BuildStockTrade(TradeParams{
		Side:            req.Side,
		Symbol:          req.Symbol,
		TransactionDate: transactionDate,
		ExecutedPrice:   req.ExecutedPrice,
		Commission:      req.Commission,
		Vat:             req.Vat,
		Fee:             req.Fee,
		SecFee:          req.SecFee,
		TafFee:          req.TafFee,
		InputAmountUSD:  req.InputAmountUSD,
		InputShares:     req.InputShares,
		Currency:        req.Currency,
	})
	if err != nil {
		return nil, err
	}

	if err := s.stockTradeRepo.InsertStockTrade(ctx, &trade); err != nil {
		return nil, fmt.Errorf("failed to create stock trade: %w", err)
	}

	return &trade, nil
}

// DeleteStockTrade removes a single trade by ID.
func (s *TradeService) DeleteStockTrade(ctx context.Context, id string) error {
	return s.stockTradeRepo.DeleteStockTrade(ctx, id)
}

// ImportStockTrades parses a semi-structured text blob into trades and stores
// them as one batch. The whole batch is validated before anything is written;
// any invalid item aborts the import with no partial commit.
func (s *TradeService) ImportStockTrades(ctx context.Context, payload string) ([]model.StockTrade, error) {
	items, err := importer.Parse(payload)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidImportPayload) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s", apperrors.ErrImportValidation, err)
	}

	trades := make([]model.StockTrade, 0, len(items))
	for i, item := range items {
		transactionDate, err := repository.ParseTime(item.TransactionDate)
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %s", apperrors.ErrImportValidation, i, err)
		}

		trade, err := BuildStockTrade(TradeParams{
			Side:            item.Side,
			Symbol:          item.Symbol,
			TransactionDate: transactionDate,
			ExecutedPrice:   *item.ExecutedPrice,
			Commission:      item.Commission,
			Vat:             item.Vat,
			Fee:             item.Fee,
			SecFee:          item.SecFee,
			TafFee:          item.TafFee,
			InputAmountUSD:  item.InputAmountUSD,
			InputShares:     item.InputShares,
			Currency:        item.Currency,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %s", apperrors.ErrImportValidation, i, err)
		}

		trades = append(trades, trade)
	}

	if err := s.stockTradeRepo.InsertStockTrades(ctx, trades); err != nil {
		return nil, err
	}

	return trades, nil
}
