package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/naruebet/Finance-Tracker-Backend/internal/api/request"
	"github.com/naruebet/Finance-Tracker-Backend/internal/model"
	"github.com/naruebet/Finance-Tracker-Backend/internal/repository"
)

// FxService handles FX conversion business logic operations.
type FxService struct {
	fxConversionRepo *repository.FxConversionRepository
	homeCurrency     string
}

// NewFxService creates a new FxService. homeCurrency identifies the
// inflow/outflow direction in summaries.
func NewFxService(
	fxConversionRepo *repository.FxConversionRepository,
	homeCurrency string,
) *FxService {
	return &FxService{
		fxConversionRepo: fxConversionRepo,
		homeCurrency:     homeCurrency,
	}
}

// GetFxConversions retrieves all FX conversions sorted by transaction time.
func (s *FxService) GetFxConversions() ([]model.FxConversion, error) {
	return s.fxConversionRepo.GetFxConversions()
}

// GetFxSummary fetches a fresh snapshot of the conversion log and summarizes
// the subset selected by the filter.
func (s *FxService) GetFxSummary(filter FxFilter) (model.FxSummary, error) {
	conversions, err := s.fxConversionRepo.GetFxConversions()
	if err != nil {
		return model.FxSummary{}, err
	}
	return SummarizeConversions(conversions, filter, s.homeCurrency), nil
}

// CreateFxConversion stores a new FX conversion from a validated request.
// When the request omits the exchange rate it is derived as the home-currency
// amount divided by the foreign amount.
func (s *FxService) CreateFxConversion(ctx context.Context, req request.CreateFxConversionRequest) (*model.FxConversion, error) {
	transactionAt, err := repository.ParseTime(req.TransactionAt)
	if err != nil {
		return nil, err
	}

	rate := 0.0
	if req.ExchangeRate != nil {
		rate = *req.ExchangeRate
	} else if req.ForeignAmount != 0 {
		rate = decimal.NewFromFloat(req.ThbAmount).
			Div(decimal.NewFromFloat(req.ForeignAmount)).
			InexactFloat64()
	}

	conversion := &model.FxConversion{
		ID:            uuid.New().String(),
		TransactionAt: transactionAt,
		FromCurrency:  req.FromCurrency,
		ToCurrency:    req.ToCurrency,
		ForeignAmount: req.ForeignAmount,
		ThbAmount:     req.ThbAmount,
		ExchangeRate:  rate,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.fxConversionRepo.InsertFxConversion(ctx, conversion); err != nil {
		return nil, fmt.Errorf("failed to create fx conversion: %w", err)
	}

	return conversion, nil
}
