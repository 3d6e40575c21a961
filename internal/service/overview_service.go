package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/naruebet/Finance-Tracker-Backend/internal/model"
)

// OverviewService combines the three record logs into a single net-worth view.
type OverviewService struct {
	balanceService *BalanceService
	fxService      *FxService
	tradeService   *TradeService
}

// NewOverviewService creates a new OverviewService with the provided service dependencies.
func NewOverviewService(
	balanceService *BalanceService,
	fxService *FxService,
	tradeService *TradeService,
) *OverviewService {
	return &OverviewService{
		balanceService: balanceService,
		fxService:      fxService,
		tradeService:   tradeService,
	}
}

// GetOverview fetches the three record sets concurrently and folds each into
// its summary. The three reads are independent; the first failure cancels the
// rest and surfaces as the view's terminal error.
func (s *OverviewService) GetOverview(ctx context.Context) (model.Overview, error) {
	var (
		transactions []model.AssetTransaction
		conversions  []model.FxConversion
		trades       []model.StockTrade
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		transactions, err = s.balanceService.GetAssetTransactions()
		return err
	})
	g.Go(func() error {
		var err error
		conversions, err = s.fxService.GetFxConversions()
		return err
	})
	g.Go(func() error {
		var err error
		trades, err = s.tradeService.GetStockTrades()
		return err
	})

	if err := g.Wait(); err != nil {
		return model.Overview{}, err
	}

	balances := SummarizeBalances(transactions)

	return model.Overview{
		TotalBalance: balances.Total,
		Accounts:     balances.Accounts,
		Fx:           SummarizeConversions(conversions, FxFilter{Year: FilterAll, Month: FilterAll}, s.fxService.homeCurrency),
		Positions:    SummarizePositions(trades),
	}, nil
}
