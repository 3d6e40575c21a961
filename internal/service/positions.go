package service

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/naruebet/Finance-Tracker-Backend/internal/model"
)

// positionAccumulator collects per-symbol running totals during the fold.
type positionAccumulator struct {
	invested decimal.Decimal
	shares   decimal.Decimal
	proceeds decimal.Decimal
	priceSum decimal.Decimal
	buyCount int
	hasSell  bool
	trades   int
	latest   time.Time
}

// SummarizePositions folds the trade log into per-symbol positions.
//
// Per symbol: invested amount is the sum of BUY total_amount plus INIT
// stock_amount; shares are BUY/INIT shares minus SELL shares; sell proceeds
// are the sum of SELL total_amount. The average buy price is the unweighted
// arithmetic mean of executed prices across BUY and INIT trades.
//
// Realized P&L is an approximation, not lot-matched cost accounting: with any
// SELL present, ratio = min(1, |proceeds| / invested) while the position stays
// long, or 1 once it is oversold, and realized = proceeds - invested * ratio.
//
// Symbols are case-normalized; trades without a symbol group under "UNKNOWN".
// Output is sorted by descending net invested amount (invested - proceeds).
func SummarizePositions(trades []model.StockTrade) []model.SymbolPosition {
	bySymbol := make(map[string]*positionAccumulator)

	for _, t := range trades {
		symbol := strings.ToUpper(strings.TrimSpace(t.Symbol))
		if symbol == "" {
			symbol = model.UnknownSymbol
		}

		acc := bySymbol[symbol]
		if acc == nil {
			acc = &positionAccumulator{}
			bySymbol[symbol] = acc
		}

		switch t.Side {
		case model.SideBuy:
			acc.invested = acc.invested.Add(decimal.NewFromFloat(t.TotalAmount))
			acc.shares = acc.shares.Add(decimal.NewFromFloat(t.Shares))
			acc.priceSum = acc.priceSum.Add(decimal.NewFromFloat(t.ExecutedPrice))
			acc.buyCount++
		case model.SideInit:
			acc.invested = acc.invested.Add(decimal.NewFromFloat(t.StockAmount))
			acc.shares = acc.shares.Add(decimal.NewFromFloat(t.Shares))
			acc.priceSum = acc.priceSum.Add(decimal.NewFromFloat(t.ExecutedPrice))
			acc.buyCount++
		case model.SideSell:
			acc.proceeds = acc.proceeds.Add(decimal.NewFromFloat(t.TotalAmount))
			acc.shares = acc.shares.Sub(decimal.NewFromFloat(t.Shares))
			acc.hasSell = true
		}

		acc.trades++
		if t.TransactionDate.After(acc.latest) {
			acc.latest = t.TransactionDate
		}
	}

	positions := make([]model.SymbolPosition, 0, len(bySymbol))
	for symbol, acc := range bySymbol {
		positions = append(positions, acc.position(symbol))
	}

	sort.Slice(positions, func(i, j int) bool {
		if positions[i].NetInvested != positions[j].NetInvested {
			return positions[i].NetInvested > positions[j].NetInvested
		}
		return positions[i].Symbol < positions[j].Symbol
	})

	return positions
}

func (acc *positionAccumulator) position(symbol string) model.SymbolPosition {
	averagePrice := decimal.Zero
	if acc.buyCount > 0 {
		averagePrice = acc.priceSum.Div(decimal.NewFromInt(int64(acc.buyCount)))
	}

	realized := decimal.Zero
	if acc.hasSell {
		realized = acc.proceeds.Sub(acc.invested.Mul(acc.realizedRatio()))
	}

	return model.SymbolPosition{
		Symbol:          symbol,
		Shares:          acc.shares.InexactFloat64(),
		InvestedAmount:  acc.invested.InexactFloat64(),
		AverageBuyPrice: averagePrice.InexactFloat64(),
		SellProceeds:    acc.proceeds.InexactFloat64(),
		RealizedPnL:     realized.InexactFloat64(),
		NetInvested:     acc.invested.Sub(acc.proceeds).InexactFloat64(),
		Trades:          acc.trades,
		LatestDate:      acc.latest,
	}
}

// realizedRatio is the fraction of the invested amount attributed to sells:
// |proceeds| / invested clamped to 1 while the position stays long, and 1
// outright once the position has gone net negative.
func (acc *positionAccumulator) realizedRatio() decimal.Decimal {
	one := decimal.NewFromInt(1)
	if acc.shares.IsNegative() || acc.invested.IsZero() {
		return one
	}
	ratio := acc.proceeds.Abs().Div(acc.invested)
	if ratio.GreaterThan(one) {
		return one
	}
	return ratio
}
