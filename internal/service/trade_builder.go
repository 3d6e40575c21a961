package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/naruebet/Finance-Tracker-Backend/internal/apperrors"
	"github.com/naruebet/Finance-Tracker-Backend/internal/model"
)

// TradeParams carries the user's original entry for a single trade.
// InputAmountUSD is the cash amount for BUY/INIT entries; InputShares the
// share count for SELL entries. The two are mutually exclusive per side.
type TradeParams struct {
	Side            string
	Symbol          string
	TransactionDate time.Time
	ExecutedPrice   float64
	Commission      float64
	Vat             float64
	Fee             float64
	SecFee          float64
	TafFee          float64
	InputAmountUSD  *float64
	InputShares     *float64
	Currency        string
}

// BuildStockTrade derives a complete trade record from the entry fields.
//
// BUY:  stock_amount = input_cash - fees, shares = stock_amount / price,
// total_amount = input_cash.
// SELL: shares = input_shares, stock_amount = shares * price,
// total_amount = stock_amount - fees.
// INIT: a pre-existing position snapshot; derived like BUY but fees do not
// participate: stock_amount = input_cash, shares = stock_amount / price.
//
// All arithmetic runs on decimals so the stored figures satisfy the exact
// derivation identities rather than accumulated float error.
func BuildStockTrade(p TradeParams) (model.StockTrade, error) {
	side := strings.ToUpper(strings.TrimSpace(p.Side))
	if p.ExecutedPrice <= 0 {
		return model.StockTrade{}, fmt.Errorf("executed price must be positive")
	}

	price := decimal.NewFromFloat(p.ExecutedPrice)
	fees := decimal.NewFromFloat(p.Commission).
		Add(decimal.NewFromFloat(p.Vat)).
		Add(decimal.NewFromFloat(p.Fee)).
		Add(decimal.NewFromFloat(p.SecFee)).
		Add(decimal.NewFromFloat(p.TafFee))

	var shares, stockAmount, totalAmount decimal.Decimal

	switch side {
	case model.SideBuy:
		if p.InputAmountUSD == nil {
			return model.StockTrade{}, fmt.Errorf("input amount is required for BUY")
		}
		input := decimal.NewFromFloat(*p.InputAmountUSD)
		stockAmount = input.Sub(fees)
		shares = stockAmount.Div(price)
		totalAmount = input

	case model.SideInit:
		if p.InputAmountUSD == nil {
			return model.StockTrade{}, fmt.Errorf("input amount is required for INIT")
		}
		input := decimal.NewFromFloat(*p.InputAmountUSD)
		stockAmount = input
		shares = stockAmount.Div(price)
		totalAmount = input

	case model.SideSell:
		if p.InputShares == nil {
			return model.StockTrade{}, fmt.Errorf("input shares is required for SELL")
		}
		shares = decimal.NewFromFloat(*p.InputShares)
		stockAmount = shares.Mul(price)
		totalAmount = stockAmount.Sub(fees)

	default:
		return model.StockTrade{}, apperrors.ErrInvalidSide
	}

	currency := strings.ToUpper(strings.TrimSpace(p.Currency))
	if currency == "" {
		currency = "USD"
	}

	return model.StockTrade{
		ID:              uuid.New().String(),
		Side:            side,
		Symbol:          strings.ToUpper(strings.TrimSpace(p.Symbol)),
		TransactionDate: p.TransactionDate,
		ExecutedPrice:   p.ExecutedPrice,
		Shares:          shares.InexactFloat64(),
		TotalAmount:     totalAmount.InexactFloat64(),
		StockAmount:     stockAmount.InexactFloat64(),
		Commission:      p.Commission,
		Vat:             p.Vat,
		Fee:             p.Fee,
		SecFee:          p.SecFee,
		TafFee:          p.TafFee,
		InputAmountUSD:  p.InputAmountUSD,
		InputShares:     p.InputShares,
		Currency:        currency,
		CreatedAt:       time.Now().UTC(),
	}, nil
}
