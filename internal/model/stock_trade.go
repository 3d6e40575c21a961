package model

import "time"

// Trade sides. INIT denotes a pre-existing position snapshot and contributes
// to cost basis like a BUY without fees.
const (
	SideBuy  = "BUY"
	SideSell = "SELL"
	SideInit = "INIT"
)

// UnknownSymbol is the grouping label for trades without a symbol.
const UnknownSymbol = "UNKNOWN"

// StockTrade represents a single stock execution with its fee breakdown.
//
// InputAmountUSD and InputShares capture the user's original entry mode and are
// mutually exclusive: BUY and INIT entries supply a cash amount, SELL entries
// supply a share count. The remaining monetary fields are derived from them.
// StockAmount is the cash value attributable strictly to shares, excluding fees.
type StockTrade struct {
	ID              string    `json:"id"`
	Side            string    `json:"side"`
	Symbol          string    `json:"symbol"`
	TransactionDate time.Time `json:"transactionDate"`
	ExecutedPrice   float64   `json:"executedPrice"`
	Shares          float64   `json:"shares"`
	TotalAmount     float64   `json:"totalAmount"`
	StockAmount     float64   `json:"stockAmount"`
	Commission      float64   `json:"commission"`
	Vat             float64   `json:"vat"`
	Fee             float64   `json:"fee"`
	SecFee          float64   `json:"secFee"`
	TafFee          float64   `json:"tafFee"`
	InputAmountUSD  *float64  `json:"inputAmountUsd,omitempty"`
	InputShares     *float64  `json:"inputShares,omitempty"`
	Currency        string    `json:"currency"`
	CreatedAt       time.Time `json:"createdAt,omitempty"`
}

// TotalFees returns the sum of all fee components.
func (t StockTrade) TotalFees() float64 {
	return t.Commission + t.Vat + t.Fee + t.SecFee + t.TafFee
}
