package request

// CreateStockTradeRequest creates one stock trade record.
// InputAmountUSD is required for BUY/INIT, InputShares for SELL; the two are
// mutually exclusive and the remaining monetary fields are derived.
type CreateStockTradeRequest struct {
	Side            string   `json:"side"`
	Symbol          string   `json:"symbol"`
	TransactionDate string   `json:"transactionDate"`
	ExecutedPrice   float64  `json:"executedPrice"`
	Commission      float64  `json:"commission"`
	Vat             float64  `json:"vat"`
	Fee             float64  `json:"fee"`
	SecFee          float64  `json:"secFee"`
	TafFee          float64  `json:"tafFee"`
	InputAmountUSD  *float64 `json:"inputAmountUsd,omitempty"`
	InputShares     *float64 `json:"inputShares,omitempty"`
	Currency        string   `json:"currency,omitempty"`
}

// ImportStockTradesRequest carries a semi-structured text blob holding one
// trade object or an array of them, possibly wrapped in non-JSON text.
type ImportStockTradesRequest struct {
	Payload string `json:"payload"`
}
