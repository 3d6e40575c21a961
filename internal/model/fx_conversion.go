package model

import "time"

// FxConversion represents a single currency exchange between a foreign currency
// and the home currency. ThbAmount is the home-currency leg; the column name is
// kept from the upstream data contract even when the home currency is configured
// to something other than THB. Records are read-only after creation.
type FxConversion struct {
	ID            string    `json:"id"`
	TransactionAt time.Time `json:"transactionAt"`
	FromCurrency  string    `json:"fromCurrency"`
	ToCurrency    string    `json:"toCurrency"`
	ForeignAmount float64   `json:"foreignAmount"`
	ThbAmount     float64   `json:"thbAmount"`
	ExchangeRate  float64   `json:"exchangeRate"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
}
