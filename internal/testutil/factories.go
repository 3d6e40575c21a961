package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/naruebet/Finance-Tracker-Backend/internal/model"
)

// AssetTransactionBuilder provides a fluent interface for creating test
// asset transactions.
//
// Example usage:
//
//	// Simple creation with defaults
//	tx := testutil.NewAssetTransaction().Build(t, db)
//
//	// Customized transaction
//	tx := testutil.NewAssetTransaction().
//	    WithAccount("kbank").
//	    Outgoing().
//	    WithAmount(250).
//	    Build(t, db)
type AssetTransactionBuilder struct {
	ID          string
	AccountName string
	Type        string
	Amount      float64
	Date        time.Time
	Tag         string
	Note        string
}

// NewAssetTransaction creates an AssetTransactionBuilder with sensible defaults.
func NewAssetTransaction() *AssetTransactionBuilder {
	return &AssetTransactionBuilder{
		ID:          MakeID(),
		AccountName: "kbank",
		Type:        model.DirectionIn,
		Amount:      1000,
		Date:        time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

// WithID sets a custom ID.
func (b *AssetTransactionBuilder) WithID(id string) *AssetTransactionBuilder {
	b.ID = id
	return b
}

// WithAccount sets the account name.
func (b *AssetTransactionBuilder) WithAccount(name string) *AssetTransactionBuilder {
	b.AccountName = name
	return b
}

// WithType sets the direction (IN or OUT).
func (b *AssetTransactionBuilder) WithType(direction string) *AssetTransactionBuilder {
	b.Type = direction
	return b
}

// Outgoing marks the transaction as an outflow.
func (b *AssetTransactionBuilder) Outgoing() *AssetTransactionBuilder {
	b.Type = model.DirectionOut
	return b
}

// WithAmount sets the amount.
func (b *AssetTransactionBuilder) WithAmount(amount float64) *AssetTransactionBuilder {
	b.Amount = amount
	return b
}

// WithDate sets the transaction date.
func (b *AssetTransactionBuilder) WithDate(date time.Time) *AssetTransactionBuilder {
	b.Date = date
	return b
}

// WithTag sets the tag.
func (b *AssetTransactionBuilder) WithTag(tag string) *AssetTransactionBuilder {
	b.Tag = tag
	return b
}

// WithNote sets the note.
func (b *AssetTransactionBuilder) WithNote(note string) *AssetTransactionBuilder {
	b.Note = note
	return b
}

// Build creates the asset transaction in the database and returns it.
func (b *AssetTransactionBuilder) Build(t *testing.T, db *sql.DB) model.AssetTransaction {
	t.Helper()

	query := `
		INSERT INTO asset_transaction (id, account_name, type, amount, date, tag, note)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.AccountName, b.Type, b.Amount, b.Date.Format("2006-01-02"), b.Tag, b.Note)
	if err != nil {
		t.Fatalf("Failed to create test asset transaction: %v", err)
	}

	return model.AssetTransaction{
		ID:          b.ID,
		AccountName: b.AccountName,
		Type:        b.Type,
		Amount:      b.Amount,
		Date:        b.Date,
		Tag:         b.Tag,
		Note:        b.Note,
	}
}

// FxConversionBuilder provides a fluent interface for creating test FX conversions.
//
// Example usage:
//
//	fx := testutil.NewFxConversion().
//	    WithAmounts(1000, 35000).
//	    WithDate(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)).
//	    Build(t, db)
type FxConversionBuilder struct {
	ID            string
	TransactionAt time.Time
	FromCurrency  string
	ToCurrency    string
	ForeignAmount float64
	ThbAmount     float64
	ExchangeRate  float64
}

// NewFxConversion creates an FxConversionBuilder with sensible defaults:
// a THB -> USD purchase of 100 USD at rate 35.
func NewFxConversion() *FxConversionBuilder {
	return &FxConversionBuilder{
		ID:            MakeID(),
		TransactionAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		FromCurrency:  "THB",
		ToCurrency:    "USD",
		ForeignAmount: 100,
		ThbAmount:     3500,
		ExchangeRate:  35,
	}
}

// WithID sets a custom ID.
func (b *FxConversionBuilder) WithID(id string) *FxConversionBuilder {
	b.ID = id
	return b
}

// WithDate sets the conversion timestamp.
func (b *FxConversionBuilder) WithDate(at time.Time) *FxConversionBuilder {
	b.TransactionAt = at
	return b
}

// WithCurrencies sets the currency pair.
func (b *FxConversionBuilder) WithCurrencies(from, to string) *FxConversionBuilder {
	b.FromCurrency = from
	b.ToCurrency = to
	return b
}

// Inbound marks the conversion as foreign -> home (repatriation).
func (b *FxConversionBuilder) Inbound() *FxConversionBuilder {
	b.FromCurrency = "USD"
	b.ToCurrency = "THB"
	return b
}

// WithAmounts sets both legs and derives the rate.
func (b *FxConversionBuilder) WithAmounts(foreign, thb float64) *FxConversionBuilder {
	b.ForeignAmount = foreign
	b.ThbAmount = thb
	if foreign != 0 {
		b.ExchangeRate = thb / foreign
	}
	return b
}

// WithRate sets an explicit exchange rate.
func (b *FxConversionBuilder) WithRate(rate float64) *FxConversionBuilder {
	b.ExchangeRate = rate
	return b
}

// Build creates the FX conversion in the database and returns it.
func (b *FxConversionBuilder) Build(t *testing.T, db *sql.DB) model.FxConversion {
	t.Helper()

	query := `
		INSERT INTO fx_conversion (id, transaction_at, from_currency, to_currency, foreign_amount, thb_amount, exchange_rate)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID, b.TransactionAt.Format(time.RFC3339), b.FromCurrency, b.ToCurrency,
		b.ForeignAmount, b.ThbAmount, b.ExchangeRate,
	)
	if err != nil {
		t.Fatalf("Failed to create test fx conversion: %v", err)
	}

	return model.FxConversion{
		ID:            b.ID,
		TransactionAt: b.TransactionAt,
		FromCurrency:  b.FromCurrency,
		ToCurrency:    b.ToCurrency,
		ForeignAmount: b.ForeignAmount,
		ThbAmount:     b.ThbAmount,
		ExchangeRate:  b.ExchangeRate,
	}
}

// StockTradeBuilder provides a fluent interface for creating test stock trades.
// The builder stores derived fields directly; use service.BuildStockTrade in
// tests that exercise the derivation itself.
//
// Example usage:
//
//	trade := testutil.NewStockTrade().
//	    WithSymbol("AAPL").
//	    Sell(5, 100).
//	    Build(t, db)
type StockTradeBuilder struct {
	ID              string
	Side            string
	Symbol          string
	TransactionDate time.Time
	ExecutedPrice   float64
	Shares          float64
	TotalAmount     float64
	StockAmount     float64
	Commission      float64
	Vat             float64
	Fee             float64
	SecFee          float64
	TafFee          float64
	InputAmountUSD  *float64
	InputShares     *float64
	Currency        string
}

// NewStockTrade creates a StockTradeBuilder with sensible defaults:
// a fee-free BUY of 10 shares at 100 USD.
func NewStockTrade() *StockTradeBuilder {
	return &StockTradeBuilder{
		ID:              MakeID(),
		Side:            model.SideBuy,
		Symbol:          "AAPL",
		TransactionDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		ExecutedPrice:   100,
		Shares:          10,
		TotalAmount:     1000,
		StockAmount:     1000,
		Currency:        "USD",
	}
}

// WithID sets a custom ID.
func (b *StockTradeBuilder) WithID(id string) *StockTradeBuilder {
	b.ID = id
	return b
}

// WithSymbol sets the symbol.
func (b *StockTradeBuilder) WithSymbol(symbol string) *StockTradeBuilder {
	b.Symbol = symbol
	return b
}

// WithDate sets the transaction date.
func (b *StockTradeBuilder) WithDate(date time.Time) *StockTradeBuilder {
	b.TransactionDate = date
	return b
}

// Buy sets BUY economics from a fee-free cash amount and price.
func (b *StockTradeBuilder) Buy(amount, price float64) *StockTradeBuilder {
	b.Side = model.SideBuy
	b.ExecutedPrice = price
	b.TotalAmount = amount
	b.StockAmount = amount
	b.Shares = amount / price
	b.InputAmountUSD = &amount
	b.InputShares = nil
	return b
}

// Sell sets SELL economics from a fee-free share count and price.
func (b *StockTradeBuilder) Sell(shares, price float64) *StockTradeBuilder {
	b.Side = model.SideSell
	b.ExecutedPrice = price
	b.Shares = shares
	b.StockAmount = shares * price
	b.TotalAmount = b.StockAmount
	b.InputShares = &shares
	b.InputAmountUSD = nil
	return b
}

// Init sets INIT economics from a cash amount and price.
func (b *StockTradeBuilder) Init(amount, price float64) *StockTradeBuilder {
	b.Buy(amount, price)
	b.Side = model.SideInit
	return b
}

// WithFees sets the commission and adjusts nothing else; callers composing
// fee-sensitive scenarios should set the derived fields explicitly.
func (b *StockTradeBuilder) WithFees(commission, vat float64) *StockTradeBuilder {
	b.Commission = commission
	b.Vat = vat
	return b
}

// WithDerived overrides the derived monetary fields.
func (b *StockTradeBuilder) WithDerived(shares, stockAmount, totalAmount float64) *StockTradeBuilder {
	b.Shares = shares
	b.StockAmount = stockAmount
	b.TotalAmount = totalAmount
	return b
}

// Build creates the stock trade in the database and returns it.
func (b *StockTradeBuilder) Build(t *testing.T, db *sql.DB) model.StockTrade {
	t.Helper()

	query := `
		INSERT INTO stock_trade (
			id, side, symbol, transaction_date, executed_price, shares,
			total_amount, stock_amount, commission, vat, fee, sec_fee, taf_fee,
			input_amount_usd, input_shares, currency
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID, b.Side, b.Symbol, b.TransactionDate.Format(time.RFC3339), b.ExecutedPrice, b.Shares,
		b.TotalAmount, b.StockAmount, b.Commission, b.Vat, b.Fee, b.SecFee, b.TafFee,
		b.InputAmountUSD, b.InputShares, b.Currency,
	)
	if err != nil {
		t.Fatalf("Failed to create test stock trade: %v", err)
	}

	return model.StockTrade{
		ID:              b.ID,
		Side:            b.Side,
		Symbol:          b.Symbol,
		TransactionDate: b.TransactionDate,
		ExecutedPrice:   b.ExecutedPrice,
		Shares:          b.Shares,
		TotalAmount:     b.TotalAmount,
		StockAmount:     b.StockAmount,
		Commission:      b.Commission,
		Vat:             b.Vat,
		Fee:             b.Fee,
		SecFee:          b.SecFee,
		TafFee:          b.TafFee,
		InputAmountUSD:  b.InputAmountUSD,
		InputShares:     b.InputShares,
		Currency:        b.Currency,
	}
}
