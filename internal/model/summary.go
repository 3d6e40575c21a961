package model

import "time"

// AccountBalance holds the aggregated signed balance for a single account.
type AccountBalance struct {
	AccountName string  `json:"accountName"`
	Balance     float64 `json:"balance"`
}

// BalanceSummary is the output of the balance aggregator: the grand total
// across all asset transactions plus per-account balances in display order.
type BalanceSummary struct {
	Total    float64          `json:"total"`
	Accounts []AccountBalance `json:"accounts"`
}

// FxSummary is the output of the FX aggregator over a filtered conversion set.
//
// Inflow is the sum of home-currency amounts received (conversions into the
// home currency); Outflow the sum sent (conversions out of it). AverageRate is
// the volume-weighted mean rate: TotalThb / TotalForeign over the filtered set.
type FxSummary struct {
	Year         int     `json:"year"`
	Month        int     `json:"month"`
	FromCurrency string  `json:"fromCurrency,omitempty"`
	ToCurrency   string  `json:"toCurrency,omitempty"`
	Inflow       float64 `json:"inflow"`
	Outflow      float64 `json:"outflow"`
	TotalForeign float64 `json:"totalForeign"`
	TotalThb     float64 `json:"totalThb"`
	AverageRate  float64 `json:"averageRate"`
	Count        int     `json:"count"`
}

// SymbolPosition holds per-symbol aggregates derived from the trade log.
//
// AverageBuyPrice is the unweighted arithmetic mean of executed prices across
// BUY and INIT trades. RealizedPnL is the documented approximation, not a
// FIFO/LIFO lot-matched figure.
type SymbolPosition struct {
	Symbol          string    `json:"symbol"`
	Shares          float64   `json:"shares"`
	InvestedAmount  float64   `json:"investedAmount"`
	AverageBuyPrice float64   `json:"averageBuyPrice"`
	SellProceeds    float64   `json:"sellProceeds"`
	RealizedPnL     float64   `json:"realizedPnl"`
	NetInvested     float64   `json:"netInvested"`
	Trades          int       `json:"trades"`
	LatestDate      time.Time `json:"latestDate"`
}

// Overview combines the three record logs into a single net-worth view.
type Overview struct {
	TotalBalance float64          `json:"totalBalance"`
	Accounts     []AccountBalance `json:"accounts"`
	Fx           FxSummary        `json:"fx"`
	Positions    []SymbolPosition `json:"positions"`
}
