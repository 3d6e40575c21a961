package validation

import (
	"fmt"
	"strings"

	"github.com/naruebet/Finance-Tracker-Backend/internal/api/request"
	"github.com/naruebet/Finance-Tracker-Backend/internal/model"
)

// ValidSide contains the allowed trade side values.
var ValidSide = map[string]bool{
	model.SideBuy: true, model.SideSell: true, model.SideInit: true,
}

// ValidateCreateStockTrade validates a stock trade creation request.
//
// Required fields:
//   - side: Must be BUY, SELL or INIT
//   - symbol: Required on manual entry
//   - transactionDate: Must parse as a date or RFC3339 timestamp
//   - executedPrice: Must be positive
//   - inputAmountUsd: Required and positive for BUY/INIT
//   - inputShares: Required and positive for SELL
//
// Fee components must be non-negative; the sign tolerance for OCR artifacts
// applies only to the batch import path. Returns a validation Error with
// field-specific messages if validation fails.
func ValidateCreateStockTrade(req request.CreateStockTradeRequest) error {
	errors := make(map[string]string)

	side := strings.ToUpper(strings.TrimSpace(req.Side))
	if side == "" {
		errors["side"] = "side is required"
	} else if !ValidSide[side] {
		errors["side"] = fmt.Sprintf("invalid side: %s", req.Side)
	}

	if strings.TrimSpace(req.Symbol) == "" {
		errors["symbol"] = "symbol is required"
	}

	if strings.TrimSpace(req.TransactionDate) == "" {
		errors["transactionDate"] = "transactionDate is required"
	}

	if req.ExecutedPrice <= 0 {
		errors["executedPrice"] = "executedPrice must be positive"
	}

	switch side {
	case model.SideBuy, model.SideInit:
		if req.InputAmountUSD == nil {
			errors["inputAmountUsd"] = "inputAmountUsd is required for BUY and INIT"
		} else if *req.InputAmountUSD <= 0 {
			errors["inputAmountUsd"] = "inputAmountUsd must be positive"
		}
	case model.SideSell:
		if req.InputShares == nil {
			errors["inputShares"] = "inputShares is required for SELL"
		} else if *req.InputShares <= 0 {
			errors["inputShares"] = "inputShares must be positive"
		}
	}

	for field, value := range map[string]float64{
		"commission": req.Commission,
		"vat":        req.Vat,
		"fee":        req.Fee,
		"secFee":     req.SecFee,
		"tafFee":     req.TafFee,
	} {
		if value < 0 {
			errors[field] = fmt.Sprintf("%s must be non-negative", field)
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateImportStockTrades validates a batch import request envelope.
// Item-level validation happens in the importer, which names the offending index.
func ValidateImportStockTrades(req request.ImportStockTradesRequest) error {
	if strings.TrimSpace(req.Payload) == "" {
		return &Error{Fields: map[string]string{"payload": "payload is required"}}
	}
	return nil
}
