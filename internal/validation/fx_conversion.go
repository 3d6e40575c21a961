package validation

import (
	"strings"

	"github.com/naruebet/Finance-Tracker-Backend/internal/api/request"
)

// ValidateCreateFxConversion validates an FX conversion creation request.
//
// Required fields:
//   - transactionAt: Must parse as a date or RFC3339 timestamp
//   - fromCurrency / toCurrency: Must be known ISO 4217 codes and differ
//   - foreignAmount / thbAmount: Must be positive
//
// exchangeRate is optional; when present it must be positive, when absent the
// service derives it from the two amounts. Returns a validation Error with
// field-specific messages if validation fails.
func ValidateCreateFxConversion(req request.CreateFxConversionRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.TransactionAt) == "" {
		errors["transactionAt"] = "transactionAt is required"
	}

	if strings.TrimSpace(req.FromCurrency) == "" {
		errors["fromCurrency"] = "fromCurrency is required"
	} else if err := ValidateCurrencyCode(req.FromCurrency); err != nil {
		errors["fromCurrency"] = err.Error()
	}

	if strings.TrimSpace(req.ToCurrency) == "" {
		errors["toCurrency"] = "toCurrency is required"
	} else if err := ValidateCurrencyCode(req.ToCurrency); err != nil {
		errors["toCurrency"] = err.Error()
	}

	if req.FromCurrency != "" && req.FromCurrency == req.ToCurrency {
		errors["toCurrency"] = "toCurrency must differ from fromCurrency"
	}

	if req.ForeignAmount <= 0 {
		errors["foreignAmount"] = "foreignAmount must be positive"
	}

	if req.ThbAmount <= 0 {
		errors["thbAmount"] = "thbAmount must be positive"
	}

	if req.ExchangeRate != nil && *req.ExchangeRate <= 0 {
		errors["exchangeRate"] = "exchangeRate must be positive when supplied"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
