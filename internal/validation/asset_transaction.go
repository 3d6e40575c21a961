package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/naruebet/Finance-Tracker-Backend/internal/api/request"
	"github.com/naruebet/Finance-Tracker-Backend/internal/model"
)

// ValidDirection contains the allowed cash-flow direction values.
var ValidDirection = map[string]bool{
	model.DirectionIn: true, model.DirectionOut: true,
}

// ValidateCreateAssetTransaction validates an asset transaction creation request.
//
// Required fields:
//   - type: Must be IN or OUT
//   - amount: Must be non-negative (zero is a valid record)
//   - date: Must be in YYYY-MM-DD format
//
// The account name is optional; records without one aggregate under
// "Unassigned". Returns a validation Error with field-specific messages
// if validation fails.
func ValidateCreateAssetTransaction(req request.CreateAssetTransactionRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Type) == "" {
		errors["type"] = "type is required"
	} else if !ValidDirection[req.Type] {
		errors["type"] = fmt.Sprintf("invalid type: %s", req.Type)
	}

	if req.Amount < 0 {
		errors["amount"] = "amount must be a non-negative magnitude"
	}

	if strings.TrimSpace(req.Date) == "" {
		errors["date"] = "date is required"
	} else if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		errors["date"] = err.Error()
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
