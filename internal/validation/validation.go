package validation

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/google/uuid"
)

// Common validation errors
var (
	ErrInvalidUUID     = fmt.Errorf("invalid UUID format")
	ErrInvalidCurrency = fmt.Errorf("invalid currency code")
)

// ValidateUUID checks if a string is a valid UUID
func ValidateUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidUUID, id)
	}
	return nil
}

// ValidateCurrencyCode checks a code against the ISO 4217 currency registry.
func ValidateCurrencyCode(code string) error {
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("%w: %s", ErrInvalidCurrency, code)
	}
	return nil
}
