package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrAssetTransactionNotFound indicates that an asset transaction with the given ID does not exist.
	ErrAssetTransactionNotFound = errors.New("asset transaction not found")

	// ErrFxConversionNotFound indicates that an FX conversion with the given ID does not exist.
	ErrFxConversionNotFound = errors.New("fx conversion not found")

	// ErrStockTradeNotFound indicates that a stock trade with the given ID does not exist.
	ErrStockTradeNotFound = errors.New("stock trade not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrNegativeAmount indicates that an amount field has an invalid negative value.
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidDirection indicates a cash-flow direction other than IN or OUT.
	ErrInvalidDirection = errors.New("direction must be IN or OUT")

	// ErrInvalidSide indicates a trade side other than BUY, SELL or INIT.
	ErrInvalidSide = errors.New("side must be BUY, SELL or INIT")

	// ErrInvalidCurrency indicates an unknown ISO 4217 currency code.
	ErrInvalidCurrency = errors.New("invalid currency code")

	// ErrInvalidImportPayload indicates the import blob contains no parsable trade data.
	ErrInvalidImportPayload = errors.New("no trade data found in import payload")

	// ErrImportValidation indicates the import payload parsed but one of its
	// items failed validation; the whole batch is rejected.
	ErrImportValidation = errors.New("import payload validation failed")
)

// Operation failure errors represent system-level failures when retrieving or processing data.
// These errors indicate that an operation failed, but not due to missing entities or validation issues.
var (
	// Asset transaction operation errors
	ErrFailedToRetrieveAssetTransactions = errors.New("failed to retrieve asset transactions")
	ErrFailedToGetBalanceSummary         = errors.New("failed to get balance summary")

	// FX conversion operation errors
	ErrFailedToRetrieveFxConversions = errors.New("failed to retrieve fx conversions")
	ErrFailedToGetFxSummary          = errors.New("failed to get fx summary")

	// Stock trade operation errors
	ErrFailedToRetrieveStockTrades = errors.New("failed to retrieve stock trades")
	ErrFailedToGetPositions        = errors.New("failed to get positions")
	ErrFailedToImportTrades        = errors.New("failed to import trades")

	// Overview operation errors
	ErrFailedToGetOverview = errors.New("failed to get overview")

	// System operation errors
	ErrFailedToGetVersionInfo = errors.New("failed to get version information")
	ErrFailedToBackupDatabase = errors.New("failed to back up database")
)
