package request

// CreateFxConversionRequest creates one FX conversion record.
// ExchangeRate is optional; when omitted the service derives it as
// thbAmount / foreignAmount.
type CreateFxConversionRequest struct {
	TransactionAt string   `json:"transactionAt"`
	FromCurrency  string   `json:"fromCurrency"`
	ToCurrency    string   `json:"toCurrency"`
	ForeignAmount float64  `json:"foreignAmount"`
	ThbAmount     float64  `json:"thbAmount"`
	ExchangeRate  *float64 `json:"exchangeRate,omitempty"`
}
