package request

type CreateAssetTransactionRequest struct {
	AccountName string  `json:"accountName"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Tag         string  `json:"tag,omitempty"`
	Note        string  `json:"note,omitempty"`
}
