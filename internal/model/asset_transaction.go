package model

import "time"

// Cash-flow directions for an asset transaction.
const (
	DirectionIn  = "IN"
	DirectionOut = "OUT"
)

// UnassignedAccount is the grouping label for transactions without an account name.
const UnassignedAccount = "Unassigned"

// AssetTransaction represents a single signed cash-flow record against a named account.
// Amount is always stored as an unsigned magnitude; Type determines the sign
// when aggregating. Records are immutable once created.
type AssetTransaction struct {
	ID          string    `json:"id"`
	AccountName string    `json:"accountName"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Tag         string    `json:"tag,omitempty"`
	Note        string    `json:"note,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// SignedAmount returns the amount with the sign implied by the direction.
func (t AssetTransaction) SignedAmount() float64 {
	if t.Type == DirectionOut {
		return -t.Amount
	}
	return t.Amount
}
