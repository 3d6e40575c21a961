// Package importer extracts stock trade entries from semi-structured text.
//
// The input is typically pasted from a brokerage confirmation or an OCR pass
// over one, so the JSON payload may be wrapped in prose or markdown fences.
// The parser locates the first balanced JSON object or array in the blob and
// decodes it, accepting either a single trade or an array of trades.
package importer

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/naruebet/Finance-Tracker-Backend/internal/apperrors"
	"github.com/naruebet/Finance-Tracker-Backend/internal/model"
)

// TradeItem is one trade entry as it appears in an import payload.
// Pointer fields distinguish "absent" from zero so validation can report
// missing required fields precisely.
type TradeItem struct {
	Side            string   `json:"side"`
	Symbol          string   `json:"symbol"`
	TransactionDate string   `json:"transaction_date"`
	ExecutedPrice   *float64 `json:"executed_price"`
	InputAmountUSD  *float64 `json:"input_amount_usd"`
	InputShares     *float64 `json:"input_shares"`
	Commission      float64  `json:"commission"`
	Vat             float64  `json:"vat"`
	Fee             float64  `json:"fee"`
	SecFee          float64  `json:"sec_fee"`
	TafFee          float64  `json:"taf_fee"`
	Currency        string   `json:"currency"`
}

// Parse extracts trade items from a text blob.
//
// Returns the decoded items with fee magnitudes normalized to absolute values
// (OCR extraction sometimes signs fees negative) and every item validated.
// Any invalid item fails the whole batch: the returned error names the
// offending item index and no partial result is returned.
func Parse(blob string) ([]TradeItem, error) {
	payload, err := extractJSON(blob)
	if err != nil {
		return nil, err
	}

	items, err := decodeItems(payload)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperrors.ErrInvalidImportPayload
	}

	for i := range items {
		items[i].normalize()
		if err := items[i].validate(); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}

	return items, nil
}

// decodeItems decodes a JSON value that is either one trade object or an array of them.
func decodeItems(payload string) ([]TradeItem, error) {
	if strings.HasPrefix(payload, "[") {
		var items []TradeItem
		if err := json.Unmarshal([]byte(payload), &items); err != nil {
			return nil, fmt.Errorf("invalid trade array: %w", err)
		}
		return items, nil
	}

	var item TradeItem
	if err := json.Unmarshal([]byte(payload), &item); err != nil {
		return nil, fmt.Errorf("invalid trade object: %w", err)
	}
	return []TradeItem{item}, nil
}

// normalize upper-cases the symbol and side and forces fee magnitudes positive.
func (it *TradeItem) normalize() {
	it.Side = strings.ToUpper(strings.TrimSpace(it.Side))
	it.Symbol = strings.ToUpper(strings.TrimSpace(it.Symbol))
	it.Commission = math.Abs(it.Commission)
	it.Vat = math.Abs(it.Vat)
	it.Fee = math.Abs(it.Fee)
	it.SecFee = math.Abs(it.SecFee)
	it.TafFee = math.Abs(it.TafFee)
}

// validate checks the required field set for the item's side.
func (it *TradeItem) validate() error {
	switch it.Side {
	case model.SideBuy, model.SideSell, model.SideInit:
	case "":
		return fmt.Errorf("missing required field side")
	default:
		return fmt.Errorf("invalid side %q", it.Side)
	}

	if it.Symbol == "" {
		return fmt.Errorf("missing required field symbol")
	}
	if it.TransactionDate == "" {
		return fmt.Errorf("missing required field transaction_date")
	}
	if it.ExecutedPrice == nil {
		return fmt.Errorf("missing required field executed_price")
	}
	if *it.ExecutedPrice <= 0 {
		return fmt.Errorf("executed_price must be positive")
	}

	switch it.Side {
	case model.SideBuy, model.SideInit:
		if it.InputAmountUSD == nil {
			return fmt.Errorf("missing required field input_amount_usd")
		}
		if *it.InputAmountUSD <= 0 {
			return fmt.Errorf("input_amount_usd must be positive")
		}
	case model.SideSell:
		if it.InputShares == nil {
			return fmt.Errorf("missing required field input_shares")
		}
		if *it.InputShares <= 0 {
			return fmt.Errorf("input_shares must be positive")
		}
	}

	return nil
}

// extractJSON returns the first balanced JSON object or array found in the blob.
// Wrapper text before and after the payload is ignored; balanced bracket runs
// that are not valid JSON (prose like "[sic]") are skipped over.
func extractJSON(blob string) (string, error) {
	for i := 0; i < len(blob); i++ {
		if blob[i] != '{' && blob[i] != '[' {
			continue
		}
		end := balancedEnd(blob, i)
		if end <= i {
			continue
		}
		if candidate := blob[i : end+1]; json.Valid([]byte(candidate)) {
			return candidate, nil
		}
	}
	return "", apperrors.ErrInvalidImportPayload
}

// balancedEnd scans forward from the opening bracket at start and returns the
// index of its matching close bracket, or -1 when unbalanced. String literals
// and escapes are respected so brackets inside values do not confuse the scan.
func balancedEnd(s string, start int) int {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
