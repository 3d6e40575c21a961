package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/naruebet/Finance-Tracker-Backend/internal/model"
)

// FilterAll disables the year or month predicate of an FxFilter.
const FilterAll = -1

// FxFilter selects a subset of FX conversions. All predicates combine with AND.
//
// A zero Year or Month defaults to the year/month of the most recent
// conversion in the record set (or the current date when the set is empty);
// FilterAll disables the predicate entirely. Empty currency codes match all.
type FxFilter struct {
	Year         int
	Month        int
	FromCurrency string
	ToCurrency   string
}

// SummarizeConversions folds the filtered conversion set into home-currency
// inflow/outflow totals and the volume-weighted average exchange rate.
//
// The average is volume-weighted by design: sum(thb_amount) / sum(foreign_amount)
// over the filtered set, which makes it invariant under record duplication.
// homeCurrency identifies the inflow/outflow direction: conversions into it
// count as inflow, conversions out of it as outflow.
func SummarizeConversions(conversions []model.FxConversion, filter FxFilter, homeCurrency string) model.FxSummary {
	year, month := resolvePeriod(conversions, filter)

	inflow := decimal.Zero
	outflow := decimal.Zero
	totalForeign := decimal.Zero
	totalThb := decimal.Zero
	count := 0

	for _, c := range conversions {
		if !matchesFilter(c, year, month, filter) {
			continue
		}

		thb := decimal.NewFromFloat(c.ThbAmount)
		if c.ToCurrency == homeCurrency {
			inflow = inflow.Add(thb)
		}
		if c.FromCurrency == homeCurrency {
			outflow = outflow.Add(thb)
		}

		totalForeign = totalForeign.Add(decimal.NewFromFloat(c.ForeignAmount))
		totalThb = totalThb.Add(thb)
		count++
	}

	averageRate := decimal.Zero
	if !totalForeign.IsZero() {
		averageRate = totalThb.Div(totalForeign)
	}

	summary := model.FxSummary{
		Year:         year,
		Month:        month,
		FromCurrency: filter.FromCurrency,
		ToCurrency:   filter.ToCurrency,
		Inflow:       inflow.InexactFloat64(),
		Outflow:      outflow.InexactFloat64(),
		TotalForeign: totalForeign.InexactFloat64(),
		TotalThb:     totalThb.InexactFloat64(),
		AverageRate:  averageRate.InexactFloat64(),
		Count:        count,
	}
	if filter.Year == FilterAll {
		summary.Year = 0
	}
	if filter.Month == FilterAll {
		summary.Month = 0
	}

	return summary
}

// resolvePeriod applies the year/month defaulting rule: an unset predicate
// takes the most recent conversion's date, or the current date when the
// record set is empty.
func resolvePeriod(conversions []model.FxConversion, filter FxFilter) (int, int) {
	year, month := filter.Year, filter.Month
	if year != 0 && month != 0 {
		return year, month
	}

	latest := time.Now().UTC()
	if len(conversions) > 0 {
		latest = conversions[0].TransactionAt
		for _, c := range conversions[1:] {
			if c.TransactionAt.After(latest) {
				latest = c.TransactionAt
			}
		}
	}

	if year == 0 {
		year = latest.Year()
	}
	if month == 0 {
		month = int(latest.Month())
	}
	return year, month
}

func matchesFilter(c model.FxConversion, year, month int, filter FxFilter) bool {
	if year != FilterAll && c.TransactionAt.Year() != year {
		return false
	}
	if month != FilterAll && int(c.TransactionAt.Month()) != month {
		return false
	}
	if filter.FromCurrency != "" && c.FromCurrency != filter.FromCurrency {
		return false
	}
	if filter.ToCurrency != "" && c.ToCurrency != filter.ToCurrency {
		return false
	}
	return true
}
