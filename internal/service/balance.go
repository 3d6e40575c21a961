package service

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/naruebet/Finance-Tracker-Backend/internal/model"
)

// accountRankOrder is the fixed display priority of known institutions.
// Matching is case-insensitive substring matching on the account name;
// accounts that match nothing rank after every listed institution.
var accountRankOrder = []string{
	"dime",
	"kept",
	"scb",
	"kbank",
	"krungsri",
	"provident",
}

// SummarizeBalances folds asset transactions into a total balance and
// per-account balances. Each record contributes +amount for IN and -amount
// for OUT. Records without an account name group under "Unassigned".
//
// Accounts are ordered for display by institution rank, then by descending
// balance, then by name. An empty input yields a zero total and an empty
// account list, not an error.
func SummarizeBalances(transactions []model.AssetTransaction) model.BalanceSummary {
	total := decimal.Zero
	byAccount := make(map[string]decimal.Decimal)

	for _, t := range transactions {
		signed := decimal.NewFromFloat(t.Amount)
		if t.Type == model.DirectionOut {
			signed = signed.Neg()
		}

		account := t.AccountName
		if strings.TrimSpace(account) == "" {
			account = model.UnassignedAccount
		}

		total = total.Add(signed)
		byAccount[account] = byAccount[account].Add(signed)
	}

	accounts := make([]model.AccountBalance, 0, len(byAccount))
	for name, balance := range byAccount {
		accounts = append(accounts, model.AccountBalance{
			AccountName: name,
			Balance:     balance.InexactFloat64(),
		})
	}

	sort.Slice(accounts, func(i, j int) bool {
		ri, rj := accountRank(accounts[i].AccountName), accountRank(accounts[j].AccountName)
		if ri != rj {
			return ri < rj
		}
		if accounts[i].Balance != accounts[j].Balance {
			return accounts[i].Balance > accounts[j].Balance
		}
		return accounts[i].AccountName < accounts[j].AccountName
	})

	return model.BalanceSummary{
		Total:    total.InexactFloat64(),
		Accounts: accounts,
	}
}

// accountRank returns the position of the first matching institution in
// accountRankOrder, or len(accountRankOrder) when the account matches none.
func accountRank(accountName string) int {
	lower := strings.ToLower(accountName)
	for i, institution := range accountRankOrder {
		if strings.Contains(lower, institution) {
			return i
		}
	}
	return len(accountRankOrder)
}
