package model

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// ProcessedAccount is one entry of the distribution list.
type ProcessedAccount struct {
	DestinationAddress string
	// Balance is the aggregated amount in the smallest destination unit, base-16 without prefix.
	Balance string
	// Amount is the same value as Balance kept as an exact integer.
	Amount decimal.Decimal
	// Contributions is the number of source rows merged into this account.
	Contributions int
}

// BalanceInt parses Balance into a big integer.
func (a ProcessedAccount) BalanceInt() (*big.Int, bool) {
	return new(big.Int).SetString(a.Balance, 16)
}

// CompilationResult is the output of the balance compiler.
type CompilationResult struct {
	// Accounts holds one entry per unique destination address, in first-seen order.
	Accounts []ProcessedAccount
	// AccountCount is the number of valid rows that were processed.
	AccountCount   int
	TotalConverted decimal.Decimal
	// Histogram maps the number of contributing rows to the number of
	// destination addresses with exactly that many contributions.
	Histogram map[int]int
}
