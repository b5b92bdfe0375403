// Package entitlement splits aggregated destination balances into the initial
// airdrop and the distribution share held by the on-chain contracts.
package entitlement

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/airdrop-compiler/internal/airdrop/address"
	"github.com/goodnatureofminers/airdrop-compiler/internal/airdrop/amount"
	"github.com/goodnatureofminers/airdrop-compiler/internal/airdrop/model"
	"github.com/shopspring/decimal"
)

var ErrLengthMismatch = errors.New("validation result does not match rows")

// Schedule holds the percentages of the total entitlement released up front
// and per month.
type Schedule struct {
	InitialPercent decimal.Decimal
	MonthlyPercent decimal.Decimal
}

// DefaultSchedule releases 15% at genesis and 3% per month afterwards.
func DefaultSchedule() Schedule {
	return Schedule{
		InitialPercent: decimal.NewFromInt(15),
		MonthlyPercent: decimal.NewFromInt(3),
	}
}

// Split computes the entitlement of every destination address from the
// destination balances of the valid rows. Addresses keep first-seen order.
func (s Schedule) Split(rows []model.LineItem, validation model.ValidationResult) ([]model.Entitlement, model.EntitlementTotals, error) {
	if len(validation.Valid) != len(rows) {
		return nil, model.EntitlementTotals{}, fmt.Errorf("%w: %d verdicts for %d rows", ErrLengthMismatch, len(validation.Valid), len(rows))
	}

	order := make([]string, 0)
	totals := make(map[string]decimal.Decimal)
	for i, row := range rows {
		if !validation.IsValid(i) {
			continue
		}
		balance, err := amount.Parse(row.DestinationBalance)
		if err != nil {
			return nil, model.EntitlementTotals{}, fmt.Errorf("line %d: %w", model.LineNumber(i), err)
		}
		destination, ok := address.ChecksumEVM(row.DestinationAddress)
		if !ok {
			return nil, model.EntitlementTotals{}, fmt.Errorf("line %d: invalid destination %q", model.LineNumber(i), row.DestinationAddress)
		}
		if current, seen := totals[destination]; seen {
			totals[destination] = current.Add(balance)
			continue
		}
		totals[destination] = balance
		order = append(order, destination)
	}

	sum := model.EntitlementTotals{InitialAirdrop: decimal.Zero, Distribution: decimal.Zero}
	out := make([]model.Entitlement, 0, len(order))
	for _, destination := range order {
		e := s.entitlement(destination, totals[destination])
		sum.InitialAirdrop = sum.InitialAirdrop.Add(e.InitialAirdrop)
		sum.Distribution = sum.Distribution.Add(e.Distribution)
		out = append(out, e)
	}
	return out, sum, nil
}

func (s Schedule) entitlement(destination string, total decimal.Decimal) model.Entitlement {
	total = total.Floor()
	initial := total.Mul(s.InitialPercent).Shift(-2).Floor()
	return model.Entitlement{
		DestinationAddress:  destination,
		Total:               total,
		InitialAirdrop:      initial,
		MonthlyDistribution: total.Mul(s.MonthlyPercent).Shift(-2).Floor(),
		Distribution:        total.Sub(initial),
	}
}

// Mismatch reports a destination whose compiled balance differs from its
// scheduled initial airdrop.
type Mismatch struct {
	DestinationAddress string
	Compiled           decimal.Decimal
	Scheduled          decimal.Decimal
}

// Reconcile compares the compiled distribution list with the initial airdrop
// of each entitlement.
func Reconcile(entitlements []model.Entitlement, compiled model.CompilationResult) []Mismatch {
	byAddress := make(map[string]decimal.Decimal, len(compiled.Accounts))
	for _, acc := range compiled.Accounts {
		byAddress[acc.DestinationAddress] = acc.Amount
	}

	var out []Mismatch
	for _, e := range entitlements {
		got, ok := byAddress[e.DestinationAddress]
		if !ok {
			got = decimal.Zero
		}
		if !got.Equal(e.InitialAirdrop) {
			out = append(out, Mismatch{DestinationAddress: e.DestinationAddress, Compiled: got, Scheduled: e.InitialAirdrop})
		}
	}
	return out
}
