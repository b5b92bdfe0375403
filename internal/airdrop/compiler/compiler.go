// Package compiler converts validated ledger balances into the destination
// chain distribution list.
package compiler

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/airdrop-compiler/internal/airdrop/address"
	"github.com/goodnatureofminers/airdrop-compiler/internal/airdrop/amount"
	"github.com/goodnatureofminers/airdrop-compiler/internal/airdrop/auditlog"
	"github.com/goodnatureofminers/airdrop-compiler/internal/airdrop/model"
	"github.com/shopspring/decimal"
)

const (
	// SourceDecimals is the precision of the source chain balances (XRP drops).
	SourceDecimals = 6
	// DestinationDecimals is the precision of the destination chain smallest unit (wei).
	DestinationDecimals = 18

	// ReservedSourceAddress is the one source account whose converted balance is
	// clamped to MaxDestinationBalance before aggregation.
	ReservedSourceAddress = "rKveEyR1SrkWbJX214xcfH43ZsoGMb3PEv"
)

var (
	// MaxDestinationBalance is the whale cap: one billion tokens in smallest units.
	MaxDestinationBalance = amount.Pow10(9 + DestinationDecimals)

	unitScale = amount.Pow10(DestinationDecimals - SourceDecimals)

	reservedAccountID, _ = address.DecodeXRP(ReservedSourceAddress)
)

var (
	ErrNilRows          = errors.New("rows are required")
	ErrLengthMismatch   = errors.New("validation result does not match rows")
	ErrInvalidParameter = errors.New("invalid compilation parameter")
	ErrInconsistentRow  = errors.New("row marked valid but not parseable")
)

// Compiler aggregates converted balances per destination address.
type Compiler struct {
	audit auditlog.Logger
}

// New returns a Compiler that reports caps, drift and oversized accounts to audit.
func New(audit auditlog.Logger) *Compiler {
	return &Compiler{audit: audit}
}

type accumulator struct {
	balance       decimal.Decimal
	contributions int
}

// Compile converts every valid row, applies the reserved address cap and the
// retained fraction, floors to whole smallest units and merges rows sharing a
// destination address.
func (c *Compiler) Compile(
	rows []model.LineItem,
	validation model.ValidationResult,
	retainedFraction decimal.Decimal,
	conversionFactor decimal.Decimal,
) (model.CompilationResult, error) {
	if rows == nil {
		return model.CompilationResult{}, ErrNilRows
	}
	if len(validation.Valid) != len(rows) {
		return model.CompilationResult{}, fmt.Errorf("%w: %d verdicts for %d rows", ErrLengthMismatch, len(validation.Valid), len(rows))
	}
	if retainedFraction.IsNegative() || retainedFraction.GreaterThan(decimal.NewFromInt(1)) {
		return model.CompilationResult{}, fmt.Errorf("%w: retained fraction %s outside [0, 1]", ErrInvalidParameter, retainedFraction)
	}
	if !conversionFactor.IsPositive() {
		return model.CompilationResult{}, fmt.Errorf("%w: conversion factor %s must be positive", ErrInvalidParameter, conversionFactor)
	}

	res := model.CompilationResult{
		TotalConverted: decimal.Zero,
		Histogram:      make(map[int]int),
	}
	order := make([]string, 0)
	accounts := make(map[string]*accumulator)

	for i, row := range rows {
		if !validation.IsValid(i) {
			continue
		}
		line := model.LineNumber(i)
		res.AccountCount++

		sourceBalance, err := amount.Parse(row.SourceBalance)
		if err != nil {
			return model.CompilationResult{}, fmt.Errorf("%w: line %d source balance: %v", ErrInconsistentRow, line, err)
		}
		expected, err := amount.Parse(row.DestinationBalance)
		if err != nil {
			return model.CompilationResult{}, fmt.Errorf("%w: line %d destination balance: %v", ErrInconsistentRow, line, err)
		}
		destination, ok := address.ChecksumEVM(row.DestinationAddress)
		if !ok {
			return model.CompilationResult{}, fmt.Errorf("%w: line %d destination address %q", ErrInconsistentRow, line, row.DestinationAddress)
		}

		converted := sourceBalance.Mul(conversionFactor).Mul(unitScale)

		if capped, clamped := capReserved(row.SourceAddress, converted); clamped {
			converted = capped
			c.audit.Printf("Line %d: Flare balance capped to: %s", line, converted.String())
		}

		if !converted.Equal(expected) {
			c.audit.Printf("Line %d: Flare balance error: %s (expected %s)", line, converted.String(), expected.String())
		}

		distributed := converted.Mul(retainedFraction).Floor()
		res.TotalConverted = res.TotalConverted.Add(distributed)

		if acc, ok := accounts[destination]; ok {
			acc.balance = acc.balance.Add(distributed)
			acc.contributions++
		} else {
			accounts[destination] = &accumulator{balance: distributed, contributions: 1}
			order = append(order, destination)
		}
	}

	res.Accounts = make([]model.ProcessedAccount, 0, len(order))
	for _, destination := range order {
		acc := accounts[destination]
		if acc.balance.GreaterThan(MaxDestinationBalance) {
			c.audit.Printf("Address %s: Flare balance %s bigger than cap %s", destination, acc.balance.String(), MaxDestinationBalance.String())
		}
		res.Accounts = append(res.Accounts, model.ProcessedAccount{
			DestinationAddress: destination,
			Balance:            amount.Hex(acc.balance),
			Amount:             acc.balance,
			Contributions:      acc.contributions,
		})
		res.Histogram[acc.contributions]++
	}

	return res, nil
}

// capReserved clamps the converted balance of the reserved source account,
// whichever address form the row uses.
func capReserved(sourceAddress string, converted decimal.Decimal) (decimal.Decimal, bool) {
	accountID, ok := address.AccountID(sourceAddress)
	if !ok || !bytes.Equal(accountID, reservedAccountID) {
		return converted, false
	}
	return decimal.Min(converted, MaxDestinationBalance), true
}
