// Package validator checks every row of a ledger export before balances are compiled.
package validator

import (
	"errors"

	"github.com/goodnatureofminers/airdrop-compiler/internal/airdrop/address"
	"github.com/goodnatureofminers/airdrop-compiler/internal/airdrop/amount"
	"github.com/goodnatureofminers/airdrop-compiler/internal/airdrop/auditlog"
	"github.com/goodnatureofminers/airdrop-compiler/internal/airdrop/model"
	"github.com/shopspring/decimal"
)

// ErrNilRows is returned when the validator is handed no row sequence at all.
var ErrNilRows = errors.New("rows are required")

// sourceKey identifies a source account. Classic and X-address forms of one
// account share the decoded id; undecodable addresses are keyed by their text.
type sourceKey struct {
	account string
	raw     string
}

// Validator produces per-row verdicts and the reconciliation totals of an export.
type Validator struct {
	audit auditlog.Logger
}

// New returns a Validator that reports row defects to audit.
func New(audit auditlog.Logger) *Validator {
	return &Validator{audit: audit}
}

// Validate checks every row independently. Row defects never abort the pass;
// they are recorded as an invalid verdict and one audit line per failed check.
func (v *Validator) Validate(rows []model.LineItem) (model.ValidationResult, error) {
	if rows == nil {
		return model.ValidationResult{}, ErrNilRows
	}

	res := model.ValidationResult{
		Valid:                     make([]bool, len(rows)),
		TotalSourceBalance:        decimal.Zero,
		InvalidSourceBalance:      decimal.Zero,
		TotalDestinationBalance:   decimal.Zero,
		InvalidDestinationBalance: decimal.Zero,
	}
	// source account -> index of the first row it appeared on
	seen := make(map[sourceKey]int, len(rows))

	for i, row := range rows {
		line := model.LineNumber(i)
		valid := true

		key := sourceKey{raw: row.SourceAddress}
		if accountID, ok := address.AccountID(row.SourceAddress); ok {
			key = sourceKey{account: string(accountID)}
		} else {
			v.audit.Printf("Line %d: XRP address is invalid %s", line, row.SourceAddress)
			valid = false
			res.LineErrors++
		}

		if first, dup := seen[key]; dup {
			v.audit.Printf("Line %d: XRP address is duplicate of line %d", line, model.LineNumber(first))
			valid = false
			res.LineErrors++
		} else {
			seen[key] = i
		}

		if !address.ValidEVM(row.DestinationAddress) {
			v.audit.Printf("Line %d: Flare address is invalid %s", line, row.DestinationAddress)
			valid = false
			res.LineErrors++
		}

		sourceBalance, sourceErr := amount.Parse(row.SourceBalance)
		if sourceErr != nil {
			v.audit.Printf("Line %d: XRP Balance is not a valid number", line)
			valid = false
			res.LineErrors++
		}

		destinationBalance, destinationErr := amount.Parse(row.DestinationBalance)
		if destinationErr != nil {
			v.audit.Printf("Line %d: FLR Balance is not a valid number", line)
			valid = false
			res.LineErrors++
		}

		res.Valid[i] = valid
		if valid {
			res.ValidCount++
			res.TotalSourceBalance = res.TotalSourceBalance.Add(sourceBalance)
			res.TotalDestinationBalance = res.TotalDestinationBalance.Add(destinationBalance)
			continue
		}

		res.InvalidCount++
		if sourceErr == nil {
			res.InvalidSourceBalance = res.InvalidSourceBalance.Add(sourceBalance)
		}
		if destinationErr == nil {
			res.InvalidDestinationBalance = res.InvalidDestinationBalance.Add(destinationBalance)
		}
	}

	return res, nil
}
