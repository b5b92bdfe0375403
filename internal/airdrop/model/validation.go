package model

import "github.com/shopspring/decimal"

// ValidationResult is the verdict of the validator over a whole export.
type ValidationResult struct {
	// Valid is index-aligned with the validated rows.
	Valid        []bool
	ValidCount   int
	InvalidCount int
	LineErrors   int

	TotalSourceBalance        decimal.Decimal
	InvalidSourceBalance      decimal.Decimal
	TotalDestinationBalance   decimal.Decimal
	InvalidDestinationBalance decimal.Decimal
}

// IsValid reports whether the row at index passed validation.
func (r ValidationResult) IsValid(index int) bool {
	return index >= 0 && index < len(r.Valid) && r.Valid[index]
}
