// Package amount parses and formats the balance fields of the ledger export.
package amount

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

// ErrNotBaseTen is returned for balances that are not plain non-negative base-10 numbers.
var ErrNotBaseTen = errors.New("not a base-10 number")

// Plain digits with an optional fractional part. Signs, exponents, currency
// symbols and thousands separators are rejected.
var baseTenPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

// IsBaseTen reports whether s is a non-negative base-10 decimal.
func IsBaseTen(s string) bool {
	return baseTenPattern.MatchString(s)
}

// Parse converts a balance field into an exact decimal.
func Parse(s string) (decimal.Decimal, error) {
	if !IsBaseTen(s) {
		return decimal.Zero, fmt.Errorf("%q: %w", s, ErrNotBaseTen)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse %q: %w", s, err)
	}
	return d, nil
}

// Hex renders the integer part of d in base 16 without a prefix.
func Hex(d decimal.Decimal) string {
	return d.BigInt().Text(16)
}

// Pow10 returns 10^exp as a decimal.
func Pow10(exp int32) decimal.Decimal {
	return decimal.New(1, exp)
}
