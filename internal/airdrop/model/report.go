package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrRunNotFound is returned when a stored run does not exist.
var ErrRunNotFound = errors.New("run not found")

// Report summarizes a single pipeline run over one ledger file.
type Report struct {
	RunID       string
	Source      string
	StartedAt   time.Time
	FinishedAt  time.Time
	Validation  ValidationResult
	Compilation CompilationResult
	Plan        BatchPlan
	Entitlement EntitlementTotals
	// ScheduleMismatches counts destinations whose compiled balance differs
	// from the scheduled initial airdrop.
	ScheduleMismatches int
}

// Run is the persisted summary of a pipeline run.
type Run struct {
	RunID                     string
	Source                    string
	StartedAt                 time.Time
	FinishedAt                time.Time
	Rows                      uint32
	ValidRows                 uint32
	InvalidRows               uint32
	LineErrors                uint32
	UniqueAccounts            uint32
	TotalSourceBalance        decimal.Decimal
	InvalidSourceBalance      decimal.Decimal
	TotalDestinationBalance   decimal.Decimal
	InvalidDestinationBalance decimal.Decimal
	TotalConverted            decimal.Decimal
	RetainedFraction          decimal.Decimal
	ConversionFactor          decimal.Decimal
}

// AccountRow is the persisted form of a ProcessedAccount. Position keeps the
// order of the distribution list.
type AccountRow struct {
	RunID              string
	Position           uint32
	DestinationAddress string
	Balance            string
	Contributions      uint32
}
