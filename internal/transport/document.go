// Package transport renders pipeline results for the CLI and the report server.
package transport

import (
	"math"
	"sort"
	"time"

	"github.com/goodnatureofminers/airdrop-compiler/internal/airdrop/model"
	"github.com/goodnatureofminers/airdrop-compiler/pkg/safe"
)

// AccountDocument is one distribution list entry. Balance is base-16 without prefix.
type AccountDocument struct {
	Address       string `json:"address"`
	Balance       string `json:"balance"`
	Contributions uint32 `json:"contributions"`
}

// HistogramBucket counts destinations with the same number of contributing rows.
type HistogramBucket struct {
	Contributions int `json:"contributions"`
	Accounts      int `json:"accounts"`
}

type ValidationDocument struct {
	ValidRows                 int    `json:"valid_rows"`
	InvalidRows               int    `json:"invalid_rows"`
	LineErrors                int    `json:"line_errors"`
	TotalSourceBalance        string `json:"total_source_balance"`
	InvalidSourceBalance      string `json:"invalid_source_balance"`
	TotalDestinationBalance   string `json:"total_destination_balance"`
	InvalidDestinationBalance string `json:"invalid_destination_balance"`
}

type CompilationDocument struct {
	ProcessedRows  int               `json:"processed_rows"`
	TotalConverted string            `json:"total_converted"`
	Histogram      []HistogramBucket `json:"histogram"`
	Accounts       []AccountDocument `json:"accounts"`
}

type CallDocument struct {
	Kind      string   `json:"kind"`
	To        string   `json:"to"`
	Nonce     uint64   `json:"nonce"`
	Addresses []string `json:"addresses,omitempty"`
	Balances  []string `json:"balances,omitempty"`
	Timestamp string   `json:"timestamp,omitempty"`
}

type PlanDocument struct {
	Batches      int            `json:"batches"`
	TotalGasCost string         `json:"total_gas_cost"`
	Calls        []CallDocument `json:"calls"`
}

type EntitlementDocument struct {
	InitialAirdrop     string `json:"initial_airdrop"`
	Distribution       string `json:"distribution"`
	ScheduleMismatches int    `json:"schedule_mismatches"`
}

// ReportDocument is the JSON form of a pipeline report.
type ReportDocument struct {
	RunID       string              `json:"run_id"`
	Source      string              `json:"source"`
	StartedAt   time.Time           `json:"started_at"`
	FinishedAt  time.Time           `json:"finished_at"`
	Validation  ValidationDocument  `json:"validation"`
	Compilation CompilationDocument `json:"compilation"`
	Plan        *PlanDocument       `json:"plan,omitempty"`
	Entitlement EntitlementDocument `json:"entitlement"`
}

// NewReportDocument converts a report. Contribution counts that do not fit
// uint32 cannot occur for ledgers the validator accepts and are clamped.
func NewReportDocument(r model.Report) ReportDocument {
	v := r.Validation
	doc := ReportDocument{
		RunID:      r.RunID,
		Source:     r.Source,
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
		Validation: ValidationDocument{
			ValidRows:                 v.ValidCount,
			InvalidRows:               v.InvalidCount,
			LineErrors:                v.LineErrors,
			TotalSourceBalance:        v.TotalSourceBalance.String(),
			InvalidSourceBalance:      v.InvalidSourceBalance.String(),
			TotalDestinationBalance:   v.TotalDestinationBalance.String(),
			InvalidDestinationBalance: v.InvalidDestinationBalance.String(),
		},
		Compilation: CompilationDocument{
			ProcessedRows:  r.Compilation.AccountCount,
			TotalConverted: r.Compilation.TotalConverted.String(),
			Histogram:      histogram(r.Compilation.Histogram),
			Accounts:       make([]AccountDocument, 0, len(r.Compilation.Accounts)),
		},
		Entitlement: EntitlementDocument{
			InitialAirdrop:     r.Entitlement.InitialAirdrop.String(),
			Distribution:       r.Entitlement.Distribution.String(),
			ScheduleMismatches: r.ScheduleMismatches,
		},
	}

	for _, acc := range r.Compilation.Accounts {
		doc.Compilation.Accounts = append(doc.Compilation.Accounts, AccountDocument{
			Address:       acc.DestinationAddress,
			Balance:       acc.Balance,
			Contributions: clampUint32(acc.Contributions),
		})
	}

	if len(r.Plan.Calls) > 0 {
		plan := &PlanDocument{
			Batches:      r.Plan.Batches,
			TotalGasCost: r.Plan.TotalGasCost.String(),
			Calls:        make([]CallDocument, 0, len(r.Plan.Calls)),
		}
		for _, c := range r.Plan.Calls {
			plan.Calls = append(plan.Calls, CallDocument{
				Kind:      string(c.Kind),
				To:        c.To,
				Nonce:     c.Nonce,
				Addresses: c.Addresses,
				Balances:  c.Balances,
				Timestamp: c.Timestamp,
			})
		}
		doc.Plan = plan
	}

	return doc
}

// RunDocument is the JSON form of a stored run summary.
type RunDocument struct {
	RunID                     string    `json:"run_id"`
	Source                    string    `json:"source"`
	StartedAt                 time.Time `json:"started_at"`
	FinishedAt                time.Time `json:"finished_at"`
	Rows                      uint32    `json:"rows"`
	ValidRows                 uint32    `json:"valid_rows"`
	InvalidRows               uint32    `json:"invalid_rows"`
	LineErrors                uint32    `json:"line_errors"`
	UniqueAccounts            uint32    `json:"unique_accounts"`
	TotalSourceBalance        string    `json:"total_source_balance"`
	InvalidSourceBalance      string    `json:"invalid_source_balance"`
	TotalDestinationBalance   string    `json:"total_destination_balance"`
	InvalidDestinationBalance string    `json:"invalid_destination_balance"`
	TotalConverted            string    `json:"total_converted"`
	RetainedFraction          string    `json:"retained_fraction"`
	ConversionFactor          string    `json:"conversion_factor"`
}

func NewRunDocument(run model.Run) RunDocument {
	return RunDocument{
		RunID:                     run.RunID,
		Source:                    run.Source,
		StartedAt:                 run.StartedAt,
		FinishedAt:                run.FinishedAt,
		Rows:                      run.Rows,
		ValidRows:                 run.ValidRows,
		InvalidRows:               run.InvalidRows,
		LineErrors:                run.LineErrors,
		UniqueAccounts:            run.UniqueAccounts,
		TotalSourceBalance:        run.TotalSourceBalance.String(),
		InvalidSourceBalance:      run.InvalidSourceBalance.String(),
		TotalDestinationBalance:   run.TotalDestinationBalance.String(),
		InvalidDestinationBalance: run.InvalidDestinationBalance.String(),
		TotalConverted:            run.TotalConverted.String(),
		RetainedFraction:          run.RetainedFraction.String(),
		ConversionFactor:          run.ConversionFactor.String(),
	}
}

func NewAccountDocuments(rows []model.AccountRow) []AccountDocument {
	out := make([]AccountDocument, 0, len(rows))
	for _, row := range rows {
		out = append(out, AccountDocument{
			Address:       row.DestinationAddress,
			Balance:       row.Balance,
			Contributions: row.Contributions,
		})
	}
	return out
}

func histogram(h map[int]int) []HistogramBucket {
	out := make([]HistogramBucket, 0, len(h))
	for contributions, accounts := range h {
		out = append(out, HistogramBucket{Contributions: contributions, Accounts: accounts})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Contributions < out[j].Contributions
	})
	return out
}

func clampUint32(v int) uint32 {
	u, err := safe.Uint32(v)
	if err != nil && v > 0 {
		return math.MaxUint32
	}
	return u
}
