package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/airdrop-compiler/internal/airdrop/model"
	"github.com/shopspring/decimal"
)

// runRecord mirrors an airdrop_runs row; decimal totals are stored as strings.
type runRecord struct {
	RunID                     string
	Source                    string
	StartedAt                 time.Time
	FinishedAt                time.Time
	Rows                      uint32
	ValidRows                 uint32
	InvalidRows               uint32
	LineErrors                uint32
	UniqueAccounts            uint32
	TotalSourceBalance        string
	InvalidSourceBalance      string
	TotalDestinationBalance   string
	InvalidDestinationBalance string
	TotalConverted            string
	RetainedFraction          string
	ConversionFactor          string
}

func (rec *runRecord) dest() []any {
	return []any{
		&rec.RunID,
		&rec.Source,
		&rec.StartedAt,
		&rec.FinishedAt,
		&rec.Rows,
		&rec.ValidRows,
		&rec.InvalidRows,
		&rec.LineErrors,
		&rec.UniqueAccounts,
		&rec.TotalSourceBalance,
		&rec.InvalidSourceBalance,
		&rec.TotalDestinationBalance,
		&rec.InvalidDestinationBalance,
		&rec.TotalConverted,
		&rec.RetainedFraction,
		&rec.ConversionFactor,
	}
}

func (rec runRecord) toModel() (model.Run, error) {
	run := model.Run{
		RunID:          rec.RunID,
		Source:         rec.Source,
		StartedAt:      rec.StartedAt,
		FinishedAt:     rec.FinishedAt,
		Rows:           rec.Rows,
		ValidRows:      rec.ValidRows,
		InvalidRows:    rec.InvalidRows,
		LineErrors:     rec.LineErrors,
		UniqueAccounts: rec.UniqueAccounts,
	}

	fields := []struct {
		name  string
		value string
		dst   *decimal.Decimal
	}{
		{"total_source_balance", rec.TotalSourceBalance, &run.TotalSourceBalance},
		{"invalid_source_balance", rec.InvalidSourceBalance, &run.InvalidSourceBalance},
		{"total_destination_balance", rec.TotalDestinationBalance, &run.TotalDestinationBalance},
		{"invalid_destination_balance", rec.InvalidDestinationBalance, &run.InvalidDestinationBalance},
		{"total_converted", rec.TotalConverted, &run.TotalConverted},
		{"retained_fraction", rec.RetainedFraction, &run.RetainedFraction},
		{"conversion_factor", rec.ConversionFactor, &run.ConversionFactor},
	}
	for _, f := range fields {
		d, err := decimal.NewFromString(f.value)
		if err != nil {
			return model.Run{}, fmt.Errorf("%w: %s %q", ErrCorruptValue, f.name, f.value)
		}
		*f.dst = d
	}
	return run, nil
}

// RunByID returns the summary of a stored run.
func (r *Repository) RunByID(ctx context.Context, runID string) (model.Run, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("run_by_id", err, start)
	}()

	if runID == "" {
		err = ErrEmptyRunID
		return model.Run{}, err
	}

	const query = `
SELECT
	run_id,
	source,
	started_at,
	finished_at,
	row_count,
	valid_rows,
	invalid_rows,
	line_errors,
	unique_accounts,
	total_source_balance,
	invalid_source_balance,
	total_destination_balance,
	invalid_destination_balance,
	total_converted,
	retained_fraction,
	conversion_factor
FROM airdrop_runs FINAL
WHERE run_id = ?
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, runID)
	if err != nil {
		return model.Run{}, fmt.Errorf("query run: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.Run{}, fmt.Errorf("iterate run: %w", err)
		}
		err = fmt.Errorf("%w: %s", model.ErrRunNotFound, runID)
		return model.Run{}, err
	}

	var rec runRecord
	if err = rows.Scan(rec.dest()...); err != nil {
		return model.Run{}, fmt.Errorf("scan run: %w", err)
	}

	run, err := rec.toModel()
	if err != nil {
		return model.Run{}, err
	}
	return run, nil
}
