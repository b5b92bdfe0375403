package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/airdrop-compiler/internal/airdrop/model"
)

// InsertRun stores the summary of a pipeline run.
func (r *Repository) InsertRun(ctx context.Context, run model.Run) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_run", err, start)
	}()

	if run.RunID == "" {
		err = ErrEmptyRunID
		return err
	}

	batch, err := r.conn.PrepareBatch(ctx, insertRunQuery)
	if err != nil {
		return fmt.Errorf("prepare run batch: %w", err)
	}

	if err = batch.Append(runValues(run)...); err != nil {
		return fmt.Errorf("append run: %w", err)
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

const insertRunQuery = `
INSERT INTO airdrop_runs (
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
) VALUES`

func runValues(run model.Run) []any {
	return []any{
		run.RunID,
		run.Source,
		run.StartedAt,
		run.FinishedAt,
		run.Rows,
		run.ValidRows,
		run.InvalidRows,
		run.LineErrors,
		run.UniqueAccounts,
		run.TotalSourceBalance.String(),
		run.InvalidSourceBalance.String(),
		run.TotalDestinationBalance.String(),
		run.InvalidDestinationBalance.String(),
		run.TotalConverted.String(),
		run.RetainedFraction.String(),
		run.ConversionFactor.String(),
	}
}
