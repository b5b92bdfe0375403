package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/airdrop-compiler/internal/airdrop/model"
)

// AccountsByRun returns the stored distribution list of a run in list order.
func (r *Repository) AccountsByRun(ctx context.Context, runID string) ([]model.AccountRow, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("accounts_by_run", err, start)
	}()

	if runID == "" {
		err = ErrEmptyRunID
		return nil, err
	}

	const query = `
SELECT
	run_id,
	position,
	destination_address,
	balance,
	contributions
FROM airdrop_accounts FINAL
WHERE run_id = ?
ORDER BY position`

	rows, err := r.conn.Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("query accounts: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var accounts []model.AccountRow
	for rows.Next() {
		var acc model.AccountRow
		if err = rows.Scan(
			&acc.RunID,
			&acc.Position,
			&acc.DestinationAddress,
			&acc.Balance,
			&acc.Contributions,
		); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, acc)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate accounts: %w", err)
	}

	return accounts, nil
}
