package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/airdrop-compiler/internal/airdrop/model"
)

// InsertAccounts stores a slice of the distribution list of a run.
func (r *Repository) InsertAccounts(ctx context.Context, accounts []model.AccountRow) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_accounts", err, start)
	}()

	if len(accounts) == 0 {
		return nil
	}

	const query = `
INSERT INTO airdrop_accounts (
	run_id,
	position,
	destination_address,
	balance,
	contributions
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare accounts batch: %w", err)
	}

	for _, acc := range accounts {
		if err = batch.Append(
			acc.RunID,
			acc.Position,
			acc.DestinationAddress,
			acc.Balance,
			acc.Contributions,
		); err != nil {
			return fmt.Errorf("append account: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert accounts: %w", err)
	}
	return nil
}
