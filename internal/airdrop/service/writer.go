package service

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/airdrop-compiler/internal/airdrop/model"
	"github.com/goodnatureofminers/airdrop-compiler/internal/clock"
	"github.com/goodnatureofminers/airdrop-compiler/pkg/batcher"
	"github.com/goodnatureofminers/airdrop-compiler/pkg/safe"
	"go.uber.org/zap"
)

const maxRetryBackoff = 10 * time.Second

// WriterConfig tunes the batched account writer.
type WriterConfig struct {
	BatchSize     int
	FlushInterval time.Duration
	RPS           int
	Retries       int
	RetryBackoff  time.Duration
}

// DefaultWriterConfig returns the writer settings used by the CLI.
func DefaultWriterConfig() WriterConfig {
	return WriterConfig{
		BatchSize:     1000,
		FlushInterval: time.Second,
		RPS:           50,
		Retries:       3,
		RetryBackoff:  200 * time.Millisecond,
	}
}

func (c WriterConfig) withDefaults() WriterConfig {
	def := DefaultWriterConfig()
	if c.BatchSize <= 0 {
		c.BatchSize = def.BatchSize
	}
	if c.FlushInterval <= 0 {
		c.FlushInterval = def.FlushInterval
	}
	if c.RPS <= 0 {
		c.RPS = def.RPS
	}
	if c.Retries < 0 {
		c.Retries = 0
	}
	if c.RetryBackoff <= 0 {
		c.RetryBackoff = def.RetryBackoff
	}
	return c
}

// accountWriter streams a distribution list into the repository in batches,
// retrying failed inserts with exponential backoff.
type accountWriter struct {
	repo    RunRepository
	metrics WriterMetrics
	logger  *zap.Logger
	cfg     WriterConfig
}

func newAccountWriter(repo RunRepository, metrics WriterMetrics, logger *zap.Logger, cfg WriterConfig) *accountWriter {
	return &accountWriter{
		repo:    repo,
		metrics: metrics,
		logger:  logger.Named("account_writer"),
		cfg:     cfg.withDefaults(),
	}
}

func (w *accountWriter) write(ctx context.Context, runID string, accounts []model.ProcessedAccount) error {
	b := batcher.New(w.logger, w.flush, w.cfg.BatchSize, w.cfg.FlushInterval, w.cfg.RPS)
	b.Start(ctx)

	for i, acc := range accounts {
		row, err := accountRow(runID, i, acc)
		if err == nil {
			err = b.Add(ctx, row)
		}
		if err != nil {
			_ = b.Stop()
			return err
		}
	}

	if err := b.Stop(); err != nil {
		return fmt.Errorf("write accounts: %w", err)
	}
	return nil
}

func (w *accountWriter) flush(ctx context.Context, rows []model.AccountRow) error {
	start := time.Now()
	var err error
	defer func() {
		w.metrics.ObserveFlush(err, len(rows), start)
	}()

	for attempt := 0; ; attempt++ {
		if err = w.repo.InsertAccounts(ctx, rows); err == nil {
			return nil
		}
		if attempt >= w.cfg.Retries {
			return fmt.Errorf("insert %d accounts after %d attempts: %w", len(rows), attempt+1, err)
		}

		w.metrics.ObserveRetry()
		delay := clock.Backoff(attempt, w.cfg.RetryBackoff, maxRetryBackoff)
		w.logger.Warn("retrying account insert",
			zap.Int("rows", len(rows)),
			zap.Int("attempt", attempt+1),
			zap.Duration("delay", delay),
			zap.Error(err),
		)
		if err = clock.SleepWithContext(ctx, delay); err != nil {
			return err
		}
	}
}

func accountRow(runID string, position int, acc model.ProcessedAccount) (model.AccountRow, error) {
	pos, err := safe.Uint32(position)
	if err != nil {
		return model.AccountRow{}, fmt.Errorf("account position: %w", err)
	}
	contributions, err := safe.Uint32(acc.Contributions)
	if err != nil {
		return model.AccountRow{}, fmt.Errorf("account %s contributions: %w", acc.DestinationAddress, err)
	}
	return model.AccountRow{
		RunID:              runID,
		Position:           pos,
		DestinationAddress: acc.DestinationAddress,
		Balance:            acc.Balance,
		Contributions:      contributions,
	}, nil
}
