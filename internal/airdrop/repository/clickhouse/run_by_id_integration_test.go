//go:build integration

package clickhouse

import (
	"time"

	"github.com/golang/mock/gomock"
	"github.com/goodnatureofminers/airdrop-compiler/internal/airdrop/model"
	"github.com/shopspring/decimal"
)

func (s *RepositorySuite) TestInsertRunAndRunByID() {
	now := time.Now().UTC().Truncate(time.Millisecond)
	run := model.Run{
		RunID:                     "0b4c3c55-3f5e-4a43-8f0c-9f3c4dfd7c01",
		Source:                    "ledger.csv",
		StartedAt:                 now,
		FinishedAt:                now.Add(2 * time.Second),
		Rows:                      3,
		ValidRows:                 2,
		InvalidRows:               1,
		LineErrors:                1,
		UniqueAccounts:            1,
		TotalSourceBalance:        decimal.RequireFromString("39"),
		InvalidSourceBalance:      decimal.RequireFromString("0.5"),
		TotalDestinationBalance:   decimal.RequireFromString("39000000000000000000"),
		InvalidDestinationBalance: decimal.Zero,
		TotalConverted:            decimal.RequireFromString("5850000000000000000"),
		RetainedFraction:          decimal.RequireFromString("0.15"),
		ConversionFactor:          decimal.RequireFromString("1"),
	}

	s.metrics.EXPECT().Observe("insert_run", gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("run_by_id", gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertRun(s.testCtx, run))
	s.Equal(uint64(1), s.countRows("airdrop_runs"))

	got, err := s.repo.RunByID(s.testCtx, run.RunID)
	s.Require().NoError(err)
	s.Equal(run.Source, got.Source)
	s.Equal(run.ValidRows, got.ValidRows)
	s.True(run.StartedAt.Equal(got.StartedAt))
	s.True(run.TotalConverted.Equal(got.TotalConverted))
	s.True(run.InvalidSourceBalance.Equal(got.InvalidSourceBalance))
}

func (s *RepositorySuite) TestRunByIDNotFound() {
	s.metrics.EXPECT().Observe("run_by_id", gomock.Not(gomock.Nil()), gomock.Any()).Times(1)

	_, err := s.repo.RunByID(s.testCtx, "missing")
	s.ErrorIs(err, model.ErrRunNotFound)
}
