//go:build integration

package clickhouse

import (
	"github.com/golang/mock/gomock"
	"github.com/goodnatureofminers/airdrop-compiler/internal/airdrop/model"
)

func (s *RepositorySuite) TestInsertAccountsAndAccountsByRun() {
	const runID = "1c8b5a3e-9f7a-4a7e-b7a5-2f0c1f9e6d02"
	accounts := []model.AccountRow{
		{RunID: runID, Position: 1, DestinationAddress: "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359", Balance: "1f", Contributions: 1},
		{RunID: runID, Position: 0, DestinationAddress: "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", Balance: "da475abf000", Contributions: 2},
		{RunID: "other", Position: 0, DestinationAddress: "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", Balance: "1", Contributions: 1},
	}

	s.metrics.EXPECT().Observe("insert_accounts", gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("accounts_by_run", gomock.Nil(), gomock.Any()).Times(2)

	s.Require().NoError(s.repo.InsertAccounts(s.testCtx, accounts))
	s.Equal(uint64(len(accounts)), s.countRows("airdrop_accounts"))

	got, err := s.repo.AccountsByRun(s.testCtx, runID)
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal(accounts[1], got[0])
	s.Equal(accounts[0], got[1])

	none, err := s.repo.AccountsByRun(s.testCtx, "missing")
	s.Require().NoError(err)
	s.Empty(none)
}
