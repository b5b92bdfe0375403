package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/airdrop-compiler/internal/airdrop/model"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	LedgerReader interface {
		Read(ctx context.Context, path string) ([]model.LineItem, error)
	}
	RunRepository interface {
		InsertRun(ctx context.Context, run model.Run) error
		InsertAccounts(ctx context.Context, accounts []model.AccountRow) error
	}
	PipelineMetrics interface {
		ObserveRun(err error, started time.Time)
		ObserveValidation(valid, invalid, lineErrors int)
		ObserveCompilation(err error, accounts int, total decimal.Decimal, decimals int32, started time.Time)
	}
	WriterMetrics interface {
		ObserveFlush(err error, rows int, started time.Time)
		ObserveRetry()
	}
)
