// Package batch lays out the calls the transaction assembler has to build for
// a distribution list.
package batch

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/airdrop-compiler/internal/airdrop/address"
	"github.com/goodnatureofminers/airdrop-compiler/internal/airdrop/model"
	"github.com/shopspring/decimal"
)

// DefaultSize is the number of accounts set per balance call.
const DefaultSize = 900

var ErrInvalidConfig = errors.New("invalid batch config")

// Config describes the target contracts and the fee parameters of a plan.
type Config struct {
	Size                   int
	InitialAirdropContract string
	DistributionContract   string
	InitialAirdropStart    string
	DistributionStart      string
	NonceOffset            uint64
	Gas                    decimal.Decimal
	GasPrice               decimal.Decimal
}

func (c Config) validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("%w: size %d", ErrInvalidConfig, c.Size)
	}
	if !address.ValidEVM(c.InitialAirdropContract) {
		return fmt.Errorf("%w: initial airdrop contract %q", ErrInvalidConfig, c.InitialAirdropContract)
	}
	if !address.ValidEVM(c.DistributionContract) {
		return fmt.Errorf("%w: distribution contract %q", ErrInvalidConfig, c.DistributionContract)
	}
	if c.Gas.IsNegative() || c.GasPrice.IsNegative() {
		return fmt.Errorf("%w: negative gas parameters", ErrInvalidConfig)
	}
	return nil
}

// Plan splits accounts into batches of cfg.Size. Every batch yields one call
// to each contract; two closing calls start the airdrop and the entitlement
// period. Nonces are consecutive from cfg.NonceOffset.
func Plan(accounts []model.ProcessedAccount, cfg Config) (model.BatchPlan, error) {
	if err := cfg.validate(); err != nil {
		return model.BatchPlan{}, err
	}

	batches := (len(accounts) + cfg.Size - 1) / cfg.Size
	calls := make([]model.PlannedCall, 0, 2*batches+2)
	nonce := cfg.NonceOffset

	for start := 0; start < len(accounts); start += cfg.Size {
		end := min(start+cfg.Size, len(accounts))

		addresses := make([]string, 0, end-start)
		balances := make([]string, 0, end-start)
		for _, acc := range accounts[start:end] {
			addresses = append(addresses, acc.DestinationAddress)
			balances = append(balances, acc.Balance)
		}

		calls = append(calls,
			model.PlannedCall{
				Kind:      model.CallInitialAirdropBalances,
				To:        cfg.InitialAirdropContract,
				Nonce:     nonce,
				Addresses: addresses,
				Balances:  balances,
			},
			model.PlannedCall{
				Kind:      model.CallDistributionBalances,
				To:        cfg.DistributionContract,
				Nonce:     nonce + 1,
				Addresses: addresses,
				Balances:  balances,
			},
		)
		nonce += 2
	}

	calls = append(calls,
		model.PlannedCall{
			Kind:      model.CallInitialAirdropStart,
			To:        cfg.InitialAirdropContract,
			Nonce:     nonce,
			Timestamp: cfg.InitialAirdropStart,
		},
		model.PlannedCall{
			Kind:      model.CallDistributionStart,
			To:        cfg.DistributionContract,
			Nonce:     nonce + 1,
			Timestamp: cfg.DistributionStart,
		},
	)

	return model.BatchPlan{
		Calls:        calls,
		Batches:      batches,
		TotalGasCost: cfg.Gas.Mul(cfg.GasPrice).Mul(decimal.NewFromInt(int64(len(calls)))),
	}, nil
}
