package model

import "github.com/shopspring/decimal"

// CallKind names the contract call an entry of a batch plan stands for.
type CallKind string

const (
	CallInitialAirdropBalances CallKind = "initial_airdrop.setAirdropBalances"
	CallDistributionBalances   CallKind = "distribution.setAirdropBalances"
	CallInitialAirdropStart    CallKind = "initial_airdrop.setAirdropStart"
	CallDistributionStart      CallKind = "distribution.setEntitlementStart"
)

// PlannedCall is a single unsigned call the transaction assembler must build.
type PlannedCall struct {
	Kind      CallKind
	To        string
	Nonce     uint64
	Addresses []string
	// Balances are base-16 smallest-unit amounts, index-aligned with Addresses.
	Balances []string
	// Timestamp is set on the closing start calls only.
	Timestamp string
}

// BatchPlan is the ordered list of calls for a distribution list.
type BatchPlan struct {
	Calls        []PlannedCall
	Batches      int
	TotalGasCost decimal.Decimal
}

// Entitlement splits an account total into the initial airdrop and the
// distribution share.
type Entitlement struct {
	DestinationAddress  string
	Total               decimal.Decimal
	InitialAirdrop      decimal.Decimal
	MonthlyDistribution decimal.Decimal
	Distribution        decimal.Decimal
}

// EntitlementTotals sums the entitlements of a distribution list.
type EntitlementTotals struct {
	InitialAirdrop decimal.Decimal
	Distribution   decimal.Decimal
}
