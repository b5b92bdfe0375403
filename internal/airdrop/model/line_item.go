// Package model holds the data structures shared by the airdrop pipeline stages.
package model

// HeaderOffset converts a zero-based row index into the 1-indexed line number of
// the export file, accounting for the header line.
const HeaderOffset = 2

// LineItem is one row of the ledger export.
type LineItem struct {
	SourceAddress      string
	DestinationAddress string
	SourceBalance      string
	DestinationBalance string
}

// LineNumber returns the human-readable line number for the row at index.
func LineNumber(index int) int {
	return index + HeaderOffset
}
