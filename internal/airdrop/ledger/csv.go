package ledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/goodnatureofminers/airdrop-compiler/internal/airdrop/model"
)

// ReadCSV parses a comma separated export with a header line. Blank lines are
// skipped; a record with a different field count than the header is fatal.
func ReadCSV(r io.Reader) ([]model.LineItem, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyExport
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols, err := mapHeader(header)
	if err != nil {
		return nil, err
	}

	items := make([]model.LineItem, 0)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedRow, err)
		}
		items = append(items, cols.item(record))
	}
	return items, nil
}
