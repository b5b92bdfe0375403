// Package ledger reads ledger exports into line items.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goodnatureofminers/airdrop-compiler/internal/airdrop/model"
)

// Header names of the export columns.
const (
	ColumnSourceAddress      = "XRPAddress"
	ColumnDestinationAddress = "FlareAddress"
	ColumnSourceBalance      = "XRPBalance"
	ColumnDestinationBalance = "FlareBalance"
)

var (
	ErrMissingColumn     = errors.New("missing column")
	ErrEmptyExport       = errors.New("export has no header")
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrMalformedRow      = errors.New("malformed row")
)

// Reader opens exports by file extension.
type Reader struct{}

// NewReader returns a Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read parses the export at path. Files ending in .xlsx are read as
// spreadsheets, everything else as comma separated text.
func (r *Reader) Read(ctx context.Context, path string) ([]model.LineItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open export: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return ReadXLSX(f)
	case ".csv", ".txt", "":
		return ReadCSV(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

type columns struct {
	sourceAddress      int
	destinationAddress int
	sourceBalance      int
	destinationBalance int
}

func mapHeader(header []string) (columns, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimPrefix(name, "\ufeff")
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}

	lookup := func(name string) (int, error) {
		i, ok := index[strings.ToLower(name)]
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
		return i, nil
	}

	var (
		cols columns
		err  error
	)
	if cols.sourceAddress, err = lookup(ColumnSourceAddress); err != nil {
		return columns{}, err
	}
	if cols.destinationAddress, err = lookup(ColumnDestinationAddress); err != nil {
		return columns{}, err
	}
	if cols.sourceBalance, err = lookup(ColumnSourceBalance); err != nil {
		return columns{}, err
	}
	if cols.destinationBalance, err = lookup(ColumnDestinationBalance); err != nil {
		return columns{}, err
	}
	return cols, nil
}

func (c columns) item(record []string) model.LineItem {
	return model.LineItem{
		SourceAddress:      record[c.sourceAddress],
		DestinationAddress: record[c.destinationAddress],
		SourceBalance:      record[c.sourceBalance],
		DestinationBalance: record[c.destinationBalance],
	}
}
