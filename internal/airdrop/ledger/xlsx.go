package ledger

import (
	"fmt"
	"io"
	"strings"

	"github.com/goodnatureofminers/airdrop-compiler/internal/airdrop/model"
	"github.com/xuri/excelize/v2"
)

// ReadXLSX parses the first sheet of a spreadsheet export. The first non-empty
// row is the header; fully empty rows are skipped.
func ReadXLSX(r io.Reader) ([]model.LineItem, error) {
	book, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() {
		_ = book.Close()
	}()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyExport
	}

	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}

	var (
		cols      columns
		width     int
		hasHeader bool
	)
	items := make([]model.LineItem, 0, len(rows))
	for i, row := range rows {
		if isEmptyRow(row) {
			continue
		}
		if !hasHeader {
			if cols, err = mapHeader(row); err != nil {
				return nil, err
			}
			width = len(row)
			hasHeader = true
			continue
		}
		if len(row) > width {
			return nil, fmt.Errorf("%w: sheet row %d has %d cells, header has %d", ErrMalformedRow, i+1, len(row), width)
		}
		// trailing empty cells are not returned by excelize
		padded := make([]string, width)
		copy(padded, row)
		items = append(items, cols.item(padded))
	}

	if !hasHeader {
		return nil, ErrEmptyExport
	}
	return items, nil
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
