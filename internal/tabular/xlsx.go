// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tabular

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// loadXLSX reads the first worksheet. Record lines are worksheet row
// numbers; GetRows keeps empty rows between filled ones, and those are
// padded like any short row. excelize omits trailing empty cells,
// so rows shorter than the header are padded and recorded in Sheet.Padded.
// Rows longer than the header are kept as-is and fail validation.
func loadXLSX(path string) (*Sheet, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoHeader
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, ErrNoHeader
	}
	if err := checkUTF8(rows); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	sheet := &Sheet{Path: path, Header: rows[0]}
	width := len(sheet.Header)
	for i, row := range rows[1:] {
		line := i + 2
		if len(row) < width {
			sheet.Padded = append(sheet.Padded, Padding{Index: i, Line: line, Fields: len(row)})
			padded := make([]string, width)
			copy(padded, row)
			row = padded
		}
		sheet.add(row, line)
	}
	return sheet, nil
}
