// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tabular loads the raw records of a quiz sheet. It applies only
// delimiter and quote rules: no trimming, null handling, or type coercion
// happens here, so field counts can be validated against the header first.
package tabular

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

var (
	// ErrNoHeader is returned when the input has no header record.
	ErrNoHeader = errors.New("input has no header row")

	// ErrInvalidUTF8 is returned when the input text is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("input is not valid UTF-8")
)

// Sheet holds the raw header and data records of one input file.
type Sheet struct {
	// Path is the file the sheet was read from.
	Path string

	Header  []string
	Records [][]string

	// Lines holds the 1-based line number of each record, counting the
	// header as line 1. It is aligned with Records.
	Lines []int

	// Padded lists spreadsheet rows that were shorter than the header and
	// were padded with empty cells.
	Padded []Padding
}

// Padding records one padded row.
type Padding struct {
	// Index is the row's position in Records.
	Index int
	// Line is the row's line number, counting the header as line 1.
	Line int
	// Fields is the number of cells the row had before padding.
	Fields int
}

// Line returns the line number of record i. Sheets built without Lines
// number their records consecutively after the header.
func (s *Sheet) Line(i int) int {
	if i < len(s.Lines) {
		return s.Lines[i]
	}
	return i + 2
}

func (s *Sheet) add(rec []string, line int) {
	s.Records = append(s.Records, rec)
	s.Lines = append(s.Lines, line)
}

// checkUTF8 returns ErrInvalidUTF8 for the first cell that is not valid
// UTF-8. Row 0 is the header.
func checkUTF8(rows [][]string) error {
	for i, row := range rows {
		for j, v := range row {
			if !utf8.ValidString(v) {
				return fmt.Errorf("row %d, column %d: %w", i+1, j+1, ErrInvalidUTF8)
			}
		}
	}
	return nil
}

// Load reads path with the reader matching its extension: .xlsx files go
// through the spreadsheet reader, everything else is parsed as CSV.
func Load(path string) (*Sheet, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return loadXLSX(path)
	default:
		return loadCSV(path)
	}
}
