// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"strings"
	"unicode"

	"github.com/pdiddy/quizconv/internal/tabular"
	"github.com/pdiddy/quizconv/pkg/types"
)

// NormalizeColumn removes every whitespace rune from a header name, so
// " 문제 번호 " and "문제번호" map to the same key. It is idempotent.
func NormalizeColumn(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, name)
}

// normalizeColumns normalizes a header and rejects duplicates.
func normalizeColumns(header []string) ([]string, error) {
	cols := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, h := range header {
		name := NormalizeColumn(h)
		if first, ok := seen[name]; ok {
			return nil, &DuplicateColumnError{Name: name, First: first + 1, Second: i + 1}
		}
		seen[name] = i
		cols[i] = name
	}
	return cols, nil
}

// validateFieldCounts checks every record against the header width and
// returns the first mismatch.
func validateFieldCounts(sheet *tabular.Sheet) error {
	want := len(sheet.Header)
	for i, rec := range sheet.Records {
		if len(rec) != want {
			return &SchemaError{
				Line:     sheet.Line(i),
				Expected: want,
				Actual:   len(rec),
				Content:  strings.Join(rec, ","),
			}
		}
	}
	return nil
}

// priorIssue returns the first padded spreadsheet row as a SchemaError, or nil.
func priorIssue(sheet *tabular.Sheet) *SchemaError {
	if len(sheet.Padded) == 0 {
		return nil
	}
	p := sheet.Padded[0]
	rec := sheet.Records[p.Index][:p.Fields]
	return &SchemaError{
		Line:     p.Line,
		Expected: len(sheet.Header),
		Actual:   p.Fields,
		Content:  strings.Join(rec, ","),
	}
}

// buildTable trims every cell and maps empty cells and null tokens to null.
// Cells stay strings from here on; identifier columns keep their literal
// spelling ("007" and "5" are never re-rendered as numbers).
func (c *Converter) buildTable(sheet *tabular.Sheet) (*types.Table, error) {
	cols, err := normalizeColumns(sheet.Header)
	if err != nil {
		return nil, err
	}
	t := &types.Table{Columns: cols, Rows: make([]types.Row, len(sheet.Records))}
	for i, rec := range sheet.Records {
		cells := make([]types.Cell, len(rec))
		for j, v := range rec {
			cells[j] = c.cell(v)
		}
		t.Rows[i] = types.Row{Line: sheet.Line(i), Cells: cells}
	}
	return t, nil
}

func (c *Converter) cell(raw string) types.Cell {
	v := strings.TrimSpace(raw)
	if v == "" {
		return types.Null()
	}
	if _, ok := c.nullTokens[v]; ok {
		return types.Null()
	}
	return types.Text(v)
}
