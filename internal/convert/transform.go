// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pdiddy/quizconv/pkg/types"
)

var digitRun = regexp.MustCompile(`\d+`)

// Warning is a non-fatal per-row problem: an image marker that could not be
// resolved because the row lacks a usable date or question number.
type Warning struct {
	// Line is the row's line number, counting the header as line 1.
	Line   int
	Column string
	// Missing lists the identifier columns that were absent, null, or "nan".
	Missing []string
	// Date and QuestionNumber are the values found on the row ("" when null).
	Date           string
	QuestionNumber string
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: %q is an image placeholder but %s is missing (date %q, question number %q); path not generated",
		w.Line, w.Column, strings.Join(w.Missing, " and "), w.Date, w.QuestionNumber)
}

// OptionNumber returns the first run of digits in an option column name, or "0".
func OptionNumber(column string) string {
	if n := digitRun.FindString(column); n != "" {
		return n
	}
	return "0"
}

// transform rewrites text and image placeholder cells in place.
func (c *Converter) transform(t *types.Table, res *Result) {
	cols := c.cfg.Columns

	for _, name := range []string{cols.Choices, cols.Prompt, cols.Explanation} {
		if i := t.ColumnIndex(name); i >= 0 {
			for r := range t.Rows {
				c.replaceComma(&t.Rows[r].Cells[i])
			}
		}
	}

	var options []int
	if cols.OptionPrefix != "" {
		for i, name := range t.Columns {
			if strings.HasPrefix(name, cols.OptionPrefix) {
				options = append(options, i)
			}
		}
	}
	choices := t.ColumnIndex(cols.Choices)

	for r := range t.Rows {
		row := &t.Rows[r]
		if choices >= 0 && c.isMarker(row.Cells[choices]) {
			c.resolveImage(t, r, choices, "view", res)
		}
		for _, i := range options {
			cell := &row.Cells[i]
			if cell.IsNull() {
				continue
			}
			if c.isMarker(*cell) {
				c.resolveImage(t, r, i, OptionNumber(t.Columns[i]), res)
				continue
			}
			c.replaceComma(cell)
		}
	}
}

// resolveImage replaces the marker at row r, column i with
// <image_dir>/<date>-<question>-<suffix>.png, or records a warning.
func (c *Converter) resolveImage(t *types.Table, r, i int, suffix string, res *Result) {
	cols := c.cfg.Columns
	date, dateOK := identifier(t, r, cols.Date)
	num, numOK := identifier(t, r, cols.QuestionNumber)

	if dateOK && numOK {
		file := fmt.Sprintf("%s-%s-%s.png", date, num, suffix)
		t.Rows[r].Cells[i] = types.Text(path.Join(filepath.ToSlash(c.cfg.ImageDir), file))
		res.ImagePaths++
		return
	}

	w := Warning{
		Line:           t.Rows[r].Line,
		Column:         t.Columns[i],
		Date:           date,
		QuestionNumber: num,
	}
	if !dateOK {
		w.Missing = append(w.Missing, cols.Date)
	}
	if !numOK {
		w.Missing = append(w.Missing, cols.QuestionNumber)
	}
	res.Warnings = append(res.Warnings, w)
	c.log.Warn("%s", w)
}

// identifier returns the value of column name on row r and whether it can be
// used in an image path.
func identifier(t *types.Table, r int, name string) (string, bool) {
	cell, ok := t.Get(r, name)
	if !ok || cell.IsNull() {
		return "", false
	}
	v := cell.Value
	return v, v != "" && !strings.EqualFold(v, "nan")
}

func (c *Converter) isMarker(cell types.Cell) bool {
	return cell.Valid && strings.EqualFold(strings.TrimSpace(cell.Value), c.cfg.ImageMarker)
}

func (c *Converter) replaceComma(cell *types.Cell) {
	if cell.IsNull() || c.cfg.Comma == "" {
		return
	}
	cell.Value = strings.ReplaceAll(cell.Value, c.cfg.Comma, c.cfg.CommaReplacement)
}
