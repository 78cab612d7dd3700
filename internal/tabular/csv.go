// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tabular

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

var utf8BOM = []byte("\xef\xbb\xbf")

func loadCSV(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s: byte offset %d: %w", path, invalidUTF8Offset(data), ErrInvalidUTF8)
	}
	sheet, err := parseCSV(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	sheet.Path = path
	return sheet, nil
}

// parseCSV splits data into records. encoding/csv skips empty lines; they
// are kept here as zero-field records so they fail field-count validation
// at their physical line number. Empty lines before the header are ignored.
func parseCSV(data []byte) (*Sheet, error) {
	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	sheet := &Sheet{Header: header}
	lines := newLineCounter(data)
	next := lines.after(cr.InputOffset())
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading record: %w", err)
		}
		line, _ := cr.FieldPos(0)
		for ; next < line; next++ {
			sheet.add([]string{}, next)
		}
		sheet.add(rec, line)
		next = lines.after(cr.InputOffset())
	}
	for last := lines.total(); next <= last; next++ {
		sheet.add([]string{}, next)
	}
	return sheet, nil
}

// lineCounter maps byte offsets to line numbers, scanning data once.
type lineCounter struct {
	data []byte
	off  int64
	line int
}

func newLineCounter(data []byte) *lineCounter {
	return &lineCounter{data: data, line: 1}
}

// after returns the number of the line that starts at off, where off
// follows a record's terminating newline. Offsets must not decrease.
func (c *lineCounter) after(off int64) int {
	c.line += bytes.Count(c.data[c.off:off], []byte("\n"))
	c.off = off
	return c.line
}

// total returns the number of newline-terminated lines in data. An
// unterminated last line always holds a record, so it never counts as empty.
func (c *lineCounter) total() int {
	return bytes.Count(c.data, []byte("\n"))
}

func invalidUTF8Offset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}
